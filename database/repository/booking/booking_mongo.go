package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"horselink/database"
	"horselink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		bookingColl: database.DB().Collection("bookings"),
	}
}

func (repo *MongoBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) UpdateBookingStatus(ctx context.Context, bookingID, status, cancellationMessage string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if cancellationMessage != "" {
		set["cancellationMessage"] = cancellationMessage
	}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": bookingID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}

func (repo *MongoBookingRepo) GetBookingsForProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for provider %s on %s: %w", providerID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) GetCompletedBookingsByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"customerId": customerID,
		"status":     models.BookingStatusCompleted,
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching completed bookings for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CreateBookingsBestEffort inserts the batch inside one mongo transaction.
// A failed insert is recorded as a CreationFailure and the loop moves on; the
// transaction commits with whatever subset succeeded. Only session-level
// failures surface as an error.
func (repo *MongoBookingRepo) CreateBookingsBestEffort(ctx context.Context, bookings []*models.Booking) ([]models.Booking, []CreationFailure, error) {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var created []models.Booking
	var failures []CreationFailure

	txnFn := func(sc mongo.SessionContext) error {
		for _, b := range bookings {
			if _, err := repo.bookingColl.InsertOne(sc, b); err != nil {
				failures = append(failures, CreationFailure{
					CustomerID: b.CustomerID,
					HorseID:    b.HorseID,
					Err:        fmt.Errorf("insert booking failed: %w", err),
				})
				continue
			}
			created = append(created, *b)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, nil, fmt.Errorf("group booking transaction failed: %w", err)
	}

	return created, failures, nil
}
