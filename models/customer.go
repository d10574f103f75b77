package models

import "time"

// Customer is a horse owner. Full profile management is handled elsewhere;
// the engine only needs identity and contact details.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
