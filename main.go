package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horselink/config"
	"horselink/database"
	bookingRepoPkg "horselink/database/repository/booking"
	customerRepoPkg "horselink/database/repository/customer"
	groupRepoPkg "horselink/database/repository/group"
	horseRepoPkg "horselink/database/repository/horse"
	notificationRepoPkg "horselink/database/repository/notification"
	providerRepoPkg "horselink/database/repository/provider"
	"horselink/handlers"
	"horselink/middleware"
	"horselink/models"
	"horselink/routes"
	"horselink/services/booking"
	"horselink/services/email"
	"horselink/services/group"
	"horselink/services/horsecare"
	ai "horselink/services/intelligence"
	"horselink/services/notification"
	"horselink/utils"
	"horselink/workers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Actor-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	horseRepo := horseRepoPkg.NewMongoHorseRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()

	// Services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	dispatcher := booking.NewEventDispatcher()
	booking.RegisterEventHandlers(dispatcher, &email.LogSender{}, notificationService, customerRepo)

	schedulingEngine := &booking.DefaultSchedulingEngine{
		ProviderRepo: providerRepo,
		BookingRepo:  bookingRepo,
	}
	lifecycleService := &booking.DefaultLifecycleService{
		Repo:       bookingRepo,
		Dispatcher: dispatcher,
	}

	dueCache := horsecare.NewRedisResultCache(utils.GetCacheClient(), 10*time.Minute)
	dueService := &horsecare.DefaultDueForServiceService{
		HorseRepo:   horseRepo,
		BookingRepo: bookingRepo,
		Cache:       dueCache,
	}

	groupService := &group.DefaultGroupBookingService{
		GroupRepo:    groupRepo,
		BookingRepo:  bookingRepo,
		ProviderRepo: providerRepo,
		Notifier:     notificationService,
	}

	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	insightService := &ai.DefaultInsightService{
		Generator:   geminiClient,
		HorseRepo:   horseRepo,
		BookingRepo: bookingRepo,
		Context:     ctxStore,
	}

	// Background reminders: the worker consumes due-service checks, and a
	// completed booking schedules the next one.
	workers.InitReminderWorker(dueService, notificationService)
	reminderScheduler := workers.NewReminderScheduler()
	dispatcher.Register(models.EventBookingStatusChanged, workers.CompletedBookingReminderHandler(reminderScheduler))

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Availability:  &handlers.AvailabilityHandler{Engine: schedulingEngine},
		Booking:       &handlers.BookingHandler{Lifecycle: lifecycleService},
		Group:         &handlers.GroupBookingHandler{Service: groupService},
		HorseCare:     &handlers.HorseCareHandler{DueService: dueService, HorseRepo: horseRepo},
		Notifications: &handlers.NotificationHandler{Service: notificationService},
		Insight:       &handlers.InsightHandler{Service: insightService},
		Provider:      &handlers.ProviderHandler{Repo: providerRepo},
	}
	routes.RegisterBookingRoutes(router, handlerBundle)
	routes.RegisterGroupRoutes(router, handlerBundle)
	routes.RegisterHorseCareRoutes(router, handlerBundle)
	routes.RegisterProviderRoutes(router, handlerBundle)
	routes.RegisterNotificationRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
