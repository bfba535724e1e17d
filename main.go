package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelogue/config"
	"travelogue/cron"
	"travelogue/database"
	bookingRepoPkg "travelogue/database/repository/booking"
	reviewRepoPkg "travelogue/database/repository/review"
	tripRepoPkg "travelogue/database/repository/trip"
	userRepoPkg "travelogue/database/repository/user"
	"travelogue/handlers"
	"travelogue/routes"
	"travelogue/services/booking"
	"travelogue/services/notification"
	"travelogue/services/payment"
	"travelogue/services/review"
	"travelogue/services/trip"
	"travelogue/services/user"
	"travelogue/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with the sample catalog and exit")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	if *seed {
		if err := database.SeedDatabase(); err != nil {
			logger.Sugar().Fatalf("main: seeding failed: %v", err)
		}
		return
	}

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	tripRepo := tripRepoPkg.NewMongoTripRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Async email pipeline: bookings enqueue, the worker delivers over SMTP.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifier := notification.NewQueueNotifier(asynqClient)
	cron.InitEmailWorker(notification.NewSMTPEmailSender())

	// services.
	tripService := &trip.DefaultTripService{
		Repo:  tripRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		TripRepo:    tripRepo,
		BookingRepo: bookingRepo,
		Notifier:    notifier,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		TripRepo: tripRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	paymentService := payment.NewStripePaymentService()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Trips:    handlers.NewTripHandler(tripService),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Reviews:  handlers.NewReviewHandler(reviewService),
		Auth:     handlers.NewAuthHandler(userService),
		Payments: handlers.NewPaymentHandler(paymentService),
	}

	routes.RegisterRoutes(router, handlerBundle)

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
