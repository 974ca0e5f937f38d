package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"trimly/config"
	"trimly/cron"
	"trimly/database"
	apptRepoPkg "trimly/database/repository/appointment"
	barberRepoPkg "trimly/database/repository/barber"
	leaveRepoPkg "trimly/database/repository/leave"
	shiftRepoPkg "trimly/database/repository/shift"
	"trimly/handlers"
	"trimly/models"
	"trimly/routes"
	"trimly/services/availability"
	"trimly/services/booking"
	"trimly/services/notification"
	"trimly/services/schedule"
	"trimly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitHoldCache()
	utils.RegisterMetrics()

	stripe.Key = config.AppConfig.StripeKey

	location, err := time.LoadLocation(config.AppConfig.BookingTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid booking timezone %q: %v", config.AppConfig.BookingTimezone, err)
	}
	dayStart, err := models.ParseClock(config.AppConfig.BookingDayStart)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BOOKING_DAY_START: %v", err)
	}
	dayEnd, err := models.ParseClock(config.AppConfig.BookingDayEnd)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BOOKING_DAY_END: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	shiftRepo := shiftRepoPkg.NewMongoShiftRepo()
	leaveRepo := leaveRepoPkg.NewMongoLeaveRepo()
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	barberRepo := barberRepoPkg.NewMongoBarberRepo()

	ctx, cancelIdx := context.WithTimeout(context.Background(), 15*time.Second)
	if err := shiftRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: shift indexes: %v", err)
	}
	if err := leaveRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: leave indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: appointment indexes: %v", err)
	}
	cancelIdx()

	// services.
	shiftService := &schedule.DefaultShiftService{Repo: shiftRepo, Logger: logger}
	leaveService := &schedule.DefaultLeaveService{Repo: leaveRepo, Logger: logger}

	engine := &availability.DefaultEngine{
		Shifts:       shiftRepo,
		Leaves:       leaveRepo,
		Appointments: apptRepo,
		Clock:        availability.SystemClock(),
		Location:     location,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		Step:         config.AppConfig.SlotIntervalMinutes,
		Logger:       logger,
	}

	var payments booking.PaymentService
	if config.AppConfig.StripeKey != "" {
		payments = &booking.StripePaymentService{
			AmountCents: config.AppConfig.DepositAmountCents,
			Currency:    config.AppConfig.DepositCurrency,
		}
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultBookingService{
		Engine:       engine,
		Appointments: apptRepo,
		Barbers:      barberRepo,
		Cache:        utils.GetHoldCacheClient(),
		Payments:     payments,
		Reminders: &booking.AsynqReminderScheduler{
			Client:   asynqClient,
			Location: location,
			Lead:     time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		},
		HoldTTL: time.Duration(config.AppConfig.SlotHoldTTLMinutes) * time.Minute,
		Logger:  logger,
	}

	notifier := &notification.LogNotifier{Logger: logger}
	cron.InitReminderWorker(notifier)

	utils.StartHealthMonitor(utils.GetHoldCacheClient(), database.MongoClient)

	handlerBundle := handlers.NewHandlerBundle(engine, shiftService, leaveService, bookingService, barberRepo)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
