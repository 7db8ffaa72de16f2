package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/handlers"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/routes"
	"github.com/haidar-allaw/red-cross-sub000/internal/jobs"
	"github.com/haidar-allaw/red-cross-sub000/internal/middleware"
	"github.com/haidar-allaw/red-cross-sub000/internal/scheduler"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/broker"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/mailing"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/storage"
	"github.com/haidar-allaw/red-cross-sub000/pkg/bloodentry"
	"github.com/haidar-allaw/red-cross-sub000/pkg/bloodrequest"
	"github.com/haidar-allaw/red-cross-sub000/pkg/jwt"
	"github.com/haidar-allaw/red-cross-sub000/pkg/location"
	"github.com/haidar-allaw/red-cross-sub000/pkg/medicalcenter"
	"github.com/haidar-allaw/red-cross-sub000/pkg/notification"
	"github.com/haidar-allaw/red-cross-sub000/pkg/report"
	"github.com/haidar-allaw/red-cross-sub000/pkg/user"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"os"
	"time"
)

// App bundles the HTTP server with the background pieces main has to start
// and stop alongside it.
type App struct {
	Fiber     *fiber.App
	Scheduler *scheduler.Scheduler
	Publisher broker.Publisher
}

func NewApp(db *gorm.DB) (*App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") == "development",
		ErrorHandler:      presenters.FiberErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailConfig := mailing.LoadMailConfig()
	mailer := mailing.NewMailer(mailConfig)
	publisher, err := broker.NewRedisPublisher(utils.GetConfig("REDIS_ADDR"), utils.GetConfig("REDIS_PASSWORD"))
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, notifications will not be published")
		publisher = broker.NewNoopPublisher()
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	medicalCenterRepository := medicalcenter.NewMedicalCenterRepository(db)
	bloodEntryRepository := bloodentry.NewBloodEntryRepository(db)
	bloodRequestRepository := bloodrequest.NewBloodRequestRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	locationRepository := location.NewLocationRepository(db)
	reportRepository := report.NewReportRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService, s3)
	medicalCenterService := medicalcenter.NewMedicalCenterService(
		medicalCenterRepository,
		jwtService,
		s3,
		mailer,
		mailConfig.AppURL,
	)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository, mailer, publisher)
	bloodEntryService := bloodentry.NewBloodEntryService(bloodEntryRepository, medicalCenterRepository, userRepository)
	bloodRequestService := bloodrequest.NewBloodRequestService(bloodRequestRepository, medicalCenterRepository, notificationService)
	locationService := location.NewLocationService(locationRepository)
	reportService := report.NewReportService(reportRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	medicalCenterHandler := handlers.NewMedicalCenterHandler(medicalCenterService, validator)
	bloodEntryHandler := handlers.NewBloodEntryHandler(bloodEntryService, validator)
	bloodRequestHandler := handlers.NewBloodRequestHandler(bloodRequestService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	reportHandler := handlers.NewReportHandler(reportService)

	// jobs
	jobRunner := jobs.NewJobRunner(bloodEntryRepository, notificationService, mailer)
	cronScheduler, err := scheduler.NewScheduler(jobRunner, utils.GetConfig("REMINDER_CRON"))
	if err != nil {
		return nil, err
	}

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		MedicalCenterHandler: medicalCenterHandler,
		BloodEntryHandler:    bloodEntryHandler,
		BloodRequestHandler:  bloodRequestHandler,
		NotificationHandler:  notificationHandler,
		LocationHandler:      locationHandler,
		ReportHandler:        reportHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()

	return &App{
		Fiber:     app,
		Scheduler: cronScheduler,
		Publisher: publisher,
	}, nil
}
