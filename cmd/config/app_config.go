package config

import (
	"Relief-Ops-Console/internal/api/handlers"
	"Relief-Ops-Console/internal/api/routes"
	"Relief-Ops-Console/internal/middleware"
	"Relief-Ops-Console/internal/utils"
	"Relief-Ops-Console/pkg/allocation"
	"Relief-Ops-Console/pkg/analytics"
	"Relief-Ops-Console/pkg/disaster"
	"Relief-Ops-Console/pkg/jwt"
	"Relief-Ops-Console/pkg/logistics"
	"Relief-Ops-Console/pkg/request"
	"Relief-Ops-Console/pkg/resource"
	"Relief-Ops-Console/pkg/storage"
	"Relief-Ops-Console/pkg/user"
	"Relief-Ops-Console/pkg/volunteer"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	disasterRepository := disaster.NewDisasterRepository(db)
	requestRepository := request.NewRequestRepository(db)
	allocationRepository := allocation.NewAllocationRepository(db)
	resourceRepository := resource.NewResourceRepository(db)
	storageRepository := storage.NewStorageRepository(db)
	volunteerRepository := volunteer.NewVolunteerRepository(db)
	logisticsRepository := logistics.NewLogisticsRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	disasterService := disaster.NewDisasterService(disasterRepository)
	requestService := request.NewRequestService(requestRepository)
	allocationService := allocation.NewAllocationService(allocationRepository)
	resourceService := resource.NewResourceService(resourceRepository, utils.GetLowStockThreshold())
	storageService := storage.NewStorageService(storageRepository)
	volunteerService := volunteer.NewVolunteerService(volunteerRepository)
	logisticsService := logistics.NewLogisticsService(logisticsRepository)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	disasterHandler := handlers.NewDisasterHandler(disasterService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	allocationHandler := handlers.NewAllocationHandler(allocationService, validator)
	resourceHandler := handlers.NewResourceHandler(resourceService, validator)
	storageHandler := handlers.NewStorageHandler(storageService, validator)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService, validator)
	logisticsHandler := handlers.NewLogisticsHandler(logisticsService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(db)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		DisasterHandler:   disasterHandler,
		RequestHandler:    requestHandler,
		AllocationHandler: allocationHandler,
		ResourceHandler:   resourceHandler,
		StorageHandler:    storageHandler,
		VolunteerHandler:  volunteerHandler,
		LogisticsHandler:  logisticsHandler,
		AnalyticsHandler:  analyticsHandler,
		HealthHandler:     healthHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
