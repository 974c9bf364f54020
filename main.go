package main

import (
	"log"
	"time"

	"coursereg/config"
	"coursereg/database"
	"coursereg/repository"
	courseRoutes "coursereg/routers/courseRoutes"
	"coursereg/services/enrollment"
	"coursereg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	service := enrollment.New(
		db,
		repository.NewUserRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewEnrollmentRepository(db),
		enrollment.RetryConfig{
			MaxAttempts: config.AppConfig.EnrollMaxAttempts,
			Backoff:     time.Duration(config.AppConfig.EnrollRetryBackoffMs) * time.Millisecond,
		},
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app, service)

	utils.InitializeAuditScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
