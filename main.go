package main

import (
	"log"

	"edusite/config"
	"edusite/database"
	adminRoutes "edusite/routers/adminRoutes"
	authRoutes "edusite/routers/authRoutes"
	franchiseRoutes "edusite/routers/franchiseRoutes"
	publicRoutes "edusite/routers/publicRoutes"
	staffRoutes "edusite/routers/staffRoutes"
	"edusite/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the marketing site from the public folder
	app.Static("/", "./public")

	publicRoutes.SetupPublicRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	staffRoutes.SetupStaffRoutes(app)
	franchiseRoutes.SetupFranchiseRoutes(app)

	utils.StartLeadScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
