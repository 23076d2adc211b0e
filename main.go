package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/laborlink/laborlink-backend/cron"

	"github.com/laborlink/laborlink-backend/db"

	"github.com/laborlink/laborlink-backend/redis"

	"github.com/laborlink/laborlink-backend/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LaborLink API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupLaborRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
