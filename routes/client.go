package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/controllers/client"
	"github.com/laborlink/laborlink-backend/middleware"
	"github.com/laborlink/laborlink-backend/models"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App) {
	clientGroup := app.Group("/client", middleware.Protected(), middleware.RequireRole(models.RoleClient))

	clientGroup.Get("/laborers", client.GetAllLaborers)
	clientGroup.Get("/laborers/:id", client.GetLaborerDetails)

	clientGroup.Post("/jobs", client.BookLabor)
	clientGroup.Get("/jobs", client.GetClientJobs)

	clientGroup.Get("/dashboard", client.GetDashboardOverview)
	clientGroup.Get("/dashboard/recent", client.GetRecentJobs)

	clientGroup.Get("/profile", client.GetProfile)
	clientGroup.Patch("/profile", client.UpdateProfile)
}
