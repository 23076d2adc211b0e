package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/controllers/labor"
	"github.com/laborlink/laborlink-backend/middleware"
	"github.com/laborlink/laborlink-backend/models"
)

// SetupLaborRoutes configures all worker related routes
func SetupLaborRoutes(app *fiber.App) {
	laborGroup := app.Group("/labor", middleware.Protected(), middleware.RequireRole(models.RoleLabor))

	laborGroup.Get("/profile", labor.GetProfile)
	laborGroup.Post("/profile", labor.CreateProfile)
	laborGroup.Patch("/profile", labor.UpdateProfile)
	laborGroup.Post("/profile/id-proof", labor.UploadIDProof)

	laborGroup.Get("/jobs", labor.GetAssignedJobs)
	laborGroup.Patch("/jobs/:id/status", labor.UpdateJobStatus)

	laborGroup.Get("/dashboard", labor.GetDashboardOverview)
	laborGroup.Get("/earnings", labor.GetEarnings)
}
