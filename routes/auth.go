package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/controllers"
	"github.com/laborlink/laborlink-backend/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/verify-otp", controllers.VerifyOTP)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", controllers.Logout)
	auth.Get("/me", middleware.Protected(), controllers.GetCurrentUser)
}
