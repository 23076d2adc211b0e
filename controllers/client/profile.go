package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
)

// GetProfile returns the logged-in client's profile
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	user.Password = ""

	return c.JSON(fiber.Map{
		"profile": user,
	})
}

// UpdateProfile updates the client's personal information
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Role is fixed at signup; credentials change through dedicated flows.
	// Whitelisting also drops unknown keys that would break the UPDATE.
	allowedFields := map[string]bool{"name": true, "full_name": true, "address": true}
	for field := range updateData {
		if !allowedFields[field] {
			delete(updateData, field)
		}
	}

	if len(updateData) > 0 {
		if err := db.DB.Model(&user).Updates(updateData).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	user.Password = ""

	return c.JSON(fiber.Map{
		"profile": user,
	})
}
