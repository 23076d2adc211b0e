package labor

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
	"github.com/laborlink/laborlink-backend/utils"
)

type ProfileInput struct {
	Phone           string   `json:"phone" validate:"required"`
	City            string   `json:"city"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	HourlyRate      float64  `json:"hourly_rate" validate:"gte=0"`
	ExperienceYears uint     `json:"experience_years"`
	Bio             string   `json:"bio"`
}

// GetProfile returns the logged-in worker's labor profile
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.LaborProfile
	if err := db.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Labor profile not found",
		})
	}

	profile.User.Password = ""

	return c.JSON(profile)
}

// CreateProfile completes worker onboarding
func CreateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var existing models.LaborProfile
	if db.DB.Where("user_id = ?", userID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Labor profile already exists",
		})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	skills, err := json.Marshal(input.Skills)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid skills list",
		})
	}

	profile := models.LaborProfile{
		UserID:           userID,
		Phone:            input.Phone,
		City:             input.City,
		Skills:           skills,
		HourlyRate:       input.HourlyRate,
		ExperienceYears:  input.ExperienceYears,
		Bio:              input.Bio,
		ProfileCompleted: true,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create labor profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile edits an existing labor profile. Rate changes never touch
// amounts on already-booked jobs, those carry their own rate snapshot.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.LaborProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Labor profile not found",
		})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	skills, err := json.Marshal(input.Skills)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid skills list",
		})
	}

	profile.Phone = input.Phone
	profile.City = input.City
	profile.Skills = skills
	profile.HourlyRate = input.HourlyRate
	profile.ExperienceYears = input.ExperienceYears
	profile.Bio = input.Bio

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update labor profile",
		})
	}

	return c.JSON(profile)
}

// UploadIDProof stores an identity document for verification
func UploadIDProof(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.LaborProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Labor profile not found",
		})
	}

	file, err := c.FormFile("id_proof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get ID proof file",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open ID proof file",
		})
	}
	defer f.Close()

	publicID := utils.GenerateUploadID(userID)

	secureURL, err := utils.UploadToCloudinary(f, publicID, "id_proofs")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload ID proof",
		})
	}

	// Re-uploading replaces the previous document
	if profile.IDProofPublicID != "" {
		if err := utils.DeleteFromCloudinary(profile.IDProofPublicID); err != nil {
			log.Printf("Failed to delete old ID proof %s: %v", profile.IDProofPublicID, err)
		}
	}

	profile.IDProofURL = secureURL
	profile.IDProofPublicID = "id_proofs/" + publicID
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save ID proof reference",
		})
	}

	return c.JSON(fiber.Map{
		"id_proof_url": secureURL,
	})
}
