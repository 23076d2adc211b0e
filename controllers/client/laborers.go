package client

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
)

// GetAllLaborers returns workers with completed profiles. Each listing
// carries a real completed-jobs count, no fabricated ratings.
func GetAllLaborers(c *fiber.Ctx) error {
	// Get pagination parameters; garbage values fall back to the defaults
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	search := c.Query("search")
	skill := c.Query("skill")

	buildQuery := func() *gorm.DB {
		query := db.DB.Model(&models.LaborProfile{}).
			Joins("JOIN users ON users.id = labor_profiles.user_id").
			Where("users.role = ?", models.RoleLabor).
			Where("labor_profiles.profile_completed = ?", true)

		if search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"users.full_name ILIKE ? OR users.name ILIKE ? OR labor_profiles.city ILIKE ? OR labor_profiles.bio ILIKE ? OR labor_profiles.skills::text ILIKE ?",
				like, like, like, like, like)
		}
		if skill != "" {
			query = query.Where("labor_profiles.skills::text ILIKE ?", "%"+skill+"%")
		}
		return query
	}

	var profiles []models.LaborProfile
	if err := buildQuery().Preload("User").
		Limit(limit).Offset(offset).
		Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch workers",
		})
	}

	// Count total records for pagination
	var count int64
	buildQuery().Count(&count)

	// Real completed-job counts per worker, in one grouped query
	completed := completedJobCounts()

	listings := make([]fiber.Map, 0, len(profiles))
	for _, p := range profiles {
		listings = append(listings, fiber.Map{
			"user_id":          p.UserID,
			"name":             p.User.Name,
			"full_name":        p.User.FullName,
			"city":             p.City,
			"skills":           p.Skills,
			"hourly_rate":      p.HourlyRate,
			"experience_years": p.ExperienceYears,
			"bio":              p.Bio,
			"verified":         p.IDProofURL != "",
			"completed_jobs":   completed[p.UserID],
		})
	}

	return c.JSON(fiber.Map{
		"laborers": listings,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetLaborerDetails returns one worker's public profile
func GetLaborerDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile models.LaborProfile
	if err := db.DB.Preload("User").
		Where("user_id = ?", id).
		First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	if profile.User.Role != models.RoleLabor {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a worker",
		})
	}

	var completedCount int64
	db.DB.Model(&models.Job{}).
		Where("labor_id = ? AND status = ?", profile.UserID, models.StatusCompleted).
		Count(&completedCount)

	// Remove sensitive information
	profile.User.Password = ""

	return c.JSON(fiber.Map{
		"laborer":        profile,
		"completed_jobs": completedCount,
	})
}

func completedJobCounts() map[uint]int64 {
	type row struct {
		LaborID uint
		Count   int64
	}
	var rows []row
	db.DB.Model(&models.Job{}).
		Select("labor_id, COUNT(*) as count").
		Where("status = ?", models.StatusCompleted).
		Group("labor_id").
		Scan(&rows)

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.LaborID] = r.Count
	}
	return counts
}
