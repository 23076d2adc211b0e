package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
)

// GetDashboardOverview returns booking statistics for the logged-in client
func GetDashboardOverview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var statistics struct {
		TotalJobs      int64     `json:"total_jobs"`
		PendingCount   int64     `json:"pending_count"`
		AcceptedCount  int64     `json:"accepted_count"`
		CompletedCount int64     `json:"completed_count"`
		RejectedCount  int64     `json:"rejected_count"`
		TotalSpent     float64   `json:"total_spent"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.JobStatus) int64 {
		var n int64
		db.DB.Model(&models.Job{}).
			Where("client_id = ? AND status = ?", userID, status).
			Count(&n)
		return n
	}

	db.DB.Model(&models.Job{}).Where("client_id = ?", userID).Count(&statistics.TotalJobs)
	statistics.PendingCount = countByStatus(models.StatusPending)
	statistics.AcceptedCount = countByStatus(models.StatusAccepted)
	statistics.CompletedCount = countByStatus(models.StatusCompleted)
	statistics.RejectedCount = countByStatus(models.StatusRejected)

	// Spend over completed jobs only; amount is the rate snapshot times hours
	type spendResult struct {
		TotalSpent float64
	}
	var spend spendResult
	db.DB.Model(&models.Job{}).
		Where("client_id = ? AND status = ?", userID, models.StatusCompleted).
		Select("COALESCE(SUM(hours * rate), 0) as total_spent").
		Scan(&spend)
	statistics.TotalSpent = spend.TotalSpent

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentJobs returns the client's most recent bookings
func GetRecentJobs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	limit := 5 // Default limit
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var jobs []models.Job
	if err := db.DB.
		Preload("Labor").
		Where("client_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for i := range jobs {
		if jobs[i].Labor != nil {
			jobs[i].Labor.Password = ""
		}
	}

	return c.JSON(jobs)
}
