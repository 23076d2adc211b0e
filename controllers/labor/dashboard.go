package labor

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/earnings"
	"github.com/laborlink/laborlink-backend/ledger"
	"github.com/laborlink/laborlink-backend/models"
)

// GetDashboardOverview returns job statistics for the logged-in worker
func GetDashboardOverview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var statistics struct {
		TotalJobs      int64     `json:"total_jobs"`
		PendingCount   int64     `json:"pending_count"`
		UpcomingCount  int64     `json:"upcoming_count"`
		CompletedCount int64     `json:"completed_count"`
		RejectedCount  int64     `json:"rejected_count"`
		TotalEarnings  float64   `json:"total_earnings"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.JobStatus) int64 {
		var n int64
		db.DB.Model(&models.Job{}).
			Where("labor_id = ? AND status = ?", userID, status).
			Count(&n)
		return n
	}

	db.DB.Model(&models.Job{}).Where("labor_id = ?", userID).Count(&statistics.TotalJobs)
	statistics.PendingCount = countByStatus(models.StatusPending)
	statistics.UpcomingCount = countByStatus(models.StatusAccepted)
	statistics.CompletedCount = countByStatus(models.StatusCompleted)
	statistics.RejectedCount = countByStatus(models.StatusRejected)

	type earningsResult struct {
		TotalEarnings float64
	}
	var result earningsResult
	db.DB.Model(&models.Job{}).
		Where("labor_id = ? AND status = ?", userID, models.StatusCompleted).
		Select("COALESCE(SUM(hours * rate), 0) as total_earnings").
		Scan(&result)
	statistics.TotalEarnings = result.TotalEarnings

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetEarnings returns the worker's earnings summary and a dense
// time-bucketed series for charting
func GetEarnings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobLedger := ledger.New(db.DB)
	jobs, err := jobLedger.ListJobsForParty(userID, models.RoleLabor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	summary, err := earnings.Compute(jobs)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// range=week -> daily buckets; month -> weekly; year -> monthly
	timeRange := c.Query("range", "week")
	var granularity earnings.Granularity
	switch timeRange {
	case "week":
		granularity = earnings.ByDay
	case "month":
		granularity = earnings.ByWeek
	case "year":
		granularity = earnings.ByMonth
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "range must be one of week, month, year",
		})
	}

	series, err := earnings.Series(jobs, granularity, time.Now())
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"summary": summary,
		"series":  series,
		"range":   timeRange,
	})
}
