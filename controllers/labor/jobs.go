package labor

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/ledger"
	"github.com/laborlink/laborlink-backend/models"
	"github.com/laborlink/laborlink-backend/utils"
)

// GetAssignedJobs returns the worker's job requests, newest first
func GetAssignedJobs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobLedger := ledger.New(db.DB)
	jobs, err := jobLedger.ListJobsForParty(userID, models.RoleLabor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch jobs",
			Error:   err.Error(),
		})
	}

	// Optional status filter for the dashboard tabs
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseStatus(status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid status filter",
				Error:   err.Error(),
			})
		}
		filtered := jobs[:0]
		for _, j := range jobs {
			if j.Status == parsed {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateJobStatus applies accept/reject/complete from the assigned worker
func UpdateJobStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid job ID",
			Error:   "job ID must be a positive integer",
		})
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	newStatus, err := models.ParseStatus(input.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
			Error:   err.Error(),
		})
	}

	jobLedger := ledger.New(db.DB)
	job, err := jobLedger.UpdateStatus(uint(jobID), userID, newStatus)
	if err != nil {
		return c.Status(ledgerStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to update job status",
			Error:   err.Error(),
		})
	}

	go notifyClientOfStatus(job)

	return c.JSON(job)
}

func notifyClientOfStatus(job *models.Job) {
	var client models.User
	if err := db.DB.First(&client, job.ClientID).Error; err != nil {
		log.Printf("Status notification: client %d not found: %v", job.ClientID, err)
		return
	}

	subject := fmt.Sprintf("Booking update: %s is now %s", job.Title, job.Status)
	body := fmt.Sprintf(`
		<h3>Your booking was updated</h3>
		<p><b>%s</b> on %s at %s is now <b>%s</b>.</p>`,
		job.Title, job.Date, job.Time, job.Status)
	if job.Status == models.StatusCompleted {
		body += fmt.Sprintf("<p>Total amount: $%.2f</p>", job.Hours*job.Rate)
	}

	if err := utils.SendEmail(client.Email, subject, body); err != nil {
		log.Printf("Failed to send status email to %s: %v", client.Email, err)
	}
}

// ledgerStatus maps ledger errors onto HTTP statuses
func ledgerStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidTransition):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
