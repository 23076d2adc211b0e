package client

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

type BookingInput struct {
	LaborID     uint    `json:"labor_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0"`
}

// BookLabor creates a pending job request for the chosen worker
func BookLabor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking details",
			Error:   err.Error(),
		})
	}

	jobLedger := ledger.New(db.DB)
	job, err := jobLedger.CreateJob(ledger.CreateJobInput{
		ClientID:    userID,
		LaborID:     input.LaborID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Hours:       input.Hours,
	})
	if err != nil {
		return c.Status(ledgerStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Notify the worker; booking already succeeded if this fails
	go notifyWorkerOfBooking(job)

	return c.Status(fiber.StatusCreated).JSON(job)
}

// GetClientJobs returns the client's bookings, newest first
func GetClientJobs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobLedger := ledger.New(db.DB)
	jobs, err := jobLedger.ListJobsForParty(userID, models.RoleClient)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch jobs",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func notifyWorkerOfBooking(job *models.Job) {
	var worker models.User
	if err := db.DB.First(&worker, job.LaborID).Error; err != nil {
		log.Printf("Booking notification: worker %d not found: %v", job.LaborID, err)
		return
	}

	subject := fmt.Sprintf("New booking request: %s", job.Title)
	body := fmt.Sprintf(`
		<h3>You have a new booking request</h3>
		<p><b>%s</b> on %s at %s, %s</p>
		<p>Estimated %.1f hours at $%.2f/hr ($%.2f total)</p>
		<p>Log in to accept or reject this request.</p>`,
		job.Title, job.Date, job.Time, job.Location, job.Hours, job.Rate, job.Hours*job.Rate)

	if err := utils.SendEmail(worker.Email, subject, body); err != nil {
		log.Printf("Failed to send booking email to %s: %v", worker.Email, err)
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
