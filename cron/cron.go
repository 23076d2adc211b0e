package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
	"github.com/laborlink/laborlink-backend/utils"
)

// StartCronJobs initializes and starts the cron scheduler for job reminders
func StartCronJobs() {
	c := cron.New()
	// Run hourly to remind workers of accepted jobs scheduled for today
	_, err := c.AddFunc("0 * * * *", sendJobReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for job reminders")
}

// sendJobReminders checks for accepted jobs scheduled today and sends reminders
func sendJobReminders() {
	today := time.Now().Format("2006-01-02")

	var jobs []models.Job
	err := db.DB.Preload("Labor").Preload("Client").
		Where("status = ? AND date = ?", models.StatusAccepted, today).
		Find(&jobs).Error
	if err != nil {
		log.Printf("Error fetching jobs for reminders: %v", err)
		return
	}

	for _, job := range jobs {
		if job.Labor == nil || job.Client == nil {
			continue
		}
		if err := sendReminderEmail(&job); err != nil {
			log.Printf("Failed to send reminder for job %d: %v", job.ID, err)
			continue
		}
		log.Printf("Sent reminder for job %d to %s", job.ID, job.Labor.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(job *models.Job) error {
	subject := fmt.Sprintf("Reminder: job today - %s", job.Title)
	body := fmt.Sprintf(`
		<h3>You have a job scheduled for today</h3>
		<p><b>%s</b> at %s, %s</p>
		<p>Client: %s</p>
		<p>Estimated %.1f hours at $%.2f/hr</p>`,
		job.Title, job.Time, job.Location, job.Client.Name, job.Hours, job.Rate)

	return utils.SendEmail(job.Labor.Email, subject, body)
}
