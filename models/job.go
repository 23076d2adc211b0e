package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusAccepted  JobStatus = "accepted"
	StatusCompleted JobStatus = "completed"
	StatusRejected  JobStatus = "rejected"
)

// ParseStatus converts a raw string into a JobStatus.
func ParseStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected:
		return JobStatus(s), nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Job ties one client to one worker for a scoped task. Rate is a snapshot
// of the worker's hourly rate at booking time, never a live reference.
type Job struct {
	gorm.Model
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        string     `json:"date"` // "2006-01-02"
	Time        string     `json:"time"` // "15:04"
	Hours       float64    `json:"hours"`
	Rate        float64    `json:"rate"`
	Status      JobStatus  `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ClientID    uint       `json:"client_id"`
	Client      *User      `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	LaborID     uint       `json:"labor_id"`
	Labor       *User      `json:"labor,omitempty" gorm:"foreignKey:LaborID"`
	Amount      float64    `json:"amount" gorm:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.Status == "" {
		j.Status = StatusPending
	}
	return nil
}

func (j *Job) AfterFind(tx *gorm.DB) error {
	j.Amount = j.Hours * j.Rate
	return nil
}

// CanTransition checks whether moving from the job's current status to
// newStatus is legal. Completed and rejected are terminal.
func (j *Job) CanTransition(newStatus JobStatus) error {
	switch j.Status {
	case StatusPending:
		if newStatus != StatusAccepted && newStatus != StatusRejected {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusAccepted:
		if newStatus != StatusCompleted {
			return fmt.Errorf("invalid transition from accepted to %s", newStatus)
		}
	case StatusCompleted, StatusRejected:
		return fmt.Errorf("no transitions allowed from %s", j.Status)
	default:
		return fmt.Errorf("job has unknown status %q", j.Status)
	}
	return nil
}

// ScheduledAt parses the job's date and time fields into a single instant.
func (j *Job) ScheduledAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", j.Date+" "+j.Time, time.Local)
}
