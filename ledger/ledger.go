package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/laborlink/laborlink-backend/models"
)

// Ledger is the durable record of booking requests and their lifecycle.
// Every operation is a single-record write against the backing store, so
// no multi-record transaction is needed.
type Ledger struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// CreateJobInput carries everything a client supplies when booking a
// worker. The hourly rate is NOT part of the input: it is snapshotted
// from the worker's profile server-side.
type CreateJobInput struct {
	ClientID    uint
	LaborID     uint
	Title       string
	Description string
	Location    string
	Date        string // "2006-01-02"
	Time        string // "15:04"
	Hours       float64
}

func (in CreateJobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Hours <= 0 {
		return fmt.Errorf("%w: hours must be greater than zero", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}
	return nil
}

// CreateJob books a worker for a client. The new job always starts in
// status pending with the rate copied from the worker's current profile.
func (l *Ledger) CreateJob(in CreateJobInput) (*models.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// The booking target must be a worker with a completed profile.
	var profile models.LaborProfile
	err := l.DB.Joins("JOIN users ON users.id = labor_profiles.user_id").
		Where("labor_profiles.user_id = ? AND users.role = ?", in.LaborID, models.RoleLabor).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: worker profile %d", ErrNotFound, in.LaborID)
		}
		return nil, err
	}
	if profile.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: worker has a negative hourly rate", ErrValidation)
	}

	job := models.Job{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Hours:       in.Hours,
		Rate:        profile.HourlyRate,
		Status:      models.StatusPending,
		ClientID:    in.ClientID,
		LaborID:     in.LaborID,
	}
	if err := l.DB.Create(&job).Error; err != nil {
		return nil, err
	}

	job.Amount = job.Hours * job.Rate
	return &job, nil
}

// ListJobsForParty returns all jobs where the user is the booking client
// (role client) or the assigned worker (role labor), newest first. An
// empty result is not an error.
func (l *Ledger) ListJobsForParty(userID uint, role string) ([]models.Job, error) {
	var jobs []models.Job
	query := l.DB.Order("created_at desc")
	switch role {
	case models.RoleClient:
		query = query.Where("client_id = ?", userID)
	case models.RoleLabor:
		query = query.Where("labor_id = ?", userID)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob loads a single job by ID.
func (l *Ledger) GetJob(jobID uint) (*models.Job, error) {
	var job models.Job
	if err := l.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", ErrNotFound, jobID)
		}
		return nil, err
	}
	return &job, nil
}

// UpdateStatus applies a lifecycle transition. Only the assigned worker
// may change status; the transition must be legal for the current state.
// CompletedAt is stamped when the job moves to completed.
func (l *Ledger) UpdateStatus(jobID, actorID uint, newStatus models.JobStatus) (*models.Job, error) {
	job, err := l.GetJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.LaborID != actorID {
		return nil, fmt.Errorf("%w: only the assigned worker may update job status", ErrForbidden)
	}
	if err := job.CanTransition(newStatus); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	job.Status = newStatus
	if newStatus == models.StatusCompleted {
		now := time.Now()
		job.CompletedAt = &now
	}
	if err := l.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}
