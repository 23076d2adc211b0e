// Package earnings derives display statistics from a worker's job set.
// Everything here is a pure function over jobs already fetched from the
// ledger; nothing touches the database.
package earnings

import (
	"errors"
	"fmt"
	"time"

	"github.com/laborlink/laborlink-backend/models"
)

// ErrValidation marks input a summary cannot be derived from.
var ErrValidation = errors.New("validation failed")

type Summary struct {
	TotalEarnings   float64 `json:"total_earnings"`
	CompletedCount  int     `json:"completed_count"`
	AverageJobValue float64 `json:"average_job_value"`
}

type Granularity string

const (
	ByDay   Granularity = "day"
	ByWeek  Granularity = "week"
	ByMonth Granularity = "month"
)

// Bucket is one point of a time series. Buckets with no completed jobs
// still appear with zero values so charts render continuous axes.
type Bucket struct {
	Label    string  `json:"label"`
	Earnings float64 `json:"earnings"`
	Jobs     int     `json:"jobs"`
}

// A completed job whose numeric fields cannot carry an earnings amount is
// rejected outright; folding it into zero would hide data-quality problems.
func malformed(j models.Job) error {
	if j.Hours <= 0 {
		return fmt.Errorf("%w: job %d has non-positive hours", ErrValidation, j.ID)
	}
	if j.Rate < 0 {
		return fmt.Errorf("%w: job %d has negative rate", ErrValidation, j.ID)
	}
	return nil
}

// Compute sums earnings over exactly the completed jobs in the input.
// Pending, accepted, and rejected jobs contribute nothing. The average is
// defined as zero when no job is completed.
func Compute(jobs []models.Job) (Summary, error) {
	var s Summary
	for _, j := range jobs {
		if j.Status != models.StatusCompleted {
			continue
		}
		if err := malformed(j); err != nil {
			return Summary{}, err
		}
		s.TotalEarnings += j.Hours * j.Rate
		s.CompletedCount++
	}
	if s.CompletedCount > 0 {
		s.AverageJobValue = s.TotalEarnings / float64(s.CompletedCount)
	}
	return s, nil
}

// Series buckets completed-job earnings over a trailing window ending at
// now: 7 daily buckets, 4 weekly buckets, or 12 monthly buckets. Jobs are
// assigned to buckets by their scheduled date.
func Series(jobs []models.Job, g Granularity, now time.Time) ([]Bucket, error) {
	switch g {
	case ByDay:
		return dailySeries(jobs, now)
	case ByWeek:
		return weeklySeries(jobs, now)
	case ByMonth:
		return monthlySeries(jobs, now)
	}
	return nil, fmt.Errorf("%w: unknown granularity %q", ErrValidation, g)
}

func completedOn(jobs []models.Job) (map[string][]models.Job, error) {
	byDate := make(map[string][]models.Job)
	for _, j := range jobs {
		if j.Status != models.StatusCompleted {
			continue
		}
		if err := malformed(j); err != nil {
			return nil, err
		}
		if _, err := time.Parse("2006-01-02", j.Date); err != nil {
			return nil, fmt.Errorf("%w: job %d has malformed date %q", ErrValidation, j.ID, j.Date)
		}
		byDate[j.Date] = append(byDate[j.Date], j)
	}
	return byDate, nil
}

func dailySeries(jobs []models.Job, now time.Time) ([]Bucket, error) {
	byDate, err := completedOn(jobs)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		b := Bucket{Label: day.Format("Mon")}
		for _, j := range byDate[key] {
			b.Earnings += j.Hours * j.Rate
			b.Jobs++
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

func weeklySeries(jobs []models.Job, now time.Time) ([]Bucket, error) {
	byDate, err := completedOn(jobs)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0, 4)
	for i := 3; i >= 0; i-- {
		end := now.AddDate(0, 0, -i*7)
		start := end.AddDate(0, 0, -6)
		// ISO date strings order lexicographically, so the window check
		// needs no timezone juggling
		startKey := start.Format("2006-01-02")
		endKey := end.Format("2006-01-02")
		b := Bucket{Label: fmt.Sprintf("Week %d", 4-i)}
		for key, dayJobs := range byDate {
			if key < startKey || key > endKey {
				continue
			}
			for _, j := range dayJobs {
				b.Earnings += j.Hours * j.Rate
				b.Jobs++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

func monthlySeries(jobs []models.Job, now time.Time) ([]Bucket, error) {
	byDate, err := completedOn(jobs)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		b := Bucket{Label: month.Format("Jan 2006")}
		for key, dayJobs := range byDate {
			d, _ := time.Parse("2006-01-02", key)
			if d.Year() != month.Year() || d.Month() != month.Month() {
				continue
			}
			for _, j := range dayJobs {
				b.Earnings += j.Hours * j.Rate
				b.Jobs++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}
