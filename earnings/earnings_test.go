package earnings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/laborlink/laborlink-backend/earnings"
	"github.com/laborlink/laborlink-backend/models"
)

func completedJob(date string, hours, rate float64) models.Job {
	return models.Job{
		Status: models.StatusCompleted,
		Date:   date,
		Hours:  hours,
		Rate:   rate,
	}
}

func TestCompute_EmptyInput(t *testing.T) {
	summary, err := earnings.Compute(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, summary.TotalEarnings)
	require.Equal(t, 0, summary.CompletedCount)
	require.Equal(t, 0.0, summary.AverageJobValue)
}

func TestCompute_OnlyCompletedJobsCount(t *testing.T) {
	jobs := []models.Job{
		completedJob("2026-08-01", 4, 25),
		{Status: models.StatusPending, Date: "2026-08-02", Hours: 10, Rate: 100},
		{Status: models.StatusAccepted, Date: "2026-08-03", Hours: 10, Rate: 100},
		{Status: models.StatusRejected, Date: "2026-08-04", Hours: 10, Rate: 100},
		completedJob("2026-08-05", 2, 50),
	}

	summary, err := earnings.Compute(jobs)
	require.NoError(t, err)
	require.Equal(t, 200.0, summary.TotalEarnings)
	require.Equal(t, 2, summary.CompletedCount)
	require.Equal(t, 100.0, summary.AverageJobValue)
}

func TestCompute_MalformedCompletedJobRejected(t *testing.T) {
	_, err := earnings.Compute([]models.Job{completedJob("2026-08-01", 0, 25)})
	require.ErrorIs(t, err, earnings.ErrValidation)

	_, err = earnings.Compute([]models.Job{completedJob("2026-08-01", 4, -1)})
	require.ErrorIs(t, err, earnings.ErrValidation)

	// A malformed job that is not completed is ignored, not rejected
	summary, err := earnings.Compute([]models.Job{
		{Status: models.StatusPending, Hours: 0, Rate: -5},
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.CompletedCount)
}

func TestSeries_DailyBucketsAreDense(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	jobs := []models.Job{
		completedJob("2026-08-20", 4, 25),  // today
		completedJob("2026-08-18", 2, 30),  // two days ago
		completedJob("2026-08-01", 8, 100), // outside the 7-day window
	}

	series, err := earnings.Series(jobs, earnings.ByDay, now)
	require.NoError(t, err)
	require.Len(t, series, 7)

	var total float64
	var jobCount int
	for _, b := range series {
		total += b.Earnings
		jobCount += b.Jobs
	}
	require.Equal(t, 160.0, total)
	require.Equal(t, 2, jobCount)

	// Empty days report zero rather than being omitted
	require.Equal(t, 0.0, series[5].Earnings)   // Aug 19
	require.Equal(t, 100.0, series[6].Earnings) // Aug 20
}

func TestSeries_WeeklyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	jobs := []models.Job{
		completedJob("2026-08-20", 1, 10),
		completedJob("2026-08-10", 1, 20),
	}

	series, err := earnings.Series(jobs, earnings.ByWeek, now)
	require.NoError(t, err)
	require.Len(t, series, 4)

	var total float64
	for _, b := range series {
		total += b.Earnings
	}
	require.Equal(t, 30.0, total)
}

func TestSeries_MonthlyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	jobs := []models.Job{
		completedJob("2026-08-05", 1, 10),
		completedJob("2026-03-05", 1, 20),
		completedJob("2025-07-05", 1, 40), // more than 12 months back
	}

	series, err := earnings.Series(jobs, earnings.ByMonth, now)
	require.NoError(t, err)
	require.Len(t, series, 12)

	var total float64
	for _, b := range series {
		total += b.Earnings
	}
	require.Equal(t, 30.0, total)
	require.Equal(t, "Aug 2026", series[11].Label)
	require.Equal(t, 10.0, series[11].Earnings)
}

func TestSeries_UnknownGranularity(t *testing.T) {
	_, err := earnings.Series(nil, earnings.Granularity("hour"), time.Now())
	require.ErrorIs(t, err, earnings.ErrValidation)
}

func TestSeries_MalformedDateRejected(t *testing.T) {
	_, err := earnings.Series([]models.Job{completedJob("08/20/2026", 1, 10)}, earnings.ByDay, time.Now())
	require.ErrorIs(t, err, earnings.ErrValidation)
}
