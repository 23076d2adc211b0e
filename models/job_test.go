package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laborlink/laborlink-backend/models"
)

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"pending", "accepted", "completed", "rejected"}
	for _, s := range valid {
		got, err := models.ParseStatus(s)
		require.NoError(t, err, "ParseStatus(%q)", s)
		require.Equal(t, s, string(got))
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	_, err := models.ParseStatus("confirmed")
	require.Error(t, err)

	_, err = models.ParseStatus("")
	require.Error(t, err)
}

func TestCanTransition_LegalMoves(t *testing.T) {
	legal := []struct {
		from models.JobStatus
		to   models.JobStatus
	}{
		{models.StatusPending, models.StatusAccepted},
		{models.StatusPending, models.StatusRejected},
		{models.StatusAccepted, models.StatusCompleted},
	}
	for _, tc := range legal {
		job := models.Job{Status: tc.from}
		require.NoError(t, job.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_IllegalMoves(t *testing.T) {
	all := []models.JobStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusCompleted,
		models.StatusRejected,
	}
	legal := map[[2]models.JobStatus]bool{
		{models.StatusPending, models.StatusAccepted}:   true,
		{models.StatusPending, models.StatusRejected}:   true,
		{models.StatusAccepted, models.StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			if legal[[2]models.JobStatus{from, to}] {
				continue
			}
			job := models.Job{Status: from}
			require.Error(t, job.CanTransition(to), "%s -> %s should not be allowed", from, to)
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []models.JobStatus{models.StatusCompleted, models.StatusRejected} {
		job := models.Job{Status: terminal}
		for _, to := range []models.JobStatus{
			models.StatusPending,
			models.StatusAccepted,
			models.StatusCompleted,
			models.StatusRejected,
		} {
			require.Error(t, job.CanTransition(to), "no transition out of %s", terminal)
		}
	}
}

func TestJobJSON_OmitsUnloadedParties(t *testing.T) {
	job := models.Job{Title: "Fix sink", ClientID: 1, LaborID: 2, Status: models.StatusPending}

	raw, err := json.Marshal(&job)
	require.NoError(t, err)

	// Without preloads the associations are nil and must not serialize
	// as zero-valued users.
	require.NotContains(t, string(raw), `"client":`)
	require.NotContains(t, string(raw), `"labor":`)
	require.Contains(t, string(raw), `"client_id":1`)
	require.Contains(t, string(raw), `"labor_id":2`)
}

func TestScheduledAt(t *testing.T) {
	job := models.Job{Date: "2026-03-15", Time: "09:30"}
	at, err := job.ScheduledAt()
	require.NoError(t, err)
	require.Equal(t, 2026, at.Year())
	require.Equal(t, 9, at.Hour())
	require.Equal(t, 30, at.Minute())

	job = models.Job{Date: "15-03-2026", Time: "09:30"}
	_, err = job.ScheduledAt()
	require.Error(t, err)
}
