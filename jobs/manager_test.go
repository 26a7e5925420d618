package jobs

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoquest/insight-api/config"
	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/narrative"
	"github.com/cryptoquest/insight-api/notify"
)

// Builds a manager backed by a real database without touching redis; nothing
// here enqueues or starts the worker.
func newTestManager(t *testing.T) (*JobManager, *db.DB) {
	t.Helper()

	database, err := db.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	jm := NewJobManager("127.0.0.1:6379")
	jm.RegisterHandlers(database, narrative.NewClient("", time.Second), notify.NewEmailService(&config.Config{}))
	return jm, database
}

func pendingReport(t *testing.T, database *db.DB) *models.Report {
	t.Helper()
	now := time.Now().UTC()
	report := &models.Report{
		ID:              "report-1",
		TraderID:        "trader-1",
		QuizResultID:    "result-1",
		NarrativeStatus: models.NarrativePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, database.CreateReport(report))
	return report
}

func narrativeTask(t *testing.T, reportID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(NarrativePayload{ReportID: reportID, Score: 3, MaxScore: 10})
	require.NoError(t, err)
	return asynq.NewTask(TypeGenerateNarrative, payload)
}

func TestRecordTerminalFailure_MarksReportFailed(t *testing.T) {
	jm, database := newTestManager(t)
	report := pendingReport(t, database)

	jm.recordTerminalFailure(narrativeTask(t, report.ID), 5, 5)

	got, err := database.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NarrativeFailed, got.NarrativeStatus)
	assert.Nil(t, got.Narrative)
}

func TestRecordTerminalFailure_RetriesRemaining(t *testing.T) {
	jm, database := newTestManager(t)
	report := pendingReport(t, database)

	jm.recordTerminalFailure(narrativeTask(t, report.ID), 2, 5)

	got, err := database.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NarrativePending, got.NarrativeStatus)
}

func TestRecordTerminalFailure_IgnoresOtherTaskTypes(t *testing.T) {
	jm, database := newTestManager(t)
	report := pendingReport(t, database)

	payload, err := json.Marshal(EmailPayload{To: "trader@example.com"})
	require.NoError(t, err)
	jm.recordTerminalFailure(asynq.NewTask(TypeSendEmail, payload), 3, 3)

	got, err := database.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NarrativePending, got.NarrativeStatus)
}
