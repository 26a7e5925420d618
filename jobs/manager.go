package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/narrative"
	"github.com/cryptoquest/insight-api/notify"
	"github.com/cryptoquest/insight-api/utils"
)

const (
	TypeGenerateNarrative = "narrative:generate"
	TypeSendEmail         = "email:send"
)

type JobManager struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
	db     *db.DB
}

// NarrativePayload identifies the report whose narrative should be generated.
// The handler reloads trader and metrics from the database so retries always
// see current state.
type NarrativePayload struct {
	ReportID string `json:"report_id"`
	Score    int    `json:"quiz_score"`
	MaxScore int    `json:"quiz_max_score"`
}

type EmailPayload struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Body     string            `json:"body"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

func NewJobManager(redisAddr string) *JobManager {
	addr := strings.TrimPrefix(redisAddr, "redis://")
	redisOpt := asynq.RedisClientOpt{
		Addr: addr,
	}

	jm := &JobManager{
		client: asynq.NewClient(redisOpt),
		mux:    asynq.NewServeMux(),
	}

	jm.server = asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6, // Narrative generation; the report is incomplete without it
			"default":  3, // Report-ready notifications
			"low":      1, // Everything else
		},
		ErrorHandler: asynq.ErrorHandlerFunc(jm.handleJobError),
		Logger:       &AsynqLogger{},
	})

	return jm
}

func (jm *JobManager) RegisterHandlers(database *db.DB, narrativeClient *narrative.Client, emailService *notify.EmailService) {
	jm.db = database
	jm.mux.HandleFunc(TypeGenerateNarrative, jm.handleGenerateNarrative(database, narrativeClient, emailService))
	jm.mux.HandleFunc(TypeSendEmail, jm.handleSendEmail(emailService))
}

func (jm *JobManager) handleJobError(ctx context.Context, task *asynq.Task, err error) {
	utils.LogError("Job failed: type=%s error=%v", task.Type(), err)

	retried, okRetried := asynq.GetRetryCount(ctx)
	maxRetry, okMax := asynq.GetMaxRetry(ctx)
	if !okRetried || !okMax {
		return
	}
	jm.recordTerminalFailure(task, retried, maxRetry)
}

// recordTerminalFailure runs on the last failed attempt of a task. A
// narrative job that exhausts its retries must not leave its report pending
// forever, so the report is flagged failed with no narrative.
func (jm *JobManager) recordTerminalFailure(task *asynq.Task, retried, maxRetry int) {
	if retried < maxRetry {
		return
	}
	if task.Type() != TypeGenerateNarrative || jm.db == nil {
		return
	}

	var payload NarrativePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		utils.LogError("Failed to unmarshal exhausted narrative payload: %v", err)
		return
	}

	if err := jm.db.SetNarrative(payload.ReportID, nil, models.NarrativeFailed); err != nil {
		utils.LogError("Failed to mark narrative failed for report %s: %v", payload.ReportID, err)
		return
	}
	utils.LogJob("Narrative for report %s marked failed after %d attempts", payload.ReportID, retried+1)
}

func (jm *JobManager) Start() error {
	utils.LogStartup("Starting job queue worker...")
	return jm.server.Run(jm.mux)
}

func (jm *JobManager) Stop() {
	utils.LogShutdown("Stopping job queue...")
	jm.server.Stop()
	jm.server.Shutdown()
	jm.client.Close()
}

// QueueNarrative enqueues narrative generation for a freshly created report.
func (jm *JobManager) QueueNarrative(reportID string, score, maxScore int) error {
	payload := NarrativePayload{
		ReportID: reportID,
		Score:    score,
		MaxScore: maxScore,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal narrative payload: %w", err)
	}

	task := asynq.NewTask(TypeGenerateNarrative, payloadBytes)

	info, err := jm.client.Enqueue(task,
		asynq.Queue("critical"),
		asynq.MaxRetry(5),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue narrative task: %w", err)
	}

	utils.LogJob("Queued narrative job: ID=%s report=%s", info.ID, reportID)
	return nil
}

// QueueEmail enqueues an outbound email at the given priority.
func (jm *JobManager) QueueEmail(to, subject, body, emailType string, metadata map[string]string, priority string) error {
	if metadata == nil {
		metadata = make(map[string]string)
	}

	payload := EmailPayload{
		To:       to,
		Subject:  subject,
		Body:     body,
		Type:     emailType,
		Metadata: metadata,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	task := asynq.NewTask(TypeSendEmail, payloadBytes)

	queue := "default"
	maxRetries := 3
	timeout := 60 * time.Second

	switch priority {
	case "critical":
		queue = "critical"
		maxRetries = 5
		timeout = 120 * time.Second
	case "low":
		queue = "low"
		maxRetries = 2
		timeout = 30 * time.Second
	}

	info, err := jm.client.Enqueue(task,
		asynq.Queue(queue),
		asynq.MaxRetry(maxRetries),
		asynq.Timeout(timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	utils.LogJob("Queued email job: ID=%s type=%s to=%s priority=%s", info.ID, emailType, to, priority)
	return nil
}

func (jm *JobManager) handleGenerateNarrative(database *db.DB, client *narrative.Client, emailService *notify.EmailService) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload NarrativePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal narrative payload: %w", err)
		}

		utils.LogJob("Processing narrative job for report %s", payload.ReportID)

		report, err := database.GetReport(payload.ReportID)
		if err != nil {
			return fmt.Errorf("load report %s: %w", payload.ReportID, err)
		}

		trader, err := database.GetTraderByID(report.TraderID)
		if err != nil {
			return fmt.Errorf("load trader %s: %w", report.TraderID, err)
		}

		result, err := client.Generate(ctx, narrative.Request{
			Trader:  trader,
			Metrics: report.Metrics,
			Score:   payload.Score,
			Max:     payload.MaxScore,
		})
		if err != nil {
			return fmt.Errorf("generate narrative for report %s: %w", payload.ReportID, err)
		}

		if err := database.SetNarrative(payload.ReportID, result, models.NarrativeReady); err != nil {
			return fmt.Errorf("store narrative for report %s: %w", payload.ReportID, err)
		}

		utils.LogJob("Narrative stored for report %s", payload.ReportID)

		// Notify the trader that the report is complete. Queued rather than
		// sent inline so a slow SMTP server cannot fail the narrative job.
		subject, body := emailService.BuildReportReadyEmail(trader, report)
		if err := jm.QueueEmail(trader.Email, subject, body, "report_ready",
			map[string]string{"report_id": report.ID}, "default"); err != nil {
			utils.LogError("Failed to queue report-ready email: %v", err)
		}

		return nil
	}
}

func (jm *JobManager) handleSendEmail(emailService *notify.EmailService) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal email payload: %w", err)
		}

		utils.LogJob("Processing email job: type=%s to=%s subject=%s", payload.Type, payload.To, payload.Subject)

		if err := emailService.SendEmail(payload.To, payload.Subject, payload.Body); err != nil {
			metadataStr := ""
			for k, v := range payload.Metadata {
				metadataStr += fmt.Sprintf("%s=%s ", k, v)
			}

			return fmt.Errorf("failed to send %s email to %s (metadata: %s): %w",
				payload.Type, payload.To, metadataStr, err)
		}

		utils.LogJob("Successfully sent %s email to %s", payload.Type, payload.To)
		return nil
	}
}

// AsynqLogger bridges asynq's logging into the app logger.
type AsynqLogger struct{}

func (l *AsynqLogger) Debug(args ...interface{}) {
	utils.LogDebug(fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...interface{}) {
	utils.LogInfo(fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}

func (l *AsynqLogger) Fatal(args ...interface{}) {
	utils.LogError(fmt.Sprint(args...))
}
