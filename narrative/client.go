// Package narrative calls the external workflow-automation webhook that
// turns a trader's profile and computed metrics into free-text evaluation
// and recommendations. The service never composes narrative text itself.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

// Client posts generation requests to the automation webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, timeout time.Duration) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Request is the payload handed to the automation workflow.
type Request struct {
	Trader  *models.Trader        `json:"trader"`
	Metrics models.DerivedMetrics `json:"metrics"`
	Score   int                   `json:"quiz_score"`
	Max     int                   `json:"quiz_max_score"`
}

// Generate sends the metrics to the webhook and decodes the narrative. When
// no webhook is configured it logs and returns a placeholder so local
// development works without the external service.
func (c *Client) Generate(ctx context.Context, req Request) (*models.Narrative, error) {
	if c.webhookURL == "" {
		utils.LogInfo("Narrative webhook not configured, returning placeholder narrative")
		return &models.Narrative{
			Evaluation: "Narrative generation is not configured for this deployment.",
		}, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal narrative request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build narrative request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	utils.LogInfo("Requesting narrative for trader %s", req.Trader.ID)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("narrative webhook call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("narrative webhook returned %d: %s", resp.StatusCode, string(data))
	}

	var narrative models.Narrative
	if err := json.NewDecoder(resp.Body).Decode(&narrative); err != nil {
		return nil, fmt.Errorf("decode narrative response: %w", err)
	}

	utils.LogInfo("Narrative received for trader %s", req.Trader.ID)
	return &narrative, nil
}
