package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoquest/insight-api/models"
)

func testRequest() Request {
	return Request{
		Trader:  &models.Trader{ID: "trader-1", FirstName: "Ada", Email: "ada@example.com"},
		Metrics: models.DerivedMetrics{WinRate: 60, CompositePerformanceScore: 50},
		Score:   7,
		Max:     10,
	}
}

func TestGenerate_PostsMetricsAndDecodesNarrative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "trader-1", req.Trader.ID)
		assert.InDelta(t, 60, req.Metrics.WinRate, 1e-9)

		json.NewEncoder(w).Encode(models.Narrative{
			Evaluation:      "Solid win rate with room to grow.",
			Recommendations: []string{"Tighten stop-losses"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	narrative, err := client.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Solid win rate with room to grow.", narrative.Evaluation)
	assert.Len(t, narrative.Recommendations, 1)
}

func TestGenerate_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow offline", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Generate(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGenerate_UnconfiguredWebhookReturnsPlaceholder(t *testing.T) {
	client := NewClient("", 5*time.Second)
	narrative, err := client.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, narrative.Evaluation)
}
