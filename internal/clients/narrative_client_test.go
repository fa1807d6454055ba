package clients_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/config"
	"github.com/falliso3/capstone-fraud-rpa/internal/clients"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryInput_MasksLongFingerprint(t *testing.T) {
	tx := &models.Transaction{
		ID:              "pi_1",
		CardBrand:       strPtr("visa"),
		CardLast4:       strPtr("4242"),
		CardFingerprint: strPtr("fp_abcdefghijklmnop"),
	}

	input := clients.BuildSummaryInput(tx)

	require.NotNil(t, input.Card)
	require.NotNil(t, input.Card.Fingerprint)
	assert.Equal(t, "fp_abcdefg…", *input.Card.Fingerprint)
}

func TestBuildSummaryInput_ShortFingerprintUnchanged(t *testing.T) {
	tx := &models.Transaction{
		ID:              "pi_2",
		CardFingerprint: strPtr("fp_short"),
	}

	input := clients.BuildSummaryInput(tx)

	require.NotNil(t, input.Card)
	assert.Equal(t, "fp_short", *input.Card.Fingerprint)
}

func TestBuildSummaryInput_NoCardData(t *testing.T) {
	tx := &models.Transaction{ID: "pi_3", Amount: 999, Currency: "usd", Status: "processing"}

	input := clients.BuildSummaryInput(tx)

	assert.Nil(t, input.Card)
	assert.Equal(t, "pi_3", input.ID)
	assert.Equal(t, int64(999), input.Amount)
}

func TestBuildSummaryInput_CarriesChargesAndRisk(t *testing.T) {
	tx := &models.Transaction{
		ID:           "pi_4",
		Charges:      models.StringSet{"ch_1", "ch_2"},
		InternalRisk: &models.RiskAssessment{Score: 80, Label: models.RiskLabelHigh},
		ML:           &models.MLScore{ProbFraud: 0.9, ModelVersion: "xgb_v3"},
	}

	input := clients.BuildSummaryInput(tx)

	assert.Equal(t, []string{"ch_1", "ch_2"}, input.Charges)
	assert.Equal(t, 80, input.InternalRisk.Score)
	assert.Equal(t, 0.9, input.ML.ProbFraud)
}

func TestBuildSystemPrompt_DisputeOverridesEventType(t *testing.T) {
	tx := &models.Transaction{
		ID:            "pi_1",
		Disputed:      true,
		LastEventType: strPtr("payment_intent.succeeded"),
	}

	prompt := clients.BuildSystemPrompt(tx)

	assert.Contains(t, prompt, "dispute handling")
}

func TestBuildSystemPrompt_DisputeDetailsAloneTrigger(t *testing.T) {
	tx := &models.Transaction{
		ID:             "pi_2",
		DisputeDetails: &models.DisputeDetails{ID: "dp_1"},
	}

	assert.Contains(t, clients.BuildSystemPrompt(tx), "dispute handling")
}

func TestBuildSystemPrompt_EventVariants(t *testing.T) {
	cases := map[string]string{
		"payment_intent.created":        "newly created payment intent",
		"payment_intent.succeeded":      "payment intent succeeded",
		"payment_intent.payment_failed": "payment attempt failed",
		"payment_intent.canceled":       "payment intent was canceled",
		"charge.failed":                 "charge failed",
		"charge.refunded":               "charge was refunded",
	}

	for eventType, expected := range cases {
		tx := &models.Transaction{ID: "pi_x", LastEventType: strPtr(eventType)}
		assert.Contains(t, clients.BuildSystemPrompt(tx), expected, "variant for %s", eventType)
	}
}

func TestBuildSystemPrompt_DefaultIsSucceededCharge(t *testing.T) {
	tx := &models.Transaction{ID: "pi_5", LastEventType: strPtr("charge.succeeded")}

	assert.Contains(t, clients.BuildSystemPrompt(tx), "charge succeeded")

	noEvent := &models.Transaction{ID: "pi_6"}
	assert.Contains(t, clients.BuildSystemPrompt(noEvent), "charge succeeded")
}

func TestNarrativeSummarize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4.1", req["model"])
		messages := req["messages"].([]interface{})
		assert.Len(t, messages, 2)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "gpt-4.1-2025-04-14",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  Looks clean.  "}},
			},
		})
	}))
	defer server.Close()

	client := clients.NewNarrativeClient(config.Narrative{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "gpt-4.1",
		Timeout: time.Second,
	})

	text, modelUsed, err := client.Summarize(context.Background(), &models.Transaction{ID: "pi_1", Amount: 4200})

	require.NoError(t, err)
	assert.Equal(t, "Looks clean.", text)
	assert.Equal(t, "gpt-4.1-2025-04-14", modelUsed)
}

func TestNarrativeSummarize_FallsBackToConfiguredModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Summary."}},
			},
		})
	}))
	defer server.Close()

	client := clients.NewNarrativeClient(config.Narrative{BaseURL: server.URL, Model: "gpt-4.1", Timeout: time.Second})

	_, modelUsed, err := client.Summarize(context.Background(), &models.Transaction{ID: "pi_1"})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", modelUsed)
}

func TestNarrativeSummarize_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := clients.NewNarrativeClient(config.Narrative{BaseURL: server.URL, Model: "gpt-4.1", Timeout: time.Second})

	_, _, err := client.Summarize(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNarrativeSummarize_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := clients.NewNarrativeClient(config.Narrative{BaseURL: server.URL, Model: "gpt-4.1", Timeout: time.Second})

	_, _, err := client.Summarize(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewNarrativeClient_TrimsBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := clients.NewNarrativeClient(config.Narrative{BaseURL: server.URL + "/", Model: "gpt-4.1", Timeout: time.Second})

	_, _, err := client.Summarize(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.NoError(t, err)
}
