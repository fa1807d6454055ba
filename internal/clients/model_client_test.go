package clients_test

import (
	"context"
	"encoding/json"
	"math"
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

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildScoreRequest_FullTransaction(t *testing.T) {
	tx := &models.Transaction{
		ID:     "pi_1",
		Amount: 4200,
		Risk:   models.Risk{Score: intPtr(55)},
		InternalRisk: &models.RiskAssessment{
			Score: 45,
			Features: models.RiskFeatures{
				Cnt10m:        4,
				Cnt1h:         9,
				TotalAmount1h: 25000,
				SmallCount1h:  3,
				FailCount30m:  2,
			},
		},
		Checks: models.Checks{
			CVCCheck:               strPtr("fail"),
			AddressPostalCodeCheck: strPtr("fail"),
		},
		CardCountry:     strPtr("US"),
		ShippingCountry: strPtr("GB"),
		BillingCountry:  strPtr("US"),
		CardFingerprint: strPtr("fp_1"),
	}

	req := clients.BuildScoreRequest(tx)

	assert.InDelta(t, math.Log1p(4200), req.LogAmount, 1e-9)
	assert.Equal(t, 55.0, req.StripeRiskScore)
	assert.Equal(t, 45.0, req.InternalScore)
	assert.Equal(t, 4.0, req.Cnt10m)
	assert.Equal(t, 9.0, req.Cnt1h)
	assert.Equal(t, 25000.0, req.TotalAmount1h)
	assert.Equal(t, 3.0, req.SmallCount1h)
	assert.Equal(t, 2.0, req.FailCount30m)
	assert.Equal(t, 1.0, req.CVCFail)
	assert.Equal(t, 1.0, req.PostalFail)
	assert.Equal(t, 0.0, req.AddrChecksMissing)
	assert.Equal(t, 1.0, req.CountryMismatchCardShip)
	assert.Equal(t, 0.0, req.CountryMismatchCardBill)
	assert.Equal(t, 1.0, req.HasFingerprint)
}

func TestBuildScoreRequest_SparseTransaction(t *testing.T) {
	tx := &models.Transaction{ID: "pi_2", Amount: 0}

	req := clients.BuildScoreRequest(tx)

	assert.Equal(t, 0.0, req.LogAmount)
	assert.Equal(t, 0.0, req.StripeRiskScore)
	assert.Equal(t, 0.0, req.InternalScore)
	assert.Equal(t, 1.0, req.AddrChecksMissing)
	assert.Equal(t, 0.0, req.HasFingerprint)
}

func TestBuildScoreRequest_JSONFieldNames(t *testing.T) {
	body, err := json.Marshal(clients.BuildScoreRequest(&models.Transaction{ID: "pi_3", Amount: 100}))
	require.NoError(t, err)

	var fields map[string]float64
	require.NoError(t, json.Unmarshal(body, &fields))

	for _, name := range []string{
		"log_amount", "stripe_risk_score", "internal_score",
		"cnt10m", "cnt1h", "totalAmount1h", "smallCount1h", "failCount30m",
		"cvc_fail", "postal_fail", "addr_checks_missing",
		"country_mismatch_card_ship", "country_mismatch_card_bill",
		"has_fingerprint",
	} {
		assert.Contains(t, fields, name)
	}
}

func TestModelClientScore_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req clients.ScoreRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"prob_fraud":    0.82,
			"model_version": "xgb_v3",
		})
	}))
	defer server.Close()

	client := clients.NewModelClient(config.Model{ScoreURL: server.URL, Timeout: time.Second})

	score, err := client.Score(context.Background(), &models.Transaction{ID: "pi_1", Amount: 4200})

	require.NoError(t, err)
	assert.Equal(t, 0.82, score.ProbFraud)
	assert.Equal(t, "xgb_v3", score.ModelVersion)
	assert.False(t, score.ScoredAt.IsZero())
}

func TestModelClientScore_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := clients.NewModelClient(config.Model{ScoreURL: server.URL, Timeout: time.Second})

	score, err := client.Score(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.Error(t, err)
	assert.Nil(t, score)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestModelClientScore_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prob_fraud":`))
	}))
	defer server.Close()

	client := clients.NewModelClient(config.Model{ScoreURL: server.URL, Timeout: time.Second})

	_, err := client.Score(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.Error(t, err)
}

func TestModelClientScore_Unreachable(t *testing.T) {
	client := clients.NewModelClient(config.Model{ScoreURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := client.Score(context.Background(), &models.Transaction{ID: "pi_1"})

	assert.Error(t, err)
}
