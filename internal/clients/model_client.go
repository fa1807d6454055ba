package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/config"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
)

// ScoreRequest is the flat numeric feature map the scoring service
// expects. Field names must match the model's training features exactly.
type ScoreRequest struct {
	LogAmount       float64 `json:"log_amount"`
	StripeRiskScore float64 `json:"stripe_risk_score"`
	InternalScore   float64 `json:"internal_score"`

	Cnt10m        float64 `json:"cnt10m"`
	Cnt1h         float64 `json:"cnt1h"`
	TotalAmount1h float64 `json:"totalAmount1h"`
	SmallCount1h  float64 `json:"smallCount1h"`
	FailCount30m  float64 `json:"failCount30m"`

	CVCFail           float64 `json:"cvc_fail"`
	PostalFail        float64 `json:"postal_fail"`
	AddrChecksMissing float64 `json:"addr_checks_missing"`

	CountryMismatchCardShip float64 `json:"country_mismatch_card_ship"`
	CountryMismatchCardBill float64 `json:"country_mismatch_card_bill"`

	HasFingerprint float64 `json:"has_fingerprint"`
}

type scoreResponse struct {
	ProbFraud    float64 `json:"prob_fraud"`
	ModelVersion string  `json:"model_version"`
}

// BuildScoreRequest derives the feature map from a transaction and its
// stored internal assessment.
func BuildScoreRequest(tx *models.Transaction) ScoreRequest {
	req := ScoreRequest{
		LogAmount: math.Log1p(float64(tx.Amount)),
	}

	if tx.Risk.Score != nil {
		req.StripeRiskScore = float64(*tx.Risk.Score)
	}
	if tx.InternalRisk != nil {
		req.InternalScore = float64(tx.InternalRisk.Score)
		req.Cnt10m = float64(tx.InternalRisk.Features.Cnt10m)
		req.Cnt1h = float64(tx.InternalRisk.Features.Cnt1h)
		req.TotalAmount1h = float64(tx.InternalRisk.Features.TotalAmount1h)
		req.SmallCount1h = float64(tx.InternalRisk.Features.SmallCount1h)
		req.FailCount30m = float64(tx.InternalRisk.Features.FailCount30m)
	}

	if tx.Checks.CVCCheck != nil && *tx.Checks.CVCCheck == "fail" {
		req.CVCFail = 1
	}
	if tx.Checks.AddressPostalCodeCheck != nil && *tx.Checks.AddressPostalCodeCheck == "fail" {
		req.PostalFail = 1
	}
	if tx.Checks.AddressPostalCodeCheck == nil && tx.Checks.AddressLine1Check == nil {
		req.AddrChecksMissing = 1
	}

	if tx.CardCountry != nil && tx.ShippingCountry != nil && *tx.CardCountry != *tx.ShippingCountry {
		req.CountryMismatchCardShip = 1
	}
	if tx.CardCountry != nil && tx.BillingCountry != nil && *tx.CardCountry != *tx.BillingCountry {
		req.CountryMismatchCardBill = 1
	}

	if tx.CardFingerprint != nil && *tx.CardFingerprint != "" {
		req.HasFingerprint = 1
	}

	return req
}

// ModelClient talks to the hosted scoring service. Any non-2xx answer is
// a recoverable failure recorded on the transaction, never fatal to the
// enrichment pass.
type ModelClient struct {
	url        string
	httpClient *http.Client
}

func NewModelClient(cfg config.Model) *ModelClient {
	return &ModelClient{
		url: cfg.ScoreURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *ModelClient) Score(ctx context.Context, tx *models.Transaction) (*models.MLScore, error) {
	body, err := json.Marshal(BuildScoreRequest(tx))
	if err != nil {
		return nil, fmt.Errorf("error marshaling score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling score service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model score failed: %d %s", resp.StatusCode, string(detail))
	}

	var scored scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&scored); err != nil {
		return nil, fmt.Errorf("error parsing score response: %w", err)
	}

	return &models.MLScore{
		ProbFraud:    scored.ProbFraud,
		ModelVersion: scored.ModelVersion,
		ScoredAt:     time.Now(),
	}, nil
}
