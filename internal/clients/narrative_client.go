package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/falliso3/capstone-fraud-rpa/config"
	"github.com/falliso3/capstone-fraud-rpa/internal/models"
)

// SummaryInput is the compact, non-sensitive view of a transaction that
// is handed to the narrative model. Card data stays at brand/last4 and a
// truncated fingerprint.
type SummaryInput struct {
	ID            string  `json:"id"`
	LastEventType *string `json:"last_event_type"`
	Amount        int64   `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Paid          bool    `json:"paid"`
	Decision      string  `json:"decision"`

	StripeRisk *models.Risk   `json:"stripe_risk"`
	Checks     *models.Checks `json:"checks"`

	Card *SummaryCard `json:"card"`

	BillingCountry  *string `json:"billing_country"`
	ShippingCountry *string `json:"shipping_country"`

	Disputed       bool                   `json:"disputed"`
	DisputeID      *string                `json:"dispute_id"`
	DisputeDetails *models.DisputeDetails `json:"dispute_details"`

	InternalRisk *models.RiskAssessment `json:"internal_risk"`
	ML           *models.MLScore        `json:"ml"`

	Created      int64    `json:"created"`
	LatestCharge *string  `json:"latest_charge"`
	Charges      []string `json:"charges"`
}

type SummaryCard struct {
	Brand       *string `json:"brand"`
	Last4       *string `json:"last4"`
	Funding     *string `json:"funding"`
	Country     *string `json:"country"`
	Fingerprint *string `json:"fingerprint"`
}

// BuildSummaryInput masks the fingerprint and drops everything the
// narrative does not need.
func BuildSummaryInput(tx *models.Transaction) SummaryInput {
	input := SummaryInput{
		ID:              tx.ID,
		LastEventType:   tx.LastEventType,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Status:          tx.Status,
		Paid:            tx.Paid,
		Decision:        string(tx.Decision),
		StripeRisk:      &tx.Risk,
		Checks:          &tx.Checks,
		BillingCountry:  tx.BillingCountry,
		ShippingCountry: tx.ShippingCountry,
		Disputed:        tx.Disputed,
		DisputeID:       tx.DisputeID,
		DisputeDetails:  tx.DisputeDetails,
		InternalRisk:    tx.InternalRisk,
		ML:              tx.ML,
		Created:         tx.Created,
		LatestCharge:    tx.LatestCharge,
		Charges:         []string(tx.Charges),
	}

	if tx.CardBrand != nil || tx.CardLast4 != nil || tx.CardFingerprint != nil {
		card := &SummaryCard{
			Brand:   tx.CardBrand,
			Last4:   tx.CardLast4,
			Funding: tx.CardFunding,
			Country: tx.CardCountry,
		}
		if tx.CardFingerprint != nil {
			masked := *tx.CardFingerprint
			if len(masked) > 10 {
				masked = masked[:10] + "…"
			}
			card.Fingerprint = &masked
		}
		input.Card = card
	}

	return input
}

const promptPreamble = "You are a fraud-ops assistant for an internal dashboard. "

// BuildSystemPrompt selects the instruction variant for the event family
// or dispute state the transaction is in.
func BuildSystemPrompt(tx *models.Transaction) string {
	evt := ""
	if tx.LastEventType != nil {
		evt = *tx.LastEventType
	}
	disputed := tx.Disputed || tx.DisputeID != nil || tx.DisputeDetails != nil

	if disputed {
		return promptPreamble +
			"Write a concise 3-5 sentence summary focused on dispute handling. " +
			"Include: amount/currency, current payment status, dispute status/reason if present, " +
			"Stripe risk level/score if present, internal risk score/label if present, ML prob_fraud if present, and the next action an analyst should take. " +
			"If key data is missing, say so. Do not include sensitive data beyond brand/last4."
	}

	switch evt {
	case "payment_intent.created":
		return promptPreamble +
			"Write 2-3 sentences. This is a newly created payment intent (early stage). " +
			"Summarize what is known: amount/currency, current status, and whether any early signals suggest risk. " +
			"If there is no charge/card data yet, explicitly note that and recommend what to watch for next. " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	case "payment_intent.succeeded":
		return promptPreamble +
			"Write 2-4 sentences. The payment intent succeeded. " +
			"Summarize amount/currency, final status, and highlight Stripe risk level/score if present plus internal risk if present and ML prob_fraud if present. " +
			"Conclude with whether it appears clean vs needs review, and why. " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	case "payment_intent.payment_failed":
		return promptPreamble +
			"Write 2-4 sentences. This payment attempt failed. " +
			"Summarize amount/currency, failure context if present, and highlight any risk/verification signals. " +
			"Recommend next steps: retry guidance vs block/manual review if suspicious patterns exist (velocity/card testing). " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	case "payment_intent.canceled":
		return promptPreamble +
			"Write 2-4 sentences. The payment intent was canceled. " +
			"Summarize amount/currency, cancellation status, and any suspicious context (e.g., repeated attempts/velocity) if present. " +
			"Recommend whether to ignore as normal abandonment or review for abuse. " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	case "charge.failed":
		return promptPreamble +
			"Write 2-4 sentences. This charge failed. " +
			"Summarize amount/currency, status, and any available risk/verification signals. " +
			"Call out velocity/retry patterns and whether this looks like card testing or normal decline. " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	case "charge.refunded":
		return promptPreamble +
			"Write 2-4 sentences. This charge was refunded. " +
			"Summarize amount/currency, whether it was previously successful, and whether there are risk or dispute signals. " +
			"Recommend whether this is normal customer service or potentially suspicious. " +
			"Do not invent missing details. No sensitive data beyond brand/last4."
	}

	return promptPreamble +
		"Write 2-4 sentences. This charge succeeded. " +
		"Summarize amount/currency, payment outcome/status, Stripe risk level/score if present, internal risk score/label if present, " +
		"ML prob_fraud if present, and whether it should be considered clean vs needing review. " +
		"If Stripe and the internal risk disagree, mention that explicitly and cite the top internal reasons. " +
		"Do not invent missing details. No sensitive data beyond brand/last4."
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NarrativeClient generates analyst-facing summaries through an
// OpenAI-compatible chat completion endpoint.
type NarrativeClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewNarrativeClient(cfg config.Narrative) *NarrativeClient {
	return &NarrativeClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Summarize returns the narrative text and the model identifier that
// produced it.
func (c *NarrativeClient) Summarize(ctx context.Context, tx *models.Transaction) (string, string, error) {
	input, err := json.MarshalIndent(BuildSummaryInput(tx), "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("error marshaling summary input: %w", err)
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: BuildSystemPrompt(tx)},
			{Role: "user", Content: fmt.Sprintf("Transaction data:\n%s", input)},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("error marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", "", fmt.Errorf("error building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("error calling narrative service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", "", fmt.Errorf("narrative generation failed: %d %s", resp.StatusCode, string(detail))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", "", fmt.Errorf("error parsing narrative response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", "", fmt.Errorf("narrative response has no choices")
	}

	modelUsed := completion.Model
	if modelUsed == "" {
		modelUsed = c.model
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), modelUsed, nil
}
