package service

import (
	"context"
	"fmt"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
)

const RiskRulesVersion = "rules_v1"

// Trailing windows, in seconds, measured from the transaction's own
// platform timestamp so replays score the same way.
const (
	win10m = 10 * 60
	win30m = 30 * 60
	win1h  = 60 * 60
	win24h = 24 * 60 * 60
)

const (
	smallAmountCents = 500
	largeAmountCents = 2000
	cardTestingMin   = 3
	historySampleCap = 60
)

var retryStatuses = []string{"failed", "requires_payment_method", "canceled"}

// HistoryRepo defines the interface for the windowed history queries the
// scorer runs against the transaction store.
type HistoryRepo interface {
	CountSince(ctx context.Context, id models.CardIdentifier, since int64) (int64, error)
	AmountStatsSince(ctx context.Context, id models.CardIdentifier, since int64) (*models.AmountStats, error)
	RecentSince(ctx context.Context, id models.CardIdentifier, since int64, limit int) ([]models.TxSample, error)
	CountWithStatusSince(ctx context.Context, id models.CardIdentifier, since int64, statuses []string) (int64, error)
}

// RiskService computes the additive rule score over a transaction and
// its card history. The assessment is rebuilt wholesale on every pass.
type RiskService struct {
	History HistoryRepo
}

func NewRiskService(history HistoryRepo) *RiskService {
	return &RiskService{
		History: history,
	}
}

func (s *RiskService) Score(ctx context.Context, tx *models.Transaction) (*models.RiskAssessment, error) {
	var reasons []models.RiskReason
	var features models.RiskFeatures
	score := 0

	add := func(code string, points int, detail string) {
		if points <= 0 {
			return
		}
		score += points
		reasons = append(reasons, models.RiskReason{Code: code, Points: points, Detail: detail})
	}

	nowSec := tx.Created
	if nowSec == 0 {
		nowSec = time.Now().Unix()
	}

	var disputeReason *string
	if tx.DisputeDetails != nil {
		disputeReason = tx.DisputeDetails.Reason
	}
	if disputeReason != nil && *disputeReason == "fraudulent" {
		return &models.RiskAssessment{
			Score: 100,
			Label: models.RiskLabelHigh,
			Reasons: []models.RiskReason{{
				Code:   "DISPUTE_FRAUDULENT",
				Points: 100,
				Detail: "Dispute reason is fraudulent",
			}},
			Features:   models.RiskFeatures{DisputeReason: disputeReason},
			Flags:      models.RiskFlags{DisagreeWithStripe: stripeSaysNormal(tx)},
			Version:    RiskRulesVersion,
			ComputedAt: time.Now(),
		}, nil
	}

	if tx.Disputed || tx.DisputeID != nil || tx.DisputeDetails != nil {
		add("DISPUTED", 40, "Charge is disputed or dispute_id/details present")
	}

	ident, hasIdent := models.ResolveIdentifier(tx)
	if hasIdent {
		if err := s.scoreVelocity(ctx, tx, ident, nowSec, &features, add); err != nil {
			return nil, err
		}
	} else {
		features.NoIdentifier = true
	}

	scoreVerification(tx, add)
	scoreCountryMismatch(tx, add)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &models.RiskAssessment{
		Score:      score,
		Label:      models.LabelFromScore(score),
		Reasons:    reasons,
		Features:   features,
		Flags:      models.RiskFlags{DisagreeWithStripe: stripeSaysNormal(tx) && score >= 70},
		Version:    RiskRulesVersion,
		ComputedAt: time.Now(),
	}, nil
}

func (s *RiskService) scoreVelocity(
	ctx context.Context,
	tx *models.Transaction,
	ident models.CardIdentifier,
	nowSec int64,
	features *models.RiskFeatures,
	add func(code string, points int, detail string),
) error {
	label := ident.Label()

	cnt10m, err := s.History.CountSince(ctx, ident, nowSec-win10m)
	if err != nil {
		return fmt.Errorf("error counting 10m window: %w", err)
	}
	cnt30m, err := s.History.CountSince(ctx, ident, nowSec-win30m)
	if err != nil {
		return fmt.Errorf("error counting 30m window: %w", err)
	}
	cnt1h, err := s.History.CountSince(ctx, ident, nowSec-win1h)
	if err != nil {
		return fmt.Errorf("error counting 1h window: %w", err)
	}
	cnt1d, err := s.History.CountSince(ctx, ident, nowSec-win24h)
	if err != nil {
		return fmt.Errorf("error counting 24h window: %w", err)
	}

	features.Cnt10m = int(cnt10m)
	features.Cnt30m = int(cnt30m)
	features.Cnt1h = int(cnt1h)
	features.Cnt1d = int(cnt1d)

	switch {
	case cnt10m >= 8:
		add("VELOCITY_10M_HIGH", 40, fmt.Sprintf("%d tx in 10m for %s", cnt10m, label))
	case cnt10m >= 5:
		add("VELOCITY_10M_MED", 25, fmt.Sprintf("%d tx in 10m for %s", cnt10m, label))
	case cnt10m >= 3:
		add("VELOCITY_10M_LOW", 15, fmt.Sprintf("%d tx in 10m for %s", cnt10m, label))
	}

	switch {
	case cnt1h >= 21:
		add("VELOCITY_1H_HIGH", 40, fmt.Sprintf("%d tx in 1h for %s", cnt1h, label))
	case cnt1h >= 11:
		add("VELOCITY_1H_MED", 25, fmt.Sprintf("%d tx in 1h for %s", cnt1h, label))
	case cnt1h >= 6:
		add("VELOCITY_1H_LOW", 15, fmt.Sprintf("%d tx in 1h for %s", cnt1h, label))
	}

	stats, err := s.History.AmountStatsSince(ctx, ident, nowSec-win1h)
	if err != nil {
		return fmt.Errorf("error aggregating 1h amounts: %w", err)
	}
	features.TotalAmount1h = stats.Total
	features.MinAmt1h = stats.Min
	features.MaxAmt1h = stats.Max

	// Thresholds in minor units.
	switch {
	case stats.Total >= 100000:
		add("AMOUNT_VELOCITY_1H_1000", 35, fmt.Sprintf("Total $%.2f in 1h for %s", float64(stats.Total)/100, label))
	case stats.Total >= 50000:
		add("AMOUNT_VELOCITY_1H_500", 20, fmt.Sprintf("Total $%.2f in 1h for %s", float64(stats.Total)/100, label))
	case stats.Total >= 20000:
		add("AMOUNT_VELOCITY_1H_200", 10, fmt.Sprintf("Total $%.2f in 1h for %s", float64(stats.Total)/100, label))
	}

	recent, err := s.History.RecentSince(ctx, ident, nowSec-win1h, historySampleCap)
	if err != nil {
		return fmt.Errorf("error sampling 1h history: %w", err)
	}

	smallCount := 0
	hasLarge := false
	for _, sample := range recent {
		if sample.Amount <= smallAmountCents {
			smallCount++
		}
		if sample.Amount >= largeAmountCents {
			hasLarge = true
		}
	}
	features.SmallCount1h = smallCount
	features.HasLarge1h = hasLarge

	if smallCount >= cardTestingMin && hasLarge {
		add("CARD_TESTING_PATTERN", 30,
			fmt.Sprintf("%d small tx (<= $5) + a larger tx (>= $20) in last hour for %s", smallCount, label))
	}

	failCount, err := s.History.CountWithStatusSince(ctx, ident, nowSec-win30m, retryStatuses)
	if err != nil {
		return fmt.Errorf("error counting 30m failures: %w", err)
	}
	features.FailCount30m = int(failCount)

	if failCount >= 3 && tx.Status == "succeeded" {
		add("RETRIES_THEN_SUCCESS", 25,
			fmt.Sprintf("%d failed/retry-like statuses in 30m then succeeded for %s", failCount, label))
	}

	return nil
}

func scoreVerification(tx *models.Transaction, add func(code string, points int, detail string)) {
	cvc := tx.Checks.CVCCheck
	line1 := tx.Checks.AddressLine1Check
	postal := tx.Checks.AddressPostalCodeCheck

	switch {
	case cvc != nil && *cvc == "fail":
		add("CVC_FAIL", 30, "CVC check failed")
	case cvc != nil && *cvc == "unchecked":
		add("CVC_UNCHECKED", 10, "CVC unchecked")
	case cvc == nil:
		add("CVC_MISSING", 5, "CVC check missing")
	}

	if postal != nil && *postal == "fail" {
		add("POSTAL_FAIL", 20, "Postal code check failed")
	}
	if line1 != nil && *line1 == "fail" {
		add("ADDR_LINE1_FAIL", 10, "Address line1 check failed")
	}
	if postal == nil && line1 == nil {
		add("ADDR_CHECKS_MISSING", 3, "Address checks missing")
	}
}

func scoreCountryMismatch(tx *models.Transaction, add func(code string, points int, detail string)) {
	if tx.CardCountry == nil {
		return
	}
	if tx.ShippingCountry != nil && *tx.CardCountry != *tx.ShippingCountry {
		add("COUNTRY_MISMATCH_CARD_SHIP", 15,
			fmt.Sprintf("Card country %s != shipping country %s", *tx.CardCountry, *tx.ShippingCountry))
	}
	if tx.BillingCountry != nil && *tx.CardCountry != *tx.BillingCountry {
		add("COUNTRY_MISMATCH_CARD_BILL", 10,
			fmt.Sprintf("Card country %s != billing country %s", *tx.CardCountry, *tx.BillingCountry))
	}
}

func stripeSaysNormal(tx *models.Transaction) bool {
	return tx.Risk.Level != nil && *tx.Risk.Level == "normal"
}
