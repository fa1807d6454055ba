package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/falliso3/capstone-fraud-rpa/internal/service"
	"github.com/falliso3/capstone-fraud-rpa/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

const txCreated = int64(1700000000)

// quietHistory arms a history mock so every window query returns empty.
func quietHistory(history *mocks.MockHistoryRepo) {
	history.EXPECT().
		CountSince(mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Maybe()
	history.EXPECT().
		AmountStatsSince(mock.Anything, mock.Anything, mock.Anything).
		Return(&models.AmountStats{}, nil).
		Maybe()
	history.EXPECT().
		RecentSince(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.TxSample{}, nil).
		Maybe()
	history.EXPECT().
		CountWithStatusSince(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Maybe()
}

func cleanTx() *models.Transaction {
	return &models.Transaction{
		ID:              "pi_1",
		Amount:          4200,
		Currency:        "usd",
		Status:          "succeeded",
		Created:         txCreated,
		CardFingerprint: strPtr("fp_abcdef123456"),
		Checks: models.Checks{
			CVCCheck:               strPtr("pass"),
			AddressLine1Check:      strPtr("pass"),
			AddressPostalCodeCheck: strPtr("pass"),
		},
	}
}

func TestScore_CleanTransaction_ZeroScore(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	assessment, err := riskService.Score(context.Background(), cleanTx())

	require.NoError(t, err)
	assert.Equal(t, 0, assessment.Score)
	assert.Equal(t, models.RiskLabelLow, assessment.Label)
	assert.Empty(t, assessment.Reasons)
	assert.Equal(t, service.RiskRulesVersion, assessment.Version)
	assert.False(t, assessment.ComputedAt.IsZero())
}

func TestScore_FraudulentDispute_ShortCircuitsAt100(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.DisputeDetails = &models.DisputeDetails{ID: "dp_1", Reason: strPtr("fraudulent")}

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, 100, assessment.Score)
	assert.Equal(t, models.RiskLabelHigh, assessment.Label)
	require.Len(t, assessment.Reasons, 1)
	assert.Equal(t, "DISPUTE_FRAUDULENT", assessment.Reasons[0].Code)
	assert.Equal(t, 100, assessment.Reasons[0].Points)
	assert.Equal(t, "fraudulent", *assessment.Features.DisputeReason)
	history.AssertNotCalled(t, "CountSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestScore_NonFraudulentDispute_Adds40(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Disputed = true
	tx.DisputeDetails = &models.DisputeDetails{ID: "dp_1", Reason: strPtr("product_not_received")}

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, 40, assessment.Score)
	assert.Equal(t, models.RiskLabelMedium, assessment.Label)
	assert.Equal(t, "DISPUTED", assessment.Reasons[0].Code)
}

func TestScore_VelocityWindows(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	ident := models.CardIdentifier{Fingerprint: *tx.CardFingerprint}
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, ident, txCreated-600).Return(int64(5), nil).Once()
	history.EXPECT().CountSince(ctx, ident, txCreated-1800).Return(int64(6), nil).Once()
	history.EXPECT().CountSince(ctx, ident, txCreated-3600).Return(int64(12), nil).Once()
	history.EXPECT().CountSince(ctx, ident, txCreated-86400).Return(int64(20), nil).Once()
	history.EXPECT().AmountStatsSince(ctx, ident, txCreated-3600).Return(&models.AmountStats{Total: 21000, Min: int64Ptr(100), Max: int64Ptr(9000)}, nil).Once()
	history.EXPECT().RecentSince(ctx, ident, txCreated-3600, 60).Return([]models.TxSample{}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, ident, txCreated-1800, []string{"failed", "requires_payment_method", "canceled"}).Return(int64(0), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	// 25 (10m med) + 25 (1h med) + 10 (amount 200)
	assert.Equal(t, 60, assessment.Score)
	assert.Equal(t, models.RiskLabelMedium, assessment.Label)

	codes := reasonCodes(assessment)
	assert.Contains(t, codes, "VELOCITY_10M_MED")
	assert.Contains(t, codes, "VELOCITY_1H_MED")
	assert.Contains(t, codes, "AMOUNT_VELOCITY_1H_200")

	assert.Equal(t, 5, assessment.Features.Cnt10m)
	assert.Equal(t, 6, assessment.Features.Cnt30m)
	assert.Equal(t, 12, assessment.Features.Cnt1h)
	assert.Equal(t, 20, assessment.Features.Cnt1d)
	assert.Equal(t, int64(21000), assessment.Features.TotalAmount1h)
	assert.Equal(t, int64(100), *assessment.Features.MinAmt1h)
	assert.Equal(t, int64(9000), *assessment.Features.MaxAmt1h)
}

func TestScore_CardTestingPattern(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	ident := models.CardIdentifier{Fingerprint: *tx.CardFingerprint}
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, ident, mock.Anything).Return(int64(0), nil).Times(4)
	history.EXPECT().AmountStatsSince(ctx, ident, mock.Anything).Return(&models.AmountStats{Total: 4100}, nil).Once()
	history.EXPECT().RecentSince(ctx, ident, mock.Anything, 60).Return([]models.TxSample{
		{Amount: 100, Status: "failed"},
		{Amount: 200, Status: "failed"},
		{Amount: 300, Status: "failed"},
		{Amount: 3500, Status: "succeeded"},
	}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, ident, mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	assert.Contains(t, reasonCodes(assessment), "CARD_TESTING_PATTERN")
	assert.Equal(t, 30, assessment.Score)
	assert.Equal(t, 3, assessment.Features.SmallCount1h)
	assert.True(t, assessment.Features.HasLarge1h)
}

func TestScore_CardTesting_TwoSmallNotEnough(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Times(4)
	history.EXPECT().AmountStatsSince(ctx, mock.Anything, mock.Anything).Return(&models.AmountStats{}, nil).Once()
	history.EXPECT().RecentSince(ctx, mock.Anything, mock.Anything, 60).Return([]models.TxSample{
		{Amount: 100, Status: "failed"},
		{Amount: 200, Status: "failed"},
		{Amount: 3500, Status: "succeeded"},
	}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	assert.NotContains(t, reasonCodes(assessment), "CARD_TESTING_PATTERN")
	assert.Equal(t, 0, assessment.Score)
}

func TestScore_RetriesThenSuccess(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Times(4)
	history.EXPECT().AmountStatsSince(ctx, mock.Anything, mock.Anything).Return(&models.AmountStats{}, nil).Once()
	history.EXPECT().RecentSince(ctx, mock.Anything, mock.Anything, 60).Return([]models.TxSample{}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	assert.Contains(t, reasonCodes(assessment), "RETRIES_THEN_SUCCESS")
	assert.Equal(t, 25, assessment.Score)
	assert.Equal(t, 3, assessment.Features.FailCount30m)
}

func TestScore_Retries_NoSuccessNoPoints(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	tx.Status = "failed"
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Times(4)
	history.EXPECT().AmountStatsSince(ctx, mock.Anything, mock.Anything).Return(&models.AmountStats{}, nil).Once()
	history.EXPECT().RecentSince(ctx, mock.Anything, mock.Anything, 60).Return([]models.TxSample{}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(5), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	assert.NotContains(t, reasonCodes(assessment), "RETRIES_THEN_SUCCESS")
}

func TestScore_VerificationSignals(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Checks = models.Checks{
		CVCCheck:               strPtr("fail"),
		AddressLine1Check:      strPtr("fail"),
		AddressPostalCodeCheck: strPtr("fail"),
	}

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	codes := reasonCodes(assessment)
	assert.Contains(t, codes, "CVC_FAIL")
	assert.Contains(t, codes, "POSTAL_FAIL")
	assert.Contains(t, codes, "ADDR_LINE1_FAIL")
	// 30 + 20 + 10
	assert.Equal(t, 60, assessment.Score)
}

func TestScore_AllChecksMissing(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Checks = models.Checks{}

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	codes := reasonCodes(assessment)
	assert.Contains(t, codes, "CVC_MISSING")
	assert.Contains(t, codes, "ADDR_CHECKS_MISSING")
	// 5 + 3
	assert.Equal(t, 8, assessment.Score)
}

func TestScore_CVCUnchecked(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Checks.CVCCheck = strPtr("unchecked")

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.Contains(t, reasonCodes(assessment), "CVC_UNCHECKED")
	assert.Equal(t, 10, assessment.Score)
}

func TestScore_CountryMismatches(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.CardCountry = strPtr("US")
	tx.ShippingCountry = strPtr("NG")
	tx.BillingCountry = strPtr("GB")

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	codes := reasonCodes(assessment)
	assert.Contains(t, codes, "COUNTRY_MISMATCH_CARD_SHIP")
	assert.Contains(t, codes, "COUNTRY_MISMATCH_CARD_BILL")
	// 15 + 10
	assert.Equal(t, 25, assessment.Score)
}

func TestScore_NoIdentifier_SkipsVelocity(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.CardFingerprint = nil

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.True(t, assessment.Features.NoIdentifier)
	assert.Equal(t, 0, assessment.Score)
	history.AssertNotCalled(t, "CountSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestScore_ClampsAt100(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	tx.Disputed = true
	tx.Checks = models.Checks{CVCCheck: strPtr("fail"), AddressPostalCodeCheck: strPtr("fail")}
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, mock.Anything, txCreated-600).Return(int64(10), nil).Once()
	history.EXPECT().CountSince(ctx, mock.Anything, txCreated-1800).Return(int64(15), nil).Once()
	history.EXPECT().CountSince(ctx, mock.Anything, txCreated-3600).Return(int64(25), nil).Once()
	history.EXPECT().CountSince(ctx, mock.Anything, txCreated-86400).Return(int64(40), nil).Once()
	history.EXPECT().AmountStatsSince(ctx, mock.Anything, mock.Anything).Return(&models.AmountStats{Total: 150000}, nil).Once()
	history.EXPECT().RecentSince(ctx, mock.Anything, mock.Anything, 60).Return([]models.TxSample{
		{Amount: 100}, {Amount: 200}, {Amount: 300}, {Amount: 5000},
	}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(4), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	assert.Equal(t, 100, assessment.Score)
	assert.Equal(t, models.RiskLabelHigh, assessment.Label)
}

func TestScore_DisagreeWithStripeFlag(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	tx := cleanTx()
	tx.Risk.Level = strPtr("normal")
	tx.Disputed = true
	tx.Checks = models.Checks{CVCCheck: strPtr("fail"), AddressPostalCodeCheck: strPtr("fail")}
	ctx := context.Background()

	history.EXPECT().CountSince(ctx, mock.Anything, txCreated-600).Return(int64(8), nil).Once()
	history.EXPECT().CountSince(ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Times(3)
	history.EXPECT().AmountStatsSince(ctx, mock.Anything, mock.Anything).Return(&models.AmountStats{}, nil).Once()
	history.EXPECT().RecentSince(ctx, mock.Anything, mock.Anything, 60).Return([]models.TxSample{}, nil).Once()
	history.EXPECT().CountWithStatusSince(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	assessment, err := riskService.Score(ctx, tx)

	require.NoError(t, err)
	// 40 (disputed) + 40 (10m high) + 30 (cvc) + 20 (postal) clamped to 100
	assert.GreaterOrEqual(t, assessment.Score, 70)
	assert.True(t, assessment.Flags.DisagreeWithStripe)
}

func TestScore_NoDisagreementBelowThreshold(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Risk.Level = strPtr("normal")

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.False(t, assessment.Flags.DisagreeWithStripe)
}

func TestScore_HistoryError_Surfaces(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	riskService := service.NewRiskService(history)
	expectedError := errors.New("db gone")

	history.EXPECT().
		CountSince(mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), expectedError).
		Once()

	assessment, err := riskService.Score(context.Background(), cleanTx())

	assert.Error(t, err)
	assert.Nil(t, assessment)
	assert.ErrorIs(t, err, expectedError)
}

func TestScore_ZeroCreatedUsesWallClock(t *testing.T) {
	history := mocks.NewMockHistoryRepo(t)
	quietHistory(history)
	riskService := service.NewRiskService(history)

	tx := cleanTx()
	tx.Created = 0

	assessment, err := riskService.Score(context.Background(), tx)

	require.NoError(t, err)
	assert.NotNil(t, assessment)
}

func reasonCodes(a *models.RiskAssessment) []string {
	codes := make([]string, 0, len(a.Reasons))
	for _, r := range a.Reasons {
		codes = append(codes, r.Code)
	}
	return codes
}
