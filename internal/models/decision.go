package models

type Decision string

const (
	DecisionFraudConfirmed Decision = "fraud_confirmed"
	DecisionDisputed       Decision = "disputed"
	DecisionManualReview   Decision = "manual_review"
	DecisionHighRisk       Decision = "high_risk"
	DecisionApproved       Decision = "approved"
	DecisionDeclined       Decision = "declined"
	DecisionUnknown        Decision = "unknown"
)

const HighRiskScoreThreshold = 70

// ComputeDecision classifies a transaction snapshot. First match wins;
// a dispute only counts as confirmed fraud when its reason says so.
func ComputeDecision(tx *Transaction) Decision {
	var disputeReason string
	if tx.DisputeDetails != nil && tx.DisputeDetails.Reason != nil {
		disputeReason = *tx.DisputeDetails.Reason
	}

	if disputeReason == "fraudulent" {
		return DecisionFraudConfirmed
	}
	if tx.Disputed || tx.DisputeDetails != nil {
		return DecisionDisputed
	}
	if tx.Review != nil && *tx.Review == "open" {
		return DecisionManualReview
	}
	if tx.Risk.Level != nil && (*tx.Risk.Level == "high" || *tx.Risk.Level == "highest") {
		return DecisionHighRisk
	}
	if tx.Risk.Score != nil && *tx.Risk.Score >= HighRiskScoreThreshold {
		return DecisionHighRisk
	}
	if tx.Status == "succeeded" {
		return DecisionApproved
	}
	if tx.Status == "failed" {
		return DecisionDeclined
	}
	return DecisionUnknown
}
