package models

import (
	"database/sql/driver"
	"time"
)

type RiskLabel string

const (
	RiskLabelLow    RiskLabel = "low"
	RiskLabelMedium RiskLabel = "medium"
	RiskLabelHigh   RiskLabel = "high"
)

// LabelFromScore maps a clamped rule score onto the coarse label shown
// to analysts.
func LabelFromScore(score int) RiskLabel {
	switch {
	case score >= 70:
		return RiskLabelHigh
	case score >= 30:
		return RiskLabelMedium
	default:
		return RiskLabelLow
	}
}

type RiskReason struct {
	Code   string `json:"code"`
	Points int    `json:"points"`
	Detail string `json:"detail"`
}

// RiskFeatures carries the raw counts and sums behind each triggered
// rule so the model scorer and auditors can see the same numbers.
type RiskFeatures struct {
	Cnt10m        int     `json:"cnt10m"`
	Cnt30m        int     `json:"cnt30m"`
	Cnt1h         int     `json:"cnt1h"`
	Cnt1d         int     `json:"cnt1d"`
	TotalAmount1h int64   `json:"totalAmount1h"`
	MinAmt1h      *int64  `json:"minAmt1h,omitempty"`
	MaxAmt1h      *int64  `json:"maxAmt1h,omitempty"`
	SmallCount1h  int     `json:"smallCount1h"`
	HasLarge1h    bool    `json:"hasLarge1h"`
	FailCount30m  int     `json:"failCount30m"`
	NoIdentifier  bool    `json:"noIdentifier,omitempty"`
	DisputeReason *string `json:"disputeReason,omitempty"`
}

type RiskFlags struct {
	DisagreeWithStripe bool `json:"disagree_with_stripe"`
}

// RiskAssessment is recomputed wholesale on every enrichment pass,
// never patched field by field.
type RiskAssessment struct {
	Score      int          `json:"score"`
	Label      RiskLabel    `json:"label"`
	Reasons    []RiskReason `json:"reasons"`
	Features   RiskFeatures `json:"features"`
	Flags      RiskFlags    `json:"flags"`
	Version    string       `json:"version"`
	ComputedAt time.Time    `json:"computedAt"`
}

func (r RiskAssessment) Value() (driver.Value, error)  { return jsonbValue(r) }
func (r *RiskAssessment) Scan(value interface{}) error { return jsonbScan(r, value) }

// MLScore is the external model's answer for one transaction.
type MLScore struct {
	ProbFraud    float64   `json:"prob_fraud"`
	ModelVersion string    `json:"model_version"`
	ScoredAt     time.Time `json:"scored_at"`
}

func (m MLScore) Value() (driver.Value, error)  { return jsonbValue(m) }
func (m *MLScore) Scan(value interface{}) error { return jsonbScan(m, value) }
