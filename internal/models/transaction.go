package models

import (
	"database/sql/driver"
	"time"
)

// Transaction is the curated per-payment projection, keyed by the
// payment-intent id when known and the charge id otherwise. It is never
// deleted; every related event folds into it.
type Transaction struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	PaymentIntent *string `json:"payment_intent,omitempty"`
	LatestCharge  *string `gorm:"index" json:"latest_charge,omitempty"`

	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
	Created  int64  `gorm:"index:idx_tx_created" json:"created"`
	Livemode bool   `json:"livemode"`

	Description     *string `json:"description,omitempty"`
	BillingCountry  *string `json:"billing_country,omitempty"`
	ShippingCountry *string `json:"shipping_country,omitempty"`

	Risk Risk `gorm:"type:jsonb" json:"risk"`

	Disputed       bool            `json:"disputed"`
	DisputeID      *string         `json:"dispute_id,omitempty"`
	DisputeDetails *DisputeDetails `gorm:"type:jsonb" json:"dispute_details,omitempty"`
	Review         *string         `json:"review,omitempty"`

	// Card descriptor columns are flattened so the velocity windows can be
	// answered with plain btree indexes.
	CardBrand       *string `gorm:"index:idx_tx_brand_last4,priority:1" json:"card_brand,omitempty"`
	CardLast4       *string `gorm:"index:idx_tx_brand_last4,priority:2" json:"card_last4,omitempty"`
	CardCountry     *string `json:"card_country,omitempty"`
	CardFunding     *string `json:"card_funding,omitempty"`
	CardNetwork     *string `json:"card_network,omitempty"`
	CardFingerprint *string `gorm:"index:idx_tx_fingerprint" json:"card_fingerprint,omitempty"`

	Checks Checks `gorm:"type:jsonb" json:"checks"`

	Decision Decision `json:"decision"`

	Charges  StringSet `gorm:"type:jsonb" json:"charges"`
	EventIDs StringSet `gorm:"type:jsonb;column:event_ids" json:"event_ids"`

	LastEventID   *string `json:"last_event_id,omitempty"`
	LastEventType *string `json:"last_event_type,omitempty"`

	InternalRisk *RiskAssessment `gorm:"type:jsonb" json:"internal_risk,omitempty"`
	ML           *MLScore        `gorm:"type:jsonb;column:ml" json:"ml,omitempty"`
	MLLastError  *string         `gorm:"column:ml_last_error" json:"ml_last_error,omitempty"`

	Summary      *string `json:"summary,omitempty"`
	SummaryModel *string `json:"summary_model,omitempty"`

	SummaryNeeded     bool       `gorm:"index:idx_tx_queue,priority:1" json:"summary_needed"`
	SummaryInProgress bool       `gorm:"index" json:"summary_in_progress"`
	SummaryClaimedAt  *time.Time `json:"summary_claimed_at,omitempty"`
	SummaryFailures   int        `json:"summary_failures"`
	SummaryLastError  *string    `json:"summary_last_error,omitempty"`

	UpdatedAt time.Time `gorm:"index:idx_tx_queue,priority:2" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Risk carries the platform-reported outcome of a charge.
type Risk struct {
	Level              *string `json:"level,omitempty"`
	Score              *int    `json:"score,omitempty"`
	NetworkStatus      *string `json:"network_status,omitempty"`
	OutcomeType        *string `json:"outcome_type,omitempty"`
	SellerMessage      *string `json:"seller_message,omitempty"`
	Reason             *string `json:"reason,omitempty"`
	NetworkDeclineCode *string `json:"network_decline_code,omitempty"`
	NetworkAdviceCode  *string `json:"network_advice_code,omitempty"`
}

func (r Risk) Value() (driver.Value, error)  { return jsonbValue(r) }
func (r *Risk) Scan(value interface{}) error { return jsonbScan(r, value) }

// Checks holds the card verification results reported with a charge.
type Checks struct {
	CVCCheck               *string `json:"cvc_check,omitempty"`
	AddressLine1Check      *string `json:"address_line1_check,omitempty"`
	AddressPostalCodeCheck *string `json:"address_postal_code_check,omitempty"`
}

func (c Checks) Value() (driver.Value, error)  { return jsonbValue(c) }
func (c *Checks) Scan(value interface{}) error { return jsonbScan(c, value) }

type DisputeDetails struct {
	ID       string  `json:"id"`
	Status   *string `json:"status,omitempty"`
	Reason   *string `json:"reason,omitempty"`
	Amount   *int64  `json:"amount,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Created  *int64  `json:"created,omitempty"`
}

func (d DisputeDetails) Value() (driver.Value, error)  { return jsonbValue(d) }
func (d *DisputeDetails) Scan(value interface{}) error { return jsonbScan(d, value) }

// StringSet is a jsonb-backed set of string ids with stable insertion order.
type StringSet []string

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	return jsonbValue([]string(s))
}

func (s *StringSet) Scan(value interface{}) error { return jsonbScan(s, value) }

func (s StringSet) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Add returns the set with v included, without duplicating existing entries.
func (s StringSet) Add(v string) StringSet {
	if v == "" || s.Contains(v) {
		return s
	}
	return append(s, v)
}
