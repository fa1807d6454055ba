package dto

import (
	"encoding/json"
	"fmt"
)

// Event is the webhook envelope as Stripe sends it. Data.Object is kept
// raw and decoded per object kind by the consumers that need it.
type Event struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Created  int64     `json:"created"`
	Livemode bool      `json:"livemode"`
	Data     EventData `json:"data"`
}

type EventData struct {
	Object json.RawMessage `json:"object"`
}

func ParseEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("error parsing webhook event: %w", err)
	}
	if event.ID == "" {
		return nil, fmt.Errorf("webhook event has no id")
	}
	return &event, nil
}

// Charge is the subset of a charge object the projector folds into a
// transaction.
type Charge struct {
	ID            string  `json:"id"`
	PaymentIntent *string `json:"payment_intent"`
	Amount        int64   `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Paid          bool    `json:"paid"`
	Created       int64   `json:"created"`
	Livemode      bool    `json:"livemode"`
	Description   *string `json:"description"`
	Disputed      bool    `json:"disputed"`
	Dispute       *string `json:"dispute"`
	Review        *string `json:"review"`

	Outcome *ChargeOutcome `json:"outcome"`

	BillingDetails *struct {
		Address *Address `json:"address"`
	} `json:"billing_details"`
	Shipping *struct {
		Address *Address `json:"address"`
	} `json:"shipping"`

	PaymentMethodDetails *struct {
		Card *CardDetails `json:"card"`
	} `json:"payment_method_details"`
}

type ChargeOutcome struct {
	RiskLevel          *string `json:"risk_level"`
	RiskScore          *int    `json:"risk_score"`
	NetworkStatus      *string `json:"network_status"`
	Type               *string `json:"type"`
	SellerMessage      *string `json:"seller_message"`
	Reason             *string `json:"reason"`
	NetworkDeclineCode *string `json:"network_decline_code"`
	NetworkAdviceCode  *string `json:"network_advice_code"`
}

type Address struct {
	Country *string `json:"country"`
}

type CardDetails struct {
	Brand       *string     `json:"brand"`
	Last4       *string     `json:"last4"`
	Country     *string     `json:"country"`
	Funding     *string     `json:"funding"`
	Network     *string     `json:"network"`
	Fingerprint *string     `json:"fingerprint"`
	Checks      *CardChecks `json:"checks"`
}

type CardChecks struct {
	CVCCheck               *string `json:"cvc_check"`
	AddressLine1Check      *string `json:"address_line1_check"`
	AddressPostalCodeCheck *string `json:"address_postal_code_check"`
}

// PaymentIntent is the subset of a payment_intent object the projector
// uses.
type PaymentIntent struct {
	ID           string  `json:"id"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	Created      int64   `json:"created"`
	Livemode     bool    `json:"livemode"`
	LatestCharge *string `json:"latest_charge"`
}

type Dispute struct {
	ID            string  `json:"id"`
	Charge        *string `json:"charge"`
	PaymentIntent *string `json:"payment_intent"`
	Status        *string `json:"status"`
	Reason        *string `json:"reason"`
	Amount        *int64  `json:"amount"`
	Currency      *string `json:"currency"`
	Created       *int64  `json:"created"`
}

func (e *Event) Charge() (*Charge, error) {
	var ch Charge
	if err := json.Unmarshal(e.Data.Object, &ch); err != nil {
		return nil, fmt.Errorf("error parsing charge object: %w", err)
	}
	return &ch, nil
}

func (e *Event) PaymentIntent() (*PaymentIntent, error) {
	var pi PaymentIntent
	if err := json.Unmarshal(e.Data.Object, &pi); err != nil {
		return nil, fmt.Errorf("error parsing payment_intent object: %w", err)
	}
	return &pi, nil
}

func (e *Event) Dispute() (*Dispute, error) {
	var dp Dispute
	if err := json.Unmarshal(e.Data.Object, &dp); err != nil {
		return nil, fmt.Errorf("error parsing dispute object: %w", err)
	}
	return &dp, nil
}
