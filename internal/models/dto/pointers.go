package dto

import "encoding/json"

// ObjectKind tags the payload variant an event carries. Anything outside
// the kinds the pipeline understands maps to KindUnrecognized instead of
// best-effort field scraping.
type ObjectKind string

const (
	KindPaymentIntent ObjectKind = "payment_intent"
	KindCharge        ObjectKind = "charge"
	KindDispute       ObjectKind = "dispute"
	KindUnrecognized  ObjectKind = "unrecognized"
)

// Pointers are the cross-reference ids extracted from an event payload
// so transactions can be traced back to their events.
type Pointers struct {
	IntentID   *string
	ChargeID   *string
	ObjectType *string
	ObjectID   *string
	Kind       ObjectKind
}

// pointerProbe is the minimal shape needed to classify any payload.
type pointerProbe struct {
	Object        *string `json:"object"`
	ID            *string `json:"id"`
	PaymentIntent *string `json:"payment_intent"`
	Charge        *string `json:"charge"`
}

// ExtractPointers is total: a payload that cannot be decoded or names an
// unknown object type yields an unrecognized variant with nil ids, never
// an error.
func ExtractPointers(e *Event) Pointers {
	var probe pointerProbe
	if err := json.Unmarshal(e.Data.Object, &probe); err != nil {
		return Pointers{Kind: KindUnrecognized}
	}

	p := Pointers{
		ObjectType: probe.Object,
		ObjectID:   probe.ID,
		Kind:       KindUnrecognized,
	}

	objectType := ""
	if probe.Object != nil {
		objectType = *probe.Object
	}

	switch objectType {
	case "payment_intent":
		p.Kind = KindPaymentIntent
		p.IntentID = probe.ID
	case "charge":
		p.Kind = KindCharge
		p.ChargeID = probe.ID
		p.IntentID = probe.PaymentIntent
	case "dispute", "charge.dispute":
		p.Kind = KindDispute
		p.ChargeID = probe.Charge
		p.IntentID = probe.PaymentIntent
	default:
		p.IntentID = probe.PaymentIntent
		p.ChargeID = probe.Charge
	}

	return p
}
