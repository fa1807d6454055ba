package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/falliso3/capstone-fraud-rpa/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent_Valid(t *testing.T) {
	body := []byte(`{
		"id": "evt_1",
		"type": "charge.succeeded",
		"created": 1700000000,
		"livemode": false,
		"data": {"object": {"object": "charge", "id": "ch_1"}}
	}`)

	event, err := dto.ParseEvent(body)

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "charge.succeeded", event.Type)
	assert.Equal(t, int64(1700000000), event.Created)
	assert.False(t, event.Livemode)
	assert.NotEmpty(t, event.Data.Object)
}

func TestParseEvent_InvalidJSON(t *testing.T) {
	_, err := dto.ParseEvent([]byte(`{"id":`))

	assert.Error(t, err)
}

func TestParseEvent_MissingID(t *testing.T) {
	_, err := dto.ParseEvent([]byte(`{"type":"charge.succeeded"}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestEventCharge_FullObject(t *testing.T) {
	object := `{
		"object": "charge",
		"id": "ch_1",
		"payment_intent": "pi_1",
		"amount": 4200,
		"currency": "usd",
		"status": "succeeded",
		"paid": true,
		"created": 1700000000,
		"livemode": true,
		"disputed": false,
		"outcome": {"risk_level": "normal", "risk_score": 12, "network_status": "approved_by_network"},
		"billing_details": {"address": {"country": "US"}},
		"shipping": {"address": {"country": "CA"}},
		"payment_method_details": {"card": {
			"brand": "visa",
			"last4": "4242",
			"country": "US",
			"fingerprint": "fp_1",
			"checks": {"cvc_check": "pass", "address_postal_code_check": "fail"}
		}}
	}`
	event := &dto.Event{ID: "evt_1", Type: "charge.succeeded", Data: dto.EventData{Object: json.RawMessage(object)}}

	ch, err := event.Charge()

	require.NoError(t, err)
	assert.Equal(t, "ch_1", ch.ID)
	assert.Equal(t, "pi_1", *ch.PaymentIntent)
	assert.Equal(t, int64(4200), ch.Amount)
	assert.Equal(t, "succeeded", ch.Status)
	assert.True(t, ch.Paid)
	assert.Equal(t, "normal", *ch.Outcome.RiskLevel)
	assert.Equal(t, 12, *ch.Outcome.RiskScore)
	assert.Equal(t, "US", *ch.BillingDetails.Address.Country)
	assert.Equal(t, "CA", *ch.Shipping.Address.Country)
	assert.Equal(t, "visa", *ch.PaymentMethodDetails.Card.Brand)
	assert.Equal(t, "fp_1", *ch.PaymentMethodDetails.Card.Fingerprint)
	assert.Equal(t, "pass", *ch.PaymentMethodDetails.Card.Checks.CVCCheck)
	assert.Equal(t, "fail", *ch.PaymentMethodDetails.Card.Checks.AddressPostalCodeCheck)
	assert.Nil(t, ch.PaymentMethodDetails.Card.Checks.AddressLine1Check)
}

func TestEventPaymentIntent(t *testing.T) {
	object := `{"object":"payment_intent","id":"pi_1","amount":999,"currency":"eur","status":"processing","latest_charge":"ch_1"}`
	event := &dto.Event{ID: "evt_1", Type: "payment_intent.created", Data: dto.EventData{Object: json.RawMessage(object)}}

	pi, err := event.PaymentIntent()

	require.NoError(t, err)
	assert.Equal(t, "pi_1", pi.ID)
	assert.Equal(t, int64(999), pi.Amount)
	assert.Equal(t, "processing", pi.Status)
	assert.Equal(t, "ch_1", *pi.LatestCharge)
}

func TestEventDispute(t *testing.T) {
	object := `{"object":"dispute","id":"dp_1","charge":"ch_1","status":"needs_response","reason":"fraudulent","amount":4200,"currency":"usd","created":1700000100}`
	event := &dto.Event{ID: "evt_1", Type: "charge.dispute.created", Data: dto.EventData{Object: json.RawMessage(object)}}

	dp, err := event.Dispute()

	require.NoError(t, err)
	assert.Equal(t, "dp_1", dp.ID)
	assert.Equal(t, "ch_1", *dp.Charge)
	assert.Equal(t, "fraudulent", *dp.Reason)
	assert.Equal(t, int64(4200), *dp.Amount)
}
