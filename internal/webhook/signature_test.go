package webhook_test

import (
	"strings"
	"testing"
	"time"

	"github.com/falliso3/capstone-fraud-rpa/internal/webhook"
	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_test_secret"

func TestVerify_ValidSignature(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1","type":"charge.succeeded"}`)

	header := v.Sign(payload, time.Now())

	assert.NoError(t, v.Verify(payload, header))
}

func TestVerify_MissingHeader(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)

	err := v.Verify([]byte(`{}`), "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing signature header")
}

func TestVerify_WrongSecret(t *testing.T) {
	signer := webhook.NewSignatureVerifier("whsec_other", 5*time.Minute)
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1"}`)

	header := signer.Sign(payload, time.Now())

	err := v.Verify(payload, header)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching v1 signature")
}

func TestVerify_TamperedPayload(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1","amount":100}`)

	header := v.Sign(payload, time.Now())

	err := v.Verify([]byte(`{"id":"evt_1","amount":100000}`), header)

	assert.Error(t, err)
}

func TestVerify_StaleTimestamp(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1"}`)

	header := v.Sign(payload, time.Now().Add(-10*time.Minute))

	err := v.Verify(payload, header)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside tolerance")
}

func TestVerify_FutureTimestamp(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1"}`)

	header := v.Sign(payload, time.Now().Add(10*time.Minute))

	assert.Error(t, v.Verify(payload, header))
}

func TestVerify_ZeroToleranceSkipsAgeCheck(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 0)
	payload := []byte(`{"id":"evt_1"}`)

	header := v.Sign(payload, time.Now().Add(-24*time.Hour))

	assert.NoError(t, v.Verify(payload, header))
}

func TestVerify_MalformedHeader(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)

	err := v.Verify([]byte(`{}`), "garbage")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no timestamp or v1 signature")
}

func TestVerify_AcceptsAnyMatchingV1(t *testing.T) {
	v := webhook.NewSignatureVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1"}`)

	valid := v.Sign(payload, time.Now())
	parts := strings.SplitN(valid, ",", 2)
	header := parts[0] + ",v1=deadbeef," + parts[1]

	assert.NoError(t, v.Verify(payload, header))
}
