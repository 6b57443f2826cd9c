package paystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature_Valid(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)
	sig := Sign("sk_test_secret", body)

	assert.True(t, VerifySignature("sk_test_secret", body, sig))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	sig := Sign("sk_test_secret", body)

	assert.False(t, VerifySignature("sk_other_secret", body, sig))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	sig := Sign("sk_test_secret", body)

	tampered := []byte(`{"event":"charge.failed"}`)
	assert.False(t, VerifySignature("sk_test_secret", tampered, sig))
}

func TestVerifySignature_EmptySignature(t *testing.T) {
	assert.False(t, VerifySignature("sk_test_secret", []byte("{}"), ""))
}

func TestParseEvent_CartIDInMetadata(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-9","amount":15000000,"metadata":{"cart_id":42}}}`)

	ev, err := ParseEvent(body)
	assert.NoError(t, err)
	assert.Equal(t, EventChargeSuccess, ev.Event)
	assert.Equal(t, "ref-9", ev.Data.Reference)
	if assert.NotNil(t, ev.Data.Metadata.CartID) {
		assert.Equal(t, int64(42), *ev.Data.Metadata.CartID)
	}
}

func TestParseEvent_Invalid(t *testing.T) {
	_, err := ParseEvent([]byte(`not json`))
	assert.Error(t, err)
}
