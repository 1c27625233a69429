package stripeclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test_4f2a"
	payload := []byte(`{"id":"evt_123","type":"checkout.session.completed"}`)
	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		payload  []byte
		header   string
		expected error
	}{
		{
			name:     "freshly signed payload verifies",
			payload:  payload,
			header:   SignPayload(payload, secret, now),
			expected: nil,
		},
		{
			name:     "signature just inside the tolerance verifies",
			payload:  payload,
			header:   SignPayload(payload, secret, now.Add(-DefaultSignatureTolerance+time.Second)),
			expected: nil,
		},
		{
			name:     "stale timestamp is rejected as a replay",
			payload:  payload,
			header:   SignPayload(payload, secret, now.Add(-DefaultSignatureTolerance-time.Second)),
			expected: ErrSignatureExpired,
		},
		{
			name:     "timestamp from the future is rejected",
			payload:  payload,
			header:   SignPayload(payload, secret, now.Add(DefaultSignatureTolerance+time.Second)),
			expected: ErrSignatureExpired,
		},
		{
			name:     "tampered payload fails verification",
			payload:  []byte(`{"id":"evt_123","type":"customer.subscription.deleted"}`),
			header:   SignPayload(payload, secret, now),
			expected: ErrSignatureInvalid,
		},
		{
			name:     "signature from another secret fails verification",
			payload:  payload,
			header:   SignPayload(payload, "whsec_other", now),
			expected: ErrSignatureInvalid,
		},
		{
			name:     "empty header is rejected",
			payload:  payload,
			header:   "",
			expected: ErrSignatureMissing,
		},
		{
			name:     "header without v1 scheme is rejected",
			payload:  payload,
			header:   "t=1767260000",
			expected: ErrSignatureMissing,
		},
		{
			name:     "header with garbage timestamp is rejected",
			payload:  payload,
			header:   "t=notanumber,v1=deadbeef",
			expected: ErrSignatureMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.payload, tt.header, secret, DefaultSignatureTolerance, now)

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestVerifySignature_AcceptsAnyValidV1Entry(t *testing.T) {
	secret := "whsec_test_4f2a"
	payload := []byte(`{"id":"evt_456"}`)
	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	// Stripe sends multiple v1 entries during secret rotation. One valid
	// entry is enough.
	header := SignPayload(payload, secret, now) +
		",v1=0000000000000000000000000000000000000000000000000000000000000000"

	assert.NoError(t, VerifySignature(payload, header, secret, DefaultSignatureTolerance, now))
}
