package stripeclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSignatureTolerance bounds how old a signed webhook payload may
// be before it is rejected as a replay.
const DefaultSignatureTolerance = 5 * time.Minute

var (
	ErrSignatureMissing = errors.New("stripe-signature header missing or malformed")
	ErrSignatureInvalid = errors.New("webhook signature mismatch")
	ErrSignatureExpired = errors.New("webhook signature timestamp outside tolerance")
)

// VerifySignature checks the Stripe-Signature header
// ("t=<unix>,v1=<hex hmac>") against the raw payload. The signed string
// is "<t>.<payload>" keyed with the endpoint's webhook secret.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > tolerance || age < -tolerance {
		return ErrSignatureExpired
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, signature := range signatures {
		decoded, err := hex.DecodeString(signature)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return ErrSignatureInvalid
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var timestamp int64
	var signatures []string
	sawTimestamp := false

	for _, pair := range strings.Split(header, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}

		switch parts[0] {
		case "t":
			parsed, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				return 0, nil, ErrSignatureMissing
			}
			timestamp = parsed
			sawTimestamp = true
		case "v1":
			signatures = append(signatures, parts[1])
		}
	}

	if !sawTimestamp || len(signatures) == 0 {
		return 0, nil, ErrSignatureMissing
	}

	return timestamp, signatures, nil
}

// SignPayload produces a Stripe-Signature header value for the payload.
// Used by tests and the local webhook replayer.
func SignPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}
