package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referenceCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789" // no 0/O/1/I/L

// EnvOrDefault returns the ENV value or a fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// randomCode draws n characters from the reference charset using crypto/rand
// with rand.Int to avoid modulo bias.
func randomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid code length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference produces a human-readable booking reference like
// "MR-A4TK93QF". Collisions are guarded by the unique index on the column.
func GenerateBookingReference() (string, error) {
	code, err := randomCode(8)
	if err != nil {
		return "", err
	}
	return "MR-" + code, nil
}

// GenerateInvoiceNumber produces e.g. "INV-20240610-K3QX".
func GenerateInvoiceNumber(issuedOn time.Time) (string, error) {
	code, err := randomCode(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%s-%s", issuedOn.Format("20060102"), code), nil
}

// NewIdempotencyKey mints a client-side idempotency token for one booking
// submission attempt.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// NormalizeIdempotencyKey trims and validates a caller-supplied key.
// Empty input is allowed and returns nil.
func NormalizeIdempotencyKey(raw string) (*string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return nil, nil
	}
	if len(key) > 64 {
		return nil, errors.New("idempotency key too long")
	}
	return &key, nil
}
