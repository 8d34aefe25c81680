// Package numbering generates human-facing reference numbers such as
// BK1A2B3C4D for bookings.
package numbering

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixBooking      = "BK"
	PrefixQuickBooking = "QB"
	PrefixVisa         = "VA"
)

const maxAttempts = 5

var ErrExhausted = errors.New("could not allocate a unique reference number")

// ExistsFunc reports whether number is already taken.
type ExistsFunc func(ctx context.Context, number string) (bool, error)

// Generate returns prefix followed by the first 8 hex digits of a random
// UUID, uppercased.
func Generate(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

// Unique retries Generate until exists reports a free number. The unique
// index on the column remains the final arbiter under concurrent inserts.
func Unique(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate := Generate(prefix)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check %s number: %w", prefix, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}
