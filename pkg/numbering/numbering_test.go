package numbering

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	patterns := map[string]*regexp.Regexp{
		PrefixBooking:      regexp.MustCompile(`^BK[0-9A-F]{8}$`),
		PrefixQuickBooking: regexp.MustCompile(`^QB[0-9A-F]{8}$`),
		PrefixVisa:         regexp.MustCompile(`^VA[0-9A-F]{8}$`),
	}
	for prefix, re := range patterns {
		for i := 0; i < 50; i++ {
			assert.Regexp(t, re, Generate(prefix))
		}
	}
}

func TestUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("retries on collision", func(t *testing.T) {
		calls := 0
		n, err := Unique(ctx, PrefixBooking, func(context.Context, string) (bool, error) {
			calls++
			return calls < 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Regexp(t, `^BK[0-9A-F]{8}$`, n)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		_, err := Unique(ctx, PrefixVisa, func(context.Context, string) (bool, error) { return true, nil })
		assert.ErrorIs(t, err, ErrExhausted)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := Unique(ctx, PrefixQuickBooking, func(context.Context, string) (bool, error) { return false, boom })
		assert.ErrorIs(t, err, boom)
	})
}
