package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mode string

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"bank_transfer":  "Bank Transfer",
		"NOT_INTERESTED": "Not Interested",
		"under_review":   "Under Review",
		"upi":            "Upi",
		"":               "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Label(in))
		})
	}
}

func TestChoicesKeepOrder(t *testing.T) {
	got := Choices([]mode{"cash", "bank_transfer"})
	assert.Equal(t, []Choice{
		{Value: "cash", Label: "Cash"},
		{Value: "bank_transfer", Label: "Bank Transfer"},
	}, got)
}
