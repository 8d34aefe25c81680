// Package labels turns stored enum values into display labels.
package labels

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label converts "bank_transfer" to "Bank Transfer" and "NOT_INTERESTED" to "Not Interested".
func Label(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	// A Caser is stateful; one per call.
	return cases.Title(language.English).String(strings.ToLower(strings.Join(words, " ")))
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Choices builds a choice list preserving the order of values.
func Choices[T ~string](values []T) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: string(v), Label: Label(string(v))})
	}
	return out
}
