package contract

import "github.com/shopspring/decimal"

// Aggregate is one GROUP BY bucket: row count and amount sum per key.
type Aggregate struct {
	Key   string
	Count int64
	Total decimal.Decimal
}
