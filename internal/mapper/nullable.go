package mapper

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(t)
}

func fromDate(d datatypes.Date) time.Time {
	return time.Time(d)
}
