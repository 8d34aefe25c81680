package implementation

import (
	"fmt"

	"travel-backoffice-be/internal/repository/contract"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type aggregateRow struct {
	GroupKey string
	RowCount int64
	Total    decimal.NullDecimal
}

// sumColumn runs SUM(column) on an already scoped query. NULL sums become zero.
func sumColumn(db *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := db.Select(fmt.Sprintf("SUM(%s)", column)).Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// groupColumn buckets an already scoped query by column. sum may be empty
// when only counts matter.
func groupColumn(db *gorm.DB, column, sum string) ([]contract.Aggregate, error) {
	total := "NULL"
	if sum != "" {
		total = fmt.Sprintf("SUM(%s)", sum)
	}

	var rows []aggregateRow
	err := db.Select(fmt.Sprintf("%s AS group_key, COUNT(*) AS row_count, %s AS total", column, total)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]contract.Aggregate, 0, len(rows))
	for _, row := range rows {
		agg := contract.Aggregate{Key: row.GroupKey, Count: row.RowCount, Total: decimal.Zero}
		if row.Total.Valid {
			agg.Total = row.Total.Decimal
		}
		out = append(out, agg)
	}
	return out, nil
}

func allowedColumn(column string, allowed ...string) error {
	for _, a := range allowed {
		if a == column {
			return nil
		}
	}
	return fmt.Errorf("column %q cannot be grouped", column)
}
