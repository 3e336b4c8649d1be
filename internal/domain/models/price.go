package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a single row of an uploaded price series.
// Each field matches one column of the CSV file.
//
// Column order:
//  1. DateTime (epoch milliseconds in the file, local date-time once parsed)
//  2. Symbol
//  3. Price
//
// Points are created only through CSV ingestion and are never updated
// or deleted afterwards.
type PricePoint struct {
	DateTime time.Time
	Symbol   string
	Price    decimal.Decimal
}
