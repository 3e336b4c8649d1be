package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinMaxStats is the result of the grouped range query for one currency.
//
// Fields:
//   - Symbol: the currency the aggregation ran for (e.g., "BTC").
//   - OldestDate / NewestDate: first and last price timestamps inside the range.
//   - MinPrice / MaxPrice: price extremes observed inside the range.
//
// This model backs the GET /api/v1/currencies/stats/{name} response.
//
// swagger:model MinMaxStats
type MinMaxStats struct {
	Symbol     string
	OldestDate time.Time
	NewestDate time.Time
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
}

// NormalizedPrice ranks a currency by (max-min)/min over a time window,
// a dimensionless volatility proxy.
//
// swagger:model NormalizedPrice
type NormalizedPrice struct {
	Symbol string
	Value  decimal.Decimal
}
