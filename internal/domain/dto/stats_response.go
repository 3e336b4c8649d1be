package dto

import "github.com/shopspring/decimal"

// CurrencyStatsResponse is the JSON structure returned by the
// GET /api/v1/currencies/stats/{name} endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This keeps the API surface decoupled from business logic.
type CurrencyStatsResponse struct {
	Symbol     string          `json:"symbol" example:"BTC"`
	OldestDate LocalDateTime   `json:"oldestDate" swaggertype:"string" example:"2022-01-04T15:00:00"`
	NewestDate LocalDateTime   `json:"newestDate" swaggertype:"string" example:"2022-01-31T10:30:00"`
	MinPrice   decimal.Decimal `json:"minPrice" swaggertype:"string" example:"33276.59"`
	MaxPrice   decimal.Decimal `json:"maxPrice" swaggertype:"string" example:"47222.66"`
}

// NormalizedPriceResponse is one entry of the normalized ranking returned by
// GET /api/v1/currencies/stats and GET /api/v1/currencies/stats/highest.
type NormalizedPriceResponse struct {
	Symbol          string          `json:"symbol" example:"ETH"`
	NormalizedPrice decimal.Decimal `json:"normalizedPrice" swaggertype:"string" example:"0.4984"`
}
