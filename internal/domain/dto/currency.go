package dto

// CurrencyRequest is the JSON body of POST /api/v1/currencies.
type CurrencyRequest struct {
	Symbol string `json:"symbol" binding:"required" example:"BTC"`
}

// CurrencyResponse represents one registered currency as returned by the
// GET /api/v1/currencies endpoints.
type CurrencyResponse struct {
	Symbol string `json:"symbol" example:"BTC"`
}
