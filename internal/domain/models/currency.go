package models

// Currency is a registered currency symbol. Rows are immutable once created:
// there is no update or delete path anywhere in the system.
//
// swagger:model Currency
type Currency struct {
	Symbol string `json:"symbol" example:"BTC"`
}
