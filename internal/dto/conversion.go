package dto

import "github.com/shopspring/decimal"

// ConversionResponse defines the data returned for a currency conversion.
type ConversionResponse struct {
	From   int             `json:"from"`
	To     int             `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Result decimal.Decimal `json:"result"`
}
