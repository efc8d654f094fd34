package models

// CurrencyInfo is the database row shape for a currency.
type CurrencyInfo struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Scale        int    `json:"scale"`
}
