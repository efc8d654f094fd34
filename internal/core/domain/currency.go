package domain

// CurrencyInfo represents a currency known to the system, as quoted by the
// upstream provider. ID is the provider-assigned identity and is stable across
// the system.
type CurrencyInfo struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`         // numeric trading code, e.g. "840"
	Abbreviation string `json:"abbreviation"` // short mnemonic, e.g. "USD", unique per currency
	Name         string `json:"name"`         // display name, e.g. "US Dollar"
	Scale        int    `json:"scale"`        // provider-native units per quoted rate, e.g. rate per 100 units
}
