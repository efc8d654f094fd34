package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the database row shape for a daily official rate.
type Rate struct {
	ID           int64           `json:"id"`
	OfficialRate decimal.Decimal `json:"officialRate"`
	Scale        int             `json:"scale"`
	Date         time.Time       `json:"date"`
	CurrencyID   int             `json:"currencyId"`
}
