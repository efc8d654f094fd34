package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a single day's official exchange rate for one currency.
// OfficialRate is meaningless without Scale; the two are always read and
// cached together.
type Rate struct {
	ID           int64           `json:"id"`
	OfficialRate decimal.Decimal `json:"officialRate"`
	Scale        int             `json:"scale"`
	Date         time.Time       `json:"date"` // calendar date the rate is valid for
	CurrencyID   int             `json:"currencyId"`
	Currency     *CurrencyInfo   `json:"currency,omitempty"`
}

// ResolvedRate is the outcome of a rate resolution. Persisted reports whether
// the rate is backed by the local store: when the currency id is unknown
// locally, the rate is still fetched from the provider and returned, but it
// cannot be attached to a currency and will not survive a restart.
type ResolvedRate struct {
	Rate      Rate
	Persisted bool
}
