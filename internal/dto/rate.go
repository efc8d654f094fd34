package dto

import (
	"time"

	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateDateFormat is the wire format for rate calendar dates.
const RateDateFormat = "2006-01-02"

// CreateRateRequest defines the data needed to record a rate manually.
type CreateRateRequest struct {
	OfficialRate decimal.Decimal `json:"officialRate" binding:"required"`
	Scale        int             `json:"scale" binding:"required,gt=0"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	CurrencyID   int             `json:"currencyId" binding:"required,gt=0"`
}

// UpdateRateRequest defines the data for overwriting a rate's attributes.
type UpdateRateRequest struct {
	OfficialRate decimal.Decimal `json:"officialRate" binding:"required"`
	Scale        int             `json:"scale" binding:"required,gt=0"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	CurrencyID   int             `json:"currencyId" binding:"required,gt=0"`
}

// RateResponse defines the data returned for a rate.
type RateResponse struct {
	ID           int64             `json:"id"`
	OfficialRate decimal.Decimal   `json:"officialRate"`
	Scale        int               `json:"scale"`
	Date         string            `json:"date"`
	CurrencyID   int               `json:"currencyId"`
	Currency     *CurrencyResponse `json:"currency,omitempty"`
	// Persisted is false when the rate was fetched from the provider for a
	// currency unknown locally and therefore was not stored.
	Persisted bool `json:"persisted"`
}

// ToRateResponse converts a domain.Rate to a RateResponse DTO
func ToRateResponse(r *domain.Rate, persisted bool) RateResponse {
	resp := RateResponse{
		ID:           r.ID,
		OfficialRate: r.OfficialRate,
		Scale:        r.Scale,
		Date:         r.Date.Format(RateDateFormat),
		CurrencyID:   r.CurrencyID,
		Persisted:    persisted,
	}
	if r.Currency != nil {
		c := ToCurrencyResponse(r.Currency)
		resp.Currency = &c
	}
	return resp
}

// ToListRateResponse converts a slice of domain.Rate to RateResponse DTOs
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToRateResponse(&r, true)
	}
	return res
}

// ParseRateDate parses a wire-format rate date into a UTC calendar date.
func ParseRateDate(s string) (time.Time, error) {
	return time.ParseInLocation(RateDateFormat, s, time.UTC)
}
