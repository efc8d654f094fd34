package services

import (
	"context"
	"time"

	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade is the conversion engine plus rate CRUD. Rate mutations
// are fine-grained invalidators: they touch exactly the rate's own by-id key
// and its (abbreviation, date) list key, leaving unrelated cached rates intact.
type ConversionSvcFacade interface {
	// Convert turns an amount of the from-currency into the to-currency using
	// both currencies' official rates for today, normalized to a per-unit
	// basis. Rejects non-positive amounts with apperrors.ErrValidation.
	Convert(ctx context.Context, fromID, toID int, amount decimal.Decimal) (decimal.Decimal, error)

	CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error)
	GetRateByID(ctx context.Context, id int64) (*domain.Rate, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
	UpdateRate(ctx context.Context, id int64, req dto.UpdateRateRequest) (*domain.Rate, error)
	DeleteRate(ctx context.Context, id int64) error

	// GetRatesByAbbreviationAndDate lists the rates recorded for a currency
	// abbreviation on a calendar date.
	GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error)
}
