package repositories

import (
	"context"
	"time"

	"github.com/belrates/currency-service/internal/core/domain"
)

// RateReader defines read operations for daily rates.
type RateReader interface {
	// FindRateByID retrieves a rate by its own id.
	FindRateByID(ctx context.Context, id int64) (*domain.Rate, error)

	// FindRateByCurrencyAndDate retrieves the rate persisted for a currency on
	// a given calendar date, if any.
	FindRateByCurrencyAndDate(ctx context.Context, currencyID int, date time.Time) (*domain.Rate, error)

	// FindRatesByAbbreviationAndDate retrieves all rates for the currency with
	// the given abbreviation on the given date.
	FindRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error)

	// ListRates retrieves all persisted rates.
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// RateWriter defines write operations for daily rates.
type RateWriter interface {
	// SaveRate persists a new rate.
	SaveRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)

	// UpdateRate overwrites an existing rate's attributes.
	UpdateRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)

	// DeleteRate removes a rate by id.
	DeleteRate(ctx context.Context, id int64) error
}

// RateRepositoryFacade combines all rate-related repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
