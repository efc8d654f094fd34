package repositories

import (
	"context"

	"github.com/belrates/currency-service/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its provider id.
	FindCurrencyByID(ctx context.Context, id int) (*domain.CurrencyInfo, error)

	// ListCurrencies retrieves all locally persisted currencies.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)
}

// CurrencyWriter defines write operations for currency reference data.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.CurrencyInfo) (*domain.CurrencyInfo, error)

	// SaveCurrencies bulk-persists currencies fetched from the provider.
	SaveCurrencies(ctx context.Context, currencies []domain.CurrencyInfo) ([]domain.CurrencyInfo, error)

	// UpdateCurrency overwrites an existing currency's attributes.
	UpdateCurrency(ctx context.Context, currency domain.CurrencyInfo) (*domain.CurrencyInfo, error)

	// DeleteCurrency removes a currency and, through the schema's cascade, its rates.
	DeleteCurrency(ctx context.Context, id int) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
