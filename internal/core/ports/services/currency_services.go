package services

import (
	"context"

	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/dto"
)

// CurrencyReaderSvc defines read resolution for currency metadata and rates.
// Reads go cache first, then the local store, then the upstream provider,
// writing back at each successful fallback tier.
type CurrencyReaderSvc interface {
	// ListCurrencies returns all currencies, seeding the local store from the
	// provider on first run (empty store).
	ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)

	// ListCurrenciesFromDB returns the locally persisted currencies without
	// ever consulting the provider.
	ListCurrenciesFromDB(ctx context.Context) ([]domain.CurrencyInfo, error)

	// GetCurrencyByID returns a single currency by provider id.
	GetCurrencyByID(ctx context.Context, id int) (*domain.CurrencyInfo, error)

	// GetCurrencyRate resolves the currency's rate for the current date.
	GetCurrencyRate(ctx context.Context, currencyID int) (*domain.ResolvedRate, error)
}

// CurrencyWriterSvc defines currency mutations. Every mutation writes to the
// store first and then clears the whole cache: currency identity fans out into
// too many derived keys to invalidate individually.
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyInfo, error)
	UpdateCurrency(ctx context.Context, id int, req dto.UpdateCurrencyRequest) (*domain.CurrencyInfo, error)
	DeleteCurrency(ctx context.Context, id int) error
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
