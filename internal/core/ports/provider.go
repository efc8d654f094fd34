package ports

import (
	"context"

	"github.com/belrates/currency-service/internal/core/domain"
)

// RateProvider is the upstream exchange-rate API seen by the core.
// Implementations normalize transport failures into the apperrors taxonomy:
// client-class provider errors (unknown id) surface as apperrors.ErrNotFound,
// provider-side failures and timeouts as apperrors.ErrUpstreamUnavailable.
type RateProvider interface {
	// FetchAllCurrencies retrieves the provider's full currency directory.
	FetchAllCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)

	// FetchRate retrieves the current official rate for one currency.
	FetchRate(ctx context.Context, currencyID int) (*domain.Rate, error)
}
