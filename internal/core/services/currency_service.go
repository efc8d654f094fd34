package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/core/ports"
	portsrepo "github.com/belrates/currency-service/internal/core/ports/repositories"
	portssvc "github.com/belrates/currency-service/internal/core/ports/services"
	"github.com/belrates/currency-service/internal/dto"
	"github.com/belrates/currency-service/internal/platform/cache"
)

// currencyService resolves currency metadata and daily rates through a
// three-tier fallback (cache, local store, upstream provider) and owns every
// cache invalidation triggered by a currency mutation. Cache operations are
// short and in-memory; no cache access is held across a repository or
// provider call.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateRepo     portsrepo.RateRepositoryFacade
	provider     ports.RateProvider
	cache        ports.Cache
	now          func() time.Time
}

// CurrencyServiceOption configures optional currencyService behaviour.
type CurrencyServiceOption func(*currencyService)

// WithClock overrides the time source used to scope rate cache keys to the
// resolution date.
func WithClock(now func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) {
		s.now = now
	}
}

// NewCurrencyService creates a new currency resolution service.
func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateRepo portsrepo.RateRepositoryFacade,
	provider ports.RateProvider,
	c ports.Cache,
	opts ...CurrencyServiceOption,
) portssvc.CurrencySvcFacade {
	s := &currencyService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		provider:     provider,
		cache:        c,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// ListCurrencies returns all currencies. When the local store is empty the
// full directory is bulk-fetched from the provider and persisted; this is the
// only path that seeds the store from upstream. The final list is cached
// regardless of which tier produced it.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	if currencies, ok := cache.TypedGet[[]domain.CurrencyInfo](s.cache, keyAllCurrencies); ok {
		return currencies, nil
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	if len(currencies) == 0 {
		fetched, err := s.provider.FetchAllCurrencies(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch currencies from provider: %w", err)
		}
		currencies, err = s.currencyRepo.SaveCurrencies(ctx, fetched)
		if err != nil {
			return nil, fmt.Errorf("failed to persist provider currencies: %w", err)
		}
	}

	s.cache.Put(keyAllCurrencies, currencies)
	return currencies, nil
}

// ListCurrenciesFromDB returns the locally persisted currencies without ever
// consulting the provider. Kept as a separate cache entry from ListCurrencies;
// the two keys are not cross-invalidated.
func (s *currencyService) ListCurrenciesFromDB(ctx context.Context) ([]domain.CurrencyInfo, error) {
	if currencies, ok := cache.TypedGet[[]domain.CurrencyInfo](s.cache, keyAllCurrenciesFromDB); ok {
		return currencies, nil
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	s.cache.Put(keyAllCurrenciesFromDB, currencies)
	return currencies, nil
}

// GetCurrencyByID returns a single currency. Only successful lookups are
// cached; a missing id is never negatively cached.
func (s *currencyService) GetCurrencyByID(ctx context.Context, id int) (*domain.CurrencyInfo, error) {
	key := currencyKey(id)
	if currency, ok := cache.TypedGet[domain.CurrencyInfo](s.cache, key); ok {
		return &currency, nil
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, *currency)
	return currency, nil
}

// GetCurrencyRate resolves the currency's rate for the current calendar date.
// The cache key carries the date, so a rate cached yesterday is never served
// as today's. When the currency id is unknown locally the rate is still
// fetched from the provider and returned, but cannot be attached or
// persisted; such a result is neither stored nor cached.
func (s *currencyService) GetCurrencyRate(ctx context.Context, currencyID int) (*domain.ResolvedRate, error) {
	today := dateOnly(s.now())
	key := rateKey(currencyID, today)
	if resolved, ok := cache.TypedGet[domain.ResolvedRate](s.cache, key); ok {
		return &resolved, nil
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up currency %d: %w", currencyID, err)
	}

	if currency != nil {
		rate, err := s.rateRepo.FindRateByCurrencyAndDate(ctx, currencyID, today)
		if err == nil {
			rate.Currency = currency
			resolved := domain.ResolvedRate{Rate: *rate, Persisted: true}
			s.cache.Put(key, resolved)
			return &resolved, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up rate for currency %d: %w", currencyID, err)
		}
	}

	fetched, err := s.provider.FetchRate(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if currency == nil {
		return &domain.ResolvedRate{Rate: *fetched, Persisted: false}, nil
	}

	fetched.Currency = currency
	fetched.CurrencyID = currency.ID
	saved, err := s.rateRepo.SaveRate(ctx, *fetched)
	if err != nil {
		return nil, fmt.Errorf("failed to persist fetched rate for currency %d: %w", currencyID, err)
	}

	resolved := domain.ResolvedRate{Rate: *saved, Persisted: true}
	s.cache.Put(key, resolved)
	return &resolved, nil
}

// CreateCurrency persists a new currency and then wipes the cache. Currency
// identity fans out into the all-currencies lists, per-id lookups, and
// per-abbreviation rate lists; those keys are not individually tracked, so
// correctness wins over hit rate here.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyInfo, error) {
	currency := domain.CurrencyInfo{
		ID:           req.ID,
		Code:         req.Code,
		Abbreviation: req.Abbreviation,
		Name:         req.Name,
		Scale:        req.Scale,
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	s.cache.Clear()
	return saved, nil
}

// UpdateCurrency overwrites an existing currency and wipes the cache.
func (s *currencyService) UpdateCurrency(ctx context.Context, id int, req dto.UpdateCurrencyRequest) (*domain.CurrencyInfo, error) {
	existing, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Code = req.Code
	existing.Abbreviation = req.Abbreviation
	existing.Name = req.Name
	existing.Scale = req.Scale

	updated, err := s.currencyRepo.UpdateCurrency(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %d: %w", id, err)
	}

	s.cache.Clear()
	return updated, nil
}

// DeleteCurrency removes a currency (its rates cascade with it) and wipes the
// cache. A missing id surfaces as apperrors.ErrNotFound.
func (s *currencyService) DeleteCurrency(ctx context.Context, id int) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, id); err != nil {
		return err
	}

	s.cache.Clear()
	return nil
}
