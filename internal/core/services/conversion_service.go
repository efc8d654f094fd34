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
	"github.com/shopspring/decimal"
)

// Rounding contract for conversions. Intermediate per-unit rates carry 6
// fractional digits, the final amount 2, both half-up. Changing either breaks
// reproducibility of previously cached results for the same inputs.
const (
	perUnitPrecision = 6
	resultPrecision  = 2
)

// conversionService turns two independently-scaled official rates into a
// converted amount, memoizing results, and owns rate CRUD together with its
// fine-grained cache invalidation.
type conversionService struct {
	currencySvc portssvc.CurrencyReaderSvc
	rateRepo    portsrepo.RateRepositoryFacade
	cache       ports.Cache
}

// NewConversionService creates a new conversion service. Rates are resolved
// through currencySvc so conversions go through the same cache and fallback
// tiers as direct rate lookups.
func NewConversionService(
	currencySvc portssvc.CurrencyReaderSvc,
	rateRepo portsrepo.RateRepositoryFacade,
	c ports.Cache,
) portssvc.ConversionSvcFacade {
	return &conversionService{
		currencySvc: currencySvc,
		rateRepo:    rateRepo,
		cache:       c,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Convert computes amount × (fromRate/fromScale) / (toRate/toScale). Both
// rates are normalized to a per-single-unit basis first because two
// currencies may be quoted at different scales (per-1 vs per-100 units).
// Non-positive amounts are rejected before the cache or resolver is touched,
// and a failed rate resolution fails the whole conversion; nothing is cached
// on failure.
func (s *conversionService) Convert(ctx context.Context, fromID, toID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	key := convertKey(fromID, toID, amount.String())
	if result, ok := cache.TypedGet[decimal.Decimal](s.cache, key); ok {
		return result, nil
	}

	fromRate, err := s.currencySvc.GetCurrencyRate(ctx, fromID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to resolve rate for currency %d: %w", fromID, err)
	}
	toRate, err := s.currencySvc.GetCurrencyRate(ctx, toID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to resolve rate for currency %d: %w", toID, err)
	}

	fromPerUnit, err := perUnitRate(fromRate.Rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("source currency %d: %w", fromID, err)
	}
	toPerUnit, err := perUnitRate(toRate.Rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("target currency %d: %w", toID, err)
	}
	if toPerUnit.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: target currency %d has a zero per-unit rate", apperrors.ErrValidation, toID)
	}

	result := amount.Mul(fromPerUnit).DivRound(toPerUnit, resultPrecision)

	s.cache.Put(key, result)
	return result, nil
}

// perUnitRate normalizes an official rate to its per-single-unit value. The
// scale must be positive; the gateway and the admin DTOs both enforce that,
// but a rate record is divided here, so the invariant is checked where the
// division happens.
func perUnitRate(rate domain.Rate) (decimal.Decimal, error) {
	if rate.Scale <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: rate has non-positive scale %d", apperrors.ErrValidation, rate.Scale)
	}
	return rate.OfficialRate.DivRound(decimal.NewFromInt(int64(rate.Scale)), perUnitPrecision), nil
}

// CreateRate persists a new rate and primes its (abbreviation, date) list entry.
func (s *conversionService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error) {
	date, err := dto.ParseRateDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	currency, err := s.currencySvc.GetCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d not found", apperrors.ErrValidation, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency %d: %w", req.CurrencyID, err)
	}

	rate := domain.Rate{
		OfficialRate: req.OfficialRate,
		Scale:        req.Scale,
		Date:         date,
		CurrencyID:   currency.ID,
		Currency:     currency,
	}

	saved, err := s.rateRepo.SaveRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate: %w", err)
	}

	s.cache.Put(ratesKey(currency.Abbreviation, date), []domain.Rate{*saved})
	return saved, nil
}

// GetRateByID retrieves a rate by its own id, caching successful lookups.
func (s *conversionService) GetRateByID(ctx context.Context, id int64) (*domain.Rate, error) {
	key := rateByIDKey(id)
	if rate, ok := cache.TypedGet[domain.Rate](s.cache, key); ok {
		return &rate, nil
	}

	rate, err := s.rateRepo.FindRateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, *rate)
	return rate, nil
}

// ListRates retrieves all persisted rates.
func (s *conversionService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	if rates, ok := cache.TypedGet[[]domain.Rate](s.cache, keyAllRates); ok {
		return rates, nil
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	s.cache.Put(keyAllRates, rates)
	return rates, nil
}

// UpdateRate overwrites an existing rate, refreshes its (abbreviation, date)
// list entry, and drops its by-id entry. Unrelated cached rates stay intact:
// a rate edit's blast radius is exactly known, unlike a currency edit's.
func (s *conversionService) UpdateRate(ctx context.Context, id int64, req dto.UpdateRateRequest) (*domain.Rate, error) {
	date, err := dto.ParseRateDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	existing, err := s.rateRepo.FindRateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencySvc.GetCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d not found", apperrors.ErrValidation, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency %d: %w", req.CurrencyID, err)
	}

	existing.OfficialRate = req.OfficialRate
	existing.Scale = req.Scale
	existing.Date = date
	existing.CurrencyID = currency.ID
	existing.Currency = currency

	updated, err := s.rateRepo.UpdateRate(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update rate %d: %w", id, err)
	}

	s.cache.Put(ratesKey(currency.Abbreviation, date), []domain.Rate{*updated})
	s.cache.Remove(rateByIDKey(id))
	return updated, nil
}

// DeleteRate removes a rate and invalidates exactly its own two cache keys.
func (s *conversionService) DeleteRate(ctx context.Context, id int64) error {
	rate, err := s.rateRepo.FindRateByID(ctx, id)
	if err != nil {
		return err
	}

	currency, err := s.currencySvc.GetCurrencyByID(ctx, rate.CurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up currency %d: %w", rate.CurrencyID, err)
	}

	if err := s.rateRepo.DeleteRate(ctx, id); err != nil {
		return err
	}

	if currency != nil {
		s.cache.Remove(ratesKey(currency.Abbreviation, rate.Date))
	}
	s.cache.Remove(rateByIDKey(id))
	return nil
}

// GetRatesByAbbreviationAndDate lists the rates recorded for a currency
// abbreviation on a calendar date.
func (s *conversionService) GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error) {
	if abbreviation == "" {
		return nil, fmt.Errorf("%w: abbreviation must not be empty", apperrors.ErrValidation)
	}

	key := ratesKey(abbreviation, date)
	if rates, ok := cache.TypedGet[[]domain.Rate](s.cache, key); ok {
		return rates, nil
	}

	rates, err := s.rateRepo.FindRatesByAbbreviationAndDate(ctx, abbreviation, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for %s: %w", abbreviation, err)
	}

	s.cache.Put(key, rates)
	return rates, nil
}
