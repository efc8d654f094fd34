package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/core/domain"
	portsrepo "github.com/belrates/currency-service/internal/core/ports/repositories"
	"github.com/belrates/currency-service/internal/models"
	"github.com/belrates/currency-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the rate repository ports using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for daily rates.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// FindRateByID retrieves a rate by its own id.
func (r *PgxRateRepository) FindRateByID(ctx context.Context, id int64) (*domain.Rate, error) {
	query := `
		SELECT id, cur_official_rate, cur_scale, date, currency_id
		FROM currency_rate
		WHERE id = $1;
	`
	var modelRate models.Rate
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelRate.ID,
		&modelRate.OfficialRate,
		&modelRate.Scale,
		&modelRate.Date,
		&modelRate.CurrencyID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate by id %d: %w", id, err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// FindRateByCurrencyAndDate retrieves the rate persisted for a currency on a
// given calendar date, if any.
func (r *PgxRateRepository) FindRateByCurrencyAndDate(ctx context.Context, currencyID int, date time.Time) (*domain.Rate, error) {
	query := `
		SELECT id, cur_official_rate, cur_scale, date, currency_id
		FROM currency_rate
		WHERE currency_id = $1 AND date = $2
		LIMIT 1;
	`
	var modelRate models.Rate
	err := r.Pool.QueryRow(ctx, query, currencyID, date).Scan(
		&modelRate.ID,
		&modelRate.OfficialRate,
		&modelRate.Scale,
		&modelRate.Date,
		&modelRate.CurrencyID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate for currency %d on %s: %w", currencyID, date.Format("2006-01-02"), err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// FindRatesByAbbreviationAndDate retrieves all rates recorded on the given
// date for the currency with the given abbreviation.
func (r *PgxRateRepository) FindRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error) {
	query := `
		SELECT cr.id, cr.cur_official_rate, cr.cur_scale, cr.date, cr.currency_id
		FROM currency_rate cr
		JOIN currency_info ci ON ci.id = cr.currency_id
		WHERE ci.cur_abbreviation = $1 AND cr.date = $2
		ORDER BY cr.id;
	`
	rows, err := r.Pool.Query(ctx, query, abbreviation, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for %s: %w", abbreviation, err)
	}
	defer rows.Close()

	modelRates, err := collectRates(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRateSlice(modelRates), nil
}

// ListRates retrieves all persisted rates.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query := `
		SELECT id, cur_official_rate, cur_scale, date, currency_id
		FROM currency_rate
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := collectRates(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRateSlice(modelRates), nil
}

// SaveRate persists a new rate and returns it with the generated id.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	modelRate := mapping.ToModelRate(rate)

	query := `
		INSERT INTO currency_rate (cur_official_rate, cur_scale, date, currency_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelRate.OfficialRate,
		modelRate.Scale,
		modelRate.Date,
		modelRate.CurrencyID,
	).Scan(&modelRate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save rate for currency %d: %w", modelRate.CurrencyID, err)
	}

	saved := mapping.ToDomainRate(modelRate)
	saved.Currency = rate.Currency
	return &saved, nil
}

// UpdateRate overwrites an existing rate's attributes.
func (r *PgxRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	modelRate := mapping.ToModelRate(rate)

	query := `
		UPDATE currency_rate
		SET cur_official_rate = $2, cur_scale = $3, date = $4, currency_id = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelRate.ID,
		modelRate.OfficialRate,
		modelRate.Scale,
		modelRate.Date,
		modelRate.CurrencyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update rate %d: %w", modelRate.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return &rate, nil
}

// DeleteRate removes a rate by id.
func (r *PgxRateRepository) DeleteRate(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currency_rate WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rate %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectRates(rows pgx.Rows) ([]models.Rate, error) {
	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		var rate models.Rate
		err := row.Scan(
			&rate.ID,
			&rate.OfficialRate,
			&rate.Scale,
			&rate.Date,
			&rate.CurrencyID,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}
	return modelRates, nil
}
