package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/core/domain"
	portsrepo "github.com/belrates/currency-service/internal/core/ports/repositories"
	"github.com/belrates/currency-service/internal/models"
	"github.com/belrates/currency-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency reference data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindCurrencyByID retrieves a currency by its provider id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int) (*domain.CurrencyInfo, error) {
	query := `
		SELECT id, cur_code, cur_abbreviation, cur_name, cur_scale
		FROM currency_info
		WHERE id = $1;
	`
	var modelCurr models.CurrencyInfo
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.Abbreviation,
		&modelCurr.Name,
		&modelCurr.Scale,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", id, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	query := `
		SELECT id, cur_code, cur_abbreviation, cur_name, cur_scale
		FROM currency_info
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyInfo, error) {
		var currency models.CurrencyInfo
		err := row.Scan(
			&currency.ID,
			&currency.Code,
			&currency.Abbreviation,
			&currency.Name,
			&currency.Scale,
		)
		return currency, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// SaveCurrency persists a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyInfo) (*domain.CurrencyInfo, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currency_info (id, cur_code, cur_abbreviation, cur_name, cur_scale)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCurr.ID,
		modelCurr.Code,
		modelCurr.Abbreviation,
		modelCurr.Name,
		modelCurr.Scale,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.Abbreviation, err)
	}

	return &currency, nil
}

// SaveCurrencies bulk-persists currencies fetched from the provider. Conflicts
// on id are overwritten so a re-seed refreshes stale metadata.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.CurrencyInfo) ([]domain.CurrencyInfo, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO currency_info (id, cur_code, cur_abbreviation, cur_name, cur_scale)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			cur_code = EXCLUDED.cur_code,
			cur_abbreviation = EXCLUDED.cur_abbreviation,
			cur_name = EXCLUDED.cur_name,
			cur_scale = EXCLUDED.cur_scale;
	`
	for _, currency := range currencies {
		modelCurr := mapping.ToModelCurrency(currency)
		if _, err := tx.Exec(ctx, query,
			modelCurr.ID,
			modelCurr.Code,
			modelCurr.Abbreviation,
			modelCurr.Name,
			modelCurr.Scale,
		); err != nil {
			_ = r.Rollback(ctx, tx)
			return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.Abbreviation, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return currencies, nil
}

// UpdateCurrency overwrites an existing currency's attributes.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyInfo) (*domain.CurrencyInfo, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currency_info
		SET cur_code = $2, cur_abbreviation = $3, cur_name = $4, cur_scale = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCurr.ID,
		modelCurr.Code,
		modelCurr.Abbreviation,
		modelCurr.Name,
		modelCurr.Scale,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %d: %w", modelCurr.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return &currency, nil
}

// DeleteCurrency removes a currency; its rates go with it via the FK cascade.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currency_info WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
