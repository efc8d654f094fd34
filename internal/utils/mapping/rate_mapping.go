package mapping

import (
	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate. The attached currency,
// if any, is flattened to its id; the row carries only the foreign key.
func ToModelRate(d domain.Rate) models.Rate {
	currencyID := d.CurrencyID
	if currencyID == 0 && d.Currency != nil {
		currencyID = d.Currency.ID
	}
	return models.Rate{
		ID:           d.ID,
		OfficialRate: d.OfficialRate,
		Scale:        d.Scale,
		Date:         d.Date,
		CurrencyID:   currencyID,
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		ID:           m.ID,
		OfficialRate: m.OfficialRate,
		Scale:        m.Scale,
		Date:         m.Date,
		CurrencyID:   m.CurrencyID,
	}
}

// ToDomainRateSlice converts a slice of model Rates to domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
