package mapping

import (
	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/models"
)

// ToModelCurrency converts a domain CurrencyInfo to a model CurrencyInfo
func ToModelCurrency(d domain.CurrencyInfo) models.CurrencyInfo {
	return models.CurrencyInfo{
		ID:           d.ID,
		Code:         d.Code,
		Abbreviation: d.Abbreviation,
		Name:         d.Name,
		Scale:        d.Scale,
	}
}

// ToDomainCurrency converts a model CurrencyInfo to a domain CurrencyInfo
func ToDomainCurrency(m models.CurrencyInfo) domain.CurrencyInfo {
	return domain.CurrencyInfo{
		ID:           m.ID,
		Code:         m.Code,
		Abbreviation: m.Abbreviation,
		Name:         m.Name,
		Scale:        m.Scale,
	}
}

// ToDomainCurrencySlice converts a slice of model CurrencyInfos to domain CurrencyInfos
func ToDomainCurrencySlice(ms []models.CurrencyInfo) []domain.CurrencyInfo {
	ds := make([]domain.CurrencyInfo, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
