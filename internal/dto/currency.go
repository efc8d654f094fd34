package dto

import "github.com/belrates/currency-service/internal/core/domain"

// CreateCurrencyRequest defines the data needed to register a currency manually.
type CreateCurrencyRequest struct {
	ID           int    `json:"id" binding:"required,gt=0"`
	Code         string `json:"code" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required,uppercase,min=3,max=3"`
	Name         string `json:"name" binding:"required"`
	Scale        int    `json:"scale" binding:"required,gt=0"`
}

// UpdateCurrencyRequest defines the data for overwriting a currency's attributes.
type UpdateCurrencyRequest struct {
	Code         string `json:"code" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required,uppercase,min=3,max=3"`
	Name         string `json:"name" binding:"required"`
	Scale        int    `json:"scale" binding:"required,gt=0"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Scale        int    `json:"scale"`
}

// ToCurrencyResponse converts a domain.CurrencyInfo to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.CurrencyInfo) CurrencyResponse {
	return CurrencyResponse{
		ID:           c.ID,
		Code:         c.Code,
		Abbreviation: c.Abbreviation,
		Name:         c.Name,
		Scale:        c.Scale,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyInfo to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyInfo) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}
