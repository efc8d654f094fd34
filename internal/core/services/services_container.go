package services

import (
	"github.com/belrates/currency-service/internal/core/ports"
	portsrepo "github.com/belrates/currency-service/internal/core/ports/repositories"
	portssvc "github.com/belrates/currency-service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, provider ports.RateProvider, c ports.Cache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency resolution comes first since conversion resolves rates through it
	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.RateRepo, provider, c)
	container.Conversion = NewConversionService(container.Currency, repos.RateRepo, c)

	return container
}
