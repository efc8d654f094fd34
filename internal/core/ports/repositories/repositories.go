package repositories

// RepositoryProvider bundles the repositories handed to the service layer.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	RateRepo     RateRepositoryFacade
}
