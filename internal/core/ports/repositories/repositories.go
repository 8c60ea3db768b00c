package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Each storage adapter (postgres, mongo) builds one of these.
type RepositoryProvider struct {
	InvoiceRepo   InvoiceRepositoryFacade
	WorkspaceRepo WorkspaceRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
}
