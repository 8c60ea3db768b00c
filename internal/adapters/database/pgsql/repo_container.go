package pgsql

import (
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories over one pool.
func NewRepositoryProvider(dbPool DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
	}
}
