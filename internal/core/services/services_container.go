package services

import (
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/metrics"
	"github.com/fiscly/fiscly_backend/internal/platform/config"
)

// FXDependencies are the collaborators of the FX service built outside the core.
type FXDependencies struct {
	Provider    providers.RateProvider
	Alternative providers.RateProvider // Optional
	Cache       providers.RateCache
	Metrics     *metrics.Registry // Optional
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fxDeps FXDependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	resolver := NewConfiguredResolver(cfg, fxDeps)

	container.FX = NewFXService(resolver, repos.InvoiceRepo,
		WithBatchLimit(cfg.FXBatchLimit),
		WithFXMetrics(fxDeps.Metrics),
	)
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.WorkspaceRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.WorkspaceRepo, repos.CustomerRepo, container.FX)
	container.Reporting = NewReportingService(repos.InvoiceRepo, repos.WorkspaceRepo, container.FX)

	return container
}

// NewConfiguredResolver builds the rate resolver from configuration. It needs no repositories.
func NewConfiguredResolver(cfg *config.Config, fxDeps FXDependencies) portssvc.RateResolverSvc {
	resolverOptions := []RateResolverOption{
		WithFallbackDays(cfg.FXFallbackDays),
		WithResolverMetrics(fxDeps.Metrics),
	}
	if fxDeps.Alternative != nil {
		resolverOptions = append(resolverOptions, WithAlternativeProvider(fxDeps.Alternative))
	}
	return NewRateResolver(fxDeps.Provider, fxDeps.Cache, resolverOptions...)
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.FXSvcFacade       = (*fxService)(nil)
	_ portssvc.WorkspaceService  = (*workspaceService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
	_ portssvc.InvoiceSvcFacade  = (*invoiceService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
