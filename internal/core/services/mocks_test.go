package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, workspaceID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceFX(ctx context.Context, invoiceID string, fx domain.FXFields) error {
	args := m.Called(ctx, invoiceID, fx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ReplaceInvoiceItems(ctx context.Context, invoiceID string, items []domain.InvoiceItem) error {
	args := m.Called(ctx, invoiceID, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock WorkspaceRepository ---
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindWorkspaceByOwner(ctx context.Context, ownerUserID string) (*domain.Workspace, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock FX service ---
type MockFXService struct {
	mock.Mock
}

func (m *MockFXService) EnsureUSDConversion(ctx context.Context, invoice domain.Invoice) domain.ConversionResult {
	args := m.Called(ctx, invoice)
	if fn, ok := args.Get(0).(func(context.Context, domain.Invoice) domain.ConversionResult); ok {
		return fn(ctx, invoice)
	}
	return args.Get(0).(domain.ConversionResult)
}

func (m *MockFXService) EnsureUSDConversionBatch(ctx context.Context, invoices []domain.Invoice) []domain.ConversionResult {
	args := m.Called(ctx, invoices)
	return args.Get(0).([]domain.ConversionResult)
}

// --- Scripted rate provider ---

// fakeProvider answers from fixed tables and records every call.
// Dates missing from historical have no rate; failHistorical/failLatest make calls error.
type fakeProvider struct {
	mu             sync.Mutex
	name           string
	historical     map[string]string // YYYY-MM-DD -> rate
	latest         string            // empty means no rate
	failHistorical bool
	failLatest     bool
	calls          []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{name: "fake", historical: map[string]string{}}
}

func (p *fakeProvider) HistoricalRate(_ context.Context, from, to string, date time.Time) (*decimal.Decimal, error) {
	day := domain.FormatFXDate(date)
	p.record("historical:" + day)
	if p.failHistorical {
		return nil, fmt.Errorf("dial tcp: connection refused")
	}
	raw, ok := p.historical[day]
	if !ok {
		return nil, nil
	}
	rate := decimal.RequireFromString(raw)
	return &rate, nil
}

func (p *fakeProvider) LatestRate(_ context.Context, from, to string) (*decimal.Decimal, error) {
	p.record("latest")
	if p.failLatest {
		return nil, fmt.Errorf("dial tcp: connection refused")
	}
	if p.latest == "" {
		return nil, nil
	}
	rate := decimal.RequireFromString(p.latest)
	return &rate, nil
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) record(call string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
}

func (p *fakeProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *fakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(domain.FXDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}
