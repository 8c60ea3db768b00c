package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/fiscly/fiscly_backend/internal/handlers"
	"github.com/fiscly/fiscly_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, userID string, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, userID string, invoiceID string) error {
	args := m.Called(ctx, userID, invoiceID)
	return args.Error(0)
}
func (m *MockInvoiceService) BackfillWorkspace(ctx context.Context, workspaceID string) ([]domain.ConversionResult, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) InvoiceReport(ctx context.Context, userID string) (*domain.InvoiceReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceReport), args.Error(1)
}

// --- Mock FX service ---
type MockFXService struct {
	mock.Mock
}

func (m *MockFXService) Resolve(ctx context.Context, from, to string, date time.Time) domain.ResolvedRate {
	args := m.Called(ctx, from, to, date)
	return args.Get(0).(domain.ResolvedRate)
}
func (m *MockFXService) EnsureUSDConversion(ctx context.Context, invoice domain.Invoice) domain.ConversionResult {
	args := m.Called(ctx, invoice)
	return args.Get(0).(domain.ConversionResult)
}
func (m *MockFXService) EnsureUSDConversionBatch(ctx context.Context, invoices []domain.Invoice) []domain.ConversionResult {
	args := m.Called(ctx, invoices)
	return args.Get(0).([]domain.ConversionResult)
}

var _ portssvc.FXSvcFacade = (*MockFXService)(nil)

// --- Mock WorkspaceService ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) GetOrCreateWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) UpdateWorkspace(ctx context.Context, userID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

var _ portssvc.WorkspaceService = (*MockWorkspaceService)(nil)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, userID string, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, userID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, userID string, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, userID, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, userID string, customerID string) error {
	args := m.Called(ctx, userID, customerID)
	return args.Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	workspaces *MockWorkspaceService
	customers  *MockCustomerService
	invoices   *MockInvoiceService
	reporting  *MockReportingService
	fx         *MockFXService
	token      string
}

const (
	testUserID = "user-1"
	jwtSecret  = "test-secret-key-that-is-long-enough"
)

func (suite *HandlerTestSuite) SetupSuite() {
	suite.Require().NoError(dto.RegisterValidators())
	token, err := middleware.IssueToken(jwtSecret, "fiscly-test", testUserID, time.Hour)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default(), nil))

	suite.workspaces = new(MockWorkspaceService)
	suite.customers = new(MockCustomerService)
	suite.invoices = new(MockInvoiceService)
	suite.reporting = new(MockReportingService)
	suite.fx = new(MockFXService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(jwtSecret))
	handlers.RegisterWorkspaceRoutes(v1, suite.workspaces)
	handlers.RegisterCustomerRoutes(v1, suite.customers)
	handlers.RegisterInvoiceRoutes(v1, suite.invoices)
	handlers.RegisterReportingRoutes(v1, suite.reporting)
	handlers.RegisterFXRoutes(v1, suite.fx)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.workspaces.AssertExpectations(suite.T())
	suite.customers.AssertExpectations(suite.T())
	suite.invoices.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.fx.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func convertedInvoice() *domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:     "inv-1",
		WorkspaceID:   "ws-1",
		InvoiceNumber: "INV-001",
		Amount:        decimal.RequireFromString("500"),
		Currency:      "EUR",
		Status:        domain.InvoiceStatusSent,
		PaymentMethod: domain.PaymentMethodBankTransfer,
	}.WithFX(domain.FXFields{
		USDAmount: decimal.RequireFromString("585"),
		FXRate:    decimal.RequireFromString("1.17"),
		FXDate:    "2026-01-10",
		FXSource:  domain.FXSourceAPI,
	})
	return &inv
}

func (suite *HandlerTestSuite) TestCreateInvoice() {
	suite.invoices.On("CreateInvoice", mock.Anything, testUserID, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.InvoiceNumber == "INV-001" && req.Currency == "eur" && req.Amount.Equal(decimal.RequireFromString("500"))
	})).Return(convertedInvoice(), nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/invoices",
		`{"customerID":"cust-1","invoiceNumber":"INV-001","dueDate":"2026-02-10T00:00:00Z","amount":"500","currency":"eur"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.True(resp.USDAmount.Equal(decimal.RequireFromString("585")))
	suite.Equal(domain.FXSourceAPI, *resp.FXSource)
}

func (suite *HandlerTestSuite) TestCreateInvoiceRejectsBadCurrency() {
	rec := suite.do(http.MethodPost, "/api/v1/invoices",
		`{"customerID":"cust-1","invoiceNumber":"INV-001","dueDate":"2026-02-10T00:00:00Z","currency":"EURO"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateInvoiceDuplicate() {
	suite.invoices.On("CreateInvoice", mock.Anything, testUserID, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	rec := suite.do(http.MethodPost, "/api/v1/invoices",
		`{"customerID":"cust-1","invoiceNumber":"INV-001","dueDate":"2026-02-10T00:00:00Z"}`)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *HandlerTestSuite) TestGetInvoiceNotFound() {
	suite.invoices.On("GetInvoice", mock.Anything, testUserID, "missing").
		Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	rec := suite.do(http.MethodGet, "/api/v1/invoices/missing", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *HandlerTestSuite) TestGetInvoiceUnexpectedErrorIsHidden() {
	suite.invoices.On("GetInvoice", mock.Anything, testUserID, "inv-1").
		Return(nil, errors.New("pq: connection refused")).Once()

	rec := suite.do(http.MethodGet, "/api/v1/invoices/inv-1", "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.NotContains(rec.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestListInvoices() {
	suite.invoices.On("ListInvoices", mock.Anything, testUserID, 10, 5).
		Return([]domain.Invoice{*convertedInvoice()}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/invoices?limit=10&offset=5", "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp []dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *HandlerTestSuite) TestListInvoicesDefaultsAndBounds() {
	suite.invoices.On("ListInvoices", mock.Anything, testUserID, 50, 0).Return([]domain.Invoice{}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/invoices", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/invoices?limit=1000", "").Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoice() {
	suite.invoices.On("UpdateInvoice", mock.Anything, testUserID, "inv-1", mock.MatchedBy(func(req dto.UpdateInvoiceRequest) bool {
		return req.Currency != nil && *req.Currency == "GBP" && req.Amount == nil
	})).Return(convertedInvoice(), nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/invoices/inv-1", `{"currency":"GBP"}`)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *HandlerTestSuite) TestDeleteInvoice() {
	suite.invoices.On("DeleteInvoice", mock.Anything, testUserID, "inv-1").Return(nil).Once()

	rec := suite.do(http.MethodDelete, "/api/v1/invoices/inv-1", "")

	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *HandlerTestSuite) TestInvoiceReport() {
	suite.reporting.On("InvoiceReport", mock.Anything, testUserID).Return(&domain.InvoiceReport{
		WorkspaceID:     "ws-1",
		TotalRevenueUSD: decimal.RequireFromString("585"),
		PaidAmountUSD:   decimal.Zero,
		OutstandingUSD:  decimal.RequireFromString("585"),
		InvoiceCount:    1,
		ByStatus:        map[domain.InvoiceStatus]int{domain.InvoiceStatusSent: 1},
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/reports", "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.InvoiceReportResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.True(resp.Summary.OutstandingUSD.Equal(decimal.RequireFromString("585")))
	suite.Equal(1, resp.ByStatus["sent"])
}

func (suite *HandlerTestSuite) TestResolveRate() {
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	suite.fx.On("Resolve", mock.Anything, "EUR", "USD", date).Return(domain.ResolvedRate{
		Rate:   decimal.RequireFromString("1.15"),
		Date:   "2026-01-08",
		Source: domain.FXSourceAPIFallback,
	}).Once()

	rec := suite.do(http.MethodGet, "/api/v1/fx/rates/eur?date=2026-01-10", "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.FXRateResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("2026-01-10", resp.RequestedDate)
	suite.Equal("2026-01-08", resp.RateDate)
	suite.Equal(domain.FXSourceAPIFallback, resp.Source)
	suite.False(resp.Degraded)
}

func (suite *HandlerTestSuite) TestResolveRateRejectsBadInput() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/fx/rates/EU", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/fx/rates/EUR?date=10-01-2026", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/fx/rates/EUR?date=2026-02-30", "").Code)
	suite.fx.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetWorkspaceCreatesOnFirstAccess() {
	suite.workspaces.On("GetOrCreateWorkspace", mock.Anything, testUserID).Return(&domain.Workspace{
		WorkspaceID:         "ws-new",
		OwnerUserID:         testUserID,
		Name:                domain.DefaultWorkspaceName,
		DefaultCurrencyCode: "USD",
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/workspace", "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.WorkspaceResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("ws-new", resp.WorkspaceID)
	suite.Equal(domain.DefaultWorkspaceName, resp.Name)
}

func (suite *HandlerTestSuite) TestUpdateWorkspace() {
	suite.workspaces.On("UpdateWorkspace", mock.Anything, testUserID, mock.MatchedBy(func(req dto.UpdateWorkspaceRequest) bool {
		return req.Name != nil && *req.Name == "Acme GmbH" && req.DefaultCurrencyCode != nil && req.Email == nil
	})).Return(&domain.Workspace{WorkspaceID: "ws-1", Name: "Acme GmbH", DefaultCurrencyCode: "EUR"}, nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/workspace", `{"name":"Acme GmbH","defaultCurrencyCode":"eur"}`)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"defaultCurrencyCode":"EUR"`)
}

func (suite *HandlerTestSuite) TestUpdateWorkspaceRejectsBadInput() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/workspace", `{"defaultCurrencyCode":"EURO"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/workspace", `{"email":"not-an-email"}`).Code)
	suite.workspaces.AssertNotCalled(suite.T(), "UpdateWorkspace", mock.Anything, mock.Anything, mock.Anything)
}

func sampleCustomer() *domain.Customer {
	return &domain.Customer{
		CustomerID:  "cust-1",
		WorkspaceID: "ws-1",
		Name:        "Acme GmbH",
		Email:       "billing@acme.test",
		Status:      domain.CustomerStatusActive,
	}
}

func (suite *HandlerTestSuite) TestCreateCustomer() {
	suite.customers.On("CreateCustomer", mock.Anything, testUserID, mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
		return req.Name == "Acme GmbH" && req.Email == "billing@acme.test" && req.Status == ""
	})).Return(sampleCustomer(), nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/customers", `{"name":"Acme GmbH","email":"billing@acme.test"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("cust-1", resp.CustomerID)
	suite.Equal(domain.CustomerStatusActive, resp.Status)
}

func (suite *HandlerTestSuite) TestCreateCustomerRejectsBadInput() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/customers", `{"email":"billing@acme.test"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/customers", `{"name":"Acme","email":"nope"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/customers", `{"name":"Acme","email":"a@b.test","status":"archived"}`).Code)
	suite.customers.AssertNotCalled(suite.T(), "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCustomers() {
	suite.customers.On("ListCustomers", mock.Anything, testUserID).Return([]domain.Customer{*sampleCustomer()}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/customers", "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp []dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *HandlerTestSuite) TestGetCustomerNotFound() {
	suite.customers.On("GetCustomer", mock.Anything, testUserID, "cust-x").
		Return(nil, apperrors.NewNotFoundError("customer not found")).Once()

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/customers/cust-x", "").Code)
}

func (suite *HandlerTestSuite) TestUpdateCustomer() {
	suite.customers.On("UpdateCustomer", mock.Anything, testUserID, "cust-1", mock.MatchedBy(func(req dto.UpdateCustomerRequest) bool {
		return req.Status != nil && *req.Status == domain.CustomerStatusInactive && req.Name == nil
	})).Return(sampleCustomer(), nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/customers/cust-1", `{"status":"inactive"}`)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *HandlerTestSuite) TestDeleteCustomer() {
	suite.customers.On("DeleteCustomer", mock.Anything, testUserID, "cust-1").Return(nil).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/customers/cust-1", "").Code)
}

func (suite *HandlerTestSuite) TestCreateInvoiceForForeignCustomer() {
	suite.invoices.On("CreateInvoice", mock.Anything, testUserID, mock.Anything).
		Return(nil, apperrors.NewValidationError("customer cust-9 not found in workspace")).Once()

	rec := suite.do(http.MethodPost, "/api/v1/invoices",
		`{"customerID":"cust-9","invoiceNumber":"INV-001","dueDate":"2026-02-10T00:00:00Z"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "cust-9")
}

func (suite *HandlerTestSuite) TestMissingTokenIsUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
