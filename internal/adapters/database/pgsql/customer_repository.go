package pgsql

import (
	"context"
	"fmt"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"github.com/fiscly/fiscly_backend/internal/models"
	"github.com/fiscly/fiscly_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool DB) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, workspace_id, name, email, phone, company, address, tax_id, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.WorkspaceID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Company,
		&m.Address,
		&m.TaxID,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.WorkspaceID,
		m.Name,
		m.Email,
		m.Phone,
		m.Company,
		m.Address,
		m.TaxID,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "save customer "+m.CustomerID)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		return nil, translateError(err, "find customer "+customerID)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

// ListCustomersByWorkspace returns a workspace's customers ordered by name.
func (r *PgxCustomerRepository) ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE workspace_id = $1
		ORDER BY name, customer_id;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, translateError(err, "list customers for workspace "+workspaceID)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, translateError(err, "scan customer")
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate customers")
	}
	return customers, nil
}

// UpdateCustomer overwrites the editable columns.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, company = $5, address = $6, tax_id = $7, status = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Email,
		m.Phone,
		m.Company,
		m.Address,
		m.TaxID,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "update customer "+m.CustomerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", m.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes a customer. Invoices keep their rows with customer_id set to NULL.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return translateError(err, "delete customer "+customerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	return nil
}
