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

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool DB) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var (
	_ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)
	_ portsrepo.RepositoryWithTx        = (*PgxInvoiceRepository)(nil)
)

const invoiceColumns = `invoice_id, workspace_id, customer_id, invoice_number, issue_date, due_date, amount, currency,
	status, payment_method, description, notes, paid_date, usd_amount, fx_rate, fx_date, fx_source,
	created_at, created_by, last_updated_at, last_updated_by`

const insertItemQuery = `
	INSERT INTO invoice_items (invoice_item_id, invoice_id, description, quantity, unit_price, total, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// SaveInvoice inserts an invoice and its items in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID,
		m.WorkspaceID,
		m.CustomerID,
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		m.Amount,
		m.Currency,
		m.Status,
		m.PaymentMethod,
		m.Description,
		m.Notes,
		m.PaidDate,
		m.USDAmount,
		m.FXRate,
		m.FXDate,
		m.FXSource,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "save invoice "+m.InvoiceID)
	}

	if err := r.insertItems(ctx, tx, invoice.Items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice and its items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, translateError(err, "find invoice "+invoiceID)
	}
	invoice := mapping.ToDomainInvoice(m)

	itemsByInvoice, err := r.findItems(ctx, []string{invoiceID})
	if err != nil {
		return nil, err
	}
	invoice.Items = itemsByInvoice[invoiceID]
	return &invoice, nil
}

// ListInvoicesByWorkspace lists a workspace's invoices, newest issue date first.
// A limit of 0 returns every invoice.
func (r *PgxInvoiceRepository) ListInvoicesByWorkspace(ctx context.Context, workspaceID string, limit int, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE workspace_id = $1
		ORDER BY issue_date DESC NULLS LAST, created_at DESC, invoice_id
		OFFSET $2
	`
	args := []any{workspaceID, offset}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list invoices for workspace "+workspaceID)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	ids := []string{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, translateError(err, "scan invoice")
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
		ids = append(ids, m.InvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate invoices")
	}
	if len(ids) == 0 {
		return invoices, nil
	}

	itemsByInvoice, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].InvoiceID]
	}
	return invoices, nil
}

// UpdateInvoiceFX writes the four conversion columns only.
func (r *PgxInvoiceRepository) UpdateInvoiceFX(ctx context.Context, invoiceID string, fx domain.FXFields) error {
	query := `
		UPDATE invoices
		SET usd_amount = $2, fx_rate = $3, fx_date = $4, fx_source = $5
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, fx.USDAmount, fx.FXRate, fx.FXDate, string(fx.FXSource))
	if err != nil {
		return translateError(err, "update conversion of invoice "+invoiceID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateInvoice overwrites the editable columns, including the conversion columns.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET customer_id = $2, invoice_number = $3, issue_date = $4, due_date = $5, amount = $6, currency = $7,
			status = $8, payment_method = $9, description = $10, notes = $11, paid_date = $12,
			usd_amount = $13, fx_rate = $14, fx_date = $15, fx_source = $16,
			last_updated_at = $17, last_updated_by = $18
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.CustomerID,
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		m.Amount,
		m.Currency,
		m.Status,
		m.PaymentMethod,
		m.Description,
		m.Notes,
		m.PaidDate,
		m.USDAmount,
		m.FXRate,
		m.FXDate,
		m.FXSource,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "update invoice "+m.InvoiceID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", m.InvoiceID, apperrors.ErrNotFound)
	}
	return nil
}

// ReplaceInvoiceItems swaps every line of an invoice in one transaction.
func (r *PgxInvoiceRepository) ReplaceInvoiceItems(ctx context.Context, invoiceID string, items []domain.InvoiceItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return translateError(err, "delete items of invoice "+invoiceID)
	}
	if err := r.insertItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteInvoice removes an invoice. Items go with it through ON DELETE CASCADE.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return translateError(err, "delete invoice "+invoiceID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) insertItems(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, item := range mapping.ToModelInvoiceItems(items) {
		batch.Queue(insertItemQuery,
			item.InvoiceItemID,
			item.InvoiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.Total,
			item.Position,
		)
	}
	// Close the batch results to surface the first failing insert
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "insert invoice items")
	}
	return nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceIDs []string) (map[string][]domain.InvoiceItem, error) {
	query := `
		SELECT invoice_item_id, invoice_id, description, quantity, unit_price, total, position
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, translateError(err, "find invoice items")
	}
	defer rows.Close()

	grouped := make(map[string][]models.InvoiceItem)
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(
			&item.InvoiceItemID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
			&item.Position,
		); err != nil {
			return nil, translateError(err, "scan invoice item")
		}
		grouped[item.InvoiceID] = append(grouped[item.InvoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate invoice items")
	}

	out := make(map[string][]domain.InvoiceItem, len(grouped))
	for id, items := range grouped {
		out[id] = mapping.ToDomainInvoiceItems(items)
	}
	return out, nil
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.WorkspaceID,
		&m.CustomerID,
		&m.InvoiceNumber,
		&m.IssueDate,
		&m.DueDate,
		&m.Amount,
		&m.Currency,
		&m.Status,
		&m.PaymentMethod,
		&m.Description,
		&m.Notes,
		&m.PaidDate,
		&m.USDAmount,
		&m.FXRate,
		&m.FXDate,
		&m.FXSource,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
