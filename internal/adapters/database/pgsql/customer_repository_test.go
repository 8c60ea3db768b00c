package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB answers Exec with a fixed command tag and QueryRow with a fixed row.
type fakeDB struct {
	tag     pgconn.CommandTag
	execErr error
	row     pgx.Row
	sql     string
	args    []any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return f.tag, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("not used")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	panic("not used")
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func TestCustomerRepository_DeleteMissing(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}
	repo := newPgxCustomerRepository(db)

	err := repo.DeleteCustomer(context.Background(), "cust-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, []any{"cust-x"}, db.args)
}

func TestCustomerRepository_UpdateMissing(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}
	repo := newPgxCustomerRepository(db)

	err := repo.UpdateCustomer(context.Background(), domain.Customer{CustomerID: "cust-x", Status: domain.CustomerStatusActive})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCustomerRepository_SaveDuplicate(t *testing.T) {
	db := &fakeDB{execErr: &pgconn.PgError{Code: "23505"}}
	repo := newPgxCustomerRepository(db)

	err := repo.SaveCustomer(context.Background(), domain.Customer{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, db.args, 14)
}

func TestCustomerRepository_FindByID(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{row: rowFunc(func(dest ...any) error {
		require.Len(t, dest, 14)
		*dest[0].(*string) = "cust-1"
		*dest[1].(*string) = "ws-1"
		*dest[2].(*string) = "Acme"
		*dest[3].(*string) = "billing@acme.test"
		*dest[8].(*string) = "inactive"
		*dest[10].(*time.Time) = created
		return nil
	})}
	repo := newPgxCustomerRepository(db)

	c, err := repo.FindCustomerByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "ws-1", c.WorkspaceID)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, domain.CustomerStatusInactive, c.Status)
	assert.Equal(t, created, c.CreatedAt)
}

func TestCustomerRepository_FindMissing(t *testing.T) {
	db := &fakeDB{row: rowFunc(func(...any) error { return pgx.ErrNoRows })}
	repo := newPgxCustomerRepository(db)

	_, err := repo.FindCustomerByID(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
