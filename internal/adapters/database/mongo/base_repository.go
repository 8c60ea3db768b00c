package mongo

import (
	"errors"
	"fmt"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	InvoicesCollection   = "invoices"
	WorkspacesCollection = "workspaces"
	CustomersCollection  = "customers"
)

// translateError maps driver errors onto the application sentinels.
func translateError(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, what)
	}
	return apperrors.NewAppError(500, "failed to "+what, err)
}
