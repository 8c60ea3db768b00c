package mongo

import (
	"context"
	"fmt"

	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewRepositoryProvider wires the MongoDB repositories over one database.
func NewRepositoryProvider(db *mongo.Database) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:   newInvoiceRepository(db),
		WorkspaceRepo: newWorkspaceRepository(db),
		CustomerRepo:  newCustomerRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories query by. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(InvoicesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "workspaceId", Value: 1}, {Key: "issueDate", Value: -1}}},
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "invoiceNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create invoice indexes: %w", err)
	}

	_, err = db.Collection(WorkspacesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerUserId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace indexes: %w", err)
	}

	_, err = db.Collection(CustomersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "workspaceId", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}
	return nil
}
