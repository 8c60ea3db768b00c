package mongo

import (
	"context"
	"fmt"

	"github.com/fiscly/fiscly_backend/internal/apperrors"
	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portsrepo "github.com/fiscly/fiscly_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type customerRepository struct {
	collection *mongo.Collection
	invoices   *mongo.Collection
}

func newCustomerRepository(db *mongo.Database) *customerRepository {
	return &customerRepository{
		collection: db.Collection(CustomersCollection),
		invoices:   db.Collection(InvoicesCollection),
	}
}

var _ portsrepo.CustomerRepositoryFacade = (*customerRepository)(nil)

func (r *customerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if _, err := r.collection.InsertOne(ctx, toCustomerDocument(customer)); err != nil {
		return translateError(err, "save customer "+customer.CustomerID)
	}
	return nil
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var doc customerDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": customerID}).Decode(&doc); err != nil {
		return nil, translateError(err, "find customer "+customerID)
	}
	customer := doc.toDomain()
	return &customer, nil
}

func (r *customerRepository) ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"workspaceId": workspaceID}, opts)
	if err != nil {
		return nil, translateError(err, "list customers for workspace "+workspaceID)
	}
	defer cursor.Close(ctx)

	customers := []domain.Customer{}
	for cursor.Next(ctx) {
		var doc customerDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, translateError(err, "decode customer")
		}
		customers = append(customers, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError(err, "iterate customers")
	}
	return customers, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	doc := toCustomerDocument(customer)
	update := bson.M{"$set": bson.M{
		"name":          doc.Name,
		"email":         doc.Email,
		"phone":         doc.Phone,
		"company":       doc.Company,
		"address":       doc.Address,
		"taxId":         doc.TaxID,
		"status":        doc.Status,
		"notes":         doc.Notes,
		"lastUpdatedAt": doc.LastUpdatedAt,
		"lastUpdatedBy": doc.LastUpdatedBy,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.CustomerID}, update)
	if err != nil {
		return translateError(err, "update customer "+doc.CustomerID)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer %s: %w", doc.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes the customer and detaches it from its invoices.
func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": customerID})
	if err != nil {
		return translateError(err, "delete customer "+customerID)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	_, err = r.invoices.UpdateMany(ctx, bson.M{"customerId": customerID}, bson.M{"$unset": bson.M{"customerId": ""}})
	if err != nil {
		return translateError(err, "detach invoices from customer "+customerID)
	}
	return nil
}
