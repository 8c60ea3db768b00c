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

type invoiceRepository struct {
	collection *mongo.Collection
}

func newInvoiceRepository(db *mongo.Database) *invoiceRepository {
	return &invoiceRepository{collection: db.Collection(InvoicesCollection)}
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	if _, err := r.collection.InsertOne(ctx, toInvoiceDocument(invoice)); err != nil {
		return translateError(err, "save invoice "+invoice.InvoiceID)
	}
	return nil
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var doc invoiceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": invoiceID}).Decode(&doc); err != nil {
		return nil, translateError(err, "find invoice "+invoiceID)
	}
	invoice, err := doc.toDomain()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode invoice "+invoiceID, err)
	}
	return &invoice, nil
}

// ListInvoicesByWorkspace lists a workspace's invoices, newest issue date first.
// A limit of 0 returns every invoice.
func (r *invoiceRepository) ListInvoicesByWorkspace(ctx context.Context, workspaceID string, limit int, offset int) ([]domain.Invoice, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "issueDate", Value: -1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"workspaceId": workspaceID}, opts)
	if err != nil {
		return nil, translateError(err, "list invoices for workspace "+workspaceID)
	}
	defer cursor.Close(ctx)

	invoices := []domain.Invoice{}
	for cursor.Next(ctx) {
		var doc invoiceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, translateError(err, "decode invoice")
		}
		invoice, err := doc.toDomain()
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode invoice "+doc.InvoiceID, err)
		}
		invoices = append(invoices, invoice)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError(err, "iterate invoices")
	}
	return invoices, nil
}

// UpdateInvoiceFX writes the conversion sub-document only.
func (r *invoiceRepository) UpdateInvoiceFX(ctx context.Context, invoiceID string, fx domain.FXFields) error {
	update := bson.M{"$set": bson.M{"fx": newFXDocument(fx)}}
	return r.updateOne(ctx, invoiceID, update, "update conversion of invoice "+invoiceID)
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	doc := toInvoiceDocument(invoice)
	set := bson.M{
		"customerId":    doc.CustomerID,
		"invoiceNumber": doc.InvoiceNumber,
		"issueDate":     doc.IssueDate,
		"dueDate":       doc.DueDate,
		"amount":        doc.Amount,
		"currency":      doc.Currency,
		"status":        doc.Status,
		"paymentMethod": doc.PaymentMethod,
		"description":   doc.Description,
		"notes":         doc.Notes,
		"paidDate":      doc.PaidDate,
		"lastUpdatedAt": doc.LastUpdatedAt,
		"lastUpdatedBy": doc.LastUpdatedBy,
	}
	update := bson.M{"$set": set}
	if doc.FX != nil {
		set["fx"] = doc.FX
	} else {
		update["$unset"] = bson.M{"fx": ""}
	}
	return r.updateOne(ctx, invoice.InvoiceID, update, "update invoice "+invoice.InvoiceID)
}

func (r *invoiceRepository) ReplaceInvoiceItems(ctx context.Context, invoiceID string, items []domain.InvoiceItem) error {
	update := bson.M{"$set": bson.M{"items": toItemDocuments(items)}}
	return r.updateOne(ctx, invoiceID, update, "replace items of invoice "+invoiceID)
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": invoiceID})
	if err != nil {
		return translateError(err, "delete invoice "+invoiceID)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) updateOne(ctx context.Context, invoiceID string, update bson.M, what string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": invoiceID}, update)
	if err != nil {
		return translateError(err, what)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}
