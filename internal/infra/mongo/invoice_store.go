package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/acmecorp/finboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// invoiceRecord maps the invoices collection shape. Field mapping to the
// domain type is explicit; no shape coercion happens at read time.
type invoiceRecord struct {
	ID         string    `bson:"_id"`
	CustomerID string    `bson:"customer_id"`
	Amount     int64     `bson:"amount"`
	Status     string    `bson:"status"`
	Date       time.Time `bson:"date"`
}

func (r invoiceRecord) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
		Date:       r.Date,
	}
}

func toInvoiceRecord(inv domain.Invoice) invoiceRecord {
	return invoiceRecord{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date,
	}
}

// ListInvoices returns every invoice in natural (insertion) order. The
// engine sorts; relying on natural order here keeps the tie-break stable.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	ctx, span := tracer.Start(ctx, "Mongo.ListInvoices")
	defer span.End()

	var out []domain.Invoice
	err := c.run(ctx, "list invoices", func(ctx context.Context) error {
		cur, err := c.db.Collection(collInvoices).Find(ctx, bson.D{})
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var records []invoiceRecord
		if err := cur.All(ctx, &records); err != nil {
			return err
		}
		out = make([]domain.Invoice, 0, len(records))
		for _, r := range records {
			out = append(out, r.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvoice fetches a single invoice by id. A missing id is ErrNotFound,
// not a failed query.
func (c *Client) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, span := tracer.Start(ctx, "Mongo.GetInvoice")
	defer span.End()
	span.SetAttributes(attribute.String("invoice.id", id))

	var out *domain.Invoice
	err := c.run(ctx, "get invoice", func(ctx context.Context) error {
		var rec invoiceRecord
		err := c.db.Collection(collInvoices).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.ErrNotFound{Resource: "invoice", ID: id}
		}
		if err != nil {
			return err
		}
		inv := rec.toDomain()
		out = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountInvoices counts the full collection, unscoped by any filter.
func (c *Client) CountInvoices(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Mongo.CountInvoices")
	defer span.End()

	var n int64
	err := c.run(ctx, "count invoices", func(ctx context.Context) error {
		var err error
		n, err = c.db.Collection(collInvoices).CountDocuments(ctx, bson.D{})
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// SumAmountByStatus groups invoice amounts by status server-side. An empty
// collection yields zero totals.
func (c *Client) SumAmountByStatus(ctx context.Context) (paid, pending int64, err error) {
	ctx, span := tracer.Start(ctx, "Mongo.SumAmountByStatus")
	defer span.End()

	err = c.run(ctx, "sum invoice amounts", func(ctx context.Context) error {
		pipeline := mongo.Pipeline{
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$status"},
				{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			}}},
		}
		cur, err := c.db.Collection(collInvoices).Aggregate(ctx, pipeline)
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var groups []struct {
			Status string `bson:"_id"`
			Total  int64  `bson:"total"`
		}
		if err := cur.All(ctx, &groups); err != nil {
			return err
		}
		for _, g := range groups {
			switch g.Status {
			case domain.StatusPaid:
				paid = g.Total
			case domain.StatusPending:
				pending = g.Total
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return paid, pending, nil
}

// InsertInvoices bulk-inserts invoice records (seeding path).
func (c *Client) InsertInvoices(ctx context.Context, invoices []domain.Invoice) error {
	ctx, span := tracer.Start(ctx, "Mongo.InsertInvoices")
	defer span.End()

	if len(invoices) == 0 {
		return nil
	}
	return c.run(ctx, "insert invoices", func(ctx context.Context) error {
		docs := make([]any, 0, len(invoices))
		for _, inv := range invoices {
			docs = append(docs, toInvoiceRecord(inv))
		}
		_, err := c.db.Collection(collInvoices).InsertMany(ctx, docs)
		return err
	})
}

// DeleteAllInvoices clears the collection (seeding path).
func (c *Client) DeleteAllInvoices(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Mongo.DeleteAllInvoices")
	defer span.End()

	return c.run(ctx, "delete invoices", func(ctx context.Context) error {
		_, err := c.db.Collection(collInvoices).DeleteMany(ctx, bson.D{})
		return err
	})
}
