package mongo

import (
	"context"

	"github.com/acmecorp/finboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// customerRecord maps the customers collection shape.
type customerRecord struct {
	ID       string `bson:"_id"`
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	ImageURL string `bson:"image_url"`
}

func (r customerRecord) toDomain() domain.Customer {
	return domain.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		ImageURL: r.ImageURL,
	}
}

// ListCustomers returns every customer record.
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "Mongo.ListCustomers")
	defer span.End()

	var out []domain.Customer
	err := c.run(ctx, "list customers", func(ctx context.Context) error {
		cur, err := c.db.Collection(collCustomers).Find(ctx, bson.D{})
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var records []customerRecord
		if err := cur.All(ctx, &records); err != nil {
			return err
		}
		out = make([]domain.Customer, 0, len(records))
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

// CountCustomers counts the full collection.
func (c *Client) CountCustomers(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Mongo.CountCustomers")
	defer span.End()

	var n int64
	err := c.run(ctx, "count customers", func(ctx context.Context) error {
		var err error
		n, err = c.db.Collection(collCustomers).CountDocuments(ctx, bson.D{})
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// InsertCustomers bulk-inserts customer records (seeding path).
func (c *Client) InsertCustomers(ctx context.Context, customers []domain.Customer) error {
	ctx, span := tracer.Start(ctx, "Mongo.InsertCustomers")
	defer span.End()

	if len(customers) == 0 {
		return nil
	}
	return c.run(ctx, "insert customers", func(ctx context.Context) error {
		docs := make([]any, 0, len(customers))
		for _, cu := range customers {
			docs = append(docs, customerRecord{
				ID:       cu.ID,
				Name:     cu.Name,
				Email:    cu.Email,
				ImageURL: cu.ImageURL,
			})
		}
		_, err := c.db.Collection(collCustomers).InsertMany(ctx, docs)
		return err
	})
}

// DeleteAllCustomers clears the collection (seeding path).
func (c *Client) DeleteAllCustomers(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Mongo.DeleteAllCustomers")
	defer span.End()

	return c.run(ctx, "delete customers", func(ctx context.Context) error {
		_, err := c.db.Collection(collCustomers).DeleteMany(ctx, bson.D{})
		return err
	})
}
