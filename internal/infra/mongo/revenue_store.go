package mongo

import (
	"context"

	"github.com/acmecorp/finboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// revenueRecord maps the revenue collection shape. Month labels are unique;
// no ordering is stored, chart consumers sort by canonical month order.
type revenueRecord struct {
	Month   string `bson:"month"`
	Revenue int64  `bson:"revenue"`
}

// ListRevenue returns every revenue point.
func (c *Client) ListRevenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	ctx, span := tracer.Start(ctx, "Mongo.ListRevenue")
	defer span.End()

	var out []domain.RevenuePoint
	err := c.run(ctx, "list revenue", func(ctx context.Context) error {
		cur, err := c.db.Collection(collRevenue).Find(ctx, bson.D{})
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var records []revenueRecord
		if err := cur.All(ctx, &records); err != nil {
			return err
		}
		out = make([]domain.RevenuePoint, 0, len(records))
		for _, r := range records {
			out = append(out, domain.RevenuePoint{Month: r.Month, Revenue: r.Revenue})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertRevenue bulk-inserts revenue points (seeding path).
func (c *Client) InsertRevenue(ctx context.Context, points []domain.RevenuePoint) error {
	ctx, span := tracer.Start(ctx, "Mongo.InsertRevenue")
	defer span.End()

	if len(points) == 0 {
		return nil
	}
	return c.run(ctx, "insert revenue", func(ctx context.Context) error {
		docs := make([]any, 0, len(points))
		for _, p := range points {
			docs = append(docs, revenueRecord{Month: p.Month, Revenue: p.Revenue})
		}
		_, err := c.db.Collection(collRevenue).InsertMany(ctx, docs)
		return err
	})
}

// DeleteAllRevenue clears the collection (seeding path).
func (c *Client) DeleteAllRevenue(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Mongo.DeleteAllRevenue")
	defer span.End()

	return c.run(ctx, "delete revenue", func(ctx context.Context) error {
		_, err := c.db.Collection(collRevenue).DeleteMany(ctx, bson.D{})
		return err
	})
}
