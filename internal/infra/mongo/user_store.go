package mongo

import (
	"context"

	"github.com/acmecorp/finboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// userRecord maps the users collection shape. The password field holds a
// bcrypt hash written by the seeder; the dashboard never reads it back.
type userRecord struct {
	ID       string `bson:"_id"`
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
}

// InsertUsers bulk-inserts user records (seeding path).
func (c *Client) InsertUsers(ctx context.Context, users []domain.User) error {
	ctx, span := tracer.Start(ctx, "Mongo.InsertUsers")
	defer span.End()

	if len(users) == 0 {
		return nil
	}
	return c.run(ctx, "insert users", func(ctx context.Context) error {
		docs := make([]any, 0, len(users))
		for _, u := range users {
			docs = append(docs, userRecord{
				ID:       u.ID,
				Name:     u.Name,
				Email:    u.Email,
				Password: u.Password,
			})
		}
		_, err := c.db.Collection(collUsers).InsertMany(ctx, docs)
		return err
	})
}

// DeleteAllUsers clears the collection (seeding path).
func (c *Client) DeleteAllUsers(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Mongo.DeleteAllUsers")
	defer span.End()

	return c.run(ctx, "delete users", func(ctx context.Context) error {
		_, err := c.db.Collection(collUsers).DeleteMany(ctx, bson.D{})
		return err
	})
}
