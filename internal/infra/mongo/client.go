// Package mongo adapts the MongoDB document store to the port interfaces.
// All collection access goes through a single Client that owns the connection
// handle; nothing in this package is a process-wide singleton.
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/acmecorp/finboard/internal/domain"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("mongo")

// Collection names. Two logical collections carry the dashboard data; revenue
// and users are ancillary.
const (
	collInvoices  = "invoices"
	collCustomers = "customers"
	collRevenue   = "revenue"
	collUsers     = "users"
)

// Client wraps a MongoDB database handle with a circuit breaker and query
// timeout. The handle is established once at startup and reused by every
// caller; the driver manages pooling underneath.
type Client struct {
	db      *mongo.Database
	cli     *mongo.Client
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

// Connect dials the store and verifies reachability with a ping. The returned
// Client implements every store port.
func Connect(ctx context.Context, url, database string, timeout time.Duration, cb *gobreaker.CircuitBreaker, logger *zap.Logger) (*Client, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		logger.Error("mongo: connect failed", zap.Error(err))
		return nil, &domain.ErrStoreUnavailable{Err: err}
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("mongo: ping failed", zap.String("database", database), zap.Error(err))
		return nil, &domain.ErrStoreUnavailable{Err: err}
	}

	logger.Info("mongo: connected", zap.String("database", database))

	return &Client{
		db:      cli.Database(database),
		cli:     cli,
		cb:      cb,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Ping reports store reachability. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.cli.Ping(ctx, readpref.Primary())
}

// Close releases the connection handle.
func (c *Client) Close(ctx context.Context) error {
	return c.cli.Disconnect(ctx)
}

// run executes a store call under the query timeout and circuit breaker.
// An open breaker is reported as store-unavailable so callers fail fast
// without touching the driver.
func (c *Client) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.cb.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn("mongo: circuit open, call rejected", zap.String("op", op))
		return &domain.ErrStoreUnavailable{Err: err}
	}

	// A not-found is the store answering a valid query; the breaker ignores
	// it (see resilience.NewCircuitBreaker) and so does the failure log.
	var notFound *domain.ErrNotFound
	if errors.As(err, &notFound) {
		return err
	}

	c.logger.Error("mongo: query failed", zap.String("op", op), zap.Error(err))
	return err
}
