// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service layer
// from the concrete document-store implementation.
package port

import (
	"context"

	"github.com/acmecorp/finboard/internal/domain"
)

// InvoiceStore is the data access surface over the invoices collection.
// Reads are plain finds plus one group-by aggregation; the writes exist only
// for the seeding path.
type InvoiceStore interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	CountInvoices(ctx context.Context) (int64, error)
	// SumAmountByStatus returns the cent totals of paid and pending invoices
	// across the entire collection. Both are zero for an empty store.
	SumAmountByStatus(ctx context.Context) (paid, pending int64, err error)

	InsertInvoices(ctx context.Context, invoices []domain.Invoice) error
	DeleteAllInvoices(ctx context.Context) error
}

// CustomerStore is the data access surface over the customers collection.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CountCustomers(ctx context.Context) (int64, error)

	InsertCustomers(ctx context.Context, customers []domain.Customer) error
	DeleteAllCustomers(ctx context.Context) error
}

// RevenueStore is the data access surface over the revenue collection.
type RevenueStore interface {
	ListRevenue(ctx context.Context) ([]domain.RevenuePoint, error)

	InsertRevenue(ctx context.Context, points []domain.RevenuePoint) error
	DeleteAllRevenue(ctx context.Context) error
}

// UserStore is the data access surface over the users collection. Only the
// seeder touches it.
type UserStore interface {
	InsertUsers(ctx context.Context, users []domain.User) error
	DeleteAllUsers(ctx context.Context) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
