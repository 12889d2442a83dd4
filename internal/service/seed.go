package service

import (
	"context"
	"fmt"

	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/port"
	"github.com/acmecorp/finboard/internal/seed"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedService resets the store to the fixture dataset. It is a development
// bootstrap collaborator, not part of the read core; the read paths must
// work against whatever (possibly empty) data is present.
type SeedService struct {
	invoices  port.InvoiceStore
	customers port.CustomerStore
	revenue   port.RevenueStore
	users     port.UserStore
	cache     port.Cache[any]
	logger    *zap.Logger
}

// NewSeedService creates the seeder with all dependencies injected.
func NewSeedService(
	invoices port.InvoiceStore,
	customers port.CustomerStore,
	revenue port.RevenueStore,
	users port.UserStore,
	cache port.Cache[any],
	logger *zap.Logger,
) *SeedService {
	return &SeedService{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		users:     users,
		cache:     cache,
		logger:    logger,
	}
}

// SeedResult reports how many records each collection received.
type SeedResult struct {
	Users     int `json:"users"`
	Customers int `json:"customers"`
	Invoices  int `json:"invoices"`
	Revenue   int `json:"revenue"`
}

// Reset clears all four collections and repopulates them from the fixtures.
// User passwords are bcrypt-hashed before insert; invoice ids are fresh
// UUIDs on every run. Dashboard caches are invalidated afterwards.
func (s *SeedService) Reset(ctx context.Context) (*SeedResult, error) {
	if err := s.seedUsers(ctx); err != nil {
		return nil, err
	}
	if err := s.seedCustomers(ctx); err != nil {
		return nil, err
	}
	if err := s.seedInvoices(ctx); err != nil {
		return nil, err
	}
	if err := s.seedRevenue(ctx); err != nil {
		return nil, err
	}

	s.cache.Delete(cacheKeySummary)
	s.cache.Delete(cacheKeyRevenue)

	s.logger.Info("store reseeded",
		zap.Int("users", len(seed.Users)),
		zap.Int("customers", len(seed.Customers)),
		zap.Int("invoices", len(seed.Invoices)),
		zap.Int("revenue", len(seed.Revenue)),
	)

	return &SeedResult{
		Users:     len(seed.Users),
		Customers: len(seed.Customers),
		Invoices:  len(seed.Invoices),
		Revenue:   len(seed.Revenue),
	}, nil
}

func (s *SeedService) seedUsers(ctx context.Context) error {
	if err := s.users.DeleteAllUsers(ctx); err != nil {
		return wrapQueryErr("clear users", err)
	}

	users := make([]domain.User, 0, len(seed.Users))
	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		users = append(users, domain.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hash),
		})
	}
	if err := s.users.InsertUsers(ctx, users); err != nil {
		return wrapQueryErr("seed users", err)
	}
	return nil
}

func (s *SeedService) seedCustomers(ctx context.Context) error {
	if err := s.customers.DeleteAllCustomers(ctx); err != nil {
		return wrapQueryErr("clear customers", err)
	}
	if err := s.customers.InsertCustomers(ctx, seed.Customers); err != nil {
		return wrapQueryErr("seed customers", err)
	}
	return nil
}

func (s *SeedService) seedInvoices(ctx context.Context) error {
	if err := s.invoices.DeleteAllInvoices(ctx); err != nil {
		return wrapQueryErr("clear invoices", err)
	}

	invoices := make([]domain.Invoice, 0, len(seed.Invoices))
	for _, f := range seed.Invoices {
		invoices = append(invoices, domain.Invoice{
			ID:         uuid.New().String(),
			CustomerID: seed.Customers[f.Customer].ID,
			Amount:     f.Amount,
			Status:     f.Status,
			Date:       f.Date,
		})
	}
	if err := s.invoices.InsertInvoices(ctx, invoices); err != nil {
		return wrapQueryErr("seed invoices", err)
	}
	return nil
}

func (s *SeedService) seedRevenue(ctx context.Context) error {
	if err := s.revenue.DeleteAllRevenue(ctx); err != nil {
		return wrapQueryErr("clear revenue", err)
	}
	if err := s.revenue.InsertRevenue(ctx, seed.Revenue); err != nil {
		return wrapQueryErr("seed revenue", err)
	}
	return nil
}
