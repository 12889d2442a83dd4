package service

import (
	"context"
	"sort"
	"time"

	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/money"
	"github.com/acmecorp/finboard/internal/port"
	"github.com/acmecorp/finboard/internal/search"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CustomerService answers the customer-centric queries: the aggregated
// customers table and the plain roster.
type CustomerService struct {
	customers port.CustomerStore
	invoices  port.InvoiceStore
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewCustomerService creates the customer service with all dependencies injected.
func NewCustomerService(
	customers port.CustomerStore,
	invoices port.InvoiceStore,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		invoices:  invoices,
		metrics:   metrics,
		logger:    logger,
	}
}

// CustomerSummaries returns the customers table: each customer matching the
// predicate with count and paid/pending totals over their FULL invoice set.
// The predicate selects customers only; it never filters which of their
// invoices are aggregated. Totals come back formatted, never raw. Sorted by
// customer name ascending.
func (s *CustomerService) CustomerSummaries(ctx context.Context, pred search.Predicate) ([]domain.CustomerRow, error) {
	ctx, span := tracer.Start(ctx, "Customers.CustomerSummaries")
	defer span.End()
	span.SetAttributes(attribute.String("query", pred.Query()))

	start := time.Now()
	defer func() { s.metrics.RecordQueryDuration("customer_summaries", time.Since(start)) }()

	var (
		customers []domain.Customer
		invoices  []domain.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customers.ListCustomers(gctx)
		if err != nil {
			s.metrics.IncrStoreError("customers")
			return wrapQueryErr("fetch customer table", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.ListInvoices(gctx)
		if err != nil {
			s.metrics.IncrStoreError("invoices")
			return wrapQueryErr("fetch invoices", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncrQuery("error")
		return nil, err
	}

	type totals struct {
		count   int
		paid    int64
		pending int64
	}
	byCustomer := make(map[string]totals, len(customers))
	for _, inv := range invoices {
		t := byCustomer[inv.CustomerID]
		t.count++
		switch inv.Status {
		case domain.StatusPaid:
			t.paid += inv.Amount
		case domain.StatusPending:
			t.pending += inv.Amount
		}
		byCustomer[inv.CustomerID] = t
	}

	rows := make([]domain.CustomerRow, 0, len(customers))
	for _, c := range customers {
		if !pred.MatchesCustomer(c) {
			continue
		}
		t := byCustomer[c.ID]
		rows = append(rows, domain.CustomerRow{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: t.count,
			TotalPending:  money.Format(t.pending),
			TotalPaid:     money.Format(t.paid),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	s.metrics.IncrQuery("success")
	return rows, nil
}

// ListAllCustomers returns the full roster as {id, name} pairs sorted by
// name ascending, for customer pickers.
func (s *CustomerService) ListAllCustomers(ctx context.Context) ([]domain.CustomerName, error) {
	ctx, span := tracer.Start(ctx, "Customers.ListAllCustomers")
	defer span.End()

	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		s.metrics.IncrStoreError("customers")
		s.metrics.IncrQuery("error")
		return nil, wrapQueryErr("fetch all customers", err)
	}

	names := make([]domain.CustomerName, 0, len(customers))
	for _, c := range customers {
		names = append(names, domain.CustomerName{ID: c.ID, Name: c.Name})
	}
	sort.SliceStable(names, func(i, j int) bool {
		return names[i].Name < names[j].Name
	})

	s.metrics.IncrQuery("success")
	return names, nil
}
