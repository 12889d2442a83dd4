// Package service implements the dashboard's read/aggregation core: the
// invoice-customer join, free-text filtering, pagination, card totals and
// display projection.
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/money"
	"github.com/acmecorp/finboard/internal/port"
	"github.com/acmecorp/finboard/internal/search"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service/dashboard")

const (
	cacheKeySummary = "dashboard:summary"
	cacheKeyRevenue = "dashboard:revenue"
)

// DashboardService answers every invoice-centric dashboard query. All
// operations are stateless reads; independent aggregates within one request
// run concurrently.
type DashboardService struct {
	invoices  port.InvoiceStore
	customers port.CustomerStore
	revenue   port.RevenueStore
	cache     port.Cache[any]
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDashboardService creates the dashboard service with all dependencies injected.
func NewDashboardService(
	invoices port.InvoiceStore,
	customers port.CustomerStore,
	revenue port.RevenueStore,
	cache port.Cache[any],
	metrics *observability.Metrics,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// joinedRows fetches both collections concurrently and joins invoices to
// their owning customers. Invoices whose customer reference resolves to no
// customer are dropped, never surfaced as errors. Rows come back sorted by
// issue date descending with insertion order as the stable tie-break, so
// page N+1 never repeats or skips records of page N on static data.
func (s *DashboardService) joinedRows(ctx context.Context) ([]domain.InvoiceRow, error) {
	var (
		invoices  []domain.Invoice
		customers []domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.ListInvoices(gctx)
		if err != nil {
			s.metrics.IncrStoreError("invoices")
			return wrapQueryErr("fetch invoices", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = s.customers.ListCustomers(gctx)
		if err != nil {
			s.metrics.IncrStoreError("customers")
			return wrapQueryErr("fetch customer table", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	rows := make([]domain.InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		c, ok := byID[inv.CustomerID]
		if !ok {
			continue // unmatched invoice: excluded from every joined view
		}
		rows = append(rows, domain.InvoiceRow{
			ID:       inv.ID,
			Amount:   inv.Amount,
			Date:     inv.Date,
			Status:   inv.Status,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows, nil
}

// ListInvoicesPage returns one page of the filtered, joined invoice table.
// Pages are 1-based; the page size is chosen by the caller.
func (s *DashboardService) ListInvoicesPage(ctx context.Context, pred search.Predicate, page, pageSize int) ([]domain.InvoiceRow, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.ListInvoicesPage")
	defer span.End()
	span.SetAttributes(attribute.Int("page", page), attribute.String("query", pred.Query()))

	start := time.Now()
	defer func() { s.metrics.RecordQueryDuration("list_invoices", time.Since(start)) }()

	if page < 1 {
		return nil, &domain.ErrValidation{Field: "page", Message: "must be >= 1"}
	}
	if pageSize < 1 {
		return nil, &domain.ErrValidation{Field: "page_size", Message: "must be > 0"}
	}

	rows, err := s.joinedRows(ctx)
	if err != nil {
		s.metrics.IncrQuery("error")
		return nil, err
	}

	matched := rows[:0:0]
	for _, r := range rows {
		if pred.MatchesInvoice(r) {
			matched = append(matched, r)
		}
	}

	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		s.metrics.IncrQuery("success")
		return []domain.InvoiceRow{}, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	s.metrics.IncrQuery("success")
	return matched[offset:end], nil
}

// CountMatching returns how many joined invoices match the predicate,
// unscoped by pagination.
func (s *DashboardService) CountMatching(ctx context.Context, pred search.Predicate) (int64, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.CountMatching")
	defer span.End()

	rows, err := s.joinedRows(ctx)
	if err != nil {
		s.metrics.IncrQuery("error")
		return 0, err
	}

	var n int64
	for _, r := range rows {
		if pred.MatchesInvoice(r) {
			n++
		}
	}
	s.metrics.IncrQuery("success")
	return n, nil
}

// TotalPages derives the page count for the invoices table as
// ceil(matches / pageSize).
func (s *DashboardService) TotalPages(ctx context.Context, pred search.Predicate, pageSize int) (int, error) {
	if pageSize < 1 {
		return 0, &domain.ErrValidation{Field: "page_size", Message: "must be > 0"}
	}
	n, err := s.CountMatching(ctx, pred)
	if err != nil {
		return 0, err
	}
	return int((n + int64(pageSize) - 1) / int64(pageSize)), nil
}

// LatestInvoices returns the newest joined invoices with amounts already
// formatted for the dashboard card. This path is display-ready by contract,
// unlike the paginated table which carries raw amounts.
func (s *DashboardService) LatestInvoices(ctx context.Context, limit int) ([]domain.LatestInvoice, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.LatestInvoices")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordQueryDuration("latest_invoices", time.Since(start)) }()

	if limit < 1 {
		return nil, &domain.ErrValidation{Field: "limit", Message: "must be > 0"}
	}

	rows, err := s.joinedRows(ctx)
	if err != nil {
		s.metrics.IncrQuery("error")
		return nil, err
	}
	if limit > len(rows) {
		limit = len(rows)
	}

	latest := make([]domain.LatestInvoice, 0, limit)
	for _, r := range rows[:limit] {
		latest = append(latest, domain.LatestInvoice{
			ID:       r.ID,
			Amount:   money.Format(r.Amount),
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
		})
	}
	s.metrics.IncrQuery("success")
	return latest, nil
}

// FindInvoiceByID looks up a single invoice. Unlike the table rows, the
// result is unjoined: the customer stays an id reference, and a dangling
// reference does not fail the lookup. The amount comes back in major units
// as a raw decimal, for edit forms; every other path formats or keeps
// cents. A missing id is domain.ErrNotFound.
func (s *DashboardService) FindInvoiceByID(ctx context.Context, id string) (*domain.InvoiceDetail, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.FindInvoiceByID")
	defer span.End()
	span.SetAttributes(attribute.String("invoice.id", id))

	if id == "" {
		return nil, &domain.ErrValidation{Field: "invoice_id", Message: "required"}
	}

	inv, err := s.invoices.GetInvoice(ctx, id)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			s.metrics.IncrQuery("not_found")
		} else {
			s.metrics.IncrStoreError("invoices")
			s.metrics.IncrQuery("error")
		}
		return nil, wrapQueryErr("fetch invoice", err)
	}

	s.metrics.IncrQuery("success")
	return &domain.InvoiceDetail{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.ToMajorUnits(inv.Amount),
		Status:     inv.Status,
		Date:       inv.DateString(),
	}, nil
}

// Summary computes the dashboard cards: full-collection invoice and customer
// counts plus paid/pending totals. The three aggregates are independent
// read-only queries and run concurrently; results combine only after all
// complete. An empty store yields zeroes, not an error.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.Summary")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordQueryDuration("summary", time.Since(start)) }()

	if cached, ok := s.cache.Get(cacheKeySummary); ok {
		if sum, ok := cached.(*domain.DashboardSummary); ok {
			s.metrics.IncrCacheHit("dashboard")
			return sum, nil
		}
	}
	s.metrics.IncrCacheMiss("dashboard")

	var (
		invoiceCount  int64
		customerCount int64
		paid, pending int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.CountInvoices(gctx)
		if err != nil {
			s.metrics.IncrStoreError("invoices")
			return wrapQueryErr("count invoices", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.CountCustomers(gctx)
		if err != nil {
			s.metrics.IncrStoreError("customers")
			return wrapQueryErr("count customers", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		paid, pending, err = s.invoices.SumAmountByStatus(gctx)
		if err != nil {
			s.metrics.IncrStoreError("invoices")
			return wrapQueryErr("sum invoice amounts", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncrQuery("error")
		return nil, err
	}

	summary := &domain.DashboardSummary{
		InvoiceCount:  invoiceCount,
		CustomerCount: customerCount,
		TotalPaid:     money.Format(paid),
		TotalPending:  money.Format(pending),
	}
	s.cache.Set(cacheKeySummary, summary)
	s.metrics.IncrQuery("success")
	return summary, nil
}

// Revenue returns the chart's revenue points. Order carries no guarantee
// beyond insertion; the chart sorts by canonical month order itself.
func (s *DashboardService) Revenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.Revenue")
	defer span.End()

	if cached, ok := s.cache.Get(cacheKeyRevenue); ok {
		if points, ok := cached.([]domain.RevenuePoint); ok {
			s.metrics.IncrCacheHit("dashboard")
			return points, nil
		}
	}
	s.metrics.IncrCacheMiss("dashboard")

	points, err := s.revenue.ListRevenue(ctx)
	if err != nil {
		s.metrics.IncrStoreError("revenue")
		s.metrics.IncrQuery("error")
		return nil, wrapQueryErr("fetch revenue data", err)
	}
	if points == nil {
		points = []domain.RevenuePoint{}
	}

	s.cache.Set(cacheKeyRevenue, points)
	s.metrics.IncrQuery("success")
	return points, nil
}

// wrapQueryErr narrows a store failure to an operation-specific query error.
// Not-found and store-unavailable pass through so callers can distinguish
// them; everything else hides driver internals behind the operation name.
func wrapQueryErr(op string, err error) error {
	var notFound *domain.ErrNotFound
	var unavailable *domain.ErrStoreUnavailable
	if errors.As(err, &notFound) || errors.As(err, &unavailable) {
		return err
	}
	return &domain.ErrQuery{Op: op, Err: err}
}
