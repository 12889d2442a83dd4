package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/handler"
	"github.com/acmecorp/finboard/internal/infra/cache"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/service"

	"go.uber.org/zap"
)

// memStore is an in-memory stand-in for the mongo client, implementing every
// store port plus the readiness Pinger.
type memStore struct {
	invoices  []domain.Invoice
	customers []domain.Customer
	revenue   []domain.RevenuePoint
	users     []domain.User
}

func (m *memStore) Ping(_ context.Context) error { return nil }

func (m *memStore) ListInvoices(_ context.Context) ([]domain.Invoice, error) {
	return m.invoices, nil
}

func (m *memStore) GetInvoice(_ context.Context, id string) (*domain.Invoice, error) {
	for _, inv := range m.invoices {
		if inv.ID == id {
			out := inv
			return &out, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "invoice", ID: id}
}

func (m *memStore) CountInvoices(_ context.Context) (int64, error) {
	return int64(len(m.invoices)), nil
}

func (m *memStore) SumAmountByStatus(_ context.Context) (int64, int64, error) {
	var paid, pending int64
	for _, inv := range m.invoices {
		switch inv.Status {
		case domain.StatusPaid:
			paid += inv.Amount
		case domain.StatusPending:
			pending += inv.Amount
		}
	}
	return paid, pending, nil
}

func (m *memStore) InsertInvoices(_ context.Context, invoices []domain.Invoice) error {
	m.invoices = append(m.invoices, invoices...)
	return nil
}

func (m *memStore) DeleteAllInvoices(_ context.Context) error {
	m.invoices = nil
	return nil
}

func (m *memStore) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	return m.customers, nil
}

func (m *memStore) CountCustomers(_ context.Context) (int64, error) {
	return int64(len(m.customers)), nil
}

func (m *memStore) InsertCustomers(_ context.Context, customers []domain.Customer) error {
	m.customers = append(m.customers, customers...)
	return nil
}

func (m *memStore) DeleteAllCustomers(_ context.Context) error {
	m.customers = nil
	return nil
}

func (m *memStore) ListRevenue(_ context.Context) ([]domain.RevenuePoint, error) {
	return m.revenue, nil
}

func (m *memStore) InsertRevenue(_ context.Context, points []domain.RevenuePoint) error {
	m.revenue = append(m.revenue, points...)
	return nil
}

func (m *memStore) DeleteAllRevenue(_ context.Context) error {
	m.revenue = nil
	return nil
}

func (m *memStore) InsertUsers(_ context.Context, users []domain.User) error {
	m.users = append(m.users, users...)
	return nil
}

func (m *memStore) DeleteAllUsers(_ context.Context) error {
	m.users = nil
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		PageSize:    6,
		LatestLimit: 5,
		MaxPageSize: 100,
		SeedEnabled: true,
	}
}

func newTestRouter(t *testing.T, store *memStore, cfg *config.Config) http.Handler {
	t.Helper()
	c := cache.New[any](5 * time.Minute)
	t.Cleanup(c.Close)

	metrics := observability.NewMetrics()
	logger := zap.NewNop()
	dashSvc := service.NewDashboardService(store, store, store, c, metrics, logger)
	custSvc := service.NewCustomerService(store, store, metrics, logger)
	seedSvc := service.NewSeedService(store, store, store, store, c, logger)
	return handler.NewRouter(dashSvc, custSvc, seedSvc, store, cfg, metrics, logger)
}

func seededStore() *memStore {
	return &memStore{
		customers: []domain.Customer{
			{ID: "cust-a", Name: "ann", Email: "ann@x.com"},
			{ID: "cust-b", Name: "bob", Email: "bob@x.com"},
		},
		invoices: []domain.Invoice{
			{ID: "inv-a", CustomerID: "cust-a", Amount: 1000, Status: domain.StatusPaid,
				Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "inv-b", CustomerID: "cust-b", Amount: 500, Status: domain.StatusPending,
				Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
		revenue: []domain.RevenuePoint{{Month: "Jan", Revenue: 2000}},
	}
}

func doRequest(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/readyz")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/dashboard/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var sum domain.DashboardSummary
	if err := json.NewDecoder(rec.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.InvoiceCount != 2 || sum.CustomerCount != 2 {
		t.Errorf("expected counts 2/2, got %d/%d", sum.InvoiceCount, sum.CustomerCount)
	}
	if sum.TotalPaid != "$10.00" || sum.TotalPending != "$5.00" {
		t.Errorf("expected '$10.00'/'$5.00', got %q/%q", sum.TotalPaid, sum.TotalPending)
	}
}

func TestListInvoices_FilterByQuery(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/invoices?query=ann")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []domain.InvoiceRow
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Name != "ann" {
		t.Errorf("expected ann's invoice, got %s", rows[0].Name)
	}
	if rows[0].Amount != 1000 {
		t.Errorf("table rows carry raw cents, got %d", rows[0].Amount)
	}
}

func TestInvoicePages(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/invoices/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["total_pages"] != 1 {
		t.Errorf("expected 1 page, got %d", body["total_pages"])
	}
}

func TestGetInvoice(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/invoices/inv-a")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var detail domain.InvoiceDetail
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Amount != 10.0 {
		t.Errorf("expected amount 10.0 in major units, got %f", detail.Amount)
	}
}

func TestGetInvoice_NotFound(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/invoices/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestLatestInvoices(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/dashboard/latest-invoices?limit=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var latest []domain.LatestInvoice
	if err := json.NewDecoder(rec.Body).Decode(&latest); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(latest) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(latest))
	}
	if latest[0].Amount != "$5.00" {
		t.Errorf("expected display-ready '$5.00', got %q", latest[0].Amount)
	}
}

func TestCustomerTable(t *testing.T) {
	router := newTestRouter(t, seededStore(), testConfig())

	rec := doRequest(t, router, http.MethodGet, "/v1/customers/table?query=bob")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []domain.CustomerRow
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].TotalPending != "$5.00" {
		t.Errorf("expected '$5.00' pending, got %q", rows[0].TotalPending)
	}
}

func TestSeedRoute(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(t, store, testConfig())

	rec := doRequest(t, router, http.MethodPost, "/v1/seed")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(store.invoices) == 0 || len(store.customers) == 0 {
		t.Error("expected seeded collections")
	}
}

func TestSeedRoute_DisabledByConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SeedEnabled = false
	router := newTestRouter(t, seededStore(), cfg)

	rec := doRequest(t, router, http.MethodPost, "/v1/seed")
	if rec.Code == http.StatusOK {
		t.Error("seed route must not be mounted when disabled")
	}
}
