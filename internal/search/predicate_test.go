package search_test

import (
	"testing"
	"time"

	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/search"
)

func row() domain.InvoiceRow {
	return domain.InvoiceRow{
		ID:     "inv-1",
		Amount: 1000,
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.StatusPending,
		Name:   "Ann Summers",
		Email:  "ann@example.com",
	}
}

func TestInvoicePredicate_EmptyMatchesAll(t *testing.T) {
	p := search.NewInvoicePredicate("")
	if !p.IsEmpty() {
		t.Fatal("expected empty predicate")
	}
	if !p.MatchesInvoice(row()) {
		t.Error("empty query must match every row")
	}
}

func TestInvoicePredicate_Fields(t *testing.T) {
	cases := []struct {
		query string
		want  bool
	}{
		{"ann", true},      // name substring
		{"ANN", true},      // case-insensitive
		{"example.c", true}, // email substring
		{"1000", true},     // amount as raw minor-unit string
		{"10", true},       // substring of "1000", not of "$10.00"
		{"10.00", false},   // formatted rendering is NOT searched
		{"2024-01", true},  // date rendering
		{"pend", true},     // status token
		{"paid", false},
		{"bob", false},
	}
	for _, tc := range cases {
		p := search.NewInvoicePredicate(tc.query)
		if got := p.MatchesInvoice(row()); got != tc.want {
			t.Errorf("query %q: got %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestCustomerPredicate(t *testing.T) {
	c := domain.Customer{ID: "c1", Name: "Bob Ross", Email: "bob@x.com"}

	if !search.NewCustomerPredicate("").MatchesCustomer(c) {
		t.Error("empty query must match every customer")
	}
	if !search.NewCustomerPredicate("ross").MatchesCustomer(c) {
		t.Error("expected name substring match")
	}
	if !search.NewCustomerPredicate("B@X").MatchesCustomer(c) {
		t.Error("expected case-insensitive email match")
	}
	if search.NewCustomerPredicate("pending").MatchesCustomer(c) {
		t.Error("customer predicate must not span status")
	}
}
