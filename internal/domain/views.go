package domain

import "time"

// ============================================================
// Derived views (transient, never persisted)
// ============================================================

// InvoiceRow is an invoice joined with its owning customer, as rendered in
// the paginated invoices table. Amount stays in raw minor units; the API
// layer decides presentation.
type InvoiceRow struct {
	ID       string    `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// DateString renders the issue date for display and search.
func (r InvoiceRow) DateString() string {
	return r.Date.Format("2006-01-02")
}

// LatestInvoice is the dashboard "latest invoices" card entry. Unlike
// InvoiceRow, the amount arrives pre-formatted as a currency string.
type LatestInvoice struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceDetail is the single-invoice lookup result. The amount is converted
// to major units (a raw decimal, not a formatted string) for edit forms.
type InvoiceDetail struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"` // major units
	Status     string  `json:"status"`
	Date       string  `json:"date"`
}

// CustomerRow is a customer with per-customer invoice aggregates, as rendered
// in the customers table. Totals cover the customer's full invoice set and
// are always pre-formatted.
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// CustomerName is a roster entry for customer pickers.
type CustomerName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DashboardSummary is the card data shown at the top of the dashboard.
// Counts and totals span the entire collections, unscoped by any filter.
type DashboardSummary struct {
	InvoiceCount  int64  `json:"invoice_count"`
	CustomerCount int64  `json:"customer_count"`
	TotalPaid     string `json:"total_paid"`
	TotalPending  string `json:"total_pending"`
}
