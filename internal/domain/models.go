// Package domain holds the typed records and derived views served by the
// dashboard, plus the error types shared across layers.
package domain

import "time"

// ============================================================
// Invoice
// ============================================================

// Invoice status values. Amounts are stored in minor currency units (cents).
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// Invoice is a stored invoice record. CustomerID is the join key into the
// customers collection; an invoice whose CustomerID resolves to no customer
// is excluded from every joined view.
type Invoice struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Amount     int64     `json:"amount"` // minor units (cents), >= 0
	Status     string    `json:"status"` // "paid" | "pending"
	Date       time.Time `json:"date"`
}

// DateString renders the issue date the way it is displayed and searched.
func (i Invoice) DateString() string {
	return i.Date.Format("2006-01-02")
}

// ============================================================
// Customer
// ============================================================

// Customer is a stored customer record. ID is unique and used as the join key.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// ============================================================
// Revenue
// ============================================================

// RevenuePoint is one month of chart revenue. Month labels are unique but
// carry no ordering; chart consumers sort by canonical month order themselves.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// ============================================================
// User
// ============================================================

// User is a login record populated by the seeder. The dashboard core never
// reads users; they exist for the external auth layer.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
