// Package search builds the free-text predicate behind the dashboard search
// box. A single query string filters across mixed field types without the
// caller naming a field: the predicate is a case-insensitive substring
// disjunction over every searchable field of a record.
package search

import (
	"strconv"
	"strings"

	"github.com/acmecorp/finboard/internal/domain"
)

// Field identifies one searchable field of a joined invoice row.
type Field int

const (
	FieldCustomerName Field = iota
	FieldCustomerEmail
	FieldAmount
	FieldDate
	FieldStatus
)

// invoiceFields is the full disjunction used by the invoices table.
var invoiceFields = []Field{
	FieldCustomerName,
	FieldCustomerEmail,
	FieldAmount,
	FieldDate,
	FieldStatus,
}

// customerFields is the narrower disjunction used by the customers table.
var customerFields = []Field{FieldCustomerName, FieldCustomerEmail}

// Predicate is a compiled free-text filter. Build it once per query and
// evaluate it per record; an empty query matches everything.
type Predicate struct {
	raw    string
	needle string // lowercased query
	fields []Field
}

// NewInvoicePredicate compiles a predicate spanning customer name, customer
// email, amount, date and status.
//
// The amount field matches against the decimal string of the raw minor-unit
// amount ("1000" for $10.00), not the formatted rendering. Dates match
// against their "2006-01-02" rendering, statuses against the literal token.
func NewInvoicePredicate(query string) Predicate {
	return Predicate{
		raw:    query,
		needle: strings.ToLower(query),
		fields: invoiceFields,
	}
}

// NewCustomerPredicate compiles a predicate spanning only customer name and
// email.
func NewCustomerPredicate(query string) Predicate {
	return Predicate{
		raw:    query,
		needle: strings.ToLower(query),
		fields: customerFields,
	}
}

// IsEmpty reports whether the predicate matches every record.
func (p Predicate) IsEmpty() bool {
	return p.needle == ""
}

// Query returns the original query string.
func (p Predicate) Query() string {
	return p.raw
}

// MatchesInvoice evaluates the predicate against a joined invoice row.
func (p Predicate) MatchesInvoice(row domain.InvoiceRow) bool {
	if p.needle == "" {
		return true
	}
	for _, f := range p.fields {
		var hay string
		switch f {
		case FieldCustomerName:
			hay = row.Name
		case FieldCustomerEmail:
			hay = row.Email
		case FieldAmount:
			hay = strconv.FormatInt(row.Amount, 10)
		case FieldDate:
			hay = row.DateString()
		case FieldStatus:
			hay = row.Status
		}
		if strings.Contains(strings.ToLower(hay), p.needle) {
			return true
		}
	}
	return false
}

// MatchesCustomer evaluates the predicate against a customer record.
func (p Predicate) MatchesCustomer(c domain.Customer) bool {
	if p.needle == "" {
		return true
	}
	for _, f := range p.fields {
		var hay string
		switch f {
		case FieldCustomerName:
			hay = c.Name
		case FieldCustomerEmail:
			hay = c.Email
		default:
			continue
		}
		if strings.Contains(strings.ToLower(hay), p.needle) {
			return true
		}
	}
	return false
}
