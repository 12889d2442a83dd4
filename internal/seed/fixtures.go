// Package seed holds the fixture data used to bootstrap a development store.
// Identifiers are fixed so reseeding is deterministic and cross-references
// stay valid.
package seed

import (
	"time"

	"github.com/acmecorp/finboard/internal/domain"
)

// Users seeded for the external auth layer. Passwords are plaintext here and
// bcrypt-hashed at insert time.
var Users = []struct {
	ID       string
	Name     string
	Email    string
	Password string
}{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "Admin",
		Email:    "admin@finboard.dev",
		Password: "123456",
	},
}

// Customers is the seeded customer roster.
var Customers = []domain.Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

// InvoiceFixture references a customer by index into Customers. Amounts are
// cents.
type InvoiceFixture struct {
	Customer int
	Amount   int64
	Status   string
	Date     time.Time
}

// Invoices is the seeded invoice set.
var Invoices = []InvoiceFixture{
	{Customer: 0, Amount: 15795, Status: domain.StatusPending, Date: date(2022, 12, 6)},
	{Customer: 1, Amount: 20348, Status: domain.StatusPending, Date: date(2022, 11, 14)},
	{Customer: 4, Amount: 3040, Status: domain.StatusPaid, Date: date(2022, 10, 29)},
	{Customer: 3, Amount: 44800, Status: domain.StatusPaid, Date: date(2023, 9, 10)},
	{Customer: 5, Amount: 34577, Status: domain.StatusPending, Date: date(2023, 8, 5)},
	{Customer: 2, Amount: 54246, Status: domain.StatusPending, Date: date(2023, 7, 16)},
	{Customer: 0, Amount: 666, Status: domain.StatusPending, Date: date(2023, 6, 27)},
	{Customer: 3, Amount: 32545, Status: domain.StatusPaid, Date: date(2023, 6, 9)},
	{Customer: 4, Amount: 1250, Status: domain.StatusPaid, Date: date(2023, 6, 17)},
	{Customer: 5, Amount: 8546, Status: domain.StatusPaid, Date: date(2023, 6, 7)},
	{Customer: 1, Amount: 500, Status: domain.StatusPaid, Date: date(2023, 8, 19)},
	{Customer: 5, Amount: 8945, Status: domain.StatusPaid, Date: date(2023, 6, 3)},
	{Customer: 2, Amount: 1000, Status: domain.StatusPaid, Date: date(2022, 6, 5)},
}

// Revenue is the seeded chart data, one point per month label.
var Revenue = []domain.RevenuePoint{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
