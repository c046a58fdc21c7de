package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord - one salary disbursement for one user on one date.
// TotalDeductions and NetSalary are derived and recomputed from the input
// fields on every write; they are never taken from the client.
type PayrollRecord struct {
	ID               int64
	UserID           int64
	GrossAmount      decimal.Decimal
	DisbursementDate time.Time // calendar date, no time component
	Deductions       Deductions
	CustomDeductions []CustomDeduction
	TotalDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	UserName               *string
	UserRank               *string
	UserRegistrationNumber *string
}
