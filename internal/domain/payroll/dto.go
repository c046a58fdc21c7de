package payroll

import (
	"time"

	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SavePayrollRequest is the full field set for both create and update: a
// record is never partially updated, every write revalidates everything and
// recomputes the derived totals.
type SavePayrollRequest struct {
	UserID           int64                        `json:"user_id"`
	GrossAmount      decimal.Decimal              `json:"gross_amount"`
	DisbursementDate string                       `json:"disbursement_date,omitempty"` // "YYYY-MM-DD", defaults to today
	Deductions       map[Category]decimal.Decimal `json:"deductions,omitempty"`
	CustomDeductions []CustomDeduction            `json:"custom_deductions,omitempty"`
}

func (r *SavePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.GrossAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_amount", Message: "must be non-negative"})
	}
	if r.DisbursementDate != "" {
		if _, ok := validator.IsValidDate(r.DisbursementDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "disbursement_date", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}
	for cat, amount := range r.Deductions {
		if !IsValidCategory(cat) {
			errs = append(errs, validator.ValidationError{Field: "deductions." + string(cat), Message: "unknown deduction category"})
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions." + string(cat), Message: "must be non-negative"})
		}
	}
	if len(r.CustomDeductions) > MaxCustomDeductions {
		errs = append(errs, validator.ValidationError{Field: "custom_deductions", Message: "at most 5 custom deduction slots are allowed"})
	}
	for i, slot := range r.CustomDeductions {
		field := "custom_deductions." + validator.Itoa(i)
		if !validator.MaxLen(slot.Label, MaxCustomLabelLen) {
			errs = append(errs, validator.ValidationError{Field: field + ".label", Message: "must be at most 255 characters"})
		}
		if slot.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".amount", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Date resolves the disbursement date, defaulting to today when omitted.
// Call only after Validate.
func (r *SavePayrollRequest) Date(now time.Time) time.Time {
	if r.DisbursementDate == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	d, _ := validator.IsValidDate(r.DisbursementDate)
	return d
}

type PayrollFilter struct {
	UserID *int64
	Page   int
	Limit  int
}

type PayrollResponse struct {
	ID               int64                        `json:"id"`
	UserID           int64                        `json:"user_id"`
	GrossAmount      decimal.Decimal              `json:"gross_amount"`
	DisbursementDate string                       `json:"disbursement_date"`
	Deductions       map[Category]decimal.Decimal `json:"deductions"`
	CustomDeductions []CustomDeduction            `json:"custom_deductions"`
	TotalDeductions  decimal.Decimal              `json:"total_deductions"`
	NetSalary        decimal.Decimal              `json:"net_salary"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
	User             *user.Summary                `json:"user,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type ChartResponse struct {
	Window      string        `json:"window"`
	Placeholder bool          `json:"placeholder"`
	Points      []SeriesPoint `json:"points"`
}
