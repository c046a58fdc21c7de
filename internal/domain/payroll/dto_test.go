package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
)

func validSaveRequest() SavePayrollRequest {
	return SavePayrollRequest{
		UserID:           1,
		GrossAmount:      decimal.NewFromInt(5000000),
		DisbursementDate: "2025-08-01",
		Deductions: Deductions{
			CategoryKoperasi: decimal.NewFromInt(250000),
		},
		CustomDeductions: []CustomDeduction{
			{Label: "Cicilan", Amount: decimal.NewFromInt(100000)},
		},
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestSavePayrollRequestValid(t *testing.T) {
	req := validSaveRequest()
	assert.NoError(t, req.Validate())
}

func TestSavePayrollRequestMissingUser(t *testing.T) {
	req := validSaveRequest()
	req.UserID = 0
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "user_id")
}

func TestSavePayrollRequestNegativeGross(t *testing.T) {
	req := validSaveRequest()
	req.GrossAmount = decimal.NewFromInt(-1)
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "gross_amount")
}

func TestSavePayrollRequestBadDate(t *testing.T) {
	req := validSaveRequest()
	req.DisbursementDate = "01-08-2025"
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "disbursement_date")
}

func TestSavePayrollRequestUnknownCategory(t *testing.T) {
	req := validSaveRequest()
	req.Deductions[Category("gaji_13")] = decimal.NewFromInt(1000)
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "deductions.gaji_13")
}

func TestSavePayrollRequestNegativeDeduction(t *testing.T) {
	req := validSaveRequest()
	req.Deductions[CategoryTWP] = decimal.NewFromInt(-500)
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "deductions.twp")
}

func TestSavePayrollRequestTooManyCustomSlots(t *testing.T) {
	req := validSaveRequest()
	req.CustomDeductions = make([]CustomDeduction, 6)
	for i := range req.CustomDeductions {
		req.CustomDeductions[i] = CustomDeduction{Label: "slot", Amount: decimal.NewFromInt(1)}
	}
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "custom_deductions")
}

func TestSavePayrollRequestNegativeCustomAmount(t *testing.T) {
	req := validSaveRequest()
	req.CustomDeductions = []CustomDeduction{{Label: "ok", Amount: decimal.NewFromInt(-1)}}
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "custom_deductions.0.amount")
}

func TestSavePayrollRequestDateDefaultsToToday(t *testing.T) {
	req := validSaveRequest()
	req.DisbursementDate = ""
	now := time.Date(2025, 8, 15, 13, 45, 0, 0, time.UTC)

	got := req.Date(now)

	assert.Equal(t, time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestSavePayrollRequestDateParsesExplicitValue(t *testing.T) {
	req := validSaveRequest()
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	got := req.Date(now)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), got)
}
