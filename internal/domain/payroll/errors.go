package payroll

import "errors"

var (
	ErrPayrollNotFound       = errors.New("payroll record not found")
	ErrNegativeNetNotAllowed = errors.New("deductions exceed gross amount")
	ErrInvalidWindow         = errors.New("invalid chart window")
)
