package payroll

import "context"

type PayrollService interface {
	Create(ctx context.Context, req SavePayrollRequest) (PayrollResponse, error)
	Get(ctx context.Context, id int64) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	Update(ctx context.Context, id int64, req SavePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id int64) error

	// UserHistory and UserChart enforce the guest self-scope from JWT claims.
	UserHistory(ctx context.Context, userID int64) ([]PayrollResponse, error)
	UserChart(ctx context.Context, userID int64, window string) (ChartResponse, error)
}
