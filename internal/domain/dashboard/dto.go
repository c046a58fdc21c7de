package dashboard

import (
	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
)

// DashboardResponse is the self-service landing payload: the caller's own
// paginated payroll history plus their own chart series.
type DashboardResponse struct {
	Me       user.UserResponse           `json:"me"`
	Payrolls payroll.ListPayrollResponse `json:"payrolls"`
	Chart    payroll.ChartResponse       `json:"chart"`
}
