package dashboard

import "context"

type DashboardService interface {
	// GetDashboard always scopes to the authenticated user from JWT claims.
	GetDashboard(ctx context.Context, page, limit int) (DashboardResponse, error)
}
