package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rnrran/HUBDAM-KP/internal/domain/dashboard"
	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
)

type DashboardServiceImpl struct {
	user.UserService
	payroll.PayrollService
}

func NewDashboardService(userService user.UserService, payrollService payroll.PayrollService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		UserService:    userService,
		PayrollService: payrollService,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, page, limit int) (dashboard.DashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	rawID, ok := claims["user_id"].(string)
	if !ok || rawID == "" {
		return dashboard.DashboardResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}
	actorID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	me, err := s.UserService.GetByID(ctx, actorID)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	payrolls, err := s.PayrollService.List(ctx, payroll.PayrollFilter{
		UserID: &actorID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	chart, err := s.PayrollService.UserChart(ctx, actorID, "")
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Me:       me,
		Payrolls: payrolls,
		Chart:    chart,
	}, nil
}
