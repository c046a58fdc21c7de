package payroll

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rnrran/HUBDAM-KP/internal/config"
	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	user.UserRepository
	cfg config.PayrollConfig
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, userRepository user.UserRepository, cfg config.PayrollConfig) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		UserRepository:    userRepository,
		cfg:               cfg,
	}
}

// actorFromContext reads the authenticated user out of the JWT claims.
func actorFromContext(ctx context.Context) (int64, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	rawID, ok := claims["user_id"].(string)
	if !ok || rawID == "" {
		return 0, "", fmt.Errorf("user_id claim is missing or invalid")
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("user_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return 0, "", fmt.Errorf("role claim is missing or invalid")
	}

	return userID, user.Role(role), nil
}

func toResponse(rec payroll.PayrollRecord) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:               rec.ID,
		UserID:           rec.UserID,
		GrossAmount:      rec.GrossAmount,
		DisbursementDate: rec.DisbursementDate.Format("2006-01-02"),
		Deductions:       rec.Deductions,
		CustomDeductions: rec.CustomDeductions,
		TotalDeductions:  rec.TotalDeductions,
		NetSalary:        rec.NetSalary,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if resp.Deductions == nil {
		resp.Deductions = payroll.Deductions{}
	}
	if resp.CustomDeductions == nil {
		resp.CustomDeductions = []payroll.CustomDeduction{}
	}
	// The user columns are pointer fields populated only by queries that join
	// users; when absent the summary is omitted rather than half-filled.
	if rec.UserName != nil {
		resp.User = &user.Summary{
			ID:   rec.UserID,
			Name: *rec.UserName,
			Rank: rec.UserRank,
		}
		if rec.UserRegistrationNumber != nil {
			resp.User.RegistrationNumber = *rec.UserRegistrationNumber
		}
	}
	return resp
}

// buildRecord validates the request, resolves the disbursement date and
// recomputes the derived totals. Client-supplied totals are never trusted.
func (s *PayrollServiceImpl) buildRecord(ctx context.Context, req payroll.SavePayrollRequest) (payroll.PayrollRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecord{}, err
	}

	exists, err := s.UserRepository.Exists(ctx, req.UserID)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		// On writes an unknown owner is rejected as invalid input, not as a
		// missing resource; the record paths keep their NotFound semantics.
		return payroll.PayrollRecord{}, validator.ValidationErrors{
			{Field: "user_id", Message: "must reference an existing user"},
		}
	}

	totals := payroll.ComputeTotals(req.GrossAmount, req.Deductions, req.CustomDeductions)
	if !s.cfg.AllowNegativeNet && totals.NetSalary.IsNegative() {
		return payroll.PayrollRecord{}, payroll.ErrNegativeNetNotAllowed
	}

	return payroll.PayrollRecord{
		UserID:           req.UserID,
		GrossAmount:      req.GrossAmount,
		DisbursementDate: req.Date(time.Now().UTC()),
		Deductions:       req.Deductions,
		CustomDeductions: req.CustomDeductions,
		TotalDeductions:  totals.TotalDeductions,
		NetSalary:        totals.NetSalary,
	}, nil
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.SavePayrollRequest) (payroll.PayrollResponse, error) {
	record, err := s.buildRecord(ctx, req)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.PayrollRepository.Create(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	records, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return payroll.ListPayrollResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, id int64, req payroll.SavePayrollRequest) (payroll.PayrollResponse, error) {
	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.buildRecord(ctx, req)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	record.ID = existing.ID

	updated, err := s.PayrollRepository.Update(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.PayrollRepository.Delete(ctx, id)
}

// scopeToActor rejects guests asking for anyone's records but their own.
// Admins and supervisors may read any user's history.
func scopeToActor(ctx context.Context, userID int64) error {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if role == user.RoleGuest && actorID != userID {
		return user.ErrInsufficientPermissions
	}
	return nil
}

// UserHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) UserHistory(ctx context.Context, userID int64) ([]payroll.PayrollResponse, error) {
	if err := scopeToActor(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	records, err := s.PayrollRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// UserChart implements payroll.PayrollService.
func (s *PayrollServiceImpl) UserChart(ctx context.Context, userID int64, window string) (payroll.ChartResponse, error) {
	if err := scopeToActor(ctx, userID); err != nil {
		return payroll.ChartResponse{}, err
	}

	w, ok := payroll.ParseWindow(window)
	if !ok {
		return payroll.ChartResponse{}, payroll.ErrInvalidWindow
	}

	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return payroll.ChartResponse{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return payroll.ChartResponse{}, user.ErrUserNotFound
	}

	records, err := s.PayrollRepository.ListByUser(ctx, userID)
	if err != nil {
		return payroll.ChartResponse{}, err
	}

	now := time.Now().UTC()
	if len(records) == 0 {
		return payroll.ChartResponse{
			Window:      string(w),
			Placeholder: true,
			Points:      payroll.PlaceholderSeries(now),
		}, nil
	}

	return payroll.ChartResponse{
		Window: string(w),
		Points: payroll.BuildSeries(records, w, now),
	}, nil
}
