package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/response"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
)

// stubPayrollService returns canned values so handler behavior can be checked
// without a database.
type stubPayrollService struct {
	resp  payroll.PayrollResponse
	list  payroll.ListPayrollResponse
	chart payroll.ChartResponse
	err   error

	gotWindow string
}

func (s *stubPayrollService) Create(ctx context.Context, req payroll.SavePayrollRequest) (payroll.PayrollResponse, error) {
	return s.resp, s.err
}

func (s *stubPayrollService) Get(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
	return s.resp, s.err
}

func (s *stubPayrollService) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	return s.list, s.err
}

func (s *stubPayrollService) Update(ctx context.Context, id int64, req payroll.SavePayrollRequest) (payroll.PayrollResponse, error) {
	return s.resp, s.err
}

func (s *stubPayrollService) Delete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubPayrollService) UserHistory(ctx context.Context, userID int64) ([]payroll.PayrollResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []payroll.PayrollResponse{s.resp}, nil
}

func (s *stubPayrollService) UserChart(ctx context.Context, userID int64, window string) (payroll.ChartResponse, error) {
	s.gotWindow = window
	return s.chart, s.err
}

func newPayrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	h := NewPayrollHandler(svc)
	r := chi.NewRouter()
	r.Post("/payrolls", h.Create)
	r.Get("/payrolls", h.List)
	r.Get("/payrolls/{id}", h.Get)
	r.Put("/payrolls/{id}", h.Update)
	r.Delete("/payrolls/{id}", h.Delete)
	r.Get("/users/{id}/payrolls", h.UserHistory)
	r.Get("/users/{id}/payrolls/chart", h.UserChart)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreatePayrollSuccess(t *testing.T) {
	svc := &stubPayrollService{
		resp: payroll.PayrollResponse{
			ID:          1,
			UserID:      7,
			GrossAmount: decimal.NewFromInt(5000000),
			NetSalary:   decimal.NewFromInt(4500000),
		},
	}
	router := newPayrollTestRouter(svc)

	body := `{"user_id":7,"gross_amount":"5000000","deductions":{"koperasi":"500000"}}`
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
}

func TestCreatePayrollMalformedBody(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestGetPayrollNotFound(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{err: payroll.ErrPayrollNotFound})

	req := httptest.NewRequest(http.MethodGet, "/payrolls/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestDeletePayrollNotFound(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{err: payroll.ErrPayrollNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/payrolls/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestGetPayrollInvalidID(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payrolls/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayrollValidationEnvelope(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{
		err: validator.ValidationErrors{
			{Field: "gross_amount", Message: "must be non-negative"},
		},
	})

	body := `{"user_id":7,"gross_amount":"-1"}`
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "gross_amount")
}

func TestListPayrollMeta(t *testing.T) {
	svc := &stubPayrollService{
		list: payroll.ListPayrollResponse{
			Data:       []payroll.PayrollResponse{{ID: 1}, {ID: 2}},
			TotalCount: 25,
			Page:       2,
			Limit:      10,
		},
	}
	router := newPayrollTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/payrolls?page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 2, envelope.Meta.Page)
	assert.Equal(t, int64(25), envelope.Meta.TotalItems)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}

func TestListPayrollRejectsBadUserFilter(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payrolls?user_id=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHistoryForbiddenEnvelope(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{err: user.ErrInsufficientPermissions})

	req := httptest.NewRequest(http.MethodGet, "/users/8/payrolls", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
}

func TestUserChartPassesWindowThrough(t *testing.T) {
	svc := &stubPayrollService{
		chart: payroll.ChartResponse{Window: "4w", Points: []payroll.SeriesPoint{}},
	}
	router := newPayrollTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/7/payrolls/chart?window=4w", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4w", svc.gotWindow)
}

func TestUserChartInvalidWindowEnvelope(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{err: payroll.ErrInvalidWindow})

	req := httptest.NewRequest(http.MethodGet, "/users/7/payrolls/chart?window=1y", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}
