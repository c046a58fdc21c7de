package http

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/response"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UserHistory(w http.ResponseWriter, r *http.Request)
	UserChart(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// pagination reads page/limit query values with sane defaults.
func pagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var saveReq payroll.SavePayrollRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (service validates and recomputes totals)
	payrollResponse, err := h.payrollService.Create(r.Context(), saveReq)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record created successfully", "payroll_id", payrollResponse.ID, "user_id", payrollResponse.UserID)
	response.Created(w, "Payroll record created successfully", payrollResponse)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid payroll id", nil)
		return
	}

	payrollResponse, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, payrollResponse)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := payroll.PayrollFilter{Page: page, Limit: limit}

	if rawUserID := r.URL.Query().Get("user_id"); rawUserID != "" {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			response.BadRequest(w, "Invalid user_id filter", nil)
			return
		}
		filter.UserID = &userID
	}

	listResponse, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: int(math.Ceil(float64(listResponse.TotalCount) / float64(listResponse.Limit))),
	}
	response.SuccessWithMeta(w, listResponse.Data, meta)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid payroll id", nil)
		return
	}

	var saveReq payroll.SavePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payrollResponse, err := h.payrollService.Update(r.Context(), id, saveReq)
	if err != nil {
		slog.Error("Update payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record updated successfully", "payroll_id", payrollResponse.ID)
	response.SuccessWithMessage(w, "Payroll record updated successfully", payrollResponse)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid payroll id", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record deleted successfully", "payroll_id", id)
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// UserHistory implements PayrollHandler.
func (h *PayrollHandlerImpl) UserHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	history, err := h.payrollService.UserHistory(r.Context(), userID)
	if err != nil {
		slog.Error("User payroll history service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, history)
}

// UserChart implements PayrollHandler.
func (h *PayrollHandlerImpl) UserChart(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	chart, err := h.payrollService.UserChart(r.Context(), userID, r.URL.Query().Get("window"))
	if err != nil {
		slog.Error("User payroll chart service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, chart)
}
