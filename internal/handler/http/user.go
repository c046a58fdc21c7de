package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GeneratePassword(w http.ResponseWriter, r *http.Request)
	UploadProfilePhoto(w http.ResponseWriter, r *http.Request)
	RankOptions(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	userResponse, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, userResponse)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (service validates)
	userResponse, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created successfully", "user_id", userResponse.ID)
	response.Created(w, "User created successfully", userResponse)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	userResponse, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User updated successfully", "user_id", userResponse.ID)
	response.SuccessWithMessage(w, "User updated successfully", userResponse)
}

// GeneratePassword implements UserHandler.
func (h *UserHandlerImpl) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	generated, err := h.userService.GeneratePassword(r.Context())
	if err != nil {
		slog.Error("Generate password service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, generated)
}

// UploadProfilePhoto implements UserHandler.
func (h *UserHandlerImpl) UploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Photo file is required", nil)
		return
	}
	defer file.Close()

	userResponse, err := h.userService.UploadProfilePhoto(r.Context(), id, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("Upload profile photo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile photo uploaded successfully", "user_id", id)
	response.SuccessWithMessage(w, "Profile photo uploaded successfully", userResponse)
}

// RankOptions implements UserHandler.
func (h *UserHandlerImpl) RankOptions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.userService.RankOptions(r.Context()))
}
