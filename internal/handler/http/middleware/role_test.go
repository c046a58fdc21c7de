package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
)

func ctxWithClaims(t *testing.T, userID int64, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": strconv.FormatInt(userID, 10),
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newProfileRouter() *chi.Mux {
	r := chi.NewRouter()
	r.With(RequireSelfOrPermission(user.PermissionUserManage)).
		Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	return r
}

func getAs(t *testing.T, router *chi.Mux, path string, userID int64, role user.Role) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(ctxWithClaims(t, userID, role))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireSelfOrPermissionAllowsOwnProfile(t *testing.T) {
	router := newProfileRouter()

	rec := getAs(t, router, "/users/7", 7, user.RoleGuest)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSelfOrPermissionRejectsOtherProfile(t *testing.T) {
	router := newProfileRouter()

	for _, role := range []user.Role{user.RoleGuest, user.RoleSupervisor} {
		rec := getAs(t, router, "/users/8", 7, role)
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestRequireSelfOrPermissionAdminReadsAnyProfile(t *testing.T) {
	router := newProfileRouter()

	rec := getAs(t, router, "/users/8", 7, user.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSelfOrPermissionRejectsMissingClaims(t *testing.T) {
	router := newProfileRouter()

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionChecksCapabilityTable(t *testing.T) {
	r := chi.NewRouter()
	r.With(RequirePermission(user.PermissionPayrollCreate)).
		Post("/payrolls", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	req = req.WithContext(ctxWithClaims(t, 1, user.RoleAdmin))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	req = req.WithContext(ctxWithClaims(t, 1, user.RoleSupervisor))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
