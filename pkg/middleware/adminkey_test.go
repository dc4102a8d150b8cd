package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lcm-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func adminProtected(config utils.AdminConfig) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminKey(config, zap.NewNop())(next)
}

func TestAdminKey_MissingHeader(t *testing.T) {
	handler := adminProtected(utils.AdminConfig{Key: "secret"})

	// query parameters make no difference without the header
	req := httptest.NewRequest("GET", "/bookings?date=2025-08-22", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminKey_WrongKey(t *testing.T) {
	handler := adminProtected(utils.AdminConfig{Key: "secret"})

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("X-Admin-Key", "guess")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminKey_ValidKey(t *testing.T) {
	handler := adminProtected(utils.AdminConfig{Key: "secret"})

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("X-Admin-Key", "secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminKey_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	handler := adminProtected(utils.AdminConfig{KeyHash: string(hash)})

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("X-Admin-Key", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("X-Admin-Key", "guess")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminKey_Unconfigured(t *testing.T) {
	handler := adminProtected(utils.AdminConfig{})

	req := httptest.NewRequest("GET", "/bookings", nil)
	req.Header.Set("X-Admin-Key", "")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
