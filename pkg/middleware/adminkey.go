package middleware

import (
	"crypto/subtle"
	"net/http"

	"lcm-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey guards admin-only endpoints with a shared secret. The key is sent
// in the X-Admin-Key header. When ADMIN_KEY_HASH is configured the presented
// key is checked against the bcrypt hash, otherwise against ADMIN_KEY with a
// constant-time compare.
func AdminKey(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(adminKeyHeader)
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if !adminKeyValid(config, key) {
				logger.Warn("Admin key rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func adminKeyValid(config utils.AdminConfig, key string) bool {
	if config.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.KeyHash), []byte(key)) == nil
	}

	if config.Key == "" {
		// No secret configured: lock admin endpoints down entirely.
		return false
	}

	return subtle.ConstantTimeCompare([]byte(config.Key), []byte(key)) == 1
}
