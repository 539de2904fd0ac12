package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/geoanla/internal/config"
)

// APIKeyHeader carries the client's key.
const APIKeyHeader = "X-API-Key"

type authError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// APIKeyAuth rejects requests without a configured key in the X-API-Key
// header. With RequireAPIKey off every request passes; with it on and no keys
// configured every request is rejected.
func APIKeyAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(APIKeyHeader)
			switch {
			case key == "":
				deny(w, r, http.StatusUnauthorized, authError{Error: "missing API key", Code: "AUTH001"})
			case !validKey(key, cfg.APIKeys):
				deny(w, r, http.StatusForbidden, authError{Error: "invalid API key", Code: "AUTH002"})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, status int, body authError) {
	slog.Warn("auth: request denied",
		"code", body.Code,
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// validKey compares key against every configured key in constant time, so
// the duration does not reveal which key matched.
func validKey(key string, keys []string) bool {
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare([]byte(key), []byte(k))
	}
	return match == 1
}
