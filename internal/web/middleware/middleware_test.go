package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonMunkholm/geoanla/internal/config"
)

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		headers map[string]string
		want    string
	}{
		{"no trusted proxies", nil, "10.0.0.1:5000", map[string]string{"X-Real-IP": "1.2.3.4"}, "10.0.0.1:5000"},
		{"untrusted source", []string{"192.168.0.0/16"}, "10.0.0.1:5000", map[string]string{"X-Real-IP": "1.2.3.4"}, "10.0.0.1:5000"},
		{"real ip from trusted cidr", []string{"10.0.0.0/8"}, "10.0.0.1:5000", map[string]string{"X-Real-IP": "1.2.3.4"}, "1.2.3.4"},
		{"bare trusted address", []string{"10.0.0.1"}, "10.0.0.1:5000", map[string]string{"X-Real-IP": "1.2.3.4"}, "1.2.3.4"},
		{"first forwarded entry", []string{"10.0.0.0/8"}, "10.0.0.1:5000", map[string]string{"X-Forwarded-For": "5.6.7.8, 10.0.0.2"}, "5.6.7.8"},
		{"invalid header kept out", []string{"10.0.0.0/8"}, "10.0.0.1:5000", map[string]string{"X-Real-IP": "not-an-ip"}, "10.0.0.1:5000"},
		{"invalid cidr skipped", []string{"bogus", "10.0.0.0/8"}, "10.0.0.1:5000", map[string]string{"X-Real-IP": "1.2.3.4"}, "1.2.3.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIKeyAuth_NoKeysConfigured(t *testing.T) {
	cfg := &config.SecurityConfig{RequireAPIKey: true}
	h := APIKeyAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "anything")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"invalid API key","code":"AUTH002"}`, rec.Body.String())
}

func TestLogger_PassesThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
