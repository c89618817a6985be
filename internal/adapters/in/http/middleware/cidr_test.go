package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/faultline/internal/adapters/dto"
)

func TestCIDRAllowlist(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []*net.IPNet
		trusted    []*net.IPNet
		remoteAddr string
		xff        string
		wantStatus int
	}{
		{
			name:       "no CIDRs configured passes through",
			remoteAddr: "203.0.113.50:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "allowed IP",
			allowed:    ParseNets([]string{"100.64.0.0/10"}),
			remoteAddr: "100.100.1.1:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "denied IP",
			allowed:    ParseNets([]string{"100.64.0.0/10"}),
			remoteAddr: "203.0.113.50:1234",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "localhost always allowed",
			allowed:    ParseNets([]string{"100.64.0.0/10"}),
			remoteAddr: "127.0.0.2:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "IPv6 localhost always allowed",
			allowed:    ParseNets([]string{"100.64.0.0/10"}),
			remoteAddr: "[::1]:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "trusted proxy forwards denied client IP",
			allowed:    ParseNets([]string{"100.64.0.0/10"}),
			trusted:    ParseNets([]string{"10.0.0.1"}),
			remoteAddr: "10.0.0.1:1234",
			xff:        "203.0.113.50",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.IPExtractor = IPExtractor(tt.trusted)
			e.Use(CIDRAllowlist(tt.allowed, testLogger()))
			e.POST("/api/kill/:region", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/kill/us-east-1", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				var errResp dto.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "Forbidden", errResp.Error)
			}
		})
	}
}
