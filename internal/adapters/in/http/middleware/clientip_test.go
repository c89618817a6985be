package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPExtractor(t *testing.T) {
	trusted := ParseNets([]string{"127.0.0.1", "10.0.0.0/8"})

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		trusted    bool
		wantIP     string
	}{
		{
			name:       "from RemoteAddr",
			remoteAddr: "192.168.1.100:12345",
			wantIP:     "192.168.1.100",
		},
		{
			name:       "XFF ignored when no trusted proxies",
			remoteAddr: "127.0.0.1:12345",
			xff:        "203.0.113.50",
			wantIP:     "127.0.0.1",
		},
		{
			name:       "XFF ignored when remote is not trusted",
			remoteAddr: "192.168.1.100:12345",
			xff:        "203.0.113.50",
			trusted:    true,
			wantIP:     "192.168.1.100",
		},
		{
			name:       "XFF honored from trusted proxy",
			remoteAddr: "127.0.0.1:12345",
			xff:        "203.0.113.50",
			trusted:    true,
			wantIP:     "203.0.113.50",
		},
		{
			name:       "trusted hops skipped",
			remoteAddr: "127.0.0.1:12345",
			xff:        "203.0.113.50, 10.0.0.1",
			trusted:    true,
			wantIP:     "203.0.113.50",
		},
		{
			name:       "untrusted hop stops the walk",
			remoteAddr: "127.0.0.1:12345",
			xff:        "203.0.113.50, 172.16.0.1",
			trusted:    true,
			wantIP:     "172.16.0.1",
		},
		{
			name:       "IPv6 RemoteAddr",
			remoteAddr: "[::1]:12345",
			wantIP:     "::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}

			extractor := IPExtractor(nil)
			if tt.trusted {
				extractor = IPExtractor(trusted)
			}

			assert.Equal(t, tt.wantIP, extractor(req))
		})
	}
}

func TestParseNets(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		testIP  string
		want    bool
	}{
		{name: "empty list", entries: []string{}, testIP: "192.168.1.1", want: false},
		{name: "single IP match", entries: []string{"192.168.1.1"}, testIP: "192.168.1.1", want: true},
		{name: "single IP no match", entries: []string{"192.168.1.1"}, testIP: "192.168.1.2", want: false},
		{name: "CIDR match", entries: []string{"10.0.0.0/8"}, testIP: "10.1.2.3", want: true},
		{name: "CIDR no match", entries: []string{"10.0.0.0/8"}, testIP: "192.168.1.1", want: false},
		{name: "mixed IP and CIDR", entries: []string{"127.0.0.1", "10.0.0.0/8", "172.16.0.0/12"}, testIP: "172.20.1.1", want: true},
		{name: "invalid entries ignored", entries: []string{"not-an-ip", "10.0.0.0/8"}, testIP: "10.1.2.3", want: true},
		{name: "IPv6 single IP", entries: []string{"::1"}, testIP: "::1", want: true},
		{name: "IPv6 CIDR", entries: []string{"fd00::/8"}, testIP: "fd12:3456::1", want: true},
		{name: "invalid IP", entries: []string{"10.0.0.0/8"}, testIP: "not-an-ip", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InNets(tt.testIP, ParseNets(tt.entries)))
		})
	}
}
