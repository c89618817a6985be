package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
)

// ParseNets converts a list of IP addresses and CIDR ranges to net.IPNet.
// Single IPs become /32 (IPv4) or /128 (IPv6) blocks. Invalid entries are skipped.
func ParseNets(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, entry := range entries {
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			continue
		}
		bits := 32
		if ip.To4() == nil {
			bits = 128
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets
}

// InNets reports whether ip falls inside one of nets.
func InNets(ip string, nets []*net.IPNet) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, ipNet := range nets {
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

// IPExtractor returns the echo IP extractor used for c.RealIP.
// X-Forwarded-For is only honored for hops inside trusted; loopback and private
// ranges are not trusted implicitly. Without trusted proxies the connection
// address is used as is.
func IPExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trusted {
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
