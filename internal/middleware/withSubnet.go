package middleware

import (
	"net"
	"net/http"
)

// TrustedIP reports whether ip belongs to the CIDR subnet. An empty subnet
// trusts nobody.
func TrustedIP(subnet, ip string) bool {
	if subnet == "" {
		return false
	}

	_, ipNet, err := net.ParseCIDR(subnet)
	if err != nil {
		return false
	}

	parsed := net.ParseIP(ip)
	return parsed != nil && ipNet.Contains(parsed)
}

// WithSubnet only lets through requests whose X-Real-IP header is inside
// the trusted subnet.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !TrustedIP(subnet, r.Header.Get("X-Real-IP")) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
