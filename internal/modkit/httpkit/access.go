package httpkit

import (
	"net/http"

	pnet "salesops/internal/platform/net"
)

// AccessPort decides whether the authenticated user may perform reviewer actions
type AccessPort interface {
	Allow(r *http.Request, userID string) error
}

// Access is middleware that checks the user on context against the port
func Access(p AccessPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid := pnet.UserID(r.Context())
			if err := p.Allow(r, uid); err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
