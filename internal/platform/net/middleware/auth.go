package middleware

import (
	"net/http"

	pnet "salesops/internal/platform/net"
	"salesops/internal/platform/store"
)

// AuthPort is a tiny seam the auth layer implements
type AuthPort interface {
	// Parse returns the authenticated user id from the request or an error
	Parse(r *http.Request) (userID string, err error)
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			// the store actor mirrors the user id so writes can attribute themselves
			ctx := store.WithActor(pnet.WithUser(r.Context(), uid), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
