package middleware

import (
	"net/http"

	pnet "hebdate/internal/platform/net"
)

// RequestContext copies the chi request id into the logger context and echoes it on the response
// Must run after RequestID
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pnet.RequestID(r.Context())
		if id != "" {
			w.Header().Set(pnet.HeaderRequestID, id)
			r = r.WithContext(pnet.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
