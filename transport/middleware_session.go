package transport

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	utilsContext "github.com/cwagoventures/cosmibeautii-backend/utils/context"
)

// SessionHeader correlates a browser with its server-side cart and checkout
// state. There is no authentication behind it; the id is an opaque handle.
const SessionHeader = "X-Session-ID"

// SessionMiddleware assigns or propagates the storefront session id and
// embeds it into the request context. The id is echoed back so a fresh
// client can keep using it.
func SessionMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/swagger/") {
				next.ServeHTTP(w, r)
				return
			}

			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			w.Header().Set(SessionHeader, sessionID)

			ctx := utilsContext.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
