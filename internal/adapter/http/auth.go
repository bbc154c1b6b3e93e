package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"biz-awards/internal/core/domain"
	"biz-awards/internal/core/port"
)

// requireRole authenticates the bearer token and checks the resolved
// account holds one of the given roles. The token itself is opaque here;
// the verifier owns its semantics.
func (h *Handler) requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				h.writeFailure(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := h.deps.Tokens.Verify(r.Context(), token)
			if err != nil {
				h.writeFailure(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				h.writeFailure(w, http.StatusForbidden, "insufficient role")
				return
			}

			caller := port.Caller{UserID: user.ID, Role: user.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey, caller)))
		})
	}
}

// callerFrom returns the authenticated caller placed by requireRole.
func callerFrom(ctx context.Context) port.Caller {
	c, _ := ctx.Value(callerKey).(port.Caller)
	return c
}
