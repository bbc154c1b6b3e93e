package httpadapter

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"biz-awards/internal/core/domain"

	redisstore "biz-awards/internal/adapter/redis"
)

// SessionCookie is the HTTP-only cookie carrying the anonymous ad
// session token. It is unrelated to authenticated identity.
const SessionCookie = "ad_session"

type ctxKey int

const (
	sessionKey ctxKey = iota
	callerKey
)

// withSession resolves the anonymous session for ad routes. A cookie
// token known to the store is reused and its server-side TTL refreshed;
// an unknown or missing token gets a fresh one, stored and set as an
// HTTP-only cookie. The session store being down never blocks ad
// serving: the middleware falls back to a cookie-only token and logs
// the store error.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := ""
		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			token = c.Value
		}

		fresh := token == ""
		if !fresh {
			known, err := h.deps.Sessions.Exists(ctx, token)
			if err != nil {
				h.logger.Warn("session store unavailable", slog.Any("error", err))
			} else if !known {
				// expired server-side; rotate the cookie
				fresh = true
				token = ""
			}
		}
		if fresh {
			minted, err := redisstore.NewToken()
			if err != nil {
				// crypto/rand failing means the host is broken
				h.writeFailure(w, http.StatusInternalServerError, "internal error")
				return
			}
			token = minted
		}

		if err := h.deps.Sessions.Save(ctx, token, h.cfg.SessionTTL); err != nil {
			h.logger.Warn("session store unavailable", slog.Any("error", err))
		}

		if fresh {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(h.cfg.SessionTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		session := domain.SessionContext{
			SessionID: token,
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Referer(),
			Device:    domain.InferDevice(r.UserAgent()),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey, session)))
	})
}

// sessionFrom returns the session placed in the context by withSession.
func sessionFrom(ctx context.Context) domain.SessionContext {
	s, _ := ctx.Value(sessionKey).(domain.SessionContext)
	return s
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// transport peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
