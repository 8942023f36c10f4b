package v1handler

import (
	"context"
	"foodgram/internal/accounts"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ctxKey string

// SessionKey is the context key under which the authenticated session is stored.
const SessionKey ctxKey = "session"

// SessionFromContext returns the session of the authenticated caller, or nil
// for anonymous requests.
func SessionFromContext(ctx context.Context) *accounts.Session {
	session, _ := ctx.Value(SessionKey).(*accounts.Session)

	return session
}

// viewerID returns the ID of the caller; zero for anonymous requests.
func viewerID(ctx context.Context) domain.UserID {
	if session := SessionFromContext(ctx); session != nil {
		return session.User.ID
	}

	return 0
}

// tokenFromHeader extracts the token of "Token <jwt>" and "Bearer <jwt>"
// Authorization headers. Other schemes are not ours and are ignored.
func tokenFromHeader(header string) (string, bool, error) {
	scheme, token, _ := strings.Cut(strings.TrimSpace(header), " ")
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false, nil
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", false, serrors.With(serrors.ErrUnauthorized, "Invalid token header.")
	}

	return token, true, nil
}

// Authenticate resolves the Authorization header into a session. Requests
// without credentials pass through anonymously; bad credentials are rejected.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok, err := tokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.authFailures.Add(r.Context(), 1)
			h.writeError(w, r, err)

			return
		}
		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		session, err := h.deps.Accounts.Authenticate(r.Context(), token)
		if err != nil {
			if serrors.KindOf(err) == serrors.ErrUnauthorized {
				h.authFailures.Add(r.Context(), 1)
			}
			h.writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		ctx = logger.WithFields(ctx, zap.Int64("userID", int64(session.User.ID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous requests.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, msgNotAuthenticated))

			return
		}
		next.ServeHTTP(w, r)
	})
}
