package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/rkp0912/Trello-quora/internal/api/respond"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/service"
)

type contextKey string

const (
	SessionKey contextKey = "session"
)

// Auth resolves the access token on every protected request and stashes
// the active session in the request context. The authorization header
// carries the raw token value with no "Bearer " prefix; that is the wire
// contract clients already rely on.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("authorization")
			if token == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				respond.Error(w, domain.ErrNotSignedIn)
				return
			}

			session, err := authService.Resolve(r.Context(), token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token resolution failed: %v", err)
				respond.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (*domain.UserSession, bool) {
	session, ok := ctx.Value(SessionKey).(*domain.UserSession)
	return session, ok
}
