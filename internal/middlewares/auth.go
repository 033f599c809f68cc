package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/sbilibin2017/gw-translator/internal/logger"
)

// Tokener extracts the session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

// AuthMiddleware rejects requests without a live session with 401.
func AuthMiddleware(tokener Tokener, authenticator Authenticator) func(http.Handler) http.Handler {
	return authMiddleware(tokener, authenticator, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
	})
}

// LoginRequired redirects requests without a live session to the login page.
func LoginRequired(tokener Tokener, authenticator Authenticator) func(http.Handler) http.Handler {
	return authMiddleware(tokener, authenticator, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}

func authMiddleware(tokener Tokener, authenticator Authenticator, reject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Debugw("authorization failed", "err", err)
				reject(w, r)
				return
			}

			id, err := authenticator.Authenticate(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "err", err)
				reject(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, id)))
		})
	}
}
