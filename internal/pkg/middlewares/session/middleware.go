package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/diegoamaro-sudo/levaali/internal/pkg/auth"
)

type contextKey struct{}

type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Middleware проверяет Bearer-токен и кладет claims в контекст запроса.
// Клиентскому хранилищу не доверяем, личность берется только из токена.
func Middleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), claims)))
		})
	}
}

// NewContext кладет claims в контекст, парный FromContext.
func NewContext(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// FromContext возвращает claims, положенные Middleware.
func FromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*auth.Claims)
	return claims, ok
}
