package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

type TokenParser interface {
	ParseToken(tokenString string) (*service.Claims, error)
}

// JWTAuth admits requests carrying a valid "Bearer <token>" admin session.
func JWTAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, "authorization token is not provided")
				return
			}
			claims, err := parser.ParseToken(token)
			if err != nil {
				unauthorized(w, "token is invalid or expired")
				return
			}
			ctx := context.WithValue(r.Context(), AdminEmailCtxKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// AdminEmail returns the email stored by JWTAuth, or "".
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(AdminEmailCtxKey).(string)
	return email
}
