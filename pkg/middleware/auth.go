package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

type contextKey string

const ContextKeyAdmin contextKey = "admin"

// AdminOnly exige um token HS256 assinado com AUTH_SECRET e com role "admin".
// Sem segredo configurado as rotas protegidas ficam fechadas.
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Rotas administrativas desabilitadas", nil)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := ValidateAdminToken(tokenString, secret)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token administrativo inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			if claims.Role != domain.RoleAdmin {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ValidateAdminToken(tokenString, secret string) (*domain.AdminClaims, error) {
	claims := &domain.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NewAdminToken assina um token administrativo válido por ttl
func NewAdminToken(name, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := domain.AdminClaims{
		Name: name,
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
