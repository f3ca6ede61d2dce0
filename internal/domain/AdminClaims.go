package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// AdminClaims são as claims do token usado nas rotas operacionais
type AdminClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
