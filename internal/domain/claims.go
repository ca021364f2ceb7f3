package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o cliente da API autenticado via /v1/login
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
