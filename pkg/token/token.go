package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos que o backend GraphixWeb emite.
// Roles permite que a camada de UI esconda telas sem consultar o backend.
type Claims struct {
	jwt.RegisteredClaims
	UserID int      `json:"user_id"`
	Name   string   `json:"name"`
	Login  string   `json:"login"`
	Roles  []string `json:"roles"`
}

// Generate gera um token JWT assinado (HS256) com os claims informados.
// Usado pelo stub de desenvolvimento; o backend real emite seus próprios tokens.
func Generate(secret, issuer string, c Claims, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vazio")
	}
	now := time.Now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   fmt.Sprintf("%d", c.UserID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// Parse valida assinatura e expiração e devolve os claims.
// Somente o stub usa este caminho; o cliente nunca valida assinatura localmente.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vazio")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// DecodeUnverified decodifica os claims SEM validar a assinatura.
// Serve apenas para exibição (nome, roles) na camada de UI; nunca deve ser
// tratado como decisão de autorização — o backend revalida tudo.
func DecodeUnverified(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
