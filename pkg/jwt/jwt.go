package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el rol de la identidad.
// ID (jti) es el identificador de la sesión en el servidor; Subject es el ID de la identidad.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "seller" | "logistics" | "delivery" | "business" | "admin" | otro
}

// Generate genera un token JWT firmado para la sesión indicada.
func Generate(secret, sessionID, identityID, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if sessionID == "" {
		return "", fmt.Errorf("jwt: session id vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ErrExpired token vencido.
var ErrExpired = jwt.ErrTokenExpired

// Parse valida el token y devuelve sessionID, identityID y role.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
// Si solo está vencido (errors.Is(err, ErrExpired)) y la firma es correcta, también
// devuelve sus claims para poder cerrar la sesión a la que apuntaba.
func Parse(secret, tokenString string) (sessionID, identityID, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	claims, err := parse(secret, tokenString)
	if errors.Is(err, jwt.ErrTokenExpired) {
		expired, verr := parse(secret, tokenString, jwt.WithoutClaimsValidation())
		if verr != nil {
			return "", "", "", err
		}
		return expired.ID, expired.Subject, expired.Role, err
	}
	if err != nil {
		return "", "", "", err
	}
	return claims.ID, claims.Subject, claims.Role, nil
}

func parse(secret, tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("jwt: token sin session id")
	}
	return claims, nil
}
