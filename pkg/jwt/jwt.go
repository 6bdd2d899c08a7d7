package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SubjectEdicion es el sujeto de los tokens del modo edición. No hay usuarios:
// el token solo acredita que se introdujo el PIN correcto.
const SubjectEdicion = "edicion"

// Generate emite un token HS256 de sesión de edición.
func Generate(secret, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   SubjectEdicion,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token de edición. Devuelve error si es inválido, expiró,
// la firma no cuadra o el sujeto no es el esperado.
func Parse(secret, tokenString string) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("claims inválidos")
	}
	if claims.Subject != SubjectEdicion {
		return fmt.Errorf("sujeto inesperado: %q", claims.Subject)
	}
	return nil
}
