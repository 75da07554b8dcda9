// Package tokens проверка операторских JWT. Выпуск токенов принадлежит
// сервису аутентификации платформы, здесь только валидация.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type OperatorClaims struct {
	jwt.RegisteredClaims
	ID int64
}

// GenerateOperatorJWT используется в тестах и локальной отладке.
func GenerateOperatorJWT(id int64, expire time.Duration, key []byte) (string, error) {
	claims := OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID: id,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating operator jwt token: %s", err.Error())
	}
	return signed, nil
}

// ValidateOperatorJWT парсит и проверяет подпись и срок токена.
func ValidateOperatorJWT(tokenStr string, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &OperatorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("validating operator jwt: %w", err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return token, nil
}
