package middlewares

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnd-dev/casso-recon/internal/transport/api/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentOperatorIDKey = "currentOperatorID"

// SecureTokenHeader заголовок webhook'а Casso со статическим общим секретом.
const SecureTokenHeader = "Secure-Token"

// checkAuthorization извлекает токен из заголовка Authorization и проверяет
// его. Если токен не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.OperatorClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	token, err := tokens.ValidateOperatorJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}

	claims, ok := token.Claims.(*tokens.OperatorClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims type")
	}
	return claims, nil
}

// OperatorRequired проверяет, что запрос авторизован оператором. Записывает
// в контекст (поле CurrentOperatorIDKey) id оператора.
func OperatorRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentOperatorIDKey, claims.ID)
		c.Next()
	}
}

// WebhookAuth сверяет статический секрет webhook'а. Протокол Casso —
// точное равенство общего секрета, без подписи тела; сравнение выполняется
// за константное время, но апгрейд до HMAC — продуктовое решение, здесь
// сознательно не делается. При неверном секрете — 401 и никакой обработки.
func WebhookAuth(secureToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(SecureTokenHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secureToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
