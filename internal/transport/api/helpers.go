package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thanhnd-dev/casso-recon/internal/transport/api/middlewares"
)

const timeFormat = time.RFC3339

const (
	defaultUnmatchedLimit uint = 50
	maxUnmatchedLimit     uint = 500
)

// getOperatorIDFromContext id оператора кладет в контекст middleware
// OperatorRequired; до хендлера без него запрос не доходит.
func getOperatorIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentOperatorIDKey)
	operatorID, _ := id.(int64)
	return operatorID
}

func parseLimitQuery(c *gin.Context) uint {
	raw := c.Query("limit")
	if raw == "" {
		return defaultUnmatchedLimit
	}
	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return defaultUnmatchedLimit
	}
	if uint(limit) > maxUnmatchedLimit {
		return maxUnmatchedLimit
	}
	return uint(limit)
}
