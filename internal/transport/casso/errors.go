package casso

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoTransactions = errors.New("no transactions")
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// TooManyRequestError шлюз ограничил частоту запросов; RetryAfter взят из
// одноименного заголовка ответа.
type TooManyRequestError struct {
	RetryAfter time.Duration
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}
