package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrAlreadyPaid охранное условие перехода не прошло: заказ уже оплачен.
	// Это информационный исход, а не сбой.
	ErrAlreadyPaid = errors.New("order already paid")

	// ErrUpstreamUnavailable шлюз транзакций недоступен. Вызывающая сторона
	// повторяет запрос с backoff, состояние заказов не трогается.
	ErrUpstreamUnavailable = errors.New("gateway unavailable")
)

// AlreadyPaidError детализирует ErrAlreadyPaid существующими данными платежа,
// чтобы оператор видел, какой транзакцией заказ был закрыт.
type AlreadyPaidError struct {
	OrderNumber   string
	TransactionID string
}

func NewAlreadyPaidError(orderNumber, transactionID string) error {
	return &AlreadyPaidError{OrderNumber: orderNumber, TransactionID: transactionID}
}

func (e *AlreadyPaidError) Error() string {
	return fmt.Sprintf(
		"order %s already settled by transaction %s",
		e.OrderNumber,
		e.TransactionID,
	)
}

func (e *AlreadyPaidError) Unwrap() error {
	return ErrAlreadyPaid
}
