// Package dto структуры ответов Casso API.
package dto

import (
	"fmt"
	"time"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

// cassoTimeLayout время в ответах Casso приходит строкой без зоны,
// интерпретируется как локальное время банка.
const cassoTimeLayout = "2006-01-02 15:04:05"

type Transaction struct {
	ID          string `json:"id"`
	TID         string `json:"tid"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	When        string `json:"when"`
}

// Domain конвертирует ответ шлюза в доменную транзакцию.
func (t Transaction) Domain() (domain.ExternalTransaction, error) {
	when, err := time.ParseInLocation(cassoTimeLayout, t.When, time.Local)
	if err != nil {
		return domain.ExternalTransaction{}, fmt.Errorf("parse transaction time `%s`: %s", t.When, err.Error())
	}
	return domain.ExternalTransaction{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		When:        when,
	}, nil
}

type ListResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Data    struct {
		Page       int           `json:"page"`
		PageSize   int           `json:"pageSize"`
		TotalPages int           `json:"totalPages"`
		Records    []Transaction `json:"records"`
	} `json:"data"`
}

type GetResponse struct {
	Error   int         `json:"error"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}
