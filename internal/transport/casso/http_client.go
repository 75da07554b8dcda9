package casso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/transport/casso/dto"
)

const (
	RouteTransactions = "/v2/transactions"
	RouteTransaction  = "/v2/transactions/%s"

	// dateFilterLayout формат параметра fromDate у Casso.
	dateFilterLayout = "2006-01-02"

	defaultRetryAfter = 30 * time.Second
)

// HTTPClient является реализацией интерфейса Client для HTTP запросов к Casso.
// Шлюз — недоверенный удаленный сервис: может отвечать медленно, повторять
// доставку и ограничивать частоту запросов.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// ListTransactions возвращает страницу транзакций начиная с даты from и
// признак наличия следующих страниц.
func (c *HTTPClient) ListTransactions(
	ctx context.Context,
	page uint,
	from time.Time,
) ([]domain.ExternalTransaction, bool, error) {
	url := fmt.Sprintf("%s%s?page=%d&fromDate=%s",
		c.baseURL, RouteTransactions, page, from.Format(dateFilterLayout))

	var response dto.ListResponse
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, false, err
	}
	if response.Error != 0 {
		return nil, false, fmt.Errorf("casso error %d: %s", response.Error, response.Message)
	}

	var transactions = make([]domain.ExternalTransaction, 0, len(response.Data.Records))
	for _, record := range response.Data.Records {
		tx, convErr := record.Domain()
		if convErr != nil {
			return nil, false, convErr
		}
		transactions = append(transactions, tx)
	}

	hasMore := response.Data.Page < response.Data.TotalPages
	return transactions, hasMore, nil
}

// GetTransaction получает одну транзакцию по ID шлюза.
func (c *HTTPClient) GetTransaction(ctx context.Context, id string) (*domain.ExternalTransaction, error) {
	url := c.baseURL + fmt.Sprintf(RouteTransaction, id)

	var response dto.GetResponse
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}
	if response.Error != 0 {
		return nil, fmt.Errorf("casso error %d: %s", response.Error, response.Message)
	}

	tx, convErr := response.Data.Domain()
	if convErr != nil {
		return nil, convErr
	}
	return &tx, nil
}

//nolint:nonamedreturns
func (c *HTTPClient) getJSON(ctx context.Context, url string, target any) (err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Apikey "+c.apiKey)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		err = &TooManyRequestError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
		return err
	default:
		err = NewStatusCodeError(resp.StatusCode)
		return err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return err
	}

	if jsonErr := json.Unmarshal(body, target); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return err
	}
	return nil
}

func parseRetryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
