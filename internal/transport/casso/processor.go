// Package casso тянет транзакции из банковского шлюза и прогоняет их через
// координатор сверки. Поллинг — резервный канал на случай потерянных
// webhook'ов; идемпотентность координатора делает двойную доставку безвредной.
package casso

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultAPITimeout          = 10 * time.Second
	defaultPollInterval        = 30 * time.Second
	defaultMaxBackoff          = 5 * time.Minute
	defaultLookback            = 48 * time.Hour
	defaultWorkers        uint = 5
	maxPagesPerIteration  uint = 20
)

// Processor периодически опрашивает шлюз и скармливает транзакции
// координатору сверки.
type Processor struct {
	client       Client
	recon        Reconciler
	l            *logrus.Entry
	pollInterval time.Duration
	lookback     time.Duration
	workers      uint
}

// New создает новый экземпляр поллера шлюза.
func New(recon Reconciler, client Client, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "casso",
		"module":    "processor",
	})

	return &Processor{
		client:       client,
		recon:        recon,
		l:            loggerEntry,
		pollInterval: defaultPollInterval,
		lookback:     defaultLookback,
		workers:      defaultWorkers,
	}
}

// SetPollInterval устанавливает паузу между итерациями опроса.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	p.pollInterval = interval
	return p
}

// SetWorkers устанавливает кол-во воркеров, скармливающих транзакции
// координатору.
func (p *Processor) SetWorkers(workers uint) *Processor {
	p.workers = workers
	return p
}

// SetLookback устанавливает глубину выборки по дате транзакции.
func (p *Processor) SetLookback(lookback time.Duration) *Processor {
	p.lookback = lookback
	return p
}

// Run запускает цикл опроса до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации постранично выбираются транзакции за окно lookback.
//  2. N воркеров (SetWorkers) параллельно прогоняют их через координатор;
//     транзакции независимы, порядок между ними не важен.
//  3. Ошибка выборки не трогает состояние заказов: итерация просто
//     повторяется со следующим тиком, пауза растет экспоненциально до
//     defaultMaxBackoff и сбрасывается при успехе.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"pollInterval": p.pollInterval.String(),
		"workers":      p.workers,
	}).Info("Starting")

	backoff := p.pollInterval

	for {
		if err := p.process(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				p.l.Info("Got stop signal, exiting...")
				return
			}
			if !errors.Is(err, ErrNoTransactions) {
				p.l.WithError(err).Error("poll iteration failed")
				backoff = minDuration(backoff*2, defaultMaxBackoff) //nolint:mnd
			}
		} else {
			backoff = p.pollInterval
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(backoff):
		}
	}
}

// process выполняет одну итерацию: выборка страниц и прогон через воркеров.
// Возвращает ErrNoTransactions, если шлюз не вернул ни одной записи.
func (p *Processor) process(ctx context.Context) error {
	transactions, fetchErr := p.fetchAll(ctx)
	if fetchErr != nil {
		return fmt.Errorf("process: %w", fetchErr)
	}
	if len(transactions) == 0 {
		return ErrNoTransactions
	}

	results := p.runWorkers(ctx, transactions)
	for _, result := range results {
		l := p.l.WithFields(logrus.Fields{
			"transactionID": result.TransactionID,
			"worker":        result.WorkerID,
		})
		switch {
		case result.Error != nil:
			l.WithError(result.Error).Error("ingest transaction")
		case result.Outcome == domain.OutcomeMatched && !result.Replayed:
			l.Info("transaction settled an order")
		default:
			l.WithField("outcome", result.Outcome).Debug("transaction not applied")
		}
	}
	return nil
}

// fetchAll постранично выбирает транзакции. На 429 ждет Retry-After и
// продолжает с той же страницы.
func (p *Processor) fetchAll(ctx context.Context) ([]domain.ExternalTransaction, error) {
	from := time.Now().Add(-p.lookback)
	var all []domain.ExternalTransaction

	var page uint = 1
	for page <= maxPagesPerIteration {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		transactions, hasMore, err := p.client.ListTransactions(reqCtx, page, from)
		cancel()

		if err != nil {
			var tooManyReq *TooManyRequestError
			if errors.As(err, &tooManyReq) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err() //nolint:wrapcheck
				case <-time.After(tooManyReq.RetryAfter):
					continue
				}
			}
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, transactions...)
		if !hasMore {
			break
		}
		page++
	}
	return all, nil
}

// workerResult представляет результат прогона одной транзакции.
type workerResult struct {
	WorkerID      uint
	TransactionID string
	Outcome       domain.MatchOutcome
	Replayed      bool
	Error         error
}

// runWorkers запускает параллельных воркеров и ожидает конца их работы.
// Паттерн fan-out/fan-in: единственный разделяемый ресурс — запись заказа —
// защищен атомарным условным переходом в БД, не глобальной блокировкой.
func (p *Processor) runWorkers(ctx context.Context, transactions []domain.ExternalTransaction) []workerResult {
	var taskCh = make(chan domain.ExternalTransaction, len(transactions))
	for _, tx := range transactions {
		taskCh <- tx
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) //nolint:gosec

	var resultCh = make(chan workerResult, len(transactions))

	for i := uint(0); i < p.workers; i++ {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(transactions))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan domain.ExternalTransaction,
	resultCh chan<- workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}

			reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
			res, err := p.recon.Ingest(reqCtx, task)
			cancel()

			result := workerResult{
				WorkerID:      workerID,
				TransactionID: task.ID,
				Error:         err,
			}
			if res != nil {
				result.Outcome = res.Outcome
				result.Replayed = res.Replayed
			}
			resultCh <- result
		}
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
