package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/extract"
	"github.com/thanhnd-dev/casso-recon/internal/match"
	"github.com/thanhnd-dev/casso-recon/internal/notify"
	"github.com/thanhnd-dev/casso-recon/internal/pricing"
	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"
	"github.com/thanhnd-dev/casso-recon/pkg/uow"
)

// ReconService координатор сверки платежей. Принимает транзакции из двух
// независимых источников — webhook/поллинг шлюза и ручная привязка оператора —
// и гарантирует ровно один успешный переход заказа в paid.
type ReconService struct {
	uow           uow.UOW
	orderRepo     OrderRepository
	processedRepo ProcessedTransactionRepository
	attemptRepo   MatchAttemptRepository
	engine        *pricing.Engine
	fetcher       TransactionFetcher
	notifier      Notifier
	l             *logrus.Entry
}

func NewReconService(
	u uow.UOW,
	engine *pricing.Engine,
	fetcher TransactionFetcher,
	notifier Notifier,
	l *logrus.Logger,
) (*ReconService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	processedRepo, err := uow.GetRepositoryAs[ProcessedTransactionRepository](
		u, uow.RepositoryName(repoargs.ProcessedTransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	attemptRepo, err := uow.GetRepositoryAs[MatchAttemptRepository](
		u, uow.RepositoryName(repoargs.MatchAttemptRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &ReconService{
		uow:           u,
		orderRepo:     orderRepo,
		processedRepo: processedRepo,
		attemptRepo:   attemptRepo,
		engine:        engine,
		fetcher:       fetcher,
		notifier:      notifier,
		l:             l.WithField("component", "recon"),
	}, nil
}

// ReconResult итог обработки одной транзакции.
type ReconResult struct {
	Outcome  domain.MatchOutcome
	Reason   string
	Order    *domain.Order
	Replayed bool
}

// Ingest обрабатывает транзакцию, доставленную webhook'ом или поллингом.
//
// Алгоритм работы:
//  1. Если transaction.ID уже в таблице идемпотентности — no-op, возвращается
//     прежний итог (идемпотентный повтор доставки).
//  2. Извлекается номер заказа; без номера поиск заказа не выполняется,
//     попытка журналируется и обработка останавливается.
//  3. Заказ ищется по извлеченному номеру, его total пересчитывается движком
//     цен из позиций (закэшированному total без пересчета не доверяем).
//  4. Матчер решает matched/не matched/причина; неуспех журналируется и
//     оставляет заказ в ожидании оплаты — операторская очередь.
//  5. Успех применяется охраняемым переходом, см. settle.
func (r *ReconService) Ingest(ctx context.Context, tx domain.ExternalTransaction) (*ReconResult, error) {
	if prior, ok, err := r.priorOutcome(ctx, tx.ID); err != nil {
		return nil, err
	} else if ok {
		return prior, nil
	}

	code, ok := extract.Extract(tx.Description)
	if !ok {
		res := ReconResult{
			Outcome: domain.OutcomeNoReference,
			Reason:  "no order reference found in transfer description",
		}
		r.logAttempt(ctx, tx, "", "", 0, res.Outcome, res.Reason)
		return &res, nil
	}

	order, findErr := r.orderRepo.FindByOrderNumber(ctx, code)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			res := ReconResult{
				Outcome: domain.OutcomeOrderNotFound,
				Reason:  fmt.Sprintf("no order found for reference %s", code),
			}
			r.logAttempt(ctx, tx, code, "", 0, res.Outcome, res.Reason)
			return &res, nil
		}
		return nil, fmt.Errorf("ingest transaction %s: %w", tx.ID, findErr)
	}

	verified := r.verifiedOrder(order)

	matchRes := match.Match(tx, verified)
	if !matchRes.Matched {
		r.logAttempt(ctx, tx, matchRes.Extracted, order.OrderNumber,
			matchRes.AmountDelta, matchRes.Outcome, matchRes.Reason)
		return &ReconResult{
			Outcome: matchRes.Outcome,
			Reason:  matchRes.Reason,
			Order:   order,
		}, nil
	}

	return r.settle(ctx, order, tx, settleOpts{
		delta:  matchRes.AmountDelta,
		reason: "matched automatically",
	})
}

// ManualMatchArgs заказ задается либо по ID, либо по номеру — ровно одним
// из двух.
type ManualMatchArgs struct {
	TransactionID string
	OrderID       int64
	OrderNumber   string
	OperatorID    int64
}

// ManualMatch административная привязка транзакции, которую автоматика
// отвергла (опечатка в назначении, сумма вне допуска из-за реальной частичной
// оплаты и т.п.). Матчер здесь намеренно не вызывается — решение принял
// оператор; охрана перехода и учет идемпотентности те же, что и у
// автоматического пути: ручная привязка и доставка webhook'а не могут
// сработать для одного заказа обе.
func (r *ReconService) ManualMatch(ctx context.Context, args ManualMatchArgs) (*ReconResult, error) {
	if prior, ok, err := r.priorOutcome(ctx, args.TransactionID); err != nil {
		return nil, err
	} else if ok {
		return prior, nil
	}

	order, findErr := r.findOrder(ctx, args)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return &ReconResult{
				Outcome: domain.OutcomeOrderNotFound,
				Reason:  "order not found",
			}, nil
		}
		return nil, fmt.Errorf("manual match: %w", findErr)
	}

	tx, fetchErr := r.fetcher.GetTransaction(ctx, args.TransactionID)
	if fetchErr != nil {
		return nil, fmt.Errorf("manual match: fetching transaction %s: %w: %s",
			args.TransactionID, domain.ErrUpstreamUnavailable, fetchErr.Error())
	}

	return r.settle(ctx, order, *tx, settleOpts{
		manual:     true,
		operatorID: args.OperatorID,
		reason:     fmt.Sprintf("matched manually by operator %d", args.OperatorID),
	})
}

// PaymentStatusResult ответ витрине. Клиент видит только pending/paid,
// промежуточные причины неуспеха — диагностика для операторов.
type PaymentStatusResult struct {
	Paid        bool
	Status      domain.PaymentStatus
	Transaction *domain.ProcessedTransaction
}

// PaymentStatus read-only запрос статуса оплаты, безопасен для поллинга
// витриной с любой частотой.
func (r *ReconService) PaymentStatus(ctx context.Context, orderNumber string) (*PaymentStatusResult, error) {
	order, err := r.orderRepo.FindByOrderNumber(ctx, strings.ToUpper(orderNumber))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	res := PaymentStatusResult{
		Paid:   order.Payment.Status == domain.PaymentStatusPaid,
		Status: order.Payment.Status,
	}
	if res.Paid && order.Payment.TransactionID != "" {
		// журнал best-effort: статус отдаем и без деталей транзакции.
		if tx, txErr := r.processedRepo.FindByTransactionID(ctx, order.Payment.TransactionID); txErr == nil {
			res.Transaction = tx
		}
	}
	return &res, nil
}

// UnmatchedAttempts лента несошедшихся попыток для операторской очереди.
func (r *ReconService) UnmatchedAttempts(ctx context.Context, limit uint) ([]domain.MatchAttempt, error) {
	attempts, err := r.attemptRepo.ListUnmatched(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return attempts, nil
}

type settleOpts struct {
	manual     bool
	operatorID int64
	delta      int64
	reason     string
}

// settle применяет сошедшуюся транзакцию к заказу.
//
// Переход заказа, запись идемпотентности и журнальная запись выполняются в
// одной транзакции БД: окна "охрана прошла, а отметка не записана" не
// существует, падение между ними невозможно по построению. Уведомление
// отправляется после коммита, поэтому худший исход рестарта — одно лишнее
// уведомление, но никогда не повторный денежный эффект.
//
// Переходящая ошибка записи повторяется один раз, после чего поднимается
// наверх (транзакция попадет в операторскую очередь при следующей доставке).
func (r *ReconService) settle(
	ctx context.Context,
	order *domain.Order,
	tx domain.ExternalTransaction,
	opts settleOpts,
) (*ReconResult, error) {
	var settled *domain.Order

	apply := func() error {
		return r.uow.Do(ctx, func(c context.Context, utx uow.TX) error {
			orderRepo, repoErr := uow.GetAs[OrderRepository](utx, uow.RepositoryName(repoargs.OrderRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			processedRepo, repoErr := uow.GetAs[ProcessedTransactionRepository](
				utx, uow.RepositoryName(repoargs.ProcessedTransactionRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			attemptRepo, repoErr := uow.GetAs[MatchAttemptRepository](
				utx, uow.RepositoryName(repoargs.MatchAttemptRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}

			upd, settleErr := orderRepo.SettlePayment(c, repoargs.SettlePayment{
				OrderID:       order.ID,
				TransactionID: tx.ID,
				PaidAt:        time.Now(),
			})
			if settleErr != nil {
				return settleErr //nolint:wrapcheck
			}

			if _, createErr := processedRepo.Create(c, repoargs.ProcessedTransactionCreate{
				TransactionID: tx.ID,
				OrderID:       order.ID,
				Amount:        tx.Amount,
				Outcome:       domain.OutcomeMatched,
				Manual:        opts.manual,
				OperatorID:    opts.operatorID,
			}); createErr != nil {
				return createErr //nolint:wrapcheck
			}

			if _, attemptErr := attemptRepo.Create(c, repoargs.MatchAttemptCreate{
				TransactionID:   tx.ID,
				ExtractedNumber: order.OrderNumber,
				ExpectedNumber:  order.OrderNumber,
				AmountDelta:     opts.delta,
				Outcome:         domain.OutcomeMatched,
				Reason:          opts.reason,
			}); attemptErr != nil {
				return attemptErr //nolint:wrapcheck
			}

			settled = upd
			return nil
		})
	}

	err := apply()
	if err != nil && isTransient(err) {
		r.l.WithError(err).WithField("transactionID", tx.ID).Warn("settle failed, retrying once")
		err = apply()
	}

	switch {
	case err == nil:
		r.notifyConfirmed(settled)
		return &ReconResult{Outcome: domain.OutcomeMatched, Reason: opts.reason, Order: settled}, nil

	case errors.Is(err, domain.ErrAlreadyPaid):
		// охрана не прошла — заказ уже оплачен. Побочные эффекты не
		// повторяются: ни уведомления, ни денежных следствий.
		res := ReconResult{
			Outcome: domain.OutcomeAlreadyPaid,
			Reason:  alreadyPaidReason(err, order),
			Order:   order,
		}
		r.logAttempt(ctx, tx, order.OrderNumber, order.OrderNumber, opts.delta, res.Outcome, res.Reason)
		return &res, nil

	case errors.Is(err, domain.ErrDuplicateKey):
		// параллельная доставка той же транзакции успела первой.
		prior, ok, priorErr := r.priorOutcome(ctx, tx.ID)
		if priorErr != nil || !ok {
			return nil, fmt.Errorf("settle order %d: %w", order.ID, err)
		}
		return prior, nil

	default:
		return nil, fmt.Errorf("settle order %d: %w", order.ID, err)
	}
}

// priorOutcome проверяет таблицу идемпотентности. Повторная доставка уже
// примененной транзакции возвращает прежний итог без каких-либо записей.
func (r *ReconService) priorOutcome(ctx context.Context, transactionID string) (*ReconResult, bool, error) {
	prior, err := r.processedRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("checking processed transaction %s: %w", transactionID, err)
	}

	res := ReconResult{
		Outcome:  prior.Outcome,
		Reason:   fmt.Sprintf("transaction already applied to order %d", prior.OrderID),
		Replayed: true,
	}
	if order, orderErr := r.orderRepo.FindByID(ctx, prior.OrderID); orderErr == nil {
		res.Order = order
	}
	return &res, true, nil
}

// verifiedOrder возвращает копию заказа с раскладкой, пересчитанной движком
// цен из сохраненных позиций — именно она сверяется с суммой перевода.
// Расхождение с сохраненной раскладкой означает дрейф данных и логируется.
func (r *ReconService) verifiedOrder(order *domain.Order) domain.Order {
	recomputed := r.engine.Compute(order.Items, order.DeliveryType, order.Tier, order.Coupon, order.CreatedAt)
	if recomputed.Total != order.Pricing.Total {
		r.l.WithFields(logrus.Fields{
			"orderNumber":   order.OrderNumber,
			"storedTotal":   order.Pricing.Total,
			"computedTotal": recomputed.Total,
		}).Warn("stored pricing drifts from recomputation")
	}

	verified := *order
	verified.Pricing = recomputed
	return verified
}

func (r *ReconService) findOrder(ctx context.Context, args ManualMatchArgs) (*domain.Order, error) {
	if args.OrderID != 0 {
		return r.orderRepo.FindByID(ctx, args.OrderID)
	}
	return r.orderRepo.FindByOrderNumber(ctx, strings.ToUpper(args.OrderNumber))
}

// logAttempt пишет журнальную запись вне транзакции. Журнал не должен ломать
// обработку: ошибка записи только логируется.
func (r *ReconService) logAttempt(
	ctx context.Context,
	tx domain.ExternalTransaction,
	extracted, expected string,
	delta int64,
	outcome domain.MatchOutcome,
	reason string,
) {
	_, err := r.attemptRepo.Create(ctx, repoargs.MatchAttemptCreate{
		TransactionID:   tx.ID,
		ExtractedNumber: extracted,
		ExpectedNumber:  expected,
		AmountDelta:     delta,
		Outcome:         outcome,
		Reason:          reason,
	})
	if err != nil {
		r.l.WithError(err).WithField("transactionID", tx.ID).Error("logging match attempt")
	}
}

type paymentConfirmedPayload struct {
	OrderNumber   string     `json:"orderNumber"`
	TransactionID string     `json:"transactionId"`
	Total         int64      `json:"total"`
	PaidAt        *time.Time `json:"paidAt"`
}

func (r *ReconService) notifyConfirmed(order *domain.Order) {
	if order == nil {
		return
	}
	r.notifier.Notify(
		"order:"+order.OrderNumber,
		notify.EventPaymentConfirmed,
		paymentConfirmedPayload{
			OrderNumber:   order.OrderNumber,
			TransactionID: order.Payment.TransactionID,
			Total:         order.Pricing.Total,
			PaidAt:        order.Payment.PaidAt,
		},
	)
}

func alreadyPaidReason(err error, order *domain.Order) string {
	var apErr *domain.AlreadyPaidError
	if errors.As(err, &apErr) {
		return apErr.Error()
	}
	return fmt.Sprintf("order %s already settled", order.OrderNumber)
}

// isTransient отделяет переходящие сбои записи от окончательных исходов,
// повтор которых бессмыслен.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
