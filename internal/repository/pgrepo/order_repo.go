package pgrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"
	"github.com/thanhnd-dev/casso-recon/pkg/uow"
)

const orderColumns = `id, created_at, updated_at, order_number, customer_id, delivery_type, tier,
	items, coupon, subtotal, tax, delivery_fee, discount, total,
	payment_method, payment_status, transaction_id, paid_at`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (o *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`,
		orderNumber,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by number `%s`", orderNumber)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

// SettlePayment выполняет охраняемый переход pending → paid. Условие
// payment_status = 'pending' в WHERE и есть compare-and-swap: переход
// срабатывает только если заказ все еще не оплачен в момент записи.
// Два разных заказа сверяются полностью параллельно, глобальной блокировки нет.
//
// Возвращает обновленный заказ, *domain.AlreadyPaidError если охрана не
// прошла, domain.ErrRecordNotFound если заказа нет.
func (o *OrderRepository) SettlePayment(ctx context.Context, args repoargs.SettlePayment) (*domain.Order, error) {
	row := o.db.QueryRow(ctx,
		`UPDATE orders
		SET payment_status = $1, transaction_id = $2, paid_at = $3, updated_at = now()
		WHERE id = $4 AND payment_status = $5
		RETURNING `+orderColumns,
		domain.PaymentStatusPaid, args.TransactionID, args.PaidAt,
		args.OrderID, domain.PaymentStatusPending,
	)

	order, err := scanOrder(row)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, convertErr(err, "settling payment for order %d", args.OrderID)
	}

	// Нулевое число строк означает либо пройденную кем-то охрану, либо
	// отсутствие заказа. Различаем отдельным чтением.
	existing, findErr := o.FindByID(ctx, args.OrderID)
	if findErr != nil {
		return nil, findErr
	}
	if existing.Payment.Status == domain.PaymentStatusPaid {
		return nil, fmt.Errorf(
			"[repository/settling payment for order %d] %w",
			args.OrderID,
			domain.NewAlreadyPaidError(existing.OrderNumber, existing.Payment.TransactionID),
		)
	}
	return nil, convertErr(pgx.ErrNoRows, "settling payment for order %d", args.OrderID)
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order         domain.Order
		itemsRaw      []byte
		couponRaw     []byte
		transactionID *string
		paidAt        *time.Time
	)

	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.OrderNumber,
		&order.CustomerID, &order.DeliveryType, &order.Tier,
		&itemsRaw, &couponRaw,
		&order.Pricing.Subtotal, &order.Pricing.Tax, &order.Pricing.DeliveryFee,
		&order.Pricing.Discount, &order.Pricing.Total,
		&order.Payment.Method, &order.Payment.Status, &transactionID, &paidAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = json.Unmarshal(itemsRaw, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %s", err.Error())
	}
	if len(couponRaw) > 0 {
		if err = json.Unmarshal(couponRaw, &order.Coupon); err != nil {
			return nil, fmt.Errorf("unmarshal order coupon: %s", err.Error())
		}
	}
	if transactionID != nil {
		order.Payment.TransactionID = *transactionID
	}
	order.Payment.PaidAt = paidAt

	return &order, nil
}
