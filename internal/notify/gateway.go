// Package notify односторонняя доставка событий клиентам. Ядро сверки
// никогда не блокируется на результате и не читает из шлюза — доставка
// best-effort.
package notify

import "github.com/sirupsen/logrus"

const EventPaymentConfirmed = "payment.confirmed"

// Gateway однонаправленный сток уведомлений.
type Gateway interface {
	Notify(room string, event string, payload any)
}

// Nop заглушка на случай недоступного брокера при старте: приложение
// обязано работать и без уведомлений.
type Nop struct {
	l *logrus.Entry
}

func NewNop(l *logrus.Logger) *Nop {
	return &Nop{l: l.WithField("component", "notify")}
}

func (n *Nop) Notify(room string, event string, _ any) {
	n.l.WithFields(logrus.Fields{
		"room":  room,
		"event": event,
	}).Warn("notification skipped: no broker")
}
