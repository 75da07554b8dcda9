package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	defaultExchange       = "casso.payments"
	defaultPublishTimeout = 5 * time.Second
	defaultDialTimeout    = 10 * time.Second
)

// AMQPGateway публикует события в durable topic exchange RabbitMQ.
// Ключ маршрутизации — room получателя, фронтовый шлюз (Socket.io мост)
// подписывается на exchange и раздает события по комнатам.
type AMQPGateway struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	l        *logrus.Entry
}

func NewAMQP(amqpURL string, l *logrus.Logger) (*AMQPGateway, error) {
	// ограничиваем dial, чтобы старт приложения не завис на брокере.
	conn, connErr := amqp091.DialConfig(amqpURL, amqp091.Config{
		Dial: amqp091.DefaultDial(defaultDialTimeout),
	})
	if connErr != nil {
		return nil, fmt.Errorf("dial amqp: %s", connErr.Error())
	}

	channel, chanErr := conn.Channel()
	if chanErr != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %s", chanErr.Error())
	}

	if declareErr := channel.ExchangeDeclare(
		defaultExchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); declareErr != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %s", declareErr.Error())
	}

	return &AMQPGateway{
		conn:     conn,
		channel:  channel,
		exchange: defaultExchange,
		l:        l.WithField("component", "notify"),
	}, nil
}

// Notify отправляет событие не блокируя вызывающего. Ошибка публикации только
// логируется: корректность сверки от доставки уведомления не зависит.
func (g *AMQPGateway) Notify(room string, event string, payload any) {
	go func() {
		body, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			g.l.WithError(marshalErr).Error("marshal notification payload")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), defaultPublishTimeout)
		defer cancel()

		publishErr := g.channel.PublishWithContext(ctx,
			g.exchange,
			room, // routing key
			false,
			false,
			amqp091.Publishing{
				ContentType: "application/json",
				Type:        event,
				Timestamp:   time.Now(),
				Body:        body,
			},
		)
		if publishErr != nil {
			g.l.WithError(publishErr).WithFields(logrus.Fields{
				"room":  room,
				"event": event,
			}).Error("publish notification")
		}
	}()
}

func (g *AMQPGateway) Close() {
	if g.channel != nil {
		_ = g.channel.Close()
	}
	if g.conn != nil {
		_ = g.conn.Close()
	}
}
