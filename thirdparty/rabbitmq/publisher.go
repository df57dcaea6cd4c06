package rabbitmq

import (
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// CartExpirationPublisher schedules an idle check for a cart.
type CartExpirationPublisher interface {
	PublishCartExpiration(msg CartExpirationMessage) error
}

// OrderPlacedPublisher announces committed orders.
type OrderPlacedPublisher interface {
	PublishOrderPlaced(msg OrderPlacedMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

type CartExpirationMessage struct {
	CartID    uint64    `json:"cart_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type OrderPlacedItem struct {
	VariantID uint64 `json:"variant_id"`
	SKU       string `json:"sku"`
	Quantity  int64  `json:"quantity"`
}

type OrderPlacedMessage struct {
	OrderID    uint64            `json:"order_id"`
	UserID     uint64            `json:"user_id,omitempty"`
	Email      string            `json:"email"`
	TotalCents int64             `json:"total_cents"`
	Currency   string            `json:"currency"`
	Items      []OrderPlacedItem `json:"items"`
	PlacedAt   time.Time         `json:"placed_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declareCartExpiration(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	if err := declareOrderEvents(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

func (p *Publisher) PublishCartExpiration(msg CartExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		cartExpirationExchange,   // exchange
		cartExpirationRoutingKey, // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, p.now()),
			},
		},
	)
}

func (p *Publisher) PublishOrderPlaced(msg OrderPlacedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		orderEventsExchange,   // exchange
		orderPlacedRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.PlacedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

func delayMillis(at, now time.Time) int64 {
	delayMs := at.Sub(now).Milliseconds()
	if delayMs < 0 {
		return 0
	}
	return delayMs
}
