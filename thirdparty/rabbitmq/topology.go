package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	cartExpirationExchange   = "cart_expiration_exchange"
	cartExpirationQueue      = "cart_expiration_queue"
	cartExpirationRoutingKey = "cart_expiration"

	orderEventsExchange   = "order_events"
	orderPlacedRoutingKey = "order.placed"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareCartExpiration sets up the delayed exchange (rabbitmq_delayed_message_exchange plugin) and
// the queue the expiration consumer reads from.
func declareCartExpiration(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		cartExpirationExchange, // name
		"x-delayed-message",    // type
		true,                   // durable
		false,                  // auto-delete
		false,                  // internal
		false,                  // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		cartExpirationQueue, // name
		true,                // durable
		false,               // auto-delete
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		cartExpirationQueue,      // queue name
		cartExpirationRoutingKey, // routing key
		cartExpirationExchange,   // exchange
		false,                    // no-wait
		nil,                      // arguments
	)
}

func declareOrderEvents(channel *amqp091.Channel) error {
	return channel.ExchangeDeclare(
		orderEventsExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
}
