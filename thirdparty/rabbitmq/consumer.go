package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declareCartExpiration(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		cartExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var expMsg CartExpirationMessage
	if err := json.Unmarshal(msg.Body, &expMsg); err != nil {
		logger.Error("[Consumer] unmarshal message failed", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.callExpireCartAPI(ctx, expMsg.CartID); err != nil {
		logger.Error("[Consumer] expire cart failed", zap.Uint64("cart_id", expMsg.CartID), zap.String("error", err.Error()))
		// requeue, the endpoint is idempotent
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] cart expiration handled", zap.Uint64("cart_id", expMsg.CartID))
}

func (c *Consumer) callExpireCartAPI(ctx context.Context, cartID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/cart/%d/expire", c.apiURL, cartID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "cart-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx is final: a missing cart needs no expiry
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
