package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/buyer-leads/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	BuyerEventsExchange   = "buyer_events_exchange"
	BuyerEventsQueue      = "buyer_events_queue"
	BuyerEventsRoutingKey = "buyer.events"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

// declareTopology creates the buyer events exchange and queue. Publisher and
// consumer both call it so either can start first.
func declareTopology(channel *amqp091.Channel) error {
	if err := channel.ExchangeDeclare(
		BuyerEventsExchange, // name
		"direct",            // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	); err != nil {
		return err
	}

	if _, err := channel.QueueDeclare(
		BuyerEventsQueue, // name
		true,             // durable
		false,            // auto-delete
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	); err != nil {
		return err
	}

	return channel.QueueBind(
		BuyerEventsQueue,      // queue name
		BuyerEventsRoutingKey, // routing key
		BuyerEventsExchange,   // exchange
		false,                 // no-wait
		nil,                   // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishBuyerEvent sends a persistent JSON message describing a buyer mutation.
func (p *Publisher) PublishBuyerEvent(ctx context.Context, msg model.BuyerEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		BuyerEventsExchange,   // exchange
		BuyerEventsRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Type:         msg.Action,
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
