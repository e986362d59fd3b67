// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/absmach/smppc/pkg/events"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the topic exchange every event is published to.
	ExchangeName = "smppc-events"

	// EventsPrefix is the routing key prefix of every published event.
	EventsPrefix = "events"

	jsonContentType = "application/json"
)

var (
	// ErrEmptyStream is returned when stream name is empty.
	ErrEmptyStream = errors.New("stream name cannot be empty")

	// ErrClosed is returned when publishing over a closed connection.
	ErrClosed = errors.New("rabbitmq connection is closed")
)

var _ events.Publisher = (*publisher)(nil)

type publisher struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	routingKey string
}

// NewPublisher returns a publisher routing events to a durable queue named
// after the stream, bound to the events exchange with key events.<stream>.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	if stream == "" {
		return nil, ErrEmptyStream
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	routingKey := EventsPrefix + "." + stream
	if err := ch.ExchangeDeclare(ExchangeName, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(routingKey, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.QueueBind(routingKey, routingKey, ExchangeName, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &publisher{
		conn:       conn,
		ch:         ch,
		routingKey: routingKey,
	}, nil
}

func (es *publisher) Publish(ctx context.Context, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if es.conn.IsClosed() {
		return ErrClosed
	}

	return es.ch.PublishWithContext(ctx, ExchangeName, es.routingKey, false, false, amqp.Publishing{
		ContentType:  jsonContentType,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         data,
	})
}

func (es *publisher) Close() error {
	if err := es.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	return es.conn.Close()
}
