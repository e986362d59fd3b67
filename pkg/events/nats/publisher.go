// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/absmach/smppc/pkg/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// Value -1 makes the client retry the connection to NATS forever.
	maxReconnects = -1

	// reconnectBufSize holds the unpublished events of approximate maximum size.
	reconnectBufSize = events.MaxUnpublishedEvents * 1024

	// EventsPrefix is the subject prefix of every published event.
	EventsPrefix = "events"
)

// ErrEmptyStream is returned when stream name is empty.
var ErrEmptyStream = errors.New("stream name cannot be empty")

var jsStreamConfig = jetstream.StreamConfig{
	Name:              "events",
	Description:       "smppc stream of SMPP session and traffic events",
	Subjects:          []string{EventsPrefix + ".>"},
	Retention:         jetstream.LimitsPolicy,
	MaxMsgsPerSubject: 1e6,
	MaxAge:            time.Hour * 24,
	MaxMsgSize:        1024 * 1024,
	Discard:           jetstream.DiscardOld,
	Storage:           jetstream.FileStorage,
}

var _ events.Publisher = (*publisher)(nil)

type publisher struct {
	js      jetstream.JetStream
	conn    *nats.Conn
	subject string
}

// NewPublisher returns a JetStream backed event publisher writing to
// events.<stream>.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	if stream == "" {
		return nil, ErrEmptyStream
	}

	conn, err := nats.Connect(url, nats.MaxReconnects(maxReconnects), nats.ReconnectBufSize(int(reconnectBufSize)))
	if err != nil {
		return nil, err
	}
	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := js.CreateStream(ctx, jsStreamConfig); err != nil {
		conn.Close()
		return nil, err
	}

	return &publisher{
		js:      js,
		conn:    conn,
		subject: fmt.Sprintf("%s.%s", EventsPrefix, stream),
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

	_, err = es.js.Publish(ctx, es.subject, data)

	return err
}

func (es *publisher) Close() error {
	es.conn.Close()
	return nil
}
