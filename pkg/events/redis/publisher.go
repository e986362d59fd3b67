// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/absmach/smppc/pkg/events"
	"github.com/go-redis/redis/v8"
)

// StreamPrefix is prepended to the stream name of every publisher.
const StreamPrefix = "smppc.events."

// ErrEmptyStream is returned when stream name is empty.
var ErrEmptyStream = errors.New("stream name cannot be empty")

var _ events.Publisher = (*publisher)(nil)

type publisher struct {
	client      *redis.Client
	unpublished chan *redis.XAddArgs
	stream      string
	mu          sync.Mutex
	flushPeriod time.Duration
}

// NewPublisher returns a publisher appending events to a Redis stream.
// Events raised while Redis is unreachable are buffered and flushed every
// flushPeriod.
func NewPublisher(ctx context.Context, url, stream string, flushPeriod time.Duration) (events.Publisher, error) {
	if stream == "" {
		return nil, ErrEmptyStream
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	es := &publisher{
		client:      redis.NewClient(opts),
		unpublished: make(chan *redis.XAddArgs, events.MaxUnpublishedEvents),
		stream:      StreamPrefix + stream,
		flushPeriod: flushPeriod,
	}

	go es.flushUnpublished(ctx)

	return es, nil
}

func (es *publisher) Publish(ctx context.Context, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}

	record := &redis.XAddArgs{
		Stream: es.stream,
		MaxLen: events.MaxEventStreamLen,
		Approx: true,
		Values: values,
	}

	if err := es.checkConnection(ctx); err != nil {
		es.mu.Lock()
		defer es.mu.Unlock()

		// Drop the event once the buffer is full.
		if len(es.unpublished) == int(events.MaxUnpublishedEvents) {
			return nil
		}
		es.unpublished <- record

		return nil
	}

	return es.client.XAdd(ctx, record).Err()
}

func (es *publisher) flushUnpublished(ctx context.Context) {
	ticker := time.NewTicker(es.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := es.checkConnection(ctx); err != nil {
				continue
			}
			es.mu.Lock()
			for i := len(es.unpublished); i > 0; i-- {
				record := <-es.unpublished
				if err := es.client.XAdd(ctx, record).Err(); err != nil {
					es.unpublished <- record
					break
				}
			}
			es.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (es *publisher) Close() error {
	return es.client.Close()
}

func (es *publisher) checkConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, events.ConnCheckInterval)
	defer cancel()

	return es.client.Ping(ctx).Err()
}
