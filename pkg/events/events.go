// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"
	"time"
)

const (
	// MaxUnpublishedEvents bounds the events buffered while the broker is unreachable.
	MaxUnpublishedEvents uint64 = 1e4

	// MaxEventStreamLen is the approximate length a stream is trimmed to.
	MaxEventStreamLen int64 = 1e6

	// UnpublishedEventsCheckInterval is how often buffered events are retried.
	UnpublishedEventsCheckInterval = 1 * time.Minute

	// ConnCheckInterval bounds a single broker connection check.
	ConnCheckInterval = 100 * time.Millisecond
)

// Event represents an event.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]interface{}, error)
}

// Publisher specifies events publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}

// Read reads value from event map.
// If value is not of type T, returns default value.
func Read[T any](event map[string]interface{}, key string, def T) T {
	val, ok := event[key].(T)
	if !ok {
		return def
	}

	return val
}
