// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"context"

	"github.com/absmach/smppc/pkg/events"
)

// Transmitter is an SMPP client session able to submit short messages.
type Transmitter interface {
	// Bind connects and binds to the SMSC, blocking until the first bind
	// outcome or until ctx is done. Connection state changes and inbound
	// PDUs are reported to handler for as long as the session lives.
	Bind(ctx context.Context, cfg BindConfig, handler EventHandler) error

	// Submit sends one submit_sm and returns the message_id of its response.
	Submit(ctx context.Context, sm SubmitSM) (string, error)

	// Close unbinds and closes the connection.
	Close() error
}

// TransmitterFactory creates a fresh transport for every bind.
type TransmitterFactory func() Transmitter

// EventPublisher forwards recorded events to an event broker.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type eventPublisher struct {
	pub events.Publisher
}

// NewEventPublisher forwards composer events to an event broker publisher.
func NewEventPublisher(pub events.Publisher) EventPublisher {
	return eventPublisher{pub: pub}
}

func (ep eventPublisher) Publish(ctx context.Context, event Event) error {
	return ep.pub.Publish(ctx, event)
}
