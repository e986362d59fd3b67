// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !rabbitmq && !redis
// +build !rabbitmq,!redis

package store

import (
	"context"
	"log"

	"github.com/absmach/smppc/pkg/events"
	"github.com/absmach/smppc/pkg/events/nats"
)

// Broker names the events store the binary was built with.
const Broker = "nats"

func init() {
	log.Println("The binary was build using nats as the events store")
}

// NewPublisher returns a JetStream events publisher.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	pb, err := nats.NewPublisher(ctx, url, stream)
	if err != nil {
		return nil, err
	}

	return pb, nil
}
