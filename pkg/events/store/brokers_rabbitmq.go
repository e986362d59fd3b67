// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build rabbitmq
// +build rabbitmq

package store

import (
	"context"
	"log"

	"github.com/absmach/smppc/pkg/events"
	"github.com/absmach/smppc/pkg/events/rabbitmq"
)

// Broker names the events store the binary was built with.
const Broker = "rabbitmq"

func init() {
	log.Println("The binary was build using rabbitmq as the events store")
}

// NewPublisher returns a RabbitMQ events publisher.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	pb, err := rabbitmq.NewPublisher(ctx, url, stream)
	if err != nil {
		return nil, err
	}

	return pb, nil
}
