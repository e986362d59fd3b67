// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build redis && !rabbitmq
// +build redis,!rabbitmq

package store

import (
	"context"
	"log"

	"github.com/absmach/smppc/pkg/events"
	"github.com/absmach/smppc/pkg/events/redis"
)

// Broker names the events store the binary was built with.
const Broker = "redis"

func init() {
	log.Println("The binary was build using redis as the events store")
}

// NewPublisher returns a Redis streams events publisher.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	pb, err := redis.NewPublisher(ctx, url, stream, events.UnpublishedEventsCheckInterval)
	if err != nil {
		return nil, err
	}

	return pb, nil
}
