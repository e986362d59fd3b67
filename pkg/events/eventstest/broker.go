// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package eventstest starts disposable brokers for the event publisher tests.
package eventstest

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// Broker is a broker container owned by a single test binary.
type Broker struct {
	pool      *dockertest.Pool
	container *dockertest.Resource
}

// Start runs image:tag as a container named name. The container is purged
// when the test binary is interrupted.
func Start(name, image, tag string, cmd ...string) (*Broker, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       name,
		Repository: image,
		Tag:        tag,
		Cmd:        cmd,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("start %s container: %w", image, err)
	}

	b := &Broker{pool: pool, container: container}
	b.purgeOnInterrupt()

	return b, nil
}

// URL returns the broker address for the container port, e.g. "4222/tcp".
func (b *Broker) URL(scheme, port string) string {
	return fmt.Sprintf("%s://localhost:%s", scheme, b.container.GetPort(port))
}

// Wait retries ready with exponential backoff until it succeeds or the
// pool gives up.
func (b *Broker) Wait(ready func() error) error {
	return b.pool.Retry(ready)
}

// Run executes the tests, purges the container and exits with their code.
func (b *Broker) Run(m *testing.M) {
	code := m.Run()
	if err := b.pool.Purge(b.container); err != nil {
		log.Fatalf("Could not purge container: %s", err)
	}
	os.Exit(code)
}

func (b *Broker) purgeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		if err := b.pool.Purge(b.container); err != nil {
			log.Fatalf("Could not purge container: %s", err)
		}
		os.Exit(0)
	}()
}
