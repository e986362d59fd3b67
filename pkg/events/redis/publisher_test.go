// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/absmach/smppc/pkg/events/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stream    = "tests"
	errFailed = errors.New("failed")
)

type testEvent struct {
	data map[string]interface{}
	err  error
}

func (te testEvent) Encode() (map[string]interface{}, error) {
	return te.data, te.err
}

func TestNewPublisher(t *testing.T) {
	cases := []struct {
		desc   string
		url    string
		stream string
		err    error
	}{
		{
			desc:   "create publisher",
			url:    redisURL,
			stream: stream,
		},
		{
			desc:   "create publisher with empty stream",
			url:    redisURL,
			stream: "",
			err:    redis.ErrEmptyStream,
		},
		{
			desc:   "create publisher with invalid url",
			url:    "http://invalid",
			stream: stream,
			err:    errFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			pub, err := redis.NewPublisher(ctx, tc.url, tc.stream, time.Second)
			switch tc.err {
			case nil:
				assert.Nil(t, err, fmt.Sprintf("%s: unexpected error: %s", tc.desc, err))
				assert.Nil(t, pub.Close(), fmt.Sprintf("%s: unexpected error closing publisher", tc.desc))
			case errFailed:
				assert.NotNil(t, err, fmt.Sprintf("%s: expected error got nil", tc.desc))
			default:
				assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			}
		})
	}
}

func TestPublish(t *testing.T) {
	err := redisClient.FlushAll(ctx).Err()
	require.Nil(t, err, fmt.Sprintf("got unexpected error on flushing redis: %s", err))

	pub, err := redis.NewPublisher(ctx, redisURL, stream, time.Second)
	require.Nil(t, err, fmt.Sprintf("got unexpected error on creating publisher: %s", err))
	defer pub.Close()

	cases := []struct {
		desc  string
		event testEvent
		err   error
	}{
		{
			desc: "publish sent event",
			event: testEvent{data: map[string]interface{}{
				"id":          "01HBNKZ3Q4CF3W6Y0B2A9VAN1Z",
				"kind":        "sent",
				"command":     "submit_sm",
				"reference":   uint8(7),
				"sequence":    uint8(1),
				"total":       uint8(2),
				"occurred_at": time.Now().UnixNano(),
			}},
		},
		{
			desc: "publish event failing to encode",
			event: testEvent{
				err: errFailed,
			},
			err: errFailed,
		},
	}

	published := 0
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := pub.Publish(ctx, tc.event)
			assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			if tc.err != nil {
				return
			}
			published++

			msgs, err := redisClient.XRange(ctx, redis.StreamPrefix+stream, "-", "+").Result()
			require.Nil(t, err, fmt.Sprintf("%s: unexpected error reading stream: %s", tc.desc, err))
			require.Len(t, msgs, published, fmt.Sprintf("%s: expected %d records got %d", tc.desc, published, len(msgs)))
			last := msgs[len(msgs)-1].Values
			assert.Equal(t, tc.event.data["kind"], last["kind"], fmt.Sprintf("%s: expected kind %v got %v", tc.desc, tc.event.data["kind"], last["kind"]))
			assert.Equal(t, "7", last["reference"], fmt.Sprintf("%s: expected reference 7 got %v", tc.desc, last["reference"]))
		})
	}
}
