// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/composer/middleware"
	"github.com/absmach/smppc/composer/mocks"
	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
)

// counter sums every labeled series into one value.
type counter struct {
	value *float64
}

func newCounter() counter {
	return counter{value: new(float64)}
}

func (c counter) With(...string) metrics.Counter { return c }

func (c counter) Add(delta float64) { *c.value += delta }

type histogram struct{}

func (h histogram) With(...string) metrics.Histogram { return h }

func (h histogram) Observe(float64) {}

func TestSubmitMetrics(t *testing.T) {
	cases := []struct {
		desc      string
		sub       composer.Submission
		err       error
		submitted float64
		failed    float64
	}{
		{
			desc:      "count submitted and failed parts",
			sub:       composer.Submission{Reference: 1, Submitted: 2, Failed: 1},
			submitted: 2,
			failed:    1,
		},
		{
			desc: "count nothing when submit fails",
			err:  composer.ErrNotBound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := new(mocks.Service)
			requests := newCounter()
			parts := newCounter()
			mm := middleware.NewMetricsMiddleware(requests, histogram{}, parts, svc)

			svcCall := svc.On("Submit", context.Background()).Return(tc.sub, tc.err)
			sub, err := mm.Submit(context.Background())
			assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			assert.Equal(t, tc.sub, sub, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.sub, sub))
			assert.Equal(t, float64(1), *requests.value, fmt.Sprintf("%s: expected one request counted", tc.desc))
			assert.Equal(t, tc.submitted+tc.failed, *parts.value, fmt.Sprintf("%s: expected %v parts counted got %v", tc.desc, tc.submitted+tc.failed, *parts.value))
			svcCall.Unset()
		})
	}
}
