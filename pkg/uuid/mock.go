// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/absmach/smppc"
)

// Prefix starts every identifier issued by the mock provider.
const Prefix = "123e4567-e89b-12d3-a456-"

type sequence struct {
	n atomic.Uint64
}

// NewMock returns a provider issuing Prefix followed by a zero padded
// counter, so tests can predict event ids in issue order.
func NewMock() smppc.IDProvider {
	return &sequence{}
}

func (s *sequence) ID() (string, error) {
	return fmt.Sprintf("%s%012d", Prefix, s.n.Add(1)), nil
}
