// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"

	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/pkg/errors"
)

// BuildParts encodes text and returns the submit_sm parts that carry it.
//
// A text that fits a single segment yields one part without a user data
// header, keeping the GSM features of base. Longer texts yield one part per
// segment, each prefixed with the concatenation header for reference and
// with the UDHI indicator set. Either every part is returned or none.
func BuildParts(base Envelope, text string, enc coding.Encoding, reference uint8) ([]SubmitSM, error) {
	c, dc, err := coding.Concatenate(enc, text, coding.MaxSegmentBytes, coding.HeaderSize)
	if err != nil {
		return nil, err
	}

	if !c.IsMulti() {
		return []SubmitSM{{
			Envelope:   base,
			DataCoding: dc,
			Payload:    c.Bytes(),
		}}, nil
	}

	if c.Len() > coding.MaxParts {
		return nil, errors.Wrap(coding.ErrCapacityExhausted, errors.Wrap(ErrTooManyParts, fmt.Errorf("%d parts", c.Len())))
	}

	env := base
	env.EsmClass.GsmFeatures = UdhiIndicator
	total := uint8(c.Len())
	parts := make([]SubmitSM, 0, c.Len())
	for i, payload := range c.Parts() {
		h := coding.Header{Reference: reference, Total: total, Sequence: uint8(i + 1)}
		parts = append(parts, SubmitSM{
			Envelope:   env,
			DataCoding: dc,
			Payload:    h.Prepend(payload),
			Header:     &h,
		})
	}

	return parts, nil
}
