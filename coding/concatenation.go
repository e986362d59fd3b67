// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package coding

import "bytes"

// Concatenation is the outcome of segmenting a text: either a single payload
// or an ordered list of parts that still need a concatenation header.
type Concatenation struct {
	parts [][]byte
	multi bool
}

// Single wraps a payload that fits into one segment.
func Single(payload []byte) Concatenation {
	return Concatenation{parts: [][]byte{payload}}
}

// Multi wraps the ordered parts of a concatenated message.
func Multi(parts [][]byte) Concatenation {
	return Concatenation{parts: parts, multi: true}
}

// IsMulti reports whether the text had to be split.
func (c Concatenation) IsMulti() bool {
	return c.multi
}

// Parts returns the payloads in order. A single payload is returned as a one element slice.
func (c Concatenation) Parts() [][]byte {
	return c.parts
}

// Len returns the number of segments.
func (c Concatenation) Len() int {
	return len(c.parts)
}

// Bytes returns the payloads joined in order.
func (c Concatenation) Bytes() []byte {
	return bytes.Join(c.parts, nil)
}
