// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"strconv"
	"strings"
)

// names maps the values of a one octet SMPP field to their string form.
type names[T ~uint8] map[T]string

func (n names[T]) name(v T) string {
	if s, ok := n[v]; ok {
		return s
	}
	return fmt.Sprintf("0x%02X", uint8(v))
}

// parse accepts either a registered name or a decimal/hex octet.
func (n names[T]) parse(s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range n {
		if name == s {
			return v, nil
		}
	}
	b, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	if _, ok := n[T(b)]; !ok {
		return 0, fmt.Errorf("unknown value %s", s)
	}
	return T(b), nil
}
