// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"github.com/caarlos0/env/v7"
)

// Options tunes how configuration is read from the environment.
type Options struct {
	// Environment keys and values used instead of the process environment.
	Environment map[string]string

	// RequiredIfNoDef marks every field without envDefault as required.
	RequiredIfNoDef bool

	// Prefix is prepended to every key.
	Prefix string
}

// Parse fills v from the environment. Nested configs take their keys from
// the envPrefix tag, so SMPPC_HTTP_ and SMPPC_DB_ settings can share a struct.
func Parse(v interface{}, opts ...Options) error {
	altOpts := []env.Options{}

	for _, opt := range opts {
		altOpts = append(altOpts, env.Options{
			Environment:     opt.Environment,
			RequiredIfNoDef: opt.RequiredIfNoDef,
			Prefix:          opt.Prefix,
		})
	}

	return env.Parse(v, altOpts...)
}
