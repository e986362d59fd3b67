// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import "time"

// Config holds the transport settings that are not part of a bind request.
type Config struct {
	BindInterval       time.Duration `env:"BIND_INTERVAL"        envDefault:"5s"`
	EnquireLinkTimeout time.Duration `env:"ENQUIRE_LINK_TIMEOUT" envDefault:"0s"`
	WindowSize         uint          `env:"WINDOW_SIZE"          envDefault:"0"`
	TLSSkipVerify      bool          `env:"TLS_SKIP_VERIFY"      envDefault:"false"`
}
