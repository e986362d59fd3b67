// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

import "os"

// ExitWithError terminates the process with the code it points to.
// It is meant to be deferred in main so that other defers run first.
func ExitWithError(code *int) {
	os.Exit(*code)
}
