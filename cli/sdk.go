// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import smppcsdk "github.com/absmach/smppc/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk smppcsdk.SDK

// SetSDK sets smppc SDK instance.
func SetSDK(s smppcsdk.SDK) {
	sdk = s
}
