// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package coding turns outbound short message text into SMPP short_message
// payloads. Text that does not fit into a single segment is split into parts
// that leave room for the concatenation user data header, without ever
// splitting a GSM escape sequence or a UTF-16 surrogate pair.
package coding
