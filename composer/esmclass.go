// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import "github.com/absmach/smppc/pkg/errors"

const (
	messagingModeMask = 0x03
	messageTypeMask   = 0x24
	ansi41Mask        = 0x18
	gsmFeaturesMask   = 0xC0
)

// MessagingMode occupies bits 0 and 1 of esm_class.
type MessagingMode uint8

const (
	DefaultMode     MessagingMode = 0x00
	Datagram        MessagingMode = 0x01
	Forward         MessagingMode = 0x02
	StoreAndForward MessagingMode = 0x03
)

var messagingModes = names[MessagingMode]{
	DefaultMode:     "default",
	Datagram:        "datagram",
	Forward:         "forward",
	StoreAndForward: "store_and_forward",
}

func (m MessagingMode) String() string { return messagingModes.name(m) }

func (m MessagingMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MessagingMode) UnmarshalText(b []byte) error {
	v, err := messagingModes.parse(string(b))
	if err != nil {
		return errors.Wrap(ErrMalformedEnvelope, err)
	}
	*m = v
	return nil
}

// MessageType occupies bits 2 to 5 of esm_class for GSM messages.
type MessageType uint8

const (
	DefaultMessageType               MessageType = 0x00
	MCDeliveryReceipt                MessageType = 0x04
	IntermediateDeliveryNotification MessageType = 0x20
)

var messageTypes = names[MessageType]{
	DefaultMessageType:               "default",
	MCDeliveryReceipt:                "mc_delivery_receipt",
	IntermediateDeliveryNotification: "intermediate_delivery_notification",
}

func (t MessageType) String() string { return messageTypes.name(t) }

func (t MessageType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *MessageType) UnmarshalText(b []byte) error {
	v, err := messageTypes.parse(string(b))
	if err != nil {
		return errors.Wrap(ErrMalformedEnvelope, err)
	}
	*t = v
	return nil
}

// Ansi41Specific occupies bits 2 to 5 of esm_class for ANSI-41 messages.
type Ansi41Specific uint8

const (
	Ansi41NotSelected       Ansi41Specific = 0x00
	DeliveryAcknowledgement Ansi41Specific = 0x08
	UserAcknowledgment      Ansi41Specific = 0x10
	ConversationAbort       Ansi41Specific = 0x18
)

var ansi41Values = names[Ansi41Specific]{
	Ansi41NotSelected:       "not_selected",
	DeliveryAcknowledgement: "delivery_acknowledgement",
	UserAcknowledgment:      "user_acknowledgment",
	ConversationAbort:       "conversation_abort",
}

func (a Ansi41Specific) String() string { return ansi41Values.name(a) }

func (a Ansi41Specific) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Ansi41Specific) UnmarshalText(b []byte) error {
	v, err := ansi41Values.parse(string(b))
	if err != nil {
		return errors.Wrap(ErrMalformedEnvelope, err)
	}
	*a = v
	return nil
}

// GsmFeatures occupies bits 6 and 7 of esm_class.
type GsmFeatures uint8

const (
	GsmNotSelected      GsmFeatures = 0x00
	UdhiIndicator       GsmFeatures = 0x40
	SetReplyPath        GsmFeatures = 0x80
	SetUdhiAndReplyPath GsmFeatures = 0xC0
)

var gsmFeatures = names[GsmFeatures]{
	GsmNotSelected:      "not_selected",
	UdhiIndicator:       "udhi_indicator",
	SetReplyPath:        "set_reply_path",
	SetUdhiAndReplyPath: "set_udhi_and_reply_path",
}

func (f GsmFeatures) String() string { return gsmFeatures.name(f) }

// ToGsmFeatures parses a GSM features name or octet value.
func ToGsmFeatures(s string) (GsmFeatures, error) {
	v, err := gsmFeatures.parse(s)
	if err != nil {
		return GsmNotSelected, errors.Wrap(ErrInvalidGsmFeatures, err)
	}
	return v, nil
}

func (f GsmFeatures) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *GsmFeatures) UnmarshalText(b []byte) error {
	v, err := ToGsmFeatures(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// EsmClass is the decomposed esm_class field of submit_sm.
type EsmClass struct {
	MessagingMode  MessagingMode  `json:"messaging_mode"`
	MessageType    MessageType    `json:"message_type"`
	Ansi41Specific Ansi41Specific `json:"ansi41_specific"`
	GsmFeatures    GsmFeatures    `json:"gsm_features"`
}

// Byte returns the esm_class octet.
func (e EsmClass) Byte() uint8 {
	return uint8(e.MessagingMode)&messagingModeMask |
		uint8(e.MessageType)&messageTypeMask |
		uint8(e.Ansi41Specific)&ansi41Mask |
		uint8(e.GsmFeatures)&gsmFeaturesMask
}

// ParseEsmClass splits an esm_class octet into its parts.
func ParseEsmClass(b uint8) EsmClass {
	return EsmClass{
		MessagingMode:  MessagingMode(b & messagingModeMask),
		MessageType:    MessageType(b & messageTypeMask),
		Ansi41Specific: Ansi41Specific(b & ansi41Mask),
		GsmFeatures:    GsmFeatures(b & gsmFeaturesMask),
	}
}
