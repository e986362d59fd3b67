// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/absmach/smppc/pkg/events"
)

// EventKind classifies session and PDU traffic events.
type EventKind uint8

const (
	ErrorEvent EventKind = iota
	ConnectedEvent
	DisconnectedEvent
	ClosedEvent
	BoundEvent
	SentEvent
	ReceivedEvent
)

var eventKinds = map[EventKind]string{
	ErrorEvent:        "error",
	ConnectedEvent:    "connected",
	DisconnectedEvent: "disconnected",
	ClosedEvent:       "closed",
	BoundEvent:        "bound",
	SentEvent:         "sent",
	ReceivedEvent:     "received",
}

func (k EventKind) String() string {
	if s, ok := eventKinds[k]; ok {
		return s
	}
	return "unknown"
}

// ToEventKind converts string value to a valid event kind.
func ToEventKind(s string) (EventKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range eventKinds {
		if name == s {
			return k, nil
		}
	}
	return ErrorEvent, fmt.Errorf("unknown event kind %q", s)
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EventKind) UnmarshalText(b []byte) error {
	v, err := ToEventKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Part identifies one part of a concatenated short message.
type Part struct {
	Reference uint8 `json:"reference"`
	Sequence  uint8 `json:"sequence"`
	Total     uint8 `json:"total"`
}

var _ events.Event = (*Event)(nil)

// Event is a recorded session or PDU traffic event.
type Event struct {
	ID         string                 `json:"id"`
	Kind       EventKind              `json:"kind"`
	OccurredAt time.Time              `json:"occurred_at"`
	Command    string                 `json:"command,omitempty"`
	Part       *Part                  `json:"part,omitempty"`
	MessageID  string                 `json:"message_id,omitempty"`
	Detail     string                 `json:"detail,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Encode flattens the event for the event broker.
func (e Event) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"id":          e.ID,
		"kind":        e.Kind.String(),
		"occurred_at": e.OccurredAt.UnixNano(),
	}
	if e.Command != "" {
		val["command"] = e.Command
	}
	if e.Part != nil {
		val["reference"] = e.Part.Reference
		val["sequence"] = e.Part.Sequence
		val["total"] = e.Part.Total
	}
	if e.MessageID != "" {
		val["message_id"] = e.MessageID
	}
	if e.Detail != "" {
		val["detail"] = e.Detail
	}
	if len(e.Attributes) > 0 {
		b, err := json.Marshal(e.Attributes)
		if err != nil {
			return nil, err
		}
		val["attributes"] = string(b)
	}

	return val, nil
}

// EventsPage represents a page of events.
type EventsPage struct {
	Total  uint64  `json:"total"`
	Offset uint64  `json:"offset"`
	Limit  uint64  `json:"limit"`
	Events []Event `json:"events"`
}

func (page EventsPage) MarshalJSON() ([]byte, error) {
	type Alias EventsPage
	a := struct {
		Alias
	}{
		Alias: Alias(page),
	}

	if a.Events == nil {
		a.Events = make([]Event, 0)
	}

	return json.Marshal(a)
}

// PageMetadata is used to filter events.
type PageMetadata struct {
	Offset    uint64     `json:"offset" db:"offset"`
	Limit     uint64     `json:"limit" db:"limit"`
	Kind      *EventKind `json:"kind,omitempty" db:"-"`
	From      time.Time  `json:"from,omitempty" db:"from"`
	To        time.Time  `json:"to,omitempty" db:"to"`
	Direction string     `json:"direction,omitempty" db:"-"`
}

// EventRepository persists events.
type EventRepository interface {
	// Save persists the event.
	Save(ctx context.Context, event Event) error

	// RetrieveAll retrieves the events matching the page metadata.
	RetrieveAll(ctx context.Context, pm PageMetadata) (EventsPage, error)
}

// EventHandler receives events raised by the transport.
type EventHandler func(Event)
