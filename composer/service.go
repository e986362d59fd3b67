// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/pkg/errors"
	svcerr "github.com/absmach/smppc/pkg/errors/service"
)

// SMPP command names used in events.
const (
	BindCommand         = "bind"
	UnbindCommand       = "unbind"
	SubmitSMCommand     = "submit_sm"
	SubmitSMRespCommand = "submit_sm_resp"
	DeliverSMCommand    = "deliver_sm"
)

// PartResult is the outcome of submitting one part.
type PartResult struct {
	Part      Part   `json:"part"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Submission is the outcome of submitting the draft.
type Submission struct {
	Reference uint8        `json:"reference"`
	Submitted int          `json:"submitted"`
	Failed    int          `json:"failed"`
	Parts     []PartResult `json:"parts"`
}

// Service composes short messages and submits them over an SMPP session.
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Abstract Machines"
type Service interface {
	// UpdateDraft validates and stores the draft and returns its preview.
	// A draft that cannot be encoded is kept and the coding error is returned.
	UpdateDraft(ctx context.Context, draft Draft) (Preview, error)

	// ViewDraft returns the preview of the stored draft.
	ViewDraft(ctx context.Context) (Preview, error)

	// SetGsmFeatures records the user's GSM features choice.
	SetGsmFeatures(ctx context.Context, features GsmFeatures) (Preview, error)

	// Bind opens a session with the SMSC.
	Bind(ctx context.Context, cfg BindConfig) (Session, error)

	// Unbind closes the current session.
	Unbind(ctx context.Context) error

	// ViewSession returns the current session state.
	ViewSession(ctx context.Context) (Session, error)

	// Submit builds the draft, consuming one concatenation reference, and
	// submits every part in order. A part that fails does not stop the
	// remaining ones; the outcome of each part is reported.
	Submit(ctx context.Context) (Submission, error)

	// ListEvents retrieves recorded events.
	ListEvents(ctx context.Context, pm PageMetadata) (EventsPage, error)

	// Subscribe streams events recorded from now on until ctx is done.
	Subscribe(ctx context.Context) (<-chan Event, error)
}

var _ Service = (*service)(nil)

type service struct {
	mu        sync.Mutex
	composer  *Composer
	newTx     TransmitterFactory
	tx        Transmitter
	session   Session
	connected atomic.Bool
	events    EventRepository
	publisher EventPublisher
	idp       smppc.IDProvider
	hub       *broadcaster
	logger    *slog.Logger
}

// NewService returns a new composer service. The publisher is optional.
func NewService(draft Draft, newTx TransmitterFactory, events EventRepository, publisher EventPublisher, idp smppc.IDProvider, logger *slog.Logger) Service {
	return &service{
		composer:  NewComposer(draft),
		newTx:     newTx,
		events:    events,
		publisher: publisher,
		idp:       idp,
		hub:       newBroadcaster(),
		logger:    logger,
	}
}

func (svc *service) UpdateDraft(ctx context.Context, draft Draft) (Preview, error) {
	if !draft.Encoding.Valid() {
		return Preview{}, coding.ErrInvalidEncoding
	}
	if err := draft.Envelope.Validate(); err != nil {
		return Preview{}, err
	}
	if err := svc.composer.Update(draft); err != nil {
		return svc.composer.Preview(), err
	}

	return svc.composer.Preview(), nil
}

func (svc *service) ViewDraft(ctx context.Context) (Preview, error) {
	return svc.composer.Preview(), nil
}

func (svc *service) SetGsmFeatures(ctx context.Context, features GsmFeatures) (Preview, error) {
	if err := svc.composer.SetGsmFeatures(features); err != nil {
		// A draft that cannot be built still takes the new choice.
		if errors.Contains(err, ErrGsmFeaturesForced) || errors.Contains(err, ErrInvalidGsmFeatures) {
			return Preview{}, err
		}
	}

	return svc.composer.Preview(), nil
}

func (svc *service) Bind(ctx context.Context, cfg BindConfig) (Session, error) {
	if err := cfg.Validate(); err != nil {
		return Session{}, err
	}
	addr, _, err := cfg.Address()
	if err != nil {
		return Session{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.tx != nil {
		return Session{}, ErrAlreadyBound
	}

	tx := svc.newTx()
	if err := tx.Bind(ctx, cfg, svc.handle); err != nil {
		if cerr := tx.Close(); cerr != nil {
			err = errors.Wrap(err, cerr)
		}
		svc.record(ctx, Event{
			Kind:       ErrorEvent,
			Command:    BindCommand,
			Detail:     err.Error(),
			Attributes: map[string]interface{}{"address": addr, "system_id": cfg.SystemID},
		})
		return Session{}, errors.Wrap(ErrBind, err)
	}

	svc.tx = tx
	svc.session = Session{
		Mode:     cfg.Mode,
		URL:      cfg.URL,
		Address:  addr,
		SystemID: cfg.SystemID,
		Since:    time.Now().UTC(),
	}

	return svc.currentSession(), nil
}

func (svc *service) Unbind(ctx context.Context) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.tx == nil {
		return ErrNotBound
	}
	err := svc.tx.Close()
	svc.tx = nil
	svc.session = Session{}
	svc.connected.Store(false)

	e := Event{Kind: ClosedEvent, Command: UnbindCommand}
	if err != nil {
		e.Detail = err.Error()
	}
	svc.record(ctx, e)

	return err
}

func (svc *service) ViewSession(ctx context.Context) (Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.currentSession(), nil
}

func (svc *service) Submit(ctx context.Context) (Submission, error) {
	svc.mu.Lock()
	tx := svc.tx
	svc.mu.Unlock()
	if tx == nil {
		return Submission{}, ErrNotBound
	}

	draft := svc.composer.Draft()
	if draft.Text == "" {
		return Submission{}, ErrEmptyMessage
	}
	if err := draft.Envelope.Validate(); err != nil {
		return Submission{}, err
	}

	parts, ref, err := svc.composer.Build()
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{
		Reference: ref,
		Parts:     make([]PartResult, 0, len(parts)),
	}
	for i, sm := range parts {
		part := Part{Reference: ref, Sequence: uint8(i + 1), Total: uint8(len(parts))}
		svc.record(ctx, Event{
			Kind:    SentEvent,
			Command: SubmitSMCommand,
			Part:    &part,
			Attributes: map[string]interface{}{
				"destination_addr": sm.Envelope.DestinationAddr,
				"data_coding":      fmt.Sprintf("0x%02X", uint8(sm.DataCoding)),
				"esm_class":        fmt.Sprintf("0x%02X", sm.Envelope.EsmClass.Byte()),
				"short_message":    hex.EncodeToString(sm.Payload),
			},
		})

		res := PartResult{Part: part}
		id, err := tx.Submit(ctx, sm)
		if err != nil {
			res.Error = err.Error()
			sub.Failed++
			svc.record(ctx, Event{Kind: ErrorEvent, Command: SubmitSMRespCommand, Part: &part, Detail: err.Error()})
		} else {
			res.MessageID = id
			sub.Submitted++
			svc.record(ctx, Event{Kind: ReceivedEvent, Command: SubmitSMRespCommand, Part: &part, MessageID: id})
		}
		sub.Parts = append(sub.Parts, res)
	}

	return sub, nil
}

func (svc *service) ListEvents(ctx context.Context, pm PageMetadata) (EventsPage, error) {
	page, err := svc.events.RetrieveAll(ctx, pm)
	if err != nil {
		return EventsPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) Subscribe(ctx context.Context) (<-chan Event, error) {
	return svc.hub.subscribe(ctx), nil
}

// handle receives events raised by the transport for the lifetime of a session.
func (svc *service) handle(e Event) {
	switch e.Kind {
	case BoundEvent:
		svc.connected.Store(true)
	case DisconnectedEvent:
		svc.connected.Store(false)
	}
	svc.record(context.Background(), e)
}

// record stores, publishes and broadcasts the event. Recording never fails
// the operation that raised the event.
func (svc *service) record(ctx context.Context, e Event) {
	id, err := svc.idp.ID()
	if err != nil {
		svc.logger.Warn("Failed to generate event id", slog.Any("error", errors.Wrap(svcerr.ErrUniqueID, err)))
		return
	}
	e.ID = id
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	if err := svc.events.Save(ctx, e); err != nil {
		svc.logger.Warn("Failed to save event", slog.String("kind", e.Kind.String()), slog.Any("error", err))
	}
	if svc.publisher != nil {
		if err := svc.publisher.Publish(ctx, e); err != nil {
			svc.logger.Warn("Failed to publish event", slog.String("kind", e.Kind.String()), slog.Any("error", err))
		}
	}
	svc.hub.broadcast(e)
}

// currentSession must be called with mu held.
func (svc *service) currentSession() Session {
	s := svc.session
	s.Bound = svc.tx != nil && svc.connected.Load()
	return s
}
