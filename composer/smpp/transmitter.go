// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"sync"

	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/errors"
	"github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu"
)

// ErrBindFailed indicates that the SMSC could not be reached or refused the bind.
var ErrBindFailed = errors.New("smsc bind failed")

var _ composer.Transmitter = (*transmitter)(nil)

// session is the part of smpp.Transmitter and smpp.Transceiver in use.
type session interface {
	Bind() <-chan smpp.ConnStatus
	Submit(sm *smpp.ShortMessage) (*smpp.ShortMessage, error)
	Close() error
}

type transmitter struct {
	cfg  Config
	mu   sync.Mutex
	conn session
}

// New returns a composer transport backed by go-smpp.
func New(cfg Config) composer.Transmitter {
	return &transmitter{cfg: cfg}
}

// NewFactory returns a factory handing out a fresh transport per bind.
func NewFactory(cfg Config) composer.TransmitterFactory {
	return func() composer.Transmitter {
		return New(cfg)
	}
}

func (t *transmitter) Bind(ctx context.Context, bc composer.BindConfig, handler composer.EventHandler) error {
	addr, useTLS, err := bc.Address()
	if err != nil {
		return err
	}
	var tlsCfg *tls.Config
	if useTLS {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return errors.Wrap(composer.ErrMalformedBindConfig, err)
		}
		tlsCfg = &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: t.cfg.TLSSkipVerify,
		}
	}

	var conn session
	switch bc.Mode {
	case composer.TransceiverMode:
		conn = &smpp.Transceiver{
			Addr:               addr,
			User:               bc.SystemID,
			Passwd:             bc.Password,
			SystemType:         bc.SystemType,
			EnquireLink:        bc.EnquireLink(),
			EnquireLinkTimeout: t.cfg.EnquireLinkTimeout,
			RespTimeout:        bc.RespTimeout(),
			BindInterval:       t.cfg.BindInterval,
			TLS:                tlsCfg,
			WindowSize:         t.cfg.WindowSize,
			Handler: func(p pdu.Body) {
				if p.Header().ID == pdu.DeliverSMID {
					handler(deliverEvent(p))
				}
			},
		}
	case composer.TransmitterMode:
		conn = &smpp.Transmitter{
			Addr:               addr,
			User:               bc.SystemID,
			Passwd:             bc.Password,
			SystemType:         bc.SystemType,
			EnquireLink:        bc.EnquireLink(),
			EnquireLinkTimeout: t.cfg.EnquireLinkTimeout,
			RespTimeout:        bc.RespTimeout(),
			BindInterval:       t.cfg.BindInterval,
			TLS:                tlsCfg,
			WindowSize:         t.cfg.WindowSize,
		}
	default:
		return errors.Wrap(composer.ErrMalformedBindConfig, fmt.Errorf("bind mode %s cannot submit messages", bc.Mode))
	}

	t.mu.Lock()
	if t.conn != nil {
		t.mu.Unlock()
		return composer.ErrAlreadyBound
	}
	t.conn = conn
	t.mu.Unlock()

	first := make(chan error, 1)
	go watch(conn.Bind(), bc.Mode, handler, first)

	select {
	case err := <-first:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *transmitter) Submit(ctx context.Context, sm composer.SubmitSM) (string, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return "", composer.ErrNotBound
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		id  string
		err error
	}
	res := make(chan result, 1)
	go func() {
		resp, err := conn.Submit(sm.ShortMessage())
		if err != nil {
			res <- result{err: err}
			return
		}
		res <- result{id: resp.RespID()}
	}()

	select {
	case r := <-res:
		return r.id, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *transmitter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	if err == smpp.ErrNotConnected {
		return nil
	}

	return err
}

// watch turns connection status updates into events until the connection is
// closed. The outcome of the first bind attempt is sent to first.
func watch(status <-chan smpp.ConnStatus, mode composer.BindMode, handler composer.EventHandler, first chan<- error) {
	var once sync.Once
	report := func(err error) {
		once.Do(func() { first <- err })
	}

	for st := range status {
		switch st.Status() {
		case smpp.Connected:
			handler(composer.Event{Kind: composer.ConnectedEvent})
			handler(composer.Event{
				Kind:       composer.BoundEvent,
				Command:    composer.BindCommand,
				Attributes: map[string]interface{}{"mode": mode.String()},
			})
			report(nil)
		case smpp.Disconnected:
			handler(composer.Event{Kind: composer.DisconnectedEvent, Detail: detail(st)})
		case smpp.ConnectionFailed, smpp.BindFailed:
			handler(composer.Event{Kind: composer.ErrorEvent, Command: composer.BindCommand, Detail: detail(st)})
			report(errors.Wrap(ErrBindFailed, fmt.Errorf("%s: %s", st.Status(), detail(st))))
		}
	}
}

func detail(st smpp.ConnStatus) string {
	if err := st.Error(); err != nil {
		return err.Error()
	}
	return st.Status().String()
}
