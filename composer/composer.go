// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"sync"
	"unicode/utf8"

	"github.com/absmach/smppc/coding"
)

// Preview describes how the current draft is going to be sent. ByteCount
// sums the short_message lengths of all parts, UDH included.
type Preview struct {
	Draft           Draft       `json:"draft"`
	SMSCount        int         `json:"sms_count"`
	CharCount       int         `json:"char_count"`
	ByteCount       int         `json:"byte_count"`
	MaxBytes        int         `json:"max_bytes"`
	GsmFeatures     GsmFeatures `json:"gsm_features"`
	LastGsmFeatures GsmFeatures `json:"last_gsm_features"`
	UdhiForced      bool        `json:"udhi_forced"`
	Reference       uint8       `json:"reference"`
	Parts           []SubmitSM  `json:"parts,omitempty"`
	BuildError      string      `json:"build_error,omitempty"`
}

// Composer keeps the draft together with the GSM features state and the
// concatenation reference counter. The effective GSM features follow the
// user's last explicit choice, except while the draft needs more than one
// part: then they are forced to the UDHI indicator until the draft fits a
// single part again.
type Composer struct {
	mu              sync.Mutex
	draft           Draft
	gsmFeatures     GsmFeatures
	lastGsmFeatures GsmFeatures
	udhiForced      bool
	reference       uint8
	parts           []SubmitSM
	buildErr        error
}

// NewComposer returns a composer holding draft with the reference counter at zero.
func NewComposer(draft Draft) *Composer {
	c := &Composer{}
	c.Update(draft)
	return c
}

// Update replaces the draft. Its GSM features are taken as the user's choice.
// The draft is kept even when it cannot be built; the build error is returned.
func (c *Composer) Update(draft Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = draft
	c.lastGsmFeatures = draft.Envelope.EsmClass.GsmFeatures
	return c.evaluate()
}

// SetGsmFeatures records an explicit GSM features choice.
func (c *Composer) SetGsmFeatures(f GsmFeatures) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := gsmFeatures[f]; !ok {
		return ErrInvalidGsmFeatures
	}
	if c.udhiForced {
		return ErrGsmFeaturesForced
	}
	c.lastGsmFeatures = f
	c.draft.Envelope.EsmClass.GsmFeatures = f
	return c.evaluate()
}

// Preview returns the counters and parts of the current draft without
// consuming a reference.
func (c *Composer) Preview() Preview {
	c.mu.Lock()
	defer c.mu.Unlock()

	pr := Preview{
		Draft:           c.draft,
		CharCount:       utf8.RuneCountInString(c.draft.Text),
		MaxBytes:        coding.MaxSegmentBytes,
		GsmFeatures:     c.gsmFeatures,
		LastGsmFeatures: c.lastGsmFeatures,
		UdhiForced:      c.udhiForced,
		Reference:       c.reference,
	}
	if c.buildErr != nil {
		pr.BuildError = c.buildErr.Error()
		return pr
	}
	pr.SMSCount = len(c.parts)
	pr.Parts = append([]SubmitSM(nil), c.parts...)
	for _, p := range c.parts {
		pr.ByteCount += len(p.Payload)
	}

	return pr
}

// Build returns the parts of the current draft and consumes the reference
// they carry. A failed build leaves the reference untouched.
func (c *Composer) Build() ([]SubmitSM, uint8, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref := c.reference
	parts, err := BuildParts(c.envelope(), c.draft.Text, c.draft.Encoding, ref)
	if err != nil {
		return nil, ref, err
	}
	c.reference++
	// Cached parts carry the consumed reference.
	if err := c.evaluate(); err != nil {
		return nil, ref, err
	}

	return parts, ref, nil
}

// Draft returns the stored draft.
func (c *Composer) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Reference returns the reference the next build uses.
func (c *Composer) Reference() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reference
}

// GsmFeatures returns the effective GSM features.
func (c *Composer) GsmFeatures() GsmFeatures {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gsmFeatures
}

// LastGsmFeatures returns the user's last explicit GSM features choice.
func (c *Composer) LastGsmFeatures() GsmFeatures {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastGsmFeatures
}

// UdhiForced reports whether the GSM features are overridden by a multipart draft.
func (c *Composer) UdhiForced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.udhiForced
}

func (c *Composer) envelope() Envelope {
	env := c.draft.Envelope
	env.EsmClass.GsmFeatures = c.lastGsmFeatures
	return env
}

// evaluate rebuilds the cached parts and moves the effective GSM features
// between the forced and the saved value. Callers must hold mu.
func (c *Composer) evaluate() error {
	c.parts, c.buildErr = BuildParts(c.envelope(), c.draft.Text, c.draft.Encoding, c.reference)
	if c.buildErr == nil && len(c.parts) > 1 {
		c.gsmFeatures = UdhiIndicator
		c.udhiForced = true
		return nil
	}
	c.gsmFeatures = c.lastGsmFeatures
	c.udhiForced = false
	if c.buildErr != nil {
		c.parts = nil
	}

	return c.buildErr
}
