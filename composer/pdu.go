// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"time"

	"github.com/absmach/smppc/coding"
	"github.com/fiorix/go-smpp/smpp"
	"github.com/fiorix/go-smpp/smpp/pdu"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

var _ pdutext.Codec = (*rawText)(nil)

// rawText carries an already encoded short message through the PDU codecs
// untouched, announcing the data coding it was encoded with.
type rawText struct {
	data       []byte
	dataCoding pdutext.DataCoding
}

func (t rawText) Type() pdutext.DataCoding { return t.dataCoding }

func (t rawText) Encode() []byte { return t.data }

func (t rawText) Decode() []byte { return t.data }

// SubmitSM is one fully built submit_sm part.
type SubmitSM struct {
	Envelope   Envelope           `json:"envelope"`
	DataCoding pdutext.DataCoding `json:"data_coding"`
	// Payload is the short_message field, including the concatenation header of multipart messages.
	Payload []byte `json:"short_message"`
	// Header is nil for single part messages.
	Header *coding.Header `json:"header,omitempty"`
}

func (sm SubmitSM) replaceIfPresent() uint8 {
	if sm.Envelope.ReplaceIfPresent {
		return 1
	}
	return 0
}

// PDU renders the part as a submit_sm PDU body.
func (sm SubmitSM) PDU() pdu.Body {
	e := sm.Envelope
	p := pdu.NewSubmitSM(nil)
	f := p.Fields()
	f.Set(pdufield.ServiceType, e.ServiceType)
	f.Set(pdufield.SourceAddrTON, uint8(e.SourceAddrTON))
	f.Set(pdufield.SourceAddrNPI, uint8(e.SourceAddrNPI))
	f.Set(pdufield.SourceAddr, e.SourceAddr)
	f.Set(pdufield.DestAddrTON, uint8(e.DestAddrTON))
	f.Set(pdufield.DestAddrNPI, uint8(e.DestAddrNPI))
	f.Set(pdufield.DestinationAddr, e.DestinationAddr)
	f.Set(pdufield.ESMClass, e.EsmClass.Byte())
	f.Set(pdufield.ProtocolID, e.ProtocolID)
	f.Set(pdufield.PriorityFlag, e.PriorityFlag)
	f.Set(pdufield.ScheduleDeliveryTime, e.ScheduleDeliveryTime)
	f.Set(pdufield.ValidityPeriod, e.ValidityPeriod)
	f.Set(pdufield.RegisteredDelivery, e.RegisteredDelivery)
	f.Set(pdufield.ReplaceIfPresentFlag, sm.replaceIfPresent())
	f.Set(pdufield.SMDefaultMsgID, e.SMDefaultMsgID)
	f.Set(pdufield.ShortMessage, rawText{data: sm.Payload, dataCoding: sm.DataCoding})

	return p
}

// ShortMessage renders the part for smpp.Transmitter.Submit. The transmitter
// only takes validity as a duration and always sends it as an absolute UTC
// time computed at submit, so validity_period reaches the SMSC in that form:
// a relative period is resolved against now, an absolute one keeps its
// instant with tenths dropped, and one already in the past is omitted.
// PDU keeps the user's string unchanged.
func (sm SubmitSM) ShortMessage() *smpp.ShortMessage {
	e := sm.Envelope
	return &smpp.ShortMessage{
		Src:                  e.SourceAddr,
		Dst:                  e.DestinationAddr,
		Text:                 rawText{data: sm.Payload, dataCoding: sm.DataCoding},
		Validity:             e.validity(time.Now()),
		Register:             e.RegisteredDelivery,
		ServiceType:          e.ServiceType,
		SourceAddrTON:        uint8(e.SourceAddrTON),
		SourceAddrNPI:        uint8(e.SourceAddrNPI),
		DestAddrTON:          uint8(e.DestAddrTON),
		DestAddrNPI:          uint8(e.DestAddrNPI),
		ESMClass:             e.EsmClass.Byte(),
		ProtocolID:           e.ProtocolID,
		PriorityFlag:         e.PriorityFlag,
		ScheduleDeliveryTime: e.ScheduleDeliveryTime,
		ReplaceIfPresentFlag: sm.replaceIfPresent(),
		SMDefaultMsgID:       e.SMDefaultMsgID,
	}
}
