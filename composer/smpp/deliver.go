// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smpp

import (
	"encoding/hex"
	"fmt"

	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/composer"
	"github.com/fiorix/go-smpp/smpp/pdu"
	"github.com/fiorix/go-smpp/smpp/pdu/pdufield"
	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
)

const udhiFlag = 0x40

// deliverEvent records an inbound deliver_sm. Concatenated parts carry their
// header coordinates and the text is decoded when the data coding is known.
func deliverEvent(p pdu.Body) composer.Event {
	f := p.Fields()
	sm := fieldBytes(f, pdufield.ShortMessage)
	esm := fieldByte(f, pdufield.ESMClass)
	dc := fieldByte(f, pdufield.DataCoding)

	e := composer.Event{
		Kind:    composer.ReceivedEvent,
		Command: composer.DeliverSMCommand,
		Attributes: map[string]interface{}{
			"source_addr":      fieldString(f, pdufield.SourceAddr),
			"destination_addr": fieldString(f, pdufield.DestinationAddr),
			"esm_class":        fmt.Sprintf("0x%02X", esm),
			"data_coding":      fmt.Sprintf("0x%02X", dc),
			"sequence_number":  p.Header().Seq,
			"short_message":    hex.EncodeToString(sm),
		},
	}

	payload := sm
	if esm&udhiFlag != 0 {
		h, rest, err := coding.ParseHeader(sm)
		if err == nil {
			e.Part = &composer.Part{Reference: h.Reference, Sequence: h.Sequence, Total: h.Total}
			payload = rest
		}
	}
	if text, ok := decode(pdutext.DataCoding(dc), payload); ok {
		e.Attributes["text"] = text
	}

	return e
}

func decode(dc pdutext.DataCoding, b []byte) (string, bool) {
	switch dc {
	case pdutext.DefaultType:
		return string(pdutext.GSM7(b).Decode()), true
	case pdutext.Latin1Type:
		return string(pdutext.Latin1(b).Decode()), true
	case pdutext.UCS2Type:
		return string(pdutext.UCS2(b).Decode()), true
	default:
		return "", false
	}
}

func fieldBytes(f pdufield.Map, name pdufield.Name) []byte {
	if v, ok := f[name]; ok && v != nil {
		return v.Bytes()
	}
	return nil
}

func fieldString(f pdufield.Map, name pdufield.Name) string {
	if v, ok := f[name]; ok && v != nil {
		return v.String()
	}
	return ""
}

func fieldByte(f pdufield.Map, name pdufield.Name) uint8 {
	if b := fieldBytes(f, name); len(b) > 0 {
		return b[0]
	}
	return 0
}
