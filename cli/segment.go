// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/absmach/smppc/coding"
	"github.com/spf13/cobra"
)

type segment struct {
	Sequence int    `json:"sequence"`
	Bytes    int    `json:"bytes"`
	Payload  string `json:"payload"`
}

type segmentation struct {
	Encoding   coding.Encoding `json:"encoding"`
	DataCoding string          `json:"data_coding"`
	Count      int             `json:"count"`
	Bytes      int             `json:"bytes"`
	Parts      []segment       `json:"parts"`
}

// NewSegmentCmd returns a command splitting text locally, without a server.
func NewSegmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment <encoding> <text>",
		Short: "Segment text",
		Long: "Encodes text and splits it into short message parts, without contacting the service\n" +
			"Usage:\n" +
			"\tsmppc-cli segment gsm7 'Hello world'\n" +
			"\tencodings: gsm7, latin1, ucs2\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			enc, err := coding.ToEncoding(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			c, dc, err := coding.Concatenate(enc, args[1], coding.MaxSegmentBytes, coding.HeaderSize)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			res := segmentation{
				Encoding:   enc,
				DataCoding: fmt.Sprintf("0x%02X", uint8(dc)),
				Count:      c.Len(),
				Bytes:      len(c.Bytes()),
			}
			for i, p := range c.Parts() {
				res.Parts = append(res.Parts, segment{
					Sequence: i + 1,
					Bytes:    len(p),
					Payload:  hex.EncodeToString(p),
				})
			}

			logJSONCmd(*cmd, res)
		},
	}
}
