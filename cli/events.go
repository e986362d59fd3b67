// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"time"

	smppcsdk "github.com/absmach/smppc/pkg/sdk/go"
	"github.com/spf13/cobra"
)

// NewEventsCmd returns events command.
func NewEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events",
		Long: "Lists recorded session and traffic events\n" +
			"Usage:\n" +
			"\tsmppc-cli events\n" +
			"\tsmppc-cli events --kind sent --dir asc --limit 50\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			pm := smppcsdk.PageMetadata{
				Offset:    Offset,
				Limit:     Limit,
				Kind:      Kind,
				Direction: Direction,
			}
			if From > 0 {
				pm.From = time.Unix(From, 0)
			}
			if To > 0 {
				pm.To = time.Unix(To, 0)
			}

			page, err := sdk.Events(pm)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, page)
		},
	}
}
