// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/absmach/smppc/composer"
	"github.com/spf13/cobra"
)

var cmdDraft = []cobra.Command{
	{
		Use:   "get",
		Short: "Get draft preview",
		Long: "Shows the stored draft with its parts and counters\n" +
			"Usage:\n" +
			"\tsmppc-cli draft get\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := sdk.Draft()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "text <text> <destination_addr>",
		Short: "Set draft text",
		Long: "Sets the text and destination of the draft, keeping the rest of the stored draft\n" +
			"Usage:\n" +
			"\tsmppc-cli draft text 'Hello world' 38761123456\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			current, err := sdk.Draft()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			draft := current.Draft
			draft.Text = args[0]
			draft.Envelope.DestinationAddr = args[1]

			p, err := sdk.UpdateDraft(draft)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "update <JSON_draft>",
		Short: "Update draft",
		Long: "Replaces the draft with the given JSON\n" +
			"Usage:\n" +
			"\tsmppc-cli draft update '{\"text\":\"Hello\",\"encoding\":\"ucs2\",\"envelope\":{\"destination_addr\":\"38761123456\"}}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			draft := composer.DefaultDraft()
			if err := json.Unmarshal([]byte(args[0]), &draft); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			p, err := sdk.UpdateDraft(draft)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "gsm-features <features>",
		Short: "Set GSM features",
		Long: "Sets the GSM features bits of esm_class\n" +
			"Usage:\n" +
			"\tsmppc-cli draft gsm-features set_reply_path\n" +
			"\tfeatures: not_selected, udhi_indicator, set_reply_path, set_udhi_and_reply_path\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			features, err := composer.ToGsmFeatures(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			p, err := sdk.SetGsmFeatures(features)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
}

// NewDraftCmd returns draft command.
func NewDraftCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "draft [get | text | update | gsm-features]",
		Short: "Draft management",
		Long:  `Compose the short message submitted to the SMSC`,
	}

	for i := range cmdDraft {
		cmd.AddCommand(&cmdDraft[i])
	}

	return &cmd
}
