// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/smppc/composer"
	"github.com/spf13/cobra"
)

var cmdSession = []cobra.Command{
	{
		Use:   "bind <url> <system_id> <password> [mode]",
		Short: "Bind to SMSC",
		Long: "Opens a session with the SMSC\n" +
			"Usage:\n" +
			"\tsmppc-cli session bind smpp://localhost:2775 smppclient1 password\n" +
			"\tsmppc-cli session bind smpps://localhost smppclient1 password transmitter\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 && len(args) != 4 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			cfg := composer.BindConfig{
				URL:      args[0],
				SystemID: args[1],
				Password: args[2],
				Mode:     composer.TransceiverMode,
			}
			if len(args) == 4 {
				mode, err := composer.ToBindMode(args[3])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				cfg.Mode = mode
			}

			s, err := sdk.Bind(cfg)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, s)
		},
	},
	{
		Use:   "get",
		Short: "Get session",
		Long: "Shows the current session\n" +
			"Usage:\n" +
			"\tsmppc-cli session get\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			s, err := sdk.Session()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, s)
		},
	},
	{
		Use:   "unbind",
		Short: "Unbind from SMSC",
		Long: "Closes the current session\n" +
			"Usage:\n" +
			"\tsmppc-cli session unbind\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := sdk.Unbind(); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
}

// NewSessionCmd returns session command.
func NewSessionCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "session [bind | get | unbind]",
		Short: "SMSC session management",
		Long:  `Bind to and unbind from the SMSC`,
	}

	for i := range cmdSession {
		cmd.AddCommand(&cmdSession[i])
	}

	return &cmd
}

// NewSubmitCmd returns submit command.
func NewSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit draft",
		Long: "Submits every part of the draft over the current session\n" +
			"Usage:\n" +
			"\tsmppc-cli submit\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			s, err := sdk.Submit()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, s)
		},
	}
}
