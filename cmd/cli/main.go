// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run smppc-cli.
package main

import (
	"log"

	"github.com/absmach/smppc/cli"
	sdk "github.com/absmach/smppc/pkg/sdk/go"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
)

const defURL string = "http://localhost:9030"

func main() {
	sdkConf := sdk.Config{
		ComposerURL:     defURL,
		TLSVerification: false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "smppc-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cliConf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}
			if cmd.Flags().Changed("composer-url") {
				cliConf.ComposerURL = sdkConf.ComposerURL
			}

			s := sdk.NewSDK(cliConf)
			cli.SetSDK(s)
		},
	}

	cc.Init(&cc.Config{
		RootCmd:         rootCmd,
		Headings:        cc.HiCyan + cc.Bold + cc.Underline,
		CmdShortDescr:   cc.Magenta,
		Example:         cc.Italic,
		ExecName:        cc.Bold,
		Flags:           cc.HiGreen + cc.Bold,
		FlagsDescr:      cc.HiWhite,
		FlagsDataType:   cc.White + cc.Italic,
		NoExtraNewlines: true,
		NoBottomNewline: true,
	})

	// API commands
	healthCmd := cli.NewHealthCmd()
	draftCmd := cli.NewDraftCmd()
	sessionCmd := cli.NewSessionCmd()
	submitCmd := cli.NewSubmitCmd()
	eventsCmd := cli.NewEventsCmd()
	segmentCmd := cli.NewSegmentCmd()
	configCmd := cli.NewConfigCmd()

	// Root Commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(segmentCmd)
	rootCmd.AddCommand(configCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.ComposerURL,
		"composer-url",
		"u",
		sdkConf.ComposerURL,
		"Composer service URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"insecure",
		"i",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		cli.ConfigPath,
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	// Events Flags
	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		10,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Offset,
		"offset",
		"o",
		0,
		"Offset query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Kind,
		"kind",
		"k",
		"",
		"Event kind query parameter",
	)

	rootCmd.PersistentFlags().Int64VarP(
		&cli.From,
		"from",
		"f",
		0,
		"Events since unix time",
	)

	rootCmd.PersistentFlags().Int64VarP(
		&cli.To,
		"to",
		"t",
		0,
		"Events until unix time",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Direction,
		"dir",
		"d",
		"",
		"Events order, asc or desc",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
