// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the cli.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/pushbeam/pushbeam/cli"
	sdk "github.com/pushbeam/pushbeam/pkg/sdk/go"
)

func main() {
	sdkConf := sdk.Config{
		RelayURL:        "http://localhost:9024",
		TLSVerification: false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "pushbeam-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s := sdk.NewSDK(sdkConf)
			cli.SetSDK(s)
		},
	}

	// API commands
	healthCmd := cli.NewHealthCmd()
	subscriptionsCmd := cli.NewSubscriptionsCmd()
	sendCmd := cli.NewSendCmd()

	// Root Commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(subscriptionsCmd)
	rootCmd.AddCommand(sendCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.RelayURL,
		"relay-url",
		"r",
		sdkConf.RelayURL,
		"Push relay service URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"insecure",
		"i",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"R",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.CurlFlag,
		"curl",
		"x",
		false,
		"Convert HTTP request to cURL command and print to stderr",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
