// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pushbeam/pushbeam/subscriptions"
)

var cmdSubscriptions = []cobra.Command{
	{
		Use:   "create <endpoint> <p256dh> <auth>",
		Short: "Create subscription",
		Long:  `Registers a new push subscription`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			sub := subscriptions.Subscription{
				Endpoint: args[0],
				Keys: subscriptions.Keys{
					P256dh: args[1],
					Auth:   args[2],
				},
			}
			res, err := sdk.CreateSubscription(sub)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logCreatedCmd(*cmd, res.ID)
		},
	},
	{
		Use:   "get [all | <sub_id>]",
		Short: "Get subscription",
		Long: `Get subscription.
				all - lists all subscriptions
				<sub_id> - view subscription of <sub_id>`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if args[0] == "all" {
				subs, err := sdk.Subscriptions()
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, subs)
				return
			}

			sub, err := sdk.Subscription(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, sub)
		},
	},
	{
		Use:   "remove <sub_id>",
		Short: "Remove subscription",
		Long:  `Removes the subscription with the provided id`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := sdk.DeleteSubscription(args[0]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "cleanup",
		Short: "Cleanup expired subscriptions",
		Long:  `Removes every expired subscription from the store`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			report, err := sdk.CleanupExpired()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, report)
		},
	},
}

// NewSubscriptionsCmd returns subscriptions command.
func NewSubscriptionsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "subscriptions [create | get | remove | cleanup]",
		Short: "Subscriptions management",
		Long:  `Subscriptions management: create, view, list, remove and cleanup subscriptions`,
	}

	for i := range cmdSubscriptions {
		cmd.AddCommand(&cmdSubscriptions[i])
	}

	return &cmd
}
