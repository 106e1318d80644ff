// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pushbeam/pushbeam/subscriptions"
)

var (
	// Title notification title flag.
	Title string
	// Body notification body flag.
	Body string
	// Icon notification icon flag.
	Icon string
)

// NewSendCmd returns notification send command.
func NewSendCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "send [all | <sub_id>]",
		Short: "Send notification",
		Long: `Send push notification.
				all - broadcasts to every subscriber
				<sub_id> - delivers to a single subscriber`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			payload := subscriptions.Payload{
				Title: Title,
				Body:  Body,
				Icon:  Icon,
			}

			if args[0] == "all" {
				report, err := sdk.SendNotification(payload)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, report)
				return
			}

			if err := sdk.SendNotificationTo(args[0], payload); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}

	cmd.Flags().StringVarP(&Title, "title", "t", "", "Notification title")
	cmd.Flags().StringVarP(&Body, "body", "b", "", "Notification body")
	cmd.Flags().StringVarP(&Icon, "icon", "o", "", "Notification icon path")

	return &cmd
}
