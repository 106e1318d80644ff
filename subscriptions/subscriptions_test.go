// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pushbeam/pushbeam/subscriptions"
)

func TestExpired(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		desc      string
		expiresAt time.Time
		expired   bool
	}{
		{
			desc:      "expiry in the future",
			expiresAt: now.Add(time.Hour),
			expired:   false,
		},
		{
			desc:      "expiry in the past",
			expiresAt: now.Add(-time.Hour),
			expired:   true,
		},
		{
			desc:      "expiry exactly now",
			expiresAt: now,
			expired:   false,
		},
	}

	for _, tc := range cases {
		sub := subscriptions.Subscription{ExpiresAt: tc.expiresAt}
		got := sub.Expired(now)
		assert.Equal(t, tc.expired, got, fmt.Sprintf("%s: expected expired %v got %v", tc.desc, tc.expired, got))
	}
}

func TestPayloadWithDefaults(t *testing.T) {
	cases := []struct {
		desc     string
		payload  subscriptions.Payload
		expected subscriptions.Payload
	}{
		{
			desc:    "empty payload gets all defaults",
			payload: subscriptions.Payload{},
			expected: subscriptions.Payload{
				Title: subscriptions.DefTitle,
				Body:  subscriptions.DefBody,
				Icon:  subscriptions.DefIcon,
			},
		},
		{
			desc:    "partial payload keeps provided fields",
			payload: subscriptions.Payload{Title: "Deploy done"},
			expected: subscriptions.Payload{
				Title: "Deploy done",
				Body:  subscriptions.DefBody,
				Icon:  subscriptions.DefIcon,
			},
		},
		{
			desc: "full payload is unchanged",
			payload: subscriptions.Payload{
				Title: "Deploy done",
				Body:  "v0.2.0 is live",
				Icon:  "/rocket.png",
			},
			expected: subscriptions.Payload{
				Title: "Deploy done",
				Body:  "v0.2.0 is live",
				Icon:  "/rocket.png",
			},
		},
	}

	for _, tc := range cases {
		got := tc.payload.WithDefaults()
		assert.Equal(t, tc.expected, got, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.expected, got))
	}
}
