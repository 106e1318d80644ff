// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions

import (
	"context"

	"github.com/pushbeam/pushbeam/pkg/errors"
)

// ErrNotify wraps delivery failures reported by the push service.
var ErrNotify = errors.New("error sending notification")

// ErrGone indicates the push service reported the subscription endpoint as
// permanently invalid (gone or not found); delivery must not be retried and
// the record is removed from the store.
var ErrGone = errors.New("subscription endpoint gone")

// Notifier represents an API for delivering a notification payload to a
// single subscription.
//
//go:generate mockery --name Notifier --output=./mocks --filename notifier.go --quiet --note "Copyright (c) Pushbeam"
type Notifier interface {
	// Push delivers the payload to the subscription endpoint. A failure whose
	// cause is ErrGone marks the endpoint permanently invalid.
	Push(ctx context.Context, sub Subscription, payload Payload) error
}
