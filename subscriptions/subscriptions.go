// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions

import (
	"context"
	"time"
)

// TTL is the fixed expiry horizon stamped on every subscription at creation
// and mirrored as the store-level key TTL.
const TTL = 365 * 24 * time.Hour

// Keys holds the client-supplied encryption material. Both values are opaque
// and passed through to the push service unchanged.
type Keys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// Subscription represents a stored browser push subscription. Records are
// immutable once persisted; the only mutation is removal. Repeated subscribe
// calls for the same endpoint create distinct records.
type Subscription struct {
	ID         string    `json:"id"`
	Endpoint   string    `json:"endpoint"`
	Keys       Keys      `json:"keys"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	IsActive   bool      `json:"isActive"`
	UserAgent  string    `json:"userAgent,omitempty"`
	RemoteAddr string    `json:"remoteAddr,omitempty"`
}

// Expired reports whether the subscription expiry is in the past at the
// given instant.
func (s Subscription) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Repository specifies a Subscription persistence API.
//
//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Pushbeam"
type Repository interface {
	// Save persists a subscription with a store-level TTL mirroring its
	// expiry. Successful operation is indicated by non-nil error response.
	Save(ctx context.Context, sub Subscription) (string, error)

	// Retrieve retrieves the subscription for the given id.
	Retrieve(ctx context.Context, id string) (Subscription, error)

	// RetrieveAll retrieves all stored subscriptions. The scan is not atomic
	// with respect to concurrent writes and may reflect a slightly stale view.
	RetrieveAll(ctx context.Context) ([]Subscription, error)

	// Remove removes the subscription for the given ID.
	Remove(ctx context.Context, id string) error
}
