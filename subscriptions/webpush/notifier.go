// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

// Package webpush contains a notifier implementation backed by the Web Push
// protocol. The wire exchange and VAPID signing are delegated entirely to the
// webpush-go library; this package only shapes payloads and interprets
// delivery statuses.
package webpush

import (
	"context"
	"encoding/json"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
)

// Config contains the VAPID server identity used to sign push requests and
// the TTL advertised to the push service.
type Config struct {
	Subject    string `env:"VAPID_SUBJECT"     envDefault:""`
	PublicKey  string `env:"VAPID_PUBLIC_KEY"  envDefault:""`
	PrivateKey string `env:"VAPID_PRIVATE_KEY" envDefault:""`
	TTL        int    `env:"PUSH_TTL"          envDefault:"86400"`
}

// envelope is the wire shape the subscriber's service worker expects.
type envelope struct {
	Notification subscriptions.Payload `json:"notification"`
}

var _ subscriptions.Notifier = (*notifier)(nil)

type notifier struct {
	cfg Config
}

// New instantiates a Web Push notifier.
func New(cfg Config) subscriptions.Notifier {
	return &notifier{cfg: cfg}
}

func (n *notifier) Push(ctx context.Context, sub subscriptions.Subscription, payload subscriptions.Payload) error {
	data, err := json.Marshal(envelope{Notification: payload})
	if err != nil {
		return errors.Wrap(subscriptions.ErrNotify, err)
	}

	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, data, target, &webpush.Options{
		Subscriber:      n.cfg.Subject,
		VAPIDPublicKey:  n.cfg.PublicKey,
		VAPIDPrivateKey: n.cfg.PrivateKey,
		TTL:             n.cfg.TTL,
	})
	if err != nil {
		return errors.Wrap(subscriptions.ErrNotify, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return errors.Wrap(subscriptions.ErrGone, errors.New(resp.Status))
	case resp.StatusCode >= http.StatusBadRequest:
		return errors.Wrap(subscriptions.ErrNotify, errors.New(resp.Status))
	}

	return nil
}
