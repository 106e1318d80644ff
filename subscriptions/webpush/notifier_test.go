// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package webpush_test

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	wp "github.com/SherClockHolmes/webpush-go"
	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
	"github.com/pushbeam/pushbeam/subscriptions/webpush"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// browserKeys generates the encryption material a browser push agent would
// hand out on subscribe: a P-256 public key and a 16-byte auth secret.
func browserKeys(t *testing.T) subscriptions.Keys {
	t.Helper()

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return subscriptions.Keys{
		P256dh: base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		Auth:   base64.RawURLEncoding.EncodeToString(auth),
	}
}

func newNotifier(t *testing.T) subscriptions.Notifier {
	t.Helper()

	private, public, err := wp.GenerateVAPIDKeys()
	require.NoError(t, err)

	return webpush.New(webpush.Config{
		Subject:    "relay@example.com",
		PublicKey:  public,
		PrivateKey: private,
		TTL:        60,
	})
}

func TestPush(t *testing.T) {
	cases := []struct {
		desc   string
		status int
		err    error
	}{
		{
			desc:   "push service accepts the message",
			status: http.StatusCreated,
			err:    nil,
		},
		{
			desc:   "push service reports the endpoint gone",
			status: http.StatusGone,
			err:    subscriptions.ErrGone,
		},
		{
			desc:   "push service reports the endpoint not found",
			status: http.StatusNotFound,
			err:    subscriptions.ErrGone,
		},
		{
			desc:   "push service fails transiently",
			status: http.StatusServiceUnavailable,
			err:    subscriptions.ErrNotify,
		},
	}

	notifier := newNotifier(t)

	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method, tc.desc)
			assert.NotEmpty(t, r.Header.Get("Authorization"), tc.desc)
			w.WriteHeader(tc.status)
		}))

		sub := subscriptions.Subscription{
			ID:       "e9b8f433-ee83-4f10-8328-b02f8e76dcbb",
			Endpoint: ts.URL,
			Keys:     browserKeys(t),
		}

		err := notifier.Push(context.Background(), sub, subscriptions.Payload{}.WithDefaults())
		if tc.err == nil {
			assert.NoError(t, err, tc.desc)
		} else {
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
		}
		ts.Close()
	}
}

func TestPushUnreachableEndpoint(t *testing.T) {
	notifier := newNotifier(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	sub := subscriptions.Subscription{
		ID:       "0bd9f0f2-a2e6-41ca-9f8d-6f0d2f2f6a77",
		Endpoint: ts.URL,
		Keys:     browserKeys(t),
	}

	err := notifier.Push(context.Background(), sub, subscriptions.Payload{}.WithDefaults())
	assert.True(t, errors.Contains(err, subscriptions.ErrNotify), "expected %s got %s", subscriptions.ErrNotify, err)
	assert.False(t, errors.Contains(err, subscriptions.ErrGone), "network failure must not be treated as gone")
}
