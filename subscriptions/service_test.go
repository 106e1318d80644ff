// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pushbeam/pushbeam/logger"
	"github.com/pushbeam/pushbeam/pkg/errors"
	repoerr "github.com/pushbeam/pushbeam/pkg/errors/repository"
	svcerr "github.com/pushbeam/pushbeam/pkg/errors/service"
	"github.com/pushbeam/pushbeam/pkg/uuid"
	"github.com/pushbeam/pushbeam/subscriptions"
	"github.com/pushbeam/pushbeam/subscriptions/mocks"
)

const endpoint = "https://push.example.com/send/abc123"

var keys = subscriptions.Keys{
	P256dh: "p256dh-key",
	Auth:   "auth-secret",
}

func newService() (subscriptions.Service, *mocks.Repository, *mocks.Notifier) {
	repo := new(mocks.Repository)
	notifier := new(mocks.Notifier)
	idp := uuid.NewMock()
	svc := subscriptions.New(repo, idp, notifier, logger.NewMock())
	return svc, repo, notifier
}

func liveSub(id string) subscriptions.Subscription {
	now := time.Now().UTC()
	return subscriptions.Subscription{
		ID:        id,
		Endpoint:  endpoint,
		Keys:      keys,
		CreatedAt: now,
		ExpiresAt: now.Add(subscriptions.TTL),
		IsActive:  true,
	}
}

func expiredSub(id string) subscriptions.Subscription {
	now := time.Now().UTC()
	return subscriptions.Subscription{
		ID:        id,
		Endpoint:  endpoint,
		Keys:      keys,
		CreatedAt: now.Add(-subscriptions.TTL - time.Hour),
		ExpiresAt: now.Add(-time.Hour),
		IsActive:  true,
	}
}

func TestCreateSubscription(t *testing.T) {
	svc, repo, _ := newService()

	cases := []struct {
		desc    string
		sub     subscriptions.Subscription
		id      string
		saveErr error
		err     error
	}{
		{
			desc: "create new subscription",
			sub:  subscriptions.Subscription{Endpoint: endpoint, Keys: keys},
			id:   fmt.Sprintf("%s%012d", uuid.Prefix, 1),
			err:  nil,
		},
		{
			desc: "create subscription without endpoint",
			sub:  subscriptions.Subscription{Keys: keys},
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "create subscription without keys",
			sub:  subscriptions.Subscription{Endpoint: endpoint},
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc:    "create subscription with failing store",
			sub:     subscriptions.Subscription{Endpoint: endpoint, Keys: keys},
			saveErr: repoerr.ErrCreateEntity,
			err:     svcerr.ErrCreateEntity,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("Save", mock.Anything, mock.Anything).Return(tc.id, tc.saveErr)

		saved, err := svc.CreateSubscription(context.Background(), tc.sub)
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.NotEmpty(t, saved.ID, fmt.Sprintf("%s: expected generated ID", tc.desc))
			assert.True(t, saved.IsActive, fmt.Sprintf("%s: expected active subscription", tc.desc))
			horizon := saved.CreatedAt.Add(subscriptions.TTL)
			assert.Equal(t, horizon, saved.ExpiresAt, fmt.Sprintf("%s: expected expiry %s got %s", tc.desc, horizon, saved.ExpiresAt))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
	}
}

func TestViewSubscription(t *testing.T) {
	svc, repo, _ := newService()

	live := liveSub("live-id")
	expired := expiredSub("expired-id")

	cases := []struct {
		desc        string
		id          string
		retrieved   subscriptions.Subscription
		retrieveErr error
		removed     bool
		err         error
	}{
		{
			desc:      "view live subscription",
			id:        live.ID,
			retrieved: live,
			err:       nil,
		},
		{
			desc:      "view expired subscription removes it",
			id:        expired.ID,
			retrieved: expired,
			removed:   true,
			err:       repoerr.ErrNotFound,
		},
		{
			desc:        "view missing subscription",
			id:          "missing-id",
			retrieveErr: repoerr.ErrNotFound,
			err:         repoerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("Retrieve", mock.Anything, tc.id).Return(tc.retrieved, tc.retrieveErr)
		removeCall := repo.On("Remove", mock.Anything, tc.id).Return(nil).Maybe()

		sub, err := svc.ViewSubscription(context.Background(), tc.id)
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.Equal(t, tc.retrieved, sub, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.retrieved, sub))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}
		if tc.removed {
			repo.AssertCalled(t, "Remove", mock.Anything, tc.id)
		}

		repoCall.Unset()
		removeCall.Unset()
	}
}

func TestListSubscriptions(t *testing.T) {
	svc, repo, _ := newService()

	live := liveSub("live-id")
	expired := expiredSub("expired-id")

	cases := []struct {
		desc        string
		retrieved   []subscriptions.Subscription
		retrieveErr error
		expected    int
		err         error
	}{
		{
			desc:      "list live subscriptions",
			retrieved: []subscriptions.Subscription{live, liveSub("live-id-2")},
			expected:  2,
			err:       nil,
		},
		{
			desc:      "list filters expired subscriptions",
			retrieved: []subscriptions.Subscription{live, expired},
			expected:  1,
			err:       nil,
		},
		{
			desc:      "list with empty store",
			retrieved: []subscriptions.Subscription{},
			expected:  0,
			err:       nil,
		},
		{
			desc:        "list with failing store",
			retrieveErr: repoerr.ErrViewEntity,
			err:         repoerr.ErrViewEntity,
		},
	}

	// The expired-entry cleanup runs in a background goroutine that may call
	// Remove after an iteration finishes, so the expectation must outlive the
	// loop rather than be unset each pass.
	repo.On("Remove", mock.Anything, mock.Anything).Return(nil).Maybe()

	for _, tc := range cases {
		repoCall := repo.On("RetrieveAll", mock.Anything).Return(tc.retrieved, tc.retrieveErr)

		subs, err := svc.ListSubscriptions(context.Background())
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.Len(t, subs, tc.expected, fmt.Sprintf("%s: expected %d records got %d", tc.desc, tc.expected, len(subs)))
			for _, sub := range subs {
				assert.False(t, sub.Expired(time.Now().UTC()), fmt.Sprintf("%s: expired record %s leaked into listing", tc.desc, sub.ID))
			}
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
	}
}

func TestRemoveSubscription(t *testing.T) {
	svc, repo, _ := newService()

	cases := []struct {
		desc string
		id   string
		err  error
	}{
		{
			desc: "remove existing subscription",
			id:   "live-id",
			err:  nil,
		},
		{
			desc: "remove missing subscription",
			id:   "missing-id",
			err:  repoerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("Remove", mock.Anything, tc.id).Return(tc.err)

		err := svc.RemoveSubscription(context.Background(), tc.id)
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
	}
}

func TestSendToAll(t *testing.T) {
	svc, repo, notifier := newService()

	subs := []subscriptions.Subscription{
		liveSub("sub-1"),
		liveSub("sub-2"),
		liveSub("sub-3"),
	}

	cases := []struct {
		desc       string
		retrieved  []subscriptions.Subscription
		pushErrs   map[string]error
		successful uint64
		failed     uint64
		err        error
	}{
		{
			desc:       "send to all subscribers successfully",
			retrieved:  subs,
			pushErrs:   map[string]error{},
			successful: 3,
			failed:     0,
			err:        nil,
		},
		{
			desc:      "send with one failing target",
			retrieved: subs,
			pushErrs: map[string]error{
				"sub-2": subscriptions.ErrNotify,
			},
			successful: 2,
			failed:     1,
			err:        nil,
		},
		{
			desc:      "send with gone target removes it",
			retrieved: subs,
			pushErrs: map[string]error{
				"sub-3": errors.Wrap(subscriptions.ErrGone, errors.New("410 Gone")),
			},
			successful: 2,
			failed:     1,
			err:        nil,
		},
		{
			desc:      "send without subscribers",
			retrieved: []subscriptions.Subscription{},
			err:       subscriptions.ErrNoSubscribers,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("RetrieveAll", mock.Anything).Return(tc.retrieved, nil)
		removeCall := repo.On("Remove", mock.Anything, mock.Anything).Return(nil).Maybe()
		pushCalls := make([]*mock.Call, 0, len(tc.retrieved))
		for _, sub := range tc.retrieved {
			pushCalls = append(pushCalls, notifier.On("Push", mock.Anything, sub, mock.Anything).Return(tc.pushErrs[sub.ID]))
		}

		report, err := svc.SendToAll(context.Background(), subscriptions.Payload{Title: "hello"})
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.Equal(t, tc.successful, report.Successful, fmt.Sprintf("%s: expected %d successful got %d", tc.desc, tc.successful, report.Successful))
			assert.Equal(t, tc.failed, report.Failed, fmt.Sprintf("%s: expected %d failed got %d", tc.desc, tc.failed, report.Failed))
			assert.Len(t, report.Results, len(tc.retrieved), fmt.Sprintf("%s: expected %d results got %d", tc.desc, len(tc.retrieved), len(report.Results)))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
		removeCall.Unset()
		for _, c := range pushCalls {
			c.Unset()
		}
	}
}

func TestSendToAllRemovesGone(t *testing.T) {
	svc, repo, notifier := newService()

	gone := liveSub("gone-id")

	repo.On("RetrieveAll", mock.Anything).Return([]subscriptions.Subscription{gone}, nil)
	removeCall := repo.On("Remove", mock.Anything, gone.ID).Return(nil)
	notifier.On("Push", mock.Anything, gone, mock.Anything).Return(errors.Wrap(subscriptions.ErrGone, errors.New("410 Gone")))

	report, err := svc.SendToAll(context.Background(), subscriptions.Payload{})
	assert.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, uint64(1), report.Failed, fmt.Sprintf("expected 1 failed got %d", report.Failed))
	repo.AssertCalled(t, "Remove", mock.Anything, gone.ID)

	removeCall.Unset()
}

func TestSendToOne(t *testing.T) {
	svc, repo, notifier := newService()

	live := liveSub("live-id")

	cases := []struct {
		desc        string
		id          string
		retrieved   subscriptions.Subscription
		retrieveErr error
		pushErr     error
		err         error
	}{
		{
			desc:      "send to existing subscriber",
			id:        live.ID,
			retrieved: live,
			err:       nil,
		},
		{
			desc:        "send to missing subscriber",
			id:          "missing-id",
			retrieveErr: repoerr.ErrNotFound,
			err:         repoerr.ErrNotFound,
		},
		{
			desc:      "send with failing push service",
			id:        live.ID,
			retrieved: live,
			pushErr:   subscriptions.ErrNotify,
			err:       subscriptions.ErrNotify,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("Retrieve", mock.Anything, tc.id).Return(tc.retrieved, tc.retrieveErr)
		pushCall := notifier.On("Push", mock.Anything, tc.retrieved, mock.Anything).Return(tc.pushErr).Maybe()

		res, err := svc.SendToOne(context.Background(), tc.id, subscriptions.Payload{})
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.True(t, res.Success, fmt.Sprintf("%s: expected successful delivery", tc.desc))
			assert.Equal(t, tc.id, res.ID, fmt.Sprintf("%s: expected id %s got %s", tc.desc, tc.id, res.ID))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
		pushCall.Unset()
	}
}

func TestRemoveExpired(t *testing.T) {
	svc, repo, _ := newService()

	cases := []struct {
		desc        string
		retrieved   []subscriptions.Subscription
		retrieveErr error
		removeErr   error
		removed     uint64
		processed   uint64
		err         error
	}{
		{
			desc: "remove expired subscriptions",
			retrieved: []subscriptions.Subscription{
				liveSub("live-id"),
				expiredSub("expired-1"),
				expiredSub("expired-2"),
			},
			removed:   2,
			processed: 3,
			err:       nil,
		},
		{
			desc:      "remove with nothing expired",
			retrieved: []subscriptions.Subscription{liveSub("live-id")},
			removed:   0,
			processed: 1,
			err:       nil,
		},
		{
			desc: "remove counts records the store expired first",
			retrieved: []subscriptions.Subscription{
				expiredSub("expired-1"),
			},
			removeErr: repoerr.ErrNotFound,
			removed:   1,
			processed: 1,
			err:       nil,
		},
		{
			desc:        "remove with failing store",
			retrieveErr: repoerr.ErrViewEntity,
			err:         repoerr.ErrViewEntity,
		},
		{
			desc: "remove aborted by store failure",
			retrieved: []subscriptions.Subscription{
				expiredSub("expired-1"),
			},
			removeErr: repoerr.ErrRemoveEntity,
			err:       svcerr.ErrRemoveEntity,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("RetrieveAll", mock.Anything).Return(tc.retrieved, tc.retrieveErr)
		removeCall := repo.On("Remove", mock.Anything, mock.Anything).Return(tc.removeErr).Maybe()

		removed, processed, err := svc.RemoveExpired(context.Background())
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.Equal(t, tc.removed, removed, fmt.Sprintf("%s: expected %d removed got %d", tc.desc, tc.removed, removed))
			assert.Equal(t, tc.processed, processed, fmt.Sprintf("%s: expected %d processed got %d", tc.desc, tc.processed, processed))
		} else {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %s got %s", tc.desc, tc.err, err))
		}

		repoCall.Unset()
		removeCall.Unset()
	}
}

func TestHealth(t *testing.T) {
	svc, repo, _ := newService()

	cases := []struct {
		desc        string
		retrieved   []subscriptions.Subscription
		retrieveErr error
		connected   bool
		total       uint64
	}{
		{
			desc: "health with live and expired records",
			retrieved: []subscriptions.Subscription{
				liveSub("live-1"),
				liveSub("live-2"),
				expiredSub("expired-1"),
			},
			connected: true,
			total:     2,
		},
		{
			desc:      "health with empty store",
			retrieved: []subscriptions.Subscription{},
			connected: true,
			total:     0,
		},
		{
			desc:        "health with unreachable store",
			retrieveErr: repoerr.ErrViewEntity,
			connected:   false,
			total:       0,
		},
	}

	for _, tc := range cases {
		repoCall := repo.On("RetrieveAll", mock.Anything).Return(tc.retrieved, tc.retrieveErr)

		connected, total := svc.Health(context.Background())
		assert.Equal(t, tc.connected, connected, fmt.Sprintf("%s: expected connected %v got %v", tc.desc, tc.connected, connected))
		assert.Equal(t, tc.total, total, fmt.Sprintf("%s: expected %d subscriptions got %d", tc.desc, tc.total, total))

		repoCall.Unset()
	}
}
