// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pushbeam/pushbeam"
	"github.com/pushbeam/pushbeam/pkg/errors"
	repoerr "github.com/pushbeam/pushbeam/pkg/errors/repository"
	svcerr "github.com/pushbeam/pushbeam/pkg/errors/service"
)

// ErrNoSubscribers indicates a fan-out send with no live subscriptions.
var ErrNoSubscribers = errors.New("no active subscriptions")

const cleanupTimeout = 5 * time.Second

// DeliveryResult is the per-target outcome of a send.
type DeliveryResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DeliveryReport aggregates per-target outcomes of a fan-out send.
type DeliveryReport struct {
	Successful uint64           `json:"successful"`
	Failed     uint64           `json:"failed"`
	Results    []DeliveryResult `json:"results"`
}

// Service represents the push relay service API.
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Pushbeam"
type Service interface {
	// CreateSubscription validates and persists a subscription, generating
	// its ID and stamping creation and expiry times.
	CreateSubscription(ctx context.Context, sub Subscription) (Subscription, error)

	// ViewSubscription retrieves the subscription for the given id. Expired
	// records are removed on read and reported as not found.
	ViewSubscription(ctx context.Context, id string) (Subscription, error)

	// ListSubscriptions lists all live subscriptions. Expired records found
	// during the scan are removed in the background.
	ListSubscriptions(ctx context.Context) ([]Subscription, error)

	// RemoveSubscription removes the subscription having the provided identifier.
	RemoveSubscription(ctx context.Context, id string) error

	// SendToAll delivers the payload to every live subscription, isolating
	// per-target failures and aggregating the outcomes.
	SendToAll(ctx context.Context, payload Payload) (DeliveryReport, error)

	// SendToOne delivers the payload to the subscription with the given id.
	SendToOne(ctx context.Context, id string, payload Payload) (DeliveryResult, error)

	// RemoveExpired sweeps all records and removes every expired one,
	// returning the number removed and the number processed.
	RemoveExpired(ctx context.Context) (removed, processed uint64, err error)

	pushbeam.HealthReporter
}

var _ Service = (*relayService)(nil)

type relayService struct {
	subs     Repository
	idp      pushbeam.IDProvider
	notifier Notifier
	logger   *slog.Logger
}

// New instantiates the push relay service implementation.
func New(subs Repository, idp pushbeam.IDProvider, notifier Notifier, logger *slog.Logger) Service {
	return &relayService{
		subs:     subs,
		idp:      idp,
		notifier: notifier,
		logger:   logger,
	}
}

func (rs *relayService) CreateSubscription(ctx context.Context, sub Subscription) (Subscription, error) {
	if sub.Endpoint == "" || sub.Keys.P256dh == "" || sub.Keys.Auth == "" {
		return Subscription{}, svcerr.ErrMalformedEntity
	}

	id, err := rs.idp.ID()
	if err != nil {
		return Subscription{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}

	now := time.Now().UTC()
	sub.ID = id
	sub.CreatedAt = now
	sub.ExpiresAt = now.Add(TTL)
	sub.IsActive = true

	if _, err := rs.subs.Save(ctx, sub); err != nil {
		return Subscription{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return sub, nil
}

func (rs *relayService) ViewSubscription(ctx context.Context, id string) (Subscription, error) {
	sub, err := rs.subs.Retrieve(ctx, id)
	if err != nil {
		return Subscription{}, err
	}
	if sub.Expired(time.Now().UTC()) {
		// The store TTL may have fired already; an absent key is fine.
		if err := rs.subs.Remove(ctx, id); err != nil && !errors.Contains(err, repoerr.ErrNotFound) {
			rs.logger.Warn("Failed to remove expired subscription", slog.String("subscription_id", id), slog.Any("error", err))
		}
		return Subscription{}, repoerr.ErrNotFound
	}

	return sub, nil
}

func (rs *relayService) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	all, err := rs.subs.RetrieveAll(ctx)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	live := make([]Subscription, 0, len(all))
	for _, sub := range all {
		if sub.Expired(now) {
			rs.removeAsync(sub.ID)
			continue
		}
		live = append(live, sub)
	}

	return live, nil
}

// removeAsync deletes a record without blocking the read path. Failures are
// logged, not surfaced: the read has already succeeded for the caller.
func (rs *relayService) removeAsync(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if err := rs.subs.Remove(ctx, id); err != nil && !errors.Contains(err, repoerr.ErrNotFound) {
			rs.logger.Warn("Failed to remove expired subscription", slog.String("subscription_id", id), slog.Any("error", err))
		}
	}()
}

func (rs *relayService) RemoveSubscription(ctx context.Context, id string) error {
	return rs.subs.Remove(ctx, id)
}

func (rs *relayService) SendToAll(ctx context.Context, payload Payload) (DeliveryReport, error) {
	subs, err := rs.ListSubscriptions(ctx)
	if err != nil {
		return DeliveryReport{}, err
	}
	if len(subs) == 0 {
		return DeliveryReport{}, ErrNoSubscribers
	}

	payload = payload.WithDefaults()

	var mu sync.Mutex
	var wg sync.WaitGroup
	report := DeliveryReport{Results: make([]DeliveryResult, 0, len(subs))}

	for _, sub := range subs {
		wg.Add(1)
		go func(sub Subscription) {
			defer wg.Done()
			res, _ := rs.deliver(ctx, sub, payload)
			mu.Lock()
			defer mu.Unlock()
			if res.Success {
				report.Successful++
			} else {
				report.Failed++
			}
			report.Results = append(report.Results, res)
		}(sub)
	}
	wg.Wait()

	return report, nil
}

func (rs *relayService) SendToOne(ctx context.Context, id string, payload Payload) (DeliveryResult, error) {
	sub, err := rs.ViewSubscription(ctx, id)
	if err != nil {
		return DeliveryResult{}, err
	}

	return rs.deliver(ctx, sub, payload.WithDefaults())
}

// deliver attempts a single delivery. A failure carrying the gone status
// removes the record from the store as a corrective side effect; any other
// failure retains it.
func (rs *relayService) deliver(ctx context.Context, sub Subscription, payload Payload) (DeliveryResult, error) {
	if err := rs.notifier.Push(ctx, sub, payload); err != nil {
		if errors.Contains(err, ErrGone) {
			if rerr := rs.subs.Remove(ctx, sub.ID); rerr != nil && !errors.Contains(rerr, repoerr.ErrNotFound) {
				rs.logger.Warn("Failed to remove gone subscription", slog.String("subscription_id", sub.ID), slog.Any("error", rerr))
			}
		}
		return DeliveryResult{ID: sub.ID, Error: err.Error()}, errors.Wrap(ErrNotify, err)
	}

	return DeliveryResult{ID: sub.ID, Success: true}, nil
}

func (rs *relayService) RemoveExpired(ctx context.Context) (uint64, uint64, error) {
	all, err := rs.subs.RetrieveAll(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(svcerr.ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	var removed uint64
	for _, sub := range all {
		if !sub.Expired(now) {
			continue
		}
		if err := rs.subs.Remove(ctx, sub.ID); err != nil {
			// The store TTL beat the sweep; the record is gone either way.
			if errors.Contains(err, repoerr.ErrNotFound) {
				removed++
				continue
			}
			return removed, uint64(len(all)), errors.Wrap(svcerr.ErrRemoveEntity, err)
		}
		removed++
	}

	return removed, uint64(len(all)), nil
}

func (rs *relayService) Health(ctx context.Context) (bool, uint64) {
	all, err := rs.subs.RetrieveAll(ctx)
	if err != nil {
		return false, 0
	}

	now := time.Now().UTC()
	var total uint64
	for _, sub := range all {
		if !sub.Expired(now) {
			total++
		}
	}

	return true, total
}
