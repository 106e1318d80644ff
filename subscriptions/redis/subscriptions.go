// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"encoding/json"

	"github.com/pushbeam/pushbeam/pkg/errors"
	repoerr "github.com/pushbeam/pushbeam/pkg/errors/repository"
	"github.com/pushbeam/pushbeam/subscriptions"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "subscription:"
	scanCount = 100
)

var _ subscriptions.Repository = (*subscriptionsRepo)(nil)

type subscriptionsRepo struct {
	client *redis.Client
}

// NewRepository returns a Redis subscriptions repository. Every record lives
// under subscription:<id> with a key TTL mirroring the record expiry, so the
// store enforces expiry independently of the lazy read-path checks.
func NewRepository(client *redis.Client) subscriptions.Repository {
	return &subscriptionsRepo{
		client: client,
	}
}

func (repo *subscriptionsRepo) Save(ctx context.Context, sub subscriptions.Subscription) (string, error) {
	if sub.ID == "" {
		return "", errors.Wrap(repoerr.ErrCreateEntity, errors.New("subscription id is empty"))
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return "", errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	ttl := sub.ExpiresAt.Sub(sub.CreatedAt)
	if err := repo.client.Set(ctx, keyPrefix+sub.ID, data, ttl).Err(); err != nil {
		return "", errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return sub.ID, nil
}

func (repo *subscriptionsRepo) Retrieve(ctx context.Context, id string) (subscriptions.Subscription, error) {
	data, err := repo.client.Get(ctx, keyPrefix+id).Bytes()
	// Redis returns Nil Reply when key does not exist.
	if err == redis.Nil {
		return subscriptions.Subscription{}, repoerr.ErrNotFound
	}
	if err != nil {
		return subscriptions.Subscription{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	var sub subscriptions.Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return subscriptions.Subscription{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	return sub, nil
}

func (repo *subscriptionsRepo) RetrieveAll(ctx context.Context) ([]subscriptions.Subscription, error) {
	subs := []subscriptions.Subscription{}

	iter := repo.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		data, err := repo.client.Get(ctx, iter.Val()).Bytes()
		// A key may expire between the scan and the read.
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}

		var sub subscriptions.Subscription
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
		subs = append(subs, sub)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return subs, nil
}

func (repo *subscriptionsRepo) Remove(ctx context.Context, id string) error {
	removed, err := repo.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return errors.Wrap(repoerr.ErrRemoveEntity, err)
	}
	if removed == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}
