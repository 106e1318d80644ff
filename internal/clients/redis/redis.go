// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Connect creates a new Redis client and verifies connectivity with a capped
// exponential backoff ping. On ping exhaustion the client is still returned:
// go-redis redials on demand, so operations fail fast while the store is down
// instead of the process refusing to start.
func Connect(ctx context.Context, url string, maxElapsed time.Duration, notify backoff.Notify) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed
	ping := func() error {
		return client.Ping(ctx).Err()
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		return client, err
	}

	return client, nil
}
