// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/pushbeam/pushbeam/subscriptions"
)

var _ subscriptions.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     subscriptions.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc subscriptions.Service, counter metrics.Counter, latency metrics.Histogram) subscriptions.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

// CreateSubscription instruments CreateSubscription method with metrics.
func (ms *metricsMiddleware) CreateSubscription(ctx context.Context, sub subscriptions.Subscription) (subscriptions.Subscription, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_subscription").Add(1)
		ms.latency.With("method", "create_subscription").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.CreateSubscription(ctx, sub)
}

// ViewSubscription instruments ViewSubscription method with metrics.
func (ms *metricsMiddleware) ViewSubscription(ctx context.Context, id string) (subscriptions.Subscription, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_subscription").Add(1)
		ms.latency.With("method", "view_subscription").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewSubscription(ctx, id)
}

// ListSubscriptions instruments ListSubscriptions method with metrics.
func (ms *metricsMiddleware) ListSubscriptions(ctx context.Context) ([]subscriptions.Subscription, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_subscriptions").Add(1)
		ms.latency.With("method", "list_subscriptions").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ListSubscriptions(ctx)
}

// RemoveSubscription instruments RemoveSubscription method with metrics.
func (ms *metricsMiddleware) RemoveSubscription(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "remove_subscription").Add(1)
		ms.latency.With("method", "remove_subscription").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.RemoveSubscription(ctx, id)
}

// SendToAll instruments SendToAll method with metrics.
func (ms *metricsMiddleware) SendToAll(ctx context.Context, payload subscriptions.Payload) (subscriptions.DeliveryReport, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "send_to_all").Add(1)
		ms.latency.With("method", "send_to_all").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.SendToAll(ctx, payload)
}

// SendToOne instruments SendToOne method with metrics.
func (ms *metricsMiddleware) SendToOne(ctx context.Context, id string, payload subscriptions.Payload) (subscriptions.DeliveryResult, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "send_to_one").Add(1)
		ms.latency.With("method", "send_to_one").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.SendToOne(ctx, id, payload)
}

// RemoveExpired instruments RemoveExpired method with metrics.
func (ms *metricsMiddleware) RemoveExpired(ctx context.Context) (uint64, uint64, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "remove_expired").Add(1)
		ms.latency.With("method", "remove_expired").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.RemoveExpired(ctx)
}

// Health instruments Health method with metrics.
func (ms *metricsMiddleware) Health(ctx context.Context) (bool, uint64) {
	defer func(begin time.Time) {
		ms.counter.With("method", "health").Add(1)
		ms.latency.With("method", "health").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Health(ctx)
}
