// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/pushbeam/pushbeam/subscriptions"
)

var _ subscriptions.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    subscriptions.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc subscriptions.Service, logger *slog.Logger) subscriptions.Service {
	return &loggingMiddleware{logger, svc}
}

// CreateSubscription logs the create_subscription request. It logs the subscription ID and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) CreateSubscription(ctx context.Context, sub subscriptions.Subscription) (saved subscriptions.Subscription, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("subscription",
				slog.String("id", saved.ID),
				slog.String("endpoint", sub.Endpoint),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create subscription failed", args...)
			return
		}
		lm.logger.Info("Create subscription completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateSubscription(ctx, sub)
}

// ViewSubscription logs the view_subscription request. It logs the subscription ID and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) ViewSubscription(ctx context.Context, id string) (sub subscriptions.Subscription, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("subscription_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View subscription failed", args...)
			return
		}
		lm.logger.Info("View subscription completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewSubscription(ctx, id)
}

// ListSubscriptions logs the list_subscriptions request. It logs the number of live subscriptions and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) ListSubscriptions(ctx context.Context) (subs []subscriptions.Subscription, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("total", len(subs)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List subscriptions failed", args...)
			return
		}
		lm.logger.Info("List subscriptions completed successfully", args...)
	}(time.Now())

	return lm.svc.ListSubscriptions(ctx)
}

// RemoveSubscription logs the remove_subscription request. It logs the subscription ID and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) RemoveSubscription(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("subscription_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove subscription failed", args...)
			return
		}
		lm.logger.Info("Remove subscription completed successfully", args...)
	}(time.Now())

	return lm.svc.RemoveSubscription(ctx, id)
}

// SendToAll logs the send_to_all request. It logs the delivery counts and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) SendToAll(ctx context.Context, payload subscriptions.Payload) (report subscriptions.DeliveryReport, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("delivery",
				slog.Uint64("successful", report.Successful),
				slog.Uint64("failed", report.Failed),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Send to all failed", args...)
			return
		}
		lm.logger.Info("Send to all completed successfully", args...)
	}(time.Now())

	return lm.svc.SendToAll(ctx, payload)
}

// SendToOne logs the send_to_one request. It logs the subscription ID and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) SendToOne(ctx context.Context, id string, payload subscriptions.Payload) (res subscriptions.DeliveryResult, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("subscription_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Send to one failed", args...)
			return
		}
		lm.logger.Info("Send to one completed successfully", args...)
	}(time.Now())

	return lm.svc.SendToOne(ctx, id, payload)
}

// RemoveExpired logs the remove_expired request. It logs the removal counts and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) RemoveExpired(ctx context.Context) (removed, processed uint64, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("cleanup",
				slog.Uint64("removed", removed),
				slog.Uint64("processed", processed),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove expired failed", args...)
			return
		}
		lm.logger.Info("Remove expired completed successfully", args...)
	}(time.Now())

	return lm.svc.RemoveExpired(ctx)
}

// Health reports store reachability without additional logging.
func (lm *loggingMiddleware) Health(ctx context.Context) (bool, uint64) {
	return lm.svc.Health(ctx)
}
