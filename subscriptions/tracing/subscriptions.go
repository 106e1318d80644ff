// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/pushbeam/pushbeam/subscriptions"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveOp        = "save_op"
	retrieveOp    = "retrieve_op"
	retrieveAllOp = "retrieve_all_op"
	removeOp      = "remove_op"
)

var _ subscriptions.Repository = (*subRepositoryMiddleware)(nil)

type subRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   subscriptions.Repository
}

// New instantiates a new Subscriptions repository that
// tracks requests and adds spans to context.
func New(repo subscriptions.Repository, tracer trace.Tracer) subscriptions.Repository {
	return subRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (urm subRepositoryMiddleware) Save(ctx context.Context, sub subscriptions.Subscription) (string, error) {
	ctx, span := urm.tracer.Start(ctx, saveOp)
	defer span.End()

	return urm.repo.Save(ctx, sub)
}

func (urm subRepositoryMiddleware) Retrieve(ctx context.Context, id string) (subscriptions.Subscription, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveOp)
	defer span.End()

	return urm.repo.Retrieve(ctx, id)
}

func (urm subRepositoryMiddleware) RetrieveAll(ctx context.Context) ([]subscriptions.Subscription, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveAllOp)
	defer span.End()

	return urm.repo.RetrieveAll(ctx)
}

func (urm subRepositoryMiddleware) Remove(ctx context.Context, id string) error {
	ctx, span := urm.tracer.Start(ctx, removeOp)
	defer span.End()

	return urm.repo.Remove(ctx, id)
}
