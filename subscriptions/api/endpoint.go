// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/pushbeam/pushbeam/pkg/apiutil"
	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
)

func createSubscriptionEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createSubReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		sub := subscriptions.Subscription{
			Endpoint:   req.Endpoint,
			Keys:       req.Keys,
			UserAgent:  req.userAgent,
			RemoteAddr: req.remoteAddr,
		}
		saved, err := svc.CreateSubscription(ctx, sub)
		if err != nil {
			return nil, err
		}

		_, total := svc.Health(ctx)

		return createSubRes{
			ID:                 saved.ID,
			ExpiresAt:          saved.ExpiresAt,
			TotalSubscriptions: total,
		}, nil
	}
}

func viewSubscriptionEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(subReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		sub, err := svc.ViewSubscription(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return viewSubRes{Subscription: sub}, nil
	}
}

func listSubscriptionsEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listSubsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		subs, err := svc.ListSubscriptions(ctx)
		if err != nil {
			return nil, err
		}

		return listSubsRes(subs), nil
	}
}

func removeSubscriptionEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(subReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.RemoveSubscription(ctx, req.id); err != nil {
			return nil, err
		}

		return removeSubRes{ID: req.id}, nil
	}
}

func sendToAllEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(sendReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		report, err := svc.SendToAll(ctx, req.Payload)
		if err != nil {
			return nil, err
		}

		return sendAllRes{
			Successful:     report.Successful,
			Failed:         report.Failed,
			TotalProcessed: report.Successful + report.Failed,
			Results:        report.Results,
		}, nil
	}
}

func sendToOneEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(sendOneReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		res, err := svc.SendToOne(ctx, req.id, req.Payload)
		if err != nil {
			return nil, err
		}

		return sendOneRes{ID: res.ID}, nil
	}
}

func removeExpiredEndpoint(svc subscriptions.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(cleanupReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		removed, processed, err := svc.RemoveExpired(ctx)
		if err != nil {
			return nil, err
		}

		return cleanupRes{Removed: removed, TotalProcessed: processed}, nil
	}
}
