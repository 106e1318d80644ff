// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pushbeam/pushbeam"
	"github.com/pushbeam/pushbeam/internal/api"
	"github.com/pushbeam/pushbeam/pkg/apiutil"
	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
)

const (
	contentType = "application/json"
	subIDKey    = "subID"
)

// MakeHandler returns a HTTP handler for API endpoints.
func MakeHandler(svc subscriptions.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Get("/", welcome(instanceID))

	mux.Post("/subscribe", otelhttp.NewHandler(kithttp.NewServer(
		createSubscriptionEndpoint(svc),
		decodeCreate,
		api.EncodeResponse,
		opts...,
	), "subscribe").ServeHTTP)

	mux.Route("/subscriptions", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listSubscriptionsEndpoint(svc),
			decodeList,
			api.EncodeResponse,
			opts...,
		), "list").ServeHTTP)

		r.Get("/{subID}", otelhttp.NewHandler(kithttp.NewServer(
			viewSubscriptionEndpoint(svc),
			decodeSubscription,
			api.EncodeResponse,
			opts...,
		), "view").ServeHTTP)
	})

	mux.Delete("/unsubscribe/{subID}", otelhttp.NewHandler(kithttp.NewServer(
		removeSubscriptionEndpoint(svc),
		decodeSubscription,
		api.EncodeResponse,
		opts...,
	), "unsubscribe").ServeHTTP)

	mux.Route("/send-notification", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			sendToAllEndpoint(svc),
			decodeSend,
			api.EncodeResponse,
			opts...,
		), "send_all").ServeHTTP)

		r.Post("/{subID}", otelhttp.NewHandler(kithttp.NewServer(
			sendToOneEndpoint(svc),
			decodeSendOne,
			api.EncodeResponse,
			opts...,
		), "send_one").ServeHTTP)
	})

	mux.Post("/cleanup-expired", otelhttp.NewHandler(kithttp.NewServer(
		removeExpiredEndpoint(svc),
		decodeCleanup,
		api.EncodeResponse,
		opts...,
	), "cleanup_expired").ServeHTTP)

	mux.Get("/health", pushbeam.Health("pushbeam", instanceID, svc))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func welcome(instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := map[string]string{
			"service":     "pushbeam",
			"description": "Web push notification relay",
			"instance_id": instanceID,
		}
		w.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func decodeCreate(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), contentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := createSubReq{
		userAgent:  r.UserAgent(),
		remoteAddr: r.RemoteAddr,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedBody, err))
	}

	return req, nil
}

func decodeSubscription(_ context.Context, r *http.Request) (interface{}, error) {
	req := subReq{
		id: chi.URLParam(r, subIDKey),
	}

	return req, nil
}

func decodeList(_ context.Context, r *http.Request) (interface{}, error) {
	return listSubsReq{}, nil
}

// decodeSend tolerates an empty body so that a plain POST broadcasts
// the default payload.
func decodeSend(_ context.Context, r *http.Request) (interface{}, error) {
	var req sendReq
	if err := decodePayload(r, &req.Payload); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeSendOne(_ context.Context, r *http.Request) (interface{}, error) {
	req := sendOneReq{
		id: chi.URLParam(r, subIDKey),
	}
	if err := decodePayload(r, &req.Payload); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeCleanup(_ context.Context, r *http.Request) (interface{}, error) {
	return cleanupReq{}, nil
}

func decodePayload(r *http.Request, p *subscriptions.Payload) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, contentType) {
		return errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedBody, err))
	}

	return nil
}
