// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package pushbeam

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	version     = "0.2.0"
	contentType = "application/health+json"
	svcStatus   = "pass"
	defStatus   = "fail"
)

// HealthInfo contains health check endpoint response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains current service version.
	Version string `json:"version"`

	// Service contains service name.
	Service string `json:"service"`

	// InstanceID contains the ID of the service instance.
	InstanceID string `json:"instanceID"`

	// StoreConnected indicates whether the subscription store is reachable.
	StoreConnected bool `json:"storeConnected"`

	// TotalSubscriptions contains the number of live subscriptions.
	TotalSubscriptions uint64 `json:"totalSubscriptions"`

	// Timestamp contains the time the health check was performed.
	Timestamp string `json:"timestamp"`
}

// HealthReporter reports subscription store connectivity and the
// number of live subscriptions.
type HealthReporter interface {
	Health(ctx context.Context) (storeConnected bool, totalSubscriptions uint64)
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string, reporter HealthReporter) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		connected, total := reporter.Health(r.Context())
		status := svcStatus
		if !connected {
			status = defStatus
		}
		res := HealthInfo{
			Status:             status,
			Version:            version,
			Service:            service,
			InstanceID:         instanceID,
			StoreConnected:     connected,
			TotalSubscriptions: total,
			Timestamp:          time.Now().UTC().Format(time.RFC3339),
		}

		rw.Header().Set("Content-Type", contentType)
		rw.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	}
}
