// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"crypto/tls"
	"io"
	"log"
	"net/http"

	"moul.io/http2curl"

	"github.com/pushbeam/pushbeam"
	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
)

// CTJSON represents JSON content type.
const CTJSON ContentType = "application/json"

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*pbSDK)(nil)

// DeliveryReport holds the outcome of a fan-out send.
type DeliveryReport struct {
	Successful     uint64                         `json:"successful"`
	Failed         uint64                         `json:"failed"`
	TotalProcessed uint64                         `json:"totalProcessed"`
	Results        []subscriptions.DeliveryResult `json:"results"`
}

// CleanupReport holds the outcome of an expiry sweep.
type CleanupReport struct {
	Removed        uint64 `json:"expiredSubscriptionsRemoved"`
	TotalProcessed uint64 `json:"totalProcessed"`
}

// CreateRes holds the outcome of a subscription creation.
type CreateRes struct {
	ID                 string `json:"id"`
	ExpiresAt          string `json:"expiresAt"`
	TotalSubscriptions uint64 `json:"totalSubscriptions"`
}

// SDK contains push relay API.
type SDK interface {
	// CreateSubscription registers a push subscription.
	CreateSubscription(sub subscriptions.Subscription) (CreateRes, errors.SDKError)

	// Subscriptions returns all live subscriptions.
	Subscriptions() ([]subscriptions.Subscription, errors.SDKError)

	// Subscription returns the subscription with the provided id.
	Subscription(id string) (subscriptions.Subscription, errors.SDKError)

	// DeleteSubscription removes the subscription with the provided id.
	DeleteSubscription(id string) errors.SDKError

	// SendNotification broadcasts the payload to every subscriber.
	SendNotification(payload subscriptions.Payload) (DeliveryReport, errors.SDKError)

	// SendNotificationTo delivers the payload to a single subscriber.
	SendNotificationTo(id string, payload subscriptions.Payload) errors.SDKError

	// CleanupExpired sweeps out expired subscriptions.
	CleanupExpired() (CleanupReport, errors.SDKError)

	// Health returns service health check.
	Health() (pushbeam.HealthInfo, errors.SDKError)
}

type pbSDK struct {
	relayURL string

	client   *http.Client
	curlFlag bool
}

// Config contains sdk configuration parameters.
type Config struct {
	RelayURL string

	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new push relay SDK instance.
func NewSDK(conf Config) SDK {
	return &pbSDK{
		relayURL: conf.RelayURL,

		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and sends a new HTTP request, and checks for errors in the HTTP response.
func (sdk pbSDK) processRequest(method, reqURL string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}
