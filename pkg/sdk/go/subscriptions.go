// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pushbeam/pushbeam/pkg/errors"
	"github.com/pushbeam/pushbeam/subscriptions"
)

const (
	subscribeEndpoint     = "subscribe"
	subscriptionsEndpoint = "subscriptions"
	unsubscribeEndpoint   = "unsubscribe"
	sendEndpoint          = "send-notification"
	cleanupEndpoint       = "cleanup-expired"
)

func (sdk pbSDK) CreateSubscription(sub subscriptions.Subscription) (CreateRes, errors.SDKError) {
	data, err := json.Marshal(sub)
	if err != nil {
		return CreateRes{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s", sdk.relayURL, subscribeEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return CreateRes{}, sdkerr
	}

	var res CreateRes
	if err := json.Unmarshal(body, &res); err != nil {
		return CreateRes{}, errors.NewSDKError(err)
	}

	return res, nil
}

func (sdk pbSDK) Subscriptions() ([]subscriptions.Subscription, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.relayURL, subscriptionsEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var subs []subscriptions.Subscription
	if err := json.Unmarshal(body, &subs); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return subs, nil
}

func (sdk pbSDK) Subscription(id string) (subscriptions.Subscription, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.relayURL, subscriptionsEndpoint, id)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return subscriptions.Subscription{}, sdkerr
	}

	var sub subscriptions.Subscription
	if err := json.Unmarshal(body, &sub); err != nil {
		return subscriptions.Subscription{}, errors.NewSDKError(err)
	}

	return sub, nil
}

func (sdk pbSDK) DeleteSubscription(id string) errors.SDKError {
	url := fmt.Sprintf("%s/%s/%s", sdk.relayURL, unsubscribeEndpoint, id)
	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, nil, http.StatusOK)

	return sdkerr
}

func (sdk pbSDK) SendNotification(payload subscriptions.Payload) (DeliveryReport, errors.SDKError) {
	data, err := json.Marshal(payload)
	if err != nil {
		return DeliveryReport{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s", sdk.relayURL, sendEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusOK)
	if sdkerr != nil {
		return DeliveryReport{}, sdkerr
	}

	var report DeliveryReport
	if err := json.Unmarshal(body, &report); err != nil {
		return DeliveryReport{}, errors.NewSDKError(err)
	}

	return report, nil
}

func (sdk pbSDK) SendNotificationTo(id string, payload subscriptions.Payload) errors.SDKError {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s", sdk.relayURL, sendEndpoint, id)
	_, _, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusOK)

	return sdkerr
}

func (sdk pbSDK) CleanupExpired() (CleanupReport, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.relayURL, cleanupEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return CleanupReport{}, sdkerr
	}

	var report CleanupReport
	if err := json.Unmarshal(body, &report); err != nil {
		return CleanupReport{}, errors.NewSDKError(err)
	}

	return report, nil
}
