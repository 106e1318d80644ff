// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pushbeam/pushbeam"
	"github.com/pushbeam/pushbeam/pkg/errors"
)

func (sdk pbSDK) Health() (pushbeam.HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/health", sdk.relayURL)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return pushbeam.HealthInfo{}, sdkerr
	}

	var h pushbeam.HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return pushbeam.HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
