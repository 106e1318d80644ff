// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/pushbeam/pushbeam/pkg/apiutil"
	"github.com/pushbeam/pushbeam/subscriptions"
)

type createSubReq struct {
	Endpoint   string             `json:"endpoint"`
	Keys       subscriptions.Keys `json:"keys"`
	userAgent  string
	remoteAddr string
}

func (req createSubReq) validate() error {
	if req.Endpoint == "" {
		return apiutil.ErrMissingEndpoint
	}
	if req.Keys.P256dh == "" || req.Keys.Auth == "" {
		return apiutil.ErrMissingKeys
	}
	return nil
}

type subReq struct {
	id string
}

func (req subReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	return nil
}

type listSubsReq struct{}

func (req listSubsReq) validate() error {
	return nil
}

type sendReq struct {
	subscriptions.Payload
}

func (req sendReq) validate() error {
	return nil
}

type sendOneReq struct {
	id string
	subscriptions.Payload
}

func (req sendOneReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	return nil
}

type cleanupReq struct{}

func (req cleanupReq) validate() error {
	return nil
}
