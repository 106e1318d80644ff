// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"time"

	"github.com/pushbeam/pushbeam"
	"github.com/pushbeam/pushbeam/subscriptions"
)

var (
	_ pushbeam.Response = (*createSubRes)(nil)
	_ pushbeam.Response = (*viewSubRes)(nil)
	_ pushbeam.Response = (*listSubsRes)(nil)
	_ pushbeam.Response = (*removeSubRes)(nil)
	_ pushbeam.Response = (*sendAllRes)(nil)
	_ pushbeam.Response = (*sendOneRes)(nil)
	_ pushbeam.Response = (*cleanupRes)(nil)
)

type createSubRes struct {
	ID                 string    `json:"id"`
	ExpiresAt          time.Time `json:"expiresAt"`
	TotalSubscriptions uint64    `json:"totalSubscriptions"`
}

func (res createSubRes) Code() int {
	return http.StatusCreated
}

func (res createSubRes) Headers() map[string]string {
	return map[string]string{}
}

func (res createSubRes) Empty() bool {
	return false
}

type viewSubRes struct {
	subscriptions.Subscription
}

func (res viewSubRes) Code() int {
	return http.StatusOK
}

func (res viewSubRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewSubRes) Empty() bool {
	return false
}

// listSubsRes marshals as a bare array of records.
type listSubsRes []subscriptions.Subscription

func (res listSubsRes) Code() int {
	return http.StatusOK
}

func (res listSubsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listSubsRes) Empty() bool {
	return false
}

type removeSubRes struct {
	ID string `json:"id"`
}

func (res removeSubRes) Code() int {
	return http.StatusOK
}

func (res removeSubRes) Headers() map[string]string {
	return map[string]string{}
}

func (res removeSubRes) Empty() bool {
	return false
}

type sendAllRes struct {
	Successful     uint64                         `json:"successful"`
	Failed         uint64                         `json:"failed"`
	TotalProcessed uint64                         `json:"totalProcessed"`
	Results        []subscriptions.DeliveryResult `json:"results"`
}

func (res sendAllRes) Code() int {
	return http.StatusOK
}

func (res sendAllRes) Headers() map[string]string {
	return map[string]string{}
}

func (res sendAllRes) Empty() bool {
	return false
}

type sendOneRes struct {
	ID string `json:"id"`
}

func (res sendOneRes) Code() int {
	return http.StatusOK
}

func (res sendOneRes) Headers() map[string]string {
	return map[string]string{}
}

func (res sendOneRes) Empty() bool {
	return false
}

type cleanupRes struct {
	Removed        uint64 `json:"expiredSubscriptionsRemoved"`
	TotalProcessed uint64 `json:"totalProcessed"`
}

func (res cleanupRes) Code() int {
	return http.StatusOK
}

func (res cleanupRes) Headers() map[string]string {
	return map[string]string{}
}

func (res cleanupRes) Empty() bool {
	return false
}
