// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	err = "error"
	msg = "message"
)

var (
	// errJSONKey indicates response body did not contain error message.
	errJSONKey = New("response body expected error message json key not found")

	// errUnknown indicates that an unknown error was found in the response body.
	errUnknown = New("unknown error")
)

// SDKError is an error type for the Pushbeam SDK.
type SDKError interface {
	Error
	StatusCode() int
}

var _ SDKError = (*sdkError)(nil)

type sdkError struct {
	*customError
	statusCode int
}

func (ce *sdkError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.customError == nil {
		return http.StatusText(ce.statusCode)
	}
	return fmt.Sprintf("Status: %s: %s", http.StatusText(ce.statusCode), ce.customError.Error())
}

func (ce *sdkError) StatusCode() int {
	return ce.statusCode
}

// NewSDKError returns an SDK Error that formats as the given text.
func NewSDKError(e error) SDKError {
	return &sdkError{
		customError: &customError{
			msg: e.Error(),
			err: nil,
		},
		statusCode: 0,
	}
}

// NewSDKErrorWithStatus returns an SDK Error setting the status code.
func NewSDKErrorWithStatus(e error, statusCode int) SDKError {
	return &sdkError{
		statusCode: statusCode,
		customError: &customError{
			msg: e.Error(),
			err: nil,
		},
	}
}

// CheckError will check the HTTP response status code and matches it with the given status codes.
// Since multiple status codes can be valid, we can pass multiple status codes to the function.
// The function then checks for errors in the HTTP response.
func CheckError(resp *http.Response, expectedStatusCodes ...int) SDKError {
	if resp == nil {
		return nil
	}
	for _, expectedStatusCode := range expectedStatusCodes {
		if resp.StatusCode == expectedStatusCode {
			return nil
		}
	}

	b, bErr := io.ReadAll(resp.Body)
	if bErr != nil {
		return NewSDKErrorWithStatus(bErr, resp.StatusCode)
	}

	var content map[string]interface{}
	if jErr := json.Unmarshal(b, &content); jErr != nil {
		return NewSDKErrorWithStatus(jErr, resp.StatusCode)
	}

	for _, key := range []string{msg, err} {
		if val, ok := content[key]; ok {
			if v, ok := val.(string); ok && v != "" {
				return NewSDKErrorWithStatus(New(v), resp.StatusCode)
			}
		}
	}

	return NewSDKErrorWithStatus(errJSONKey, resp.StatusCode)
}
