// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/pushbeam/pushbeam/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingID indicates missing subscription ID.
	ErrMissingID = errors.New("missing subscription id")

	// ErrMissingEndpoint indicates missing subscription endpoint.
	ErrMissingEndpoint = errors.New("missing subscription endpoint")

	// ErrMissingKeys indicates missing subscription encryption keys.
	ErrMissingKeys = errors.New("missing subscription encryption keys")

	// ErrMalformedBody indicates a request body that could not be decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// ErrorRes represents the HTTP error response body.
type ErrorRes struct {
	Err string `json:"error,omitempty"`
	Msg string `json:"message"`
}
