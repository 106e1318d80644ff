// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package subscriptions

// Default notification content substituted for omitted fields.
const (
	DefTitle = "New Notification"
	DefBody  = "This is a new notification"
	DefIcon  = "/icon.png"
)

// Payload is the notification content delivered to subscribers.
type Payload struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// WithDefaults fills omitted fields with the default notification content.
func (p Payload) WithDefaults() Payload {
	if p.Title == "" {
		p.Title = DefTitle
	}
	if p.Body == "" {
		p.Body = DefBody
	}
	if p.Icon == "" {
		p.Icon = DefIcon
	}
	return p
}
