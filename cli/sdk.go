// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

package cli

import pbsdk "github.com/pushbeam/pushbeam/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk pbsdk.SDK

// SetSDK sets the push relay SDK instance.
func SetSDK(s pbsdk.SDK) {
	sdk = s
}
