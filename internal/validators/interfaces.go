// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client and account payloads before they reach
// storage.
//
// Usage patterns:
//  1. Inject a Validator into a service.
//  2. Call Validate with the record and, optionally, the names of the
//     fields to check. Without field names a default set is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
