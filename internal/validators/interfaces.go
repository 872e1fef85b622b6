// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks parsed command lines before they reach the
// service layer.
//
// A [Validator] receives a value and an optional list of field names. With no
// fields every rule for the value's type runs; with fields only those rules
// run, in the given order, and the first failure is returned.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
