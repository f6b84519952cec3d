// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides pre-flight checks of user input.
//
// A [Validator] inspects a value before any state is touched and reports the
// first failing check. Checks can be restricted to a subset of named fields;
// fields are checked in the order they are given.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
