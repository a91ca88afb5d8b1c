// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks channel and exchange requests before they reach
// the services. Validation is purely structural: it never touches stored
// records or derives keys, so a wrong password is not detected here.
package validators

import "context"

// Validator validates obj. Optional field names restrict validation to the
// named subset; without them a default set of fields is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
