// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package selector

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector is the sentinel all spec grammar violations unwrap to.
var ErrInvalidSelector = errors.New("invalid selection spec")

// InvalidSelectorError reports a spec string that violates the selection
// grammar, with the offending spec preserved for the user.
type InvalidSelectorError struct {
	Spec   string
	Reason string
}

// Error returns the error message.
func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selection spec %q: %s", e.Spec, e.Reason)
}

// Unwrap returns ErrInvalidSelector so callers can match with errors.Is.
func (e *InvalidSelectorError) Unwrap() error {
	return ErrInvalidSelector
}
