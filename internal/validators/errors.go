// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnsupportedType  = errors.New("unsupported type for validation")
)

// FieldErrors lists human-readable messages of the fields that failed
// validation. It matches ErrValidationFailed under errors.Is.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidationFailed
}
