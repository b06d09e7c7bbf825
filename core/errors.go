// SPDX-License-Identifier: MIT
// Package: scanpath/core
//
// errors.go — sentinel errors shared by all record decoders.
//
// Policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Decoders attach the offending key with %w wrapping, never by editing
//     the sentinel text.

package core

import "errors"

var (
	// ErrUnknownTypeID indicates a Dict whose "typeid" has no decoder in the
	// dispatch table that was asked to decode it.
	ErrUnknownTypeID = errors.New("core: unregistered typeid")

	// ErrMissingField indicates a required key is absent from a Dict.
	ErrMissingField = errors.New("core: missing field")

	// ErrFieldType indicates a key is present but its value cannot be
	// converted to the requested Go type.
	ErrFieldType = errors.New("core: field has wrong type")
)
