// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService  = "service"
	FieldVersion  = "version"
	FieldRevision = "revision"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Config fields
	FieldPath    = "path"
	FieldFormat  = "format"
	FieldKey     = "key"
	FieldSource  = "source"
	FieldChanged = "changed"
)
