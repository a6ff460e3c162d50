// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for sitecfg.
package validate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Error represents a validation error
type Error struct {
	Field   string // Field path that failed validation, e.g. "themeConfig.nav[2].link"
	Value   any    // The invalid value
	Message string // Human-readable error message
	Kind    error  // Optional classification sentinel, exposed through Unwrap
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Unwrap returns the classification sentinel so callers can use errors.Is.
func (e Error) Unwrap() error {
	return e.Kind
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds an unclassified validation error
func (v *Validator) AddError(field, message string, value any) {
	v.Fail(nil, field, message, value)
}

// Fail adds a validation error classified by kind.
func (v *Validator) Fail(kind error, field, message string, value any) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
		Kind:    kind,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Unwrap exposes every individual error to errors.Is and errors.As.
func (e ValidationError) Unwrap() []error {
	out := make([]error, len(e.errors))
	for i, err := range e.errors {
		out[i] = err
	}
	return out
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(kind error, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Fail(kind, field, "value cannot be empty", value)
	}
}

// Link validates a navigation target: either an absolute URL with a host or
// a site-internal path.
func (v *Validator) Link(kind error, field, value string) {
	if value == "" {
		v.Fail(kind, field, "link cannot be empty", value)
		return
	}
	if msg := badCharacter(value); msg != "" {
		v.Fail(kind, field, msg, value)
		return
	}

	u, err := url.Parse(value)
	if err != nil {
		v.Fail(kind, field, fmt.Sprintf("invalid link: %v", err), value)
		return
	}
	if u.Scheme == "" {
		return
	}
	switch strings.ToLower(u.Scheme) {
	case "mailto", "tel":
		if u.Opaque == "" {
			v.Fail(kind, field, fmt.Sprintf("%s link has no target", u.Scheme), value)
		}
	default:
		if u.Host == "" {
			v.Fail(kind, field, "URL must have a host", value)
		}
	}
}

// RoutePrefix validates a route prefix such as "/guide/". It must be rooted.
func (v *Validator) RoutePrefix(kind error, field, value string) {
	if value == "" {
		v.Fail(kind, field, "route prefix cannot be empty", value)
		return
	}
	if !strings.HasPrefix(value, "/") {
		v.Fail(kind, field, "route prefix must start with /", value)
		return
	}
	if msg := badCharacter(value); msg != "" {
		v.Fail(kind, field, msg, value)
	}
}

// PageRef validates a page reference relative to a route prefix. The empty
// string is accepted and names the index page.
func (v *Validator) PageRef(kind error, field, value string) {
	if value == "" {
		return
	}
	if msg := badCharacter(value); msg != "" {
		v.Fail(kind, field, msg, value)
		return
	}
	if _, err := url.Parse(value); err != nil {
		v.Fail(kind, field, fmt.Sprintf("invalid page reference: %v", err), value)
	}
}

// BasePath validates a deploy base path, which must start and end with "/".
func (v *Validator) BasePath(kind error, field, value string) {
	if !strings.HasPrefix(value, "/") || !strings.HasSuffix(value, "/") {
		v.Fail(kind, field, "base path must start and end with /", value)
		return
	}
	if msg := badCharacter(value); msg != "" {
		v.Fail(kind, field, msg, value)
	}
}

// forbidden are characters that may never appear unescaped in a link.
const forbidden = "<>\"{}|\\^`"

func badCharacter(s string) string {
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return fmt.Sprintf("contains whitespace character %q", r)
		case unicode.IsControl(r):
			return fmt.Sprintf("contains control character %q", r)
		case strings.ContainsRune(forbidden, r):
			return fmt.Sprintf("contains invalid character %q", r)
		}
	}
	return ""
}
