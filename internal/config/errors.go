// SPDX-License-Identifier: MIT

package config

import "errors"

// Resolution errors. Resolve reports every failure it finds; each one
// unwraps to exactly one of these sentinels, so callers classify with
// errors.Is instead of string matching.
var (
	// ErrMalformedPath marks an empty or syntactically invalid nav link,
	// sidebar prefix or sidebar child.
	ErrMalformedPath = errors.New("malformed path")

	// ErrDuplicateSidebarKey marks a sidebar prefix declared more than once.
	ErrDuplicateSidebarKey = errors.New("duplicate sidebar key")

	// ErrInvalidPluginDeclaration marks a plugin entry that is neither a name
	// nor a [name, options] pair.
	ErrInvalidPluginDeclaration = errors.New("invalid plugin declaration")

	// ErrInvalidHeadTag marks a head entry that is not [name, {attrs}].
	ErrInvalidHeadTag = errors.New("invalid head tag")

	// ErrInvalidBase marks a base path that does not start and end with "/".
	ErrInvalidBase = errors.New("invalid base path")

	// ErrInvalidNavItem marks a nav entry without a label.
	ErrInvalidNavItem = errors.New("invalid nav item")

	// ErrInvalidSidebarGroup marks a sidebar group with an impossible depth.
	ErrInvalidSidebarGroup = errors.New("invalid sidebar group")
)

var (
	// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrUnsupportedFormat is returned for config files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
