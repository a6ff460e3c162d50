// SPDX-License-Identifier: MIT

// Package config resolves declarative documentation-site configuration.
//
// The pipeline mirrors the file -> env -> validate order used throughout
// sitecfg: a Loader strictly parses a YAML, JSON or TOML file into a
// FileConfig, applies SITECFG_* environment overrides, and hands the result
// to Resolve, which fills defaults and validates every link. Resolve itself
// is pure and can be called directly on an in-memory FileConfig.
package config
