// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/rs/zerolog"
)

// Environment overrides, applied after the file and before Resolve.
const (
	EnvTitle       = "SITECFG_TITLE"
	EnvDescription = "SITECFG_DESCRIPTION"
	EnvBase        = "SITECFG_BASE"
	EnvRepo        = "SITECFG_REPO"
	EnvDocsDir     = "SITECFG_DOCS_DIR"
	EnvEditLinks   = "SITECFG_EDIT_LINKS"
	EnvLastUpdated = "SITECFG_LAST_UPDATED"
)

// EnvKeys lists every environment key the loader consumes.
var EnvKeys = []string{
	EnvTitle, EnvDescription, EnvBase, EnvRepo, EnvDocsDir, EnvEditLinks, EnvLastUpdated,
}

// LookupString reports the value of a non-empty environment variable.
// It logs the source (environment or unset) for observability.
func LookupString(key string) (string, bool) {
	return lookupStringWithLogger(log.WithComponent("config"), key)
}

func lookupStringWithLogger(logger zerolog.Logger, key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	switch {
	case !exists:
		return "", false
	case value == "":
		logger.Debug().
			Str(log.FieldKey, key).
			Str(log.FieldSource, "file").
			Msg("environment variable is empty, keeping file value")
		return "", false
	default:
		logger.Debug().
			Str(log.FieldKey, key).
			Str("value", value).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return value, true
	}
}

// LookupBool reports the boolean value of an environment variable.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive);
// anything else is ignored with a warning.
func LookupBool(key string) (bool, bool) {
	logger := log.WithComponent("config")
	v, ok := lookupStringWithLogger(logger, key)
	if !ok {
		return false, false
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		logger.Warn().
			Str(log.FieldKey, key).
			Str("value", v).
			Msg("invalid boolean in environment variable, keeping file value")
		return false, false
	}
}
