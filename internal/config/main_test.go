// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	// Unset all SITECFG vars to ensure clean test environment
	// We do this before running any tests in the package
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "SITECFG_") {
			kv := strings.SplitN(e, "=", 2)
			if len(kv) > 0 {
				if err := os.Unsetenv(kv[0]); err != nil {
					panic("failed to unset env: " + err.Error())
				}
			}
		}
	}

	os.Exit(m.Run())
}
