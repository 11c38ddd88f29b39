// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrEntryIndexGap is returned when indexed entry variables skip a number,
// e.g. IO_INPUTS_0_NAME followed by IO_INPUTS_2_NAME. The env parser stops at
// the first missing index, which would silently drop every later entry.
var ErrEntryIndexGap = errors.New("entry variables must be numbered from 0 without gaps")

// entryEnvPrefixes are the indexed groups describing facade entries.
var entryEnvPrefixes = map[string]func(*StructuredConfig) int{
	"IO_INPUTS_":  func(c *StructuredConfig) int { return len(c.IO.Inputs) },
	"IO_OUTPUTS_": func(c *StructuredConfig) int { return len(c.IO.Outputs) },
}

// parseEnv reads a [StructuredConfig] from the process environment. Entries
// are given as IO_INPUTS_<n>_NAME, IO_OUTPUTS_<n>_CONVERT and so on.
func parseEnv() (*StructuredConfig, error) {
	environment := env.ToMap(os.Environ())

	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environment})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	for prefix, parsed := range entryEnvPrefixes {
		if index, ok := highestEntryIndex(environment, prefix); ok && index >= parsed(&cfg) {
			return nil, fmt.Errorf("error getting env configs: %w: %s%d_", ErrEntryIndexGap, prefix, index)
		}
	}

	return &cfg, nil
}

func highestEntryIndex(environment map[string]string, prefix string) (int, bool) {
	highest, found := 0, false
	for key := range environment {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		digits, _, ok := strings.Cut(rest, "_")
		if !ok {
			continue
		}
		index, err := strconv.Atoi(digits)
		if err != nil || index < 0 {
			continue
		}
		if !found || index > highest {
			highest, found = index, true
		}
	}
	return highest, found
}
