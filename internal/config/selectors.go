// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the batch-query file the demo CLI uses to run
// ComputeBaseline over a named set of features in one pass.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/baseline/pkg/baseline"
)

// FeatureSelectorEntry is one named query in a selector set file.
type FeatureSelectorEntry struct {
	ID             string   `yaml:"id"`
	CompatKeys     []string `yaml:"compat_keys"`
	CheckAncestors bool     `yaml:"check_ancestors"`
}

// FeatureSelectorSet is the top-level shape of a selectors YAML file.
type FeatureSelectorSet struct {
	Selectors []FeatureSelectorEntry `yaml:"selectors"`
}

// LoadFeatureSelectorSet reads and parses a selectors YAML file.
func LoadFeatureSelectorSet(path string) (*FeatureSelectorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selector set file: %w", err)
	}

	var set FeatureSelectorSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse selector set YAML: %w", err)
	}

	return &set, nil
}

// Validate checks required fields and duplicate ids.
func (s *FeatureSelectorSet) Validate() error {
	seenIDs := make(map[string]bool)

	for i, sel := range s.Selectors {
		if sel.ID == "" {
			return fmt.Errorf("selector at index %d missing id", i)
		}
		if len(sel.CompatKeys) == 0 {
			return fmt.Errorf("selector %s missing compat_keys", sel.ID)
		}
		if seenIDs[sel.ID] {
			return fmt.Errorf("duplicate selector id: %s", sel.ID)
		}
		seenIDs[sel.ID] = true
	}

	return nil
}

// ToFeatureSelector converts one entry into the baseline package's query
// shape.
func (e FeatureSelectorEntry) ToFeatureSelector() baseline.FeatureSelector {
	return baseline.FeatureSelector{
		CompatKeys:     e.CompatKeys,
		CheckAncestors: e.CheckAncestors,
	}
}
