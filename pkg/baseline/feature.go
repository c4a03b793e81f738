// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"encoding/json"
	"fmt"
)

// VersionValue models a BCD version_added/version_removed value: either
// the literal false ("never supported"/"never removed") or a version
// string, which may itself be ranged ("≤V").
type VersionValue struct {
	Unsupported bool // true iff the raw value was the JSON literal false
	Version     Version
}

// UnmarshalJSON accepts the JSON literal false or a string.
func (v *VersionValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			return fmt.Errorf("baseline: version value %q is not a supported shape (want false or a version string)", data)
		}
		v.Unsupported = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("baseline: version value %q is neither false nor a string: %w", data, err)
	}
	v.Unsupported = false
	v.Version = ParseVersion(s)
	return nil
}

// Qualifications is the set of non-plain caveats attached to a support
// statement.
type Qualifications struct {
	Prefix                string
	AlternativeName       string
	Flags                 []string
	PartialImplementation bool
}

// IsPlain reports whether all four qualification fields are absent.
func (q Qualifications) IsPlain() bool {
	return q.Prefix == "" && q.AlternativeName == "" && len(q.Flags) == 0 && !q.PartialImplementation
}

// SupportStatement is one raw per-(feature, browser) compat record.
type SupportStatement struct {
	VersionAdded          VersionValue  `json:"version_added"`
	VersionRemoved        *VersionValue `json:"version_removed,omitempty"`
	Flags                 []string      `json:"flags,omitempty"`
	Prefix                string        `json:"prefix,omitempty"`
	AlternativeName       string        `json:"alternative_name,omitempty"`
	PartialImplementation bool          `json:"partial_implementation,omitempty"`
}

// Qualifications derives this statement's qualification set.
func (s SupportStatement) Qualifications() Qualifications {
	return Qualifications{
		Prefix:                s.Prefix,
		AlternativeName:       s.AlternativeName,
		Flags:                 s.Flags,
		PartialImplementation: s.PartialImplementation,
	}
}

// Feature is one compat-tree node's __compat record, keyed by dotted path.
type Feature struct {
	Path       string
	Deprecated bool
	Support    map[BrowserID][]SupportStatement
}
