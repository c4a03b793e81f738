// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import "strings"

// rangedPrefix marks a version or date string as "at or before this
// value; earlier boundary unknown".
const rangedPrefix = "≤"

// Version is a value type wrapping a raw version string and whether it
// was written with the ranged prefix. It travels as a unit instead of
// call sites sprinkling strings.HasPrefix(s, "≤") checks.
type Version struct {
	Raw    string // the version without the ranged prefix
	Ranged bool
}

// ParseVersion splits a version string into its ranged flag and
// underlying value. "≤103" -> {Raw: "103", Ranged: true}.
func ParseVersion(s string) Version {
	if strings.HasPrefix(s, rangedPrefix) {
		return Version{Raw: strings.TrimPrefix(s, rangedPrefix), Ranged: true}
	}
	return Version{Raw: s, Ranged: false}
}

// String renders the version back to its display form.
func (v Version) String() string {
	if v.Ranged {
		return rangedPrefix + v.Raw
	}
	return v.Raw
}

// compareVersionStrings compares two version strings semver-style: strip
// any non-digit, non-dot characters, split on ".", pad the shorter
// sequence with trailing zeros, compare component-wise as integers. Returns -1, 0
// or 1 the way strings.Compare does.
func compareVersionStrings(a, b string) int {
	ac, bc := versionComponents(a), versionComponents(b)
	for len(ac) < len(bc) {
		ac = append(ac, 0)
	}
	for len(bc) < len(ac) {
		bc = append(bc, 0)
	}
	for i := range ac {
		switch {
		case ac[i] < bc[i]:
			return -1
		case ac[i] > bc[i]:
			return 1
		}
	}
	return 0
}

func versionComponents(s string) []int {
	stripped := stripNonVersionChars(s)
	parts := strings.Split(stripped, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n := 0
		for _, r := range p {
			if r < '0' || r > '9' {
				continue
			}
			n = n*10 + int(r-'0')
		}
		out = append(out, n)
	}
	return out
}

func stripNonVersionChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
