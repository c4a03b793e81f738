// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExpandAncestors enumerates the ancestor paths of a dotted compat key
// that themselves carry a __compat record, in root-to-leaf order. The
// top-level category segment (p1) is never yielded on its own — it is
// always a category, never a feature. The original key is included iff
// it carries __compat itself. A path with no corresponding node anywhere
// along the way is an InvalidPathError.
func ExpandAncestors(raw []byte, key string) ([]string, error) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return nil, &InvalidPathError{Path: key}
	}

	escaped := make([]string, len(parts))
	for i, seg := range parts {
		escaped[i] = gjson.Escape(seg)
	}

	var out []string
	for i := 1; i <= len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		escapedPrefix := strings.Join(escaped[:i], ".")
		if !gjson.GetBytes(raw, escapedPrefix).Exists() {
			return nil, &InvalidPathError{Path: prefix}
		}
		if i < 2 {
			continue
		}
		if gjson.GetBytes(raw, escapedPrefix+".__compat").Exists() {
			out = append(out, prefix)
		}
	}
	return out, nil
}

// escapeGJSONPath escapes each dot-separated segment of a compat path so
// it maps onto a single gjson query without gjson re-splitting a segment
// that happens to contain a reserved character.
func escapeGJSONPath(path string) string {
	parts := strings.Split(path, ".")
	for i, seg := range parts {
		parts[i] = gjson.Escape(seg)
	}
	return strings.Join(parts, ".")
}
