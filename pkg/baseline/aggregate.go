// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

// SupportMapEntry is one browser's slot in a SupportMap. A nil Initial
// with the key present means "unknown" (no supporting release
// identified); the browser being entirely absent from the map means it
// was never queried.
type SupportMapEntry struct {
	Initial *InitialSupport
}

// SupportMap maps a browser to its initial-support result.
type SupportMap map[BrowserID]SupportMapEntry

// AggregateSupportMaps combines the per-compat-key SupportMaps (one per
// key after ancestor expansion) into a single map, keyed by the union of
// all input browsers. A browser unknown in any input is unknown in the
// aggregate; otherwise the most-recent InitialSupport wins, per
// moreRecentInitialSupport (higher release index wins; ties broken in
// favor of the exact, non-ranged value).
func AggregateSupportMaps(maps []SupportMap) SupportMap {
	out := SupportMap{}

	seen := map[BrowserID]bool{}
	for _, m := range maps {
		for browser := range m {
			seen[browser] = true
		}
	}

	for browser := range seen {
		var best *InitialSupport
		unknown := false

		for _, m := range maps {
			entry, ok := m[browser]
			if !ok {
				continue
			}
			if entry.Initial == nil {
				unknown = true
				continue
			}
			if best == nil || moreRecentInitialSupport(entry.Initial, best) {
				best = entry.Initial
			}
		}

		if unknown {
			out[browser] = SupportMapEntry{}
		} else {
			out[browser] = SupportMapEntry{Initial: best}
		}
	}

	return out
}
