// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

// InitialSupport is the release that most recently introduced plain
// support for one (feature, browser) pair.
type InitialSupport struct {
	Release *Release
	Ranged  bool // true iff derived from a "≤" statement
	Text    string
}

func newInitialSupport(release *Release, ranged bool) *InitialSupport {
	text := release.Version
	if ranged {
		text = rangedPrefix + text
	}
	return &InitialSupport{Release: release, Ranged: ranged, Text: text}
}

// FindInitialSupport walks a browser's releases from current() down to
// index 0, looking for the release that most recently introduced
// unbroken plain support. It returns nil (no error) when the current
// release itself is unsupported or unknown. Below a supported run, an
// unsupported release ends the walk with an exact result and an unknown
// release ends it with a ranged one.
//
// When the feature has no support entry at all for this browser,
// behavior depends on opts.TreatMissingSupportAsUnknown: by default this
// is a MissingBrowserSupportError; set true to treat it as "no initial
// support" instead.
func FindInitialSupport(feature *Feature, browser *Browser, opts Options) (*InitialSupport, error) {
	stmts, ok := feature.Support[browser.ID]
	if !ok {
		if opts.TreatMissingSupportAsUnknown {
			return nil, nil
		}
		return nil, &MissingBrowserSupportError{Path: feature.Path, Browser: browser.ID}
	}

	current, err := browser.Current()
	if err != nil {
		return nil, err
	}

	var lastInitial *Release

	for idx := current.Index; idx >= 0; idx-- {
		release := browser.Releases[idx]
		kind, err := collapseFeatureSupport(stmts, release)
		if err != nil {
			return nil, err
		}

		if lastInitial == nil {
			if kind != FeatureSupportedPlain {
				// First iteration found unsupported or unknown: no
				// anchor to start from at all.
				return nil, nil
			}
			lastInitial = release
			continue
		}

		switch kind {
		case FeatureSupportedPlain:
			lastInitial = release
		case FeatureUnknown:
			return newInitialSupport(lastInitial, true), nil
		case FeatureUnsupported:
			return newInitialSupport(lastInitial, false), nil
		}
	}

	return newInitialSupport(lastInitial, false), nil
}
