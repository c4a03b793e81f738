// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

// StatementKind is the tri-state (plus unknown) outcome of resolving one
// SupportStatement against one Release.
type StatementKind int

const (
	StatementUnsupported StatementKind = iota
	StatementSupported
	StatementUnknown
)

// StatementResolution is the result of resolving a single SupportStatement
// against a single Release. Quals is only meaningful when Kind is
// StatementSupported.
type StatementResolution struct {
	Kind  StatementKind
	Quals Qualifications
}

// resolveStatement evaluates one SupportStatement against one target
// Release, following the four exhaustive cases in the spec. Version
// lookups within the statement happen against the Release's own browser.
func resolveStatement(stmt SupportStatement, release *Release) (StatementResolution, error) {
	browser := release.Browser

	// Case 1: version_added == false.
	if stmt.VersionAdded.Unsupported {
		return StatementResolution{Kind: StatementUnsupported}, nil
	}

	va := stmt.VersionAdded
	vr := stmt.VersionRemoved
	vaRanged := va.Version.Ranged
	vrRanged := vr != nil && !vr.Unsupported && vr.Version.Ranged

	quals := stmt.Qualifications()

	switch {
	case vaRanged && vr != nil && vrRanged:
		// Case 2: both va and vr are ranged.
		s, err := browser.FindRelease(va.Version.Raw)
		if err != nil {
			return StatementResolution{}, err
		}
		u, err := browser.FindRelease(vr.Version.Raw)
		if err != nil {
			return StatementResolution{}, err
		}
		switch {
		case release.Index == s.Index:
			return StatementResolution{Kind: StatementSupported, Quals: quals}, nil
		case release.Index >= u.Index:
			return StatementResolution{Kind: StatementUnsupported}, nil
		default:
			return StatementResolution{Kind: StatementUnknown}, nil
		}

	case !vaRanged && vr != nil && vrRanged:
		// Case 3: va exact, vr ranged.
		s, err := browser.FindRelease(va.Version.Raw)
		if err != nil {
			return StatementResolution{}, err
		}
		u, err := browser.FindRelease(vr.Version.Raw)
		if err != nil {
			return StatementResolution{}, err
		}
		switch {
		case release.Index == s.Index:
			return StatementResolution{Kind: StatementSupported, Quals: quals}, nil
		case release.Index >= u.Index || inRange(release, browser.initial(), s):
			return StatementResolution{Kind: StatementUnsupported}, nil
		default:
			return StatementResolution{Kind: StatementUnknown}, nil
		}

	default:
		// Case 4: everything else.
		start, err := browser.FindRelease(va.Version.Raw)
		if err != nil {
			return StatementResolution{}, err
		}
		var end *Release
		if vr != nil && !vr.Unsupported {
			end, err = browser.FindRelease(vr.Version.Raw)
			if err != nil {
				return StatementResolution{}, err
			}
		}

		switch {
		case inRange(release, start, end):
			return StatementResolution{Kind: StatementSupported, Quals: quals}, nil
		case vaRanged && inRange(release, browser.initial(), start):
			return StatementResolution{Kind: StatementUnknown}, nil
		default:
			return StatementResolution{Kind: StatementUnsupported}, nil
		}
	}
}
