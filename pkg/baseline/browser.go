// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"sort"
	"time"
)

// BrowserID identifies a browser drawn from the core set, e.g. "chrome".
type BrowserID string

// Core browser identifiers.
const (
	Chrome         BrowserID = "chrome"
	ChromeAndroid  BrowserID = "chrome_android"
	Edge           BrowserID = "edge"
	Firefox        BrowserID = "firefox"
	FirefoxAndroid BrowserID = "firefox_android"
	Safari         BrowserID = "safari"
	SafariIOS      BrowserID = "safari_ios"
)

// CoreBrowserSet is the fixed, ordered quorum used as the Baseline
// keystone. Its order is observable: callers iterate it directly.
var CoreBrowserSet = []BrowserID{
	Chrome,
	ChromeAndroid,
	Edge,
	Firefox,
	FirefoxAndroid,
	Safari,
	SafariIOS,
}

// ReleaseStatus is a browser release's lifecycle state.
type ReleaseStatus string

const (
	StatusRetired ReleaseStatus = "retired"
	StatusCurrent ReleaseStatus = "current"
	StatusBeta    ReleaseStatus = "beta"
	StatusNightly ReleaseStatus = "nightly"
	StatusPlanned ReleaseStatus = "planned"
)

// IsPrerelease reports whether a release's status is beta, nightly or
// planned.
func (s ReleaseStatus) IsPrerelease() bool {
	switch s {
	case StatusBeta, StatusNightly, StatusPlanned:
		return true
	default:
		return false
	}
}

// Release is one entry in a Browser's ordered release history.
type Release struct {
	Browser *Browser
	Version string
	Date    *time.Time // nil when unreleased
	Status  ReleaseStatus
	Index   int // position in Browser.Releases, assigned at construction
}

// Browser is a core-set (or otherwise named) browser and its ordered
// release history.
type Browser struct {
	ID       BrowserID
	Name     string
	Releases []*Release
}

// NewBrowser builds a Browser from decoded release entries, sorting them
// ascending by version and assigning each its zero-based index. If
// previewName is non-empty, a synthetic "preview" release with status
// nightly is appended.
func NewBrowser(id BrowserID, name string, entries []rawRelease, previewName string) *Browser {
	b := &Browser{ID: id, Name: name}

	sort.SliceStable(entries, func(i, j int) bool {
		return compareVersionStrings(entries[i].version, entries[j].version) < 0
	})

	for _, e := range entries {
		b.Releases = append(b.Releases, &Release{
			Browser: b,
			Version: e.version,
			Date:    e.date,
			Status:  e.status,
		})
	}

	if previewName != "" {
		b.Releases = append(b.Releases, &Release{
			Browser: b,
			Version: previewName,
			Status:  StatusNightly,
		})
	}

	for i, r := range b.Releases {
		r.Index = i
	}

	return b
}

// rawRelease is the intermediate shape NewBrowser consumes, decoupling it
// from the BCD JSON decoding in compat.go.
type rawRelease struct {
	version string
	date    *time.Time
	status  ReleaseStatus
}

// Current returns the unique release whose status is "current". Absence
// is a fatal error per the spec's error taxonomy.
func (b *Browser) Current() (*Release, error) {
	for _, r := range b.Releases {
		if r.Status == StatusCurrent {
			return r, nil
		}
	}
	return nil, &NoCurrentReleaseError{Browser: b.ID}
}

// FindRelease looks up a release by its exact, unnormalized version
// string. A version absent from the browser's releases is a fatal error,
// not a silent miss.
func (b *Browser) FindRelease(version string) (*Release, error) {
	for _, r := range b.Releases {
		if r.Version == version {
			return r, nil
		}
	}
	return nil, &UnknownVersionError{Browser: b.ID, Version: version}
}

// initial returns the browser's earliest release (index 0), used as the
// open lower bound in ranged-version resolution.
func (b *Browser) initial() *Release {
	if len(b.Releases) == 0 {
		return nil
	}
	return b.Releases[0]
}

// inRange tests index >= start.Index && (end == nil || index < end.Index):
// inclusive lower bound, exclusive upper bound.
func inRange(candidate, start, end *Release) bool {
	if candidate.Index < start.Index {
		return false
	}
	if end != nil && candidate.Index >= end.Index {
		return false
	}
	return true
}

// moreRecentInitialSupport implements the aggregator's recency order over
// releases: higher index wins; on a tie, an exact
// (non-ranged) value wins over a ranged one.
func moreRecentInitialSupport(a, b *InitialSupport) bool {
	if a.Release.Index != b.Release.Index {
		return a.Release.Index > b.Release.Index
	}
	return !a.Ranged && b.Ranged
}
