// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builders below assemble a minimal BCD tree via plain Go maps and
// encoding/json, rather than hand-written JSON literals, so the tree's
// shape can't drift out of sync with decodeBrowser/decodeFeature's
// expectations.

func browserNode(name string, releases map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"name": name, "releases": releases}
}

func releaseEntry(date, status string) map[string]interface{} {
	return map[string]interface{}{"release_date": date, "status": status}
}

func compatNode(support map[string]interface{}, deprecated bool) map[string]interface{} {
	compat := map[string]interface{}{"support": support}
	if deprecated {
		compat["status"] = map[string]interface{}{"deprecated": true}
	}
	return map[string]interface{}{"__compat": compat}
}

// allSevenSupportFixture builds a BCD tree where one feature, "api.Foo", is
// supported plainly from each core browser's current release, and no
// release carries a date on or after 2023-01-01.
func allSevenSupportFixture(t *testing.T, cutoff string, deprecated bool) []byte {
	t.Helper()

	browsers := map[string]interface{}{
		"chrome": browserNode("Chrome", map[string]interface{}{
			"99":  releaseEntry("2022-09-01", "retired"),
			"100": releaseEntry("2022-10-01", "current"),
		}),
		"chrome_android": browserNode("Chrome Android", map[string]interface{}{
			"99":  releaseEntry("2022-09-01", "retired"),
			"100": releaseEntry("2022-10-01", "current"),
		}),
		"edge": browserNode("Edge", map[string]interface{}{
			"99":  releaseEntry("2022-09-05", "retired"),
			"100": releaseEntry("2022-10-05", "current"),
		}),
		"firefox": browserNode("Firefox", map[string]interface{}{
			"119": releaseEntry("2022-11-01", "retired"),
			"120": releaseEntry("2022-12-01", "current"),
		}),
		"firefox_android": browserNode("Firefox Android", map[string]interface{}{
			"119": releaseEntry("2022-11-01", "retired"),
			"120": releaseEntry("2022-12-01", "current"),
		}),
		"safari": browserNode("Safari", map[string]interface{}{
			"15": releaseEntry("2022-08-01", "retired"),
			"16": releaseEntry("2022-09-01", "current"),
		}),
		"safari_ios": browserNode("Safari on iOS", map[string]interface{}{
			"15": releaseEntry("2022-08-01", "retired"),
			"16": releaseEntry("2022-09-01", "current"),
		}),
	}

	support := map[string]interface{}{
		"chrome":          supportStmt("100"),
		"chrome_android":  supportStmt("100"),
		"edge":            supportStmt("100"),
		"firefox":         supportStmt("120"),
		"firefox_android": supportStmt("120"),
		"safari":          supportStmt("16"),
		"safari_ios":      supportStmt("16"),
	}

	root := map[string]interface{}{
		"__meta":   map[string]interface{}{"timestamp": cutoff},
		"browsers": browsers,
		"api": map[string]interface{}{
			"Foo": compatNode(support, deprecated),
		},
	}

	data, err := json.Marshal(root)
	require.NoError(t, err)
	return data
}

func supportStmt(versionAdded interface{}) map[string]interface{} {
	return map[string]interface{}{"version_added": versionAdded}
}

func loadAndCompute(t *testing.T, raw []byte, key string) BaselineStatus {
	t.Helper()
	ctx, err := Load(raw)
	require.NoError(t, err)
	status, err := ComputeBaseline(ctx, FeatureSelector{CompatKeys: []string{key}, CheckAncestors: false}, Options{})
	require.NoError(t, err)
	return status
}

func TestComputeBaselineAllSupportedHigh(t *testing.T) {
	raw := allSevenSupportFixture(t, "2026-01-01T00:00:00Z", false)
	status := loadAndCompute(t, raw, "api.Foo")

	require.Equal(t, BaselineHigh, status.Baseline)
	require.NotNil(t, status.BaselineLowDate)
	require.NotNil(t, status.BaselineHighDate)
	assert.Equal(t, "2022-12-01", status.BaselineLowDate.String())
	assert.Equal(t, "2025-06-01", status.BaselineHighDate.String())
	assert.False(t, status.Discouraged)
}

func TestComputeBaselineCutoffTooRecentStaysLow(t *testing.T) {
	raw := allSevenSupportFixture(t, "2023-06-01T00:00:00Z", false)
	status := loadAndCompute(t, raw, "api.Foo")

	assert.Equal(t, BaselineLow, status.Baseline)
	require.NotNil(t, status.BaselineLowDate)
	assert.Equal(t, "2022-12-01", status.BaselineLowDate.String())
	assert.Nil(t, status.BaselineHighDate)
}

func TestComputeBaselineUnknownOnOneBrowserKeepsRangedPrefix(t *testing.T) {
	browsers := map[string]interface{}{
		"chrome":          browserNode("Chrome", map[string]interface{}{"100": releaseEntry("2022-06-01", "current")}),
		"chrome_android":  browserNode("Chrome Android", map[string]interface{}{"100": releaseEntry("2022-06-01", "current")}),
		"edge":            browserNode("Edge", map[string]interface{}{"100": releaseEntry("2022-06-01", "current")}),
		"firefox":         browserNode("Firefox", map[string]interface{}{"120": releaseEntry("2022-06-01", "current")}),
		"firefox_android": browserNode("Firefox Android", map[string]interface{}{"120": releaseEntry("2022-06-01", "current")}),
		"safari":          browserNode("Safari", map[string]interface{}{"16": releaseEntry("2022-06-01", "current")}),
		"safari_ios": browserNode("Safari on iOS", map[string]interface{}{
			"15": releaseEntry("2022-09-01", "retired"),
			"16": releaseEntry("2022-12-20", "current"),
		}),
	}

	support := map[string]interface{}{
		"chrome":          supportStmt("100"),
		"chrome_android":  supportStmt("100"),
		"edge":            supportStmt("100"),
		"firefox":         supportStmt("120"),
		"firefox_android": supportStmt("120"),
		"safari":          supportStmt("16"),
		"safari_ios":      supportStmt("≤16"),
	}

	root := map[string]interface{}{
		"__meta":   map[string]interface{}{"timestamp": "2026-01-01T00:00:00Z"},
		"browsers": browsers,
		"api":      map[string]interface{}{"Foo": compatNode(support, false)},
	}
	data, err := json.Marshal(root)
	require.NoError(t, err)

	status := loadAndCompute(t, data, "api.Foo")

	require.NotNil(t, status.BaselineLowDate)
	assert.Equal(t, "≤2022-12-20", status.BaselineLowDate.String(), "safari_ios's ranged initial support is the latest across the core set")
	assert.NotEqual(t, BaselineFalse, status.Baseline)
}

func TestComputeBaselineNeverSupportedOnOneBrowser(t *testing.T) {
	raw := allSevenSupportFixture(t, "2026-01-01T00:00:00Z", false)

	var root map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &root))
	support := root["api"].(map[string]interface{})["Foo"].(map[string]interface{})["__compat"].(map[string]interface{})["support"].(map[string]interface{})
	support["firefox"] = supportStmt(false)
	data, err := json.Marshal(root)
	require.NoError(t, err)

	status := loadAndCompute(t, data, "api.Foo")

	assert.Equal(t, BaselineFalse, status.Baseline)
	assert.Nil(t, status.BaselineLowDate)
	assert.Nil(t, status.BaselineHighDate)
	entry, ok := status.Support[Firefox]
	require.True(t, ok, "firefox is still a key in the aggregated map")
	assert.Nil(t, entry.Initial, "firefox records unknown, not an error")
}

func TestComputeBaselineDiscouragedForcesFalse(t *testing.T) {
	raw := allSevenSupportFixture(t, "2026-01-01T00:00:00Z", true)
	status := loadAndCompute(t, raw, "api.Foo")

	assert.Equal(t, BaselineFalse, status.Baseline)
	assert.Nil(t, status.BaselineLowDate)
	assert.Nil(t, status.BaselineHighDate)
	assert.True(t, status.Discouraged)
}

func TestComputeBaselineAncestorRollup(t *testing.T) {
	sevenBrowserReleases := func() map[string]interface{} {
		return map[string]interface{}{"10": releaseEntry("2020-01-01", "current")}
	}

	browsers := map[string]interface{}{
		"chrome": browserNode("Chrome", map[string]interface{}{
			"119": releaseEntry("2022-01-01", "retired"),
			"120": releaseEntry("2022-02-01", "retired"),
			"125": releaseEntry("2022-06-01", "current"),
		}),
		"chrome_android":  browserNode("Chrome Android", sevenBrowserReleases()),
		"edge":            browserNode("Edge", sevenBrowserReleases()),
		"firefox":         browserNode("Firefox", sevenBrowserReleases()),
		"firefox_android": browserNode("Firefox Android", sevenBrowserReleases()),
		"safari":          browserNode("Safari", sevenBrowserReleases()),
		"safari_ios":      browserNode("Safari on iOS", sevenBrowserReleases()),
	}

	otherCoreSupport := func(version string) map[string]interface{} {
		return map[string]interface{}{
			"chrome_android":  supportStmt(version),
			"edge":            supportStmt(version),
			"firefox":         supportStmt(version),
			"firefox_android": supportStmt(version),
			"safari":          supportStmt(version),
			"safari_ios":      supportStmt(version),
		}
	}

	fooSupport := otherCoreSupport("10")
	fooSupport["chrome"] = supportStmt("125")

	barSupport := otherCoreSupport("10")
	barSupport["chrome"] = supportStmt("120")

	root := map[string]interface{}{
		"__meta":   map[string]interface{}{"timestamp": "2026-01-01T00:00:00Z"},
		"browsers": browsers,
		"api": map[string]interface{}{
			"Foo": mergeMap(compatNode(fooSupport, false), map[string]interface{}{
				"bar": compatNode(barSupport, false),
			}),
		},
	}
	data, err := json.Marshal(root)
	require.NoError(t, err)

	ctx, err := Load(data)
	require.NoError(t, err)
	status, err := ComputeBaseline(ctx, FeatureSelector{CompatKeys: []string{"api.Foo.bar"}, CheckAncestors: true}, Options{})
	require.NoError(t, err)

	chromeEntry, ok := status.Support[Chrome]
	require.True(t, ok)
	require.NotNil(t, chromeEntry.Initial)
	assert.Equal(t, "125", chromeEntry.Initial.Release.Version, "the ancestor's later introduction wins the aggregate")
}

// TestSupportMapForFeatureDetectsBrowserReleaseMismatch exercises the
// defensive check in supportMapForFeature: it can only trigger if a
// Compat's cache maps a BrowserID to a *Browser carrying a different ID,
// which never happens through Load/decodeBrowser, so the corruption is
// injected directly against the unexported cache field.
func TestSupportMapForFeatureDetectsBrowserReleaseMismatch(t *testing.T) {
	minimal := map[string]interface{}{
		"__meta":   map[string]interface{}{"timestamp": "2026-01-01T00:00:00Z"},
		"browsers": map[string]interface{}{},
	}
	data, err := json.Marshal(minimal)
	require.NoError(t, err)

	ctx, err := Load(data)
	require.NoError(t, err)

	mismatched := NewBrowser(Firefox, "Firefox", []rawRelease{{version: "1", status: StatusCurrent}}, "")
	ctx.browsers[Chrome] = mismatched

	feature := &Feature{
		Path: "api.Foo",
		Support: map[BrowserID][]SupportStatement{
			Chrome: {{VersionAdded: VersionValue{Version: ParseVersion("1")}}},
		},
	}

	_, err = supportMapForFeature(ctx, feature, Options{})
	var mismatch *BrowserReleaseMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, Chrome, mismatch.Expected)
	assert.Equal(t, Firefox, mismatch.Actual)
}

func mergeMap(a, b map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
