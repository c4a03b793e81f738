// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

// FeatureSelector names the compat keys to evaluate for one Baseline
// computation, and whether ancestor keys should be rolled in.
type FeatureSelector struct {
	CompatKeys     []string
	CheckAncestors bool
}

// ComputeBaseline is the top-level operation: expand each compat key's
// ancestors (if requested), resolve per-browser InitialSupport across the
// core browser set for every resulting key, aggregate, and derive the
// Baseline status. Discouraged is set iff any involved feature's
// deprecated flag is true.
func ComputeBaseline(ctx *Compat, selector FeatureSelector, opts Options) (BaselineStatus, error) {
	keys, err := expandSelectorKeys(ctx, selector)
	if err != nil {
		return BaselineStatus{}, err
	}

	var maps []SupportMap
	discouraged := false

	for _, key := range keys {
		feature, err := ctx.Feature(key)
		if err != nil {
			return BaselineStatus{}, err
		}
		if feature.Deprecated {
			discouraged = true
		}

		m, err := supportMapForFeature(ctx, feature, opts)
		if err != nil {
			return BaselineStatus{}, err
		}
		maps = append(maps, m)
	}

	aggregated := AggregateSupportMaps(maps)

	cutoff, err := ctx.Cutoff()
	if err != nil {
		return BaselineStatus{}, err
	}

	status, err := deriveStatus(aggregated, cutoff, discouraged)
	if err != nil {
		return BaselineStatus{}, err
	}

	return BaselineStatus{
		Baseline:         status.Baseline,
		BaselineLowDate:  status.BaselineLowDate,
		BaselineHighDate: status.BaselineHighDate,
		Discouraged:      discouraged,
		Support:          aggregated,
	}, nil
}

// GetStatus is the convenience single-key query: equivalent to
// ComputeBaseline with CheckAncestors always on. featureID is accepted
// for parity with the source operation's signature — a caller-assigned
// label for the feature being queried — and is not itself used as a
// lookup key; compatKey is what addresses the compat tree.
func GetStatus(ctx *Compat, featureID string, compatKey string, opts Options) (BaselineStatus, error) {
	_ = featureID
	return ComputeBaseline(ctx, FeatureSelector{CompatKeys: []string{compatKey}, CheckAncestors: true}, opts)
}

func expandSelectorKeys(ctx *Compat, selector FeatureSelector) ([]string, error) {
	var keys []string
	for _, key := range selector.CompatKeys {
		if !selector.CheckAncestors {
			keys = append(keys, key)
			continue
		}
		expanded, err := ctx.ExpandAncestors(key)
		if err != nil {
			return nil, err
		}
		keys = append(keys, expanded...)
	}
	return keys, nil
}

func supportMapForFeature(ctx *Compat, feature *Feature, opts Options) (SupportMap, error) {
	m := SupportMap{}
	for _, browserID := range CoreBrowserSet {
		browser, err := ctx.Browser(browserID)
		if err != nil {
			return nil, err
		}
		if browser.ID != browserID {
			return nil, &BrowserReleaseMismatchError{Expected: browserID, Actual: browser.ID}
		}
		initial, err := FindInitialSupport(feature, browser, opts)
		if err != nil {
			return nil, err
		}
		if initial != nil && initial.Release.Browser.ID != browserID {
			return nil, &BrowserReleaseMismatchError{Expected: browserID, Actual: initial.Release.Browser.ID}
		}
		m[browserID] = SupportMapEntry{Initial: initial}
	}
	return m, nil
}
