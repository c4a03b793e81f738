// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import "time"

// Baseline is the tri-valued Baseline label.
type Baseline string

const (
	BaselineFalse Baseline = "false"
	BaselineLow   Baseline = "low"
	BaselineHigh  Baseline = "high"
)

// DateValue pairs a calendar date with whether it is a ranged ("≤")
// value.
type DateValue struct {
	Time   time.Time
	Ranged bool
}

// String renders the date in its display form.
func (d DateValue) String() string {
	return FormatDate(d.Time, d.Ranged)
}

// Status is the Baseline label plus its two derived dates, without the
// per-browser support map (see BaselineStatus for the full result).
type Status struct {
	Baseline         Baseline
	BaselineLowDate  *DateValue
	BaselineHighDate *DateValue
}

// computeKeystone finds the latest initial-support date across the core
// browser set. It returns nil if any core browser is unknown or if any
// core browser's InitialSupport release has no release date.
func computeKeystone(support SupportMap) *DateValue {
	dates := make([]DateValue, 0, len(CoreBrowserSet))
	for _, b := range CoreBrowserSet {
		entry, ok := support[b]
		if !ok || entry.Initial == nil || entry.Initial.Release.Date == nil {
			return nil
		}
		dates = append(dates, DateValue{
			Time:   *entry.Initial.Release.Date,
			Ranged: entry.Initial.Ranged,
		})
	}

	best := dates[0]
	for _, d := range dates[1:] {
		if moreRecentKeystoneDate(d, best) {
			best = d
		}
	}
	return &best
}

// moreRecentKeystoneDate orders two keystone candidates: later date wins;
// on a tie, the exact (non-ranged) value wins over the ranged one.
func moreRecentKeystoneDate(a, b DateValue) bool {
	if !a.Time.Equal(b.Time) {
		return a.Time.After(b.Time)
	}
	return !a.Ranged && b.Ranged
}

// KeystoneDateToStatus derives a Baseline label and its two dates from a
// precomputed keystone date string, a cutoff date, and a discouraged
// flag. Exposed publicly so external callers can re-derive status from
// dates they've already computed or cached.
func KeystoneDateToStatus(keystone *string, cutoff time.Time, discouraged bool) (Status, error) {
	if keystone == nil || discouraged {
		return Status{Baseline: BaselineFalse}, nil
	}

	date, ranged, err := ParseRangedDate(*keystone)
	if err != nil {
		return Status{}, err
	}

	low := DateValue{Time: date, Ranged: ranged}
	status := Status{Baseline: BaselineLow, BaselineLowDate: &low}

	highCandidate := addMonthsClamped(date, baselineHighOffsetMonths)
	if !highCandidate.After(cutoff) {
		high := DateValue{Time: highCandidate, Ranged: ranged}
		status.Baseline = BaselineHigh
		status.BaselineHighDate = &high
	}

	return status, nil
}

// deriveStatus combines keystone computation and status mapping for one
// aggregated SupportMap.
func deriveStatus(support SupportMap, cutoff time.Time, discouraged bool) (Status, error) {
	if discouraged {
		return Status{Baseline: BaselineFalse}, nil
	}

	keystone := computeKeystone(support)
	if keystone == nil {
		return Status{Baseline: BaselineFalse}, nil
	}

	keystoneText := keystone.String()
	return KeystoneDateToStatus(&keystoneText, cutoff, false)
}
