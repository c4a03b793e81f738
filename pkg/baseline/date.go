// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// baselineHighOffsetMonths is the fixed interval between a feature's low
// date and its high date: exactly 30 months, computed by calendar
// arithmetic, never approximated as a day count.
const baselineHighOffsetMonths = 30

// ParseRangedDate parses a date string of the form "YYYY-MM-DD", optionally
// prefixed "≤".
func ParseRangedDate(s string) (time.Time, bool, error) {
	ranged := strings.HasPrefix(s, rangedPrefix)
	raw := strings.TrimPrefix(s, rangedPrefix)
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("baseline: invalid date %q: %w", s, err)
	}
	return t, ranged, nil
}

// FormatDate renders a date, prefixed "≤" when ranged.
func FormatDate(t time.Time, ranged bool) string {
	s := t.Format(dateLayout)
	if ranged {
		return rangedPrefix + s
	}
	return s
}

// ParseInstant parses an ISO-8601 instant (BCD's __meta.timestamp) and
// truncates it to its UTC calendar date — the cutoff clock against which
// the 30-month offset is compared.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("baseline: invalid timestamp %q: %w", s, err)
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), nil
}

// addMonthsClamped adds n months to t, clamping the day-of-month to the
// target month's last day when the original day overflows it. The
// stdlib's time.Time.AddDate does not do this on its own (Jan 31 plus one
// month normalizes to Mar 3, not Feb 28); a calendar library's "add N
// months" semantics requires the clamp, so it's implemented directly.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := totalMonths % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}
	targetMonth++ // back to 1-indexed

	if lastDay := daysInMonth(targetYear, time.Month(targetMonth)); day > lastDay {
		day = lastDay
	}
	return time.Date(targetYear, time.Month(targetMonth), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
