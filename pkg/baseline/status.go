// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"bytes"
	"sort"
	"strconv"
)

// BaselineStatus is the full computed result for one or more compat keys:
// the tri-valued Baseline label, its two dates, the discouraged flag, and
// the aggregated per-browser support map.
//
// Invariants: if Baseline == BaselineFalse both dates are nil; if
// BaselineLow, BaselineLowDate is set and BaselineHighDate is nil; if
// BaselineHigh both are set and Low <= High. If Discouraged is true,
// Baseline is unconditionally BaselineFalse.
type BaselineStatus struct {
	Baseline         Baseline
	BaselineLowDate  *DateValue
	BaselineHighDate *DateValue
	Discouraged      bool
	Support          SupportMap
}

// MarshalJSON renders the schema-by-baseline-value shape: the high
// variant carries both dates, low carries only the low date, and false
// carries neither — absent keys, not null values.
func (s BaselineStatus) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	switch s.Baseline {
	case BaselineHigh:
		buf.WriteString(`"baseline":"high",`)
		buf.WriteString(`"baseline_low_date":`)
		buf.WriteString(strconv.Quote(s.BaselineLowDate.String()))
		buf.WriteByte(',')
		buf.WriteString(`"baseline_high_date":`)
		buf.WriteString(strconv.Quote(s.BaselineHighDate.String()))
		buf.WriteByte(',')
	case BaselineLow:
		buf.WriteString(`"baseline":"low",`)
		buf.WriteString(`"baseline_low_date":`)
		buf.WriteString(strconv.Quote(s.BaselineLowDate.String()))
		buf.WriteByte(',')
	default:
		buf.WriteString(`"baseline":false,`)
	}

	buf.WriteString(`"support":`)
	supportJSON, err := marshalSupportMap(s.Support)
	if err != nil {
		return nil, err
	}
	buf.Write(supportJSON)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalSupportMap renders a SupportMap as a JSON object, iterating
// browsers in the fixed core-set order first (any browsers outside the
// core set follow, sorted, for determinism) and omitting browsers whose
// InitialSupport is absent or unknown.
func marshalSupportMap(m SupportMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(id BrowserID) {
		entry, ok := m[id]
		if !ok || entry.Initial == nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(strconv.Quote(string(id)))
		buf.WriteByte(':')
		buf.WriteString(strconv.Quote(entry.Initial.Text))
	}

	for _, id := range CoreBrowserSet {
		write(id)
	}

	var extra []string
	for id := range m {
		if !isCoreBrowser(id) {
			extra = append(extra, string(id))
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		write(BrowserID(id))
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isCoreBrowser(id BrowserID) bool {
	for _, c := range CoreBrowserSet {
		if c == id {
			return true
		}
	}
	return false
}
