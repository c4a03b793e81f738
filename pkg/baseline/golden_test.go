// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bartekus/baseline/internal/testutil/golden"
)

// TestComputeBaselineGoldenOutput snapshots ComputeBaseline's serialized
// JSON for the all-supported fixture, so an accidental change to field
// order, date formatting, or the support-map shape shows up as a diff
// instead of a silent behavior change. Run with -update to refresh.
func TestComputeBaselineGoldenOutput(t *testing.T) {
	raw := allSevenSupportFixture(t, "2026-01-01T00:00:00Z", false)
	status := loadAndCompute(t, raw, "api.Foo")

	data, err := json.Marshal(status)
	require.NoError(t, err)

	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, data, "", "  "))
	got := pretty.String()

	dir := golden.TestdataDir(t)
	name := "compute_baseline_all_supported"

	if *golden.Update {
		golden.Write(t, dir, name, got)
		return
	}

	want := golden.Read(t, dir, name)
	require.Equal(t, want, got, "run go test -run TestComputeBaselineGoldenOutput -update to refresh")
}
