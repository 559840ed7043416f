package calibstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/calibstore"
	"github.com/complexo-io/complexo/hwprofile"
)

func testRecord() calibstore.Record {
	// UTC drops the monotonic clock reading and the Local location,
	// neither of which a YAML round trip keeps.
	now := time.Now().UTC()
	return calibstore.Record{
		Version: calibstore.RecordVersion,
		Hardware: hwprofile.Profile{
			Machine:        "test-bench-01",
			CPUDesc:        "Test CPU",
			CPUCount:       8,
			MemoryBytes:    16 << 30,
			OSDesc:         "linux",
			RuntimeVer:     "go1.23.4",
			Is64Bit:        true,
			ReferenceScore: 1e8,
			CapturedAt:     now,
		},
		StartedAt:   now.Add(-time.Minute),
		CompletedAt: now,
		Methods: map[string]calibstore.MethodResult{
			calibstore.MethodKey("List", "Sort"): {
				Class: "O(n log n)", ConstantFactor: 12.5, Confidence: 0.95, Samples: 6, Success: true,
			},
			calibstore.MethodKey("Map", "Get"): {
				Success: false, FailureReason: "benchmark unstable",
			},
		},
	}
}

func TestSaveThenLoadLatestRoundTrips(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)

	r := testRecord()
	require.NoError(t, store.Save(context.Background(), r))

	loaded, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, r.Version, loaded.Version)
	assert.Equal(t, r.Hardware, loaded.Hardware)
	assert.WithinDuration(t, r.CompletedAt, loaded.CompletedAt, time.Second)
	assert.Equal(t, r.Methods[calibstore.MethodKey("List", "Sort")], loaded.Methods[calibstore.MethodKey("List", "Sort")])
}

func TestLoadProfileByID(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)

	r := testRecord()
	require.NoError(t, store.Save(context.Background(), r))

	loaded, err := store.LoadProfile(r.Hardware.ID())
	require.NoError(t, err)
	assert.Equal(t, r.Hardware.ID(), loaded.Hardware.ID())
}

func TestListProfilesEnumeratesSavedFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)

	r1 := testRecord()
	r2 := testRecord()
	r2.Hardware.Machine = "test-bench-02"
	require.NoError(t, store.Save(context.Background(), r1))
	require.NoError(t, store.Save(context.Background(), r2))

	ids, err := store.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestIsRecentRespectsWindow(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), testRecord()))

	recent, err := store.IsRecent(time.Hour)
	require.NoError(t, err)
	assert.True(t, recent)

	stale, err := store.IsRecent(time.Nanosecond)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestSaveRejectsEmptyHardwareProfile(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)

	r := testRecord()
	r.Hardware = hwprofile.Profile{}
	err = store.Save(context.Background(), r)
	assert.Error(t, err)
}

func TestSaveIsAtomicAgainstConcurrentReaders(t *testing.T) {
	dir := t.TempDir()
	store, err := calibstore.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), testRecord()))

	// A reader mid-write sees either the old or the new file content,
	// never a partially-written one, because Save renames a complete
	// temp file into place rather than writing in place.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestEstimateCombinesStoredConstantWithClaimScaling(t *testing.T) {
	r := testRecord()
	d, ok := calibstore.Estimate(r, "List", "Sort", "O(n log n)", 1000)
	require.True(t, ok)
	assert.Greater(t, d, time.Duration(0))
}

func TestEstimateFailsForUnknownMethod(t *testing.T) {
	r := testRecord()
	_, ok := calibstore.Estimate(r, "List", "Reverse", "O(n)", 1000)
	assert.False(t, ok)
}

func TestReportIncludesHardwareAndFailures(t *testing.T) {
	out := calibstore.Report(testRecord())
	assert.Contains(t, out, "Test CPU")
	assert.Contains(t, out, "Failures:")
	assert.Contains(t, out, "benchmark unstable")
}
