package hwprofile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/complexo-io/complexo/hwprofile"
)

func TestIDIsStableForIdenticalProfiles(t *testing.T) {
	captured := time.Date(2026, 7, 30, 14, 0, 0, 0, time.UTC)
	a := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: captured}
	b := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: captured}
	assert.Equal(t, a.ID(), b.ID())
}

func TestIDIsStableWithinTheSameDay(t *testing.T) {
	morning := time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 7, 30, 22, 0, 0, 0, time.UTC)
	a := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: morning}
	b := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: evening}
	assert.Equal(t, a.ID(), b.ID())
}

func TestIDDiffersForDifferentProfiles(t *testing.T) {
	captured := time.Date(2026, 7, 30, 14, 0, 0, 0, time.UTC)
	a := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: captured}
	b := hwprofile.Profile{Machine: "build-02", CPUCount: 8, CapturedAt: captured}
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestIDDiffersAcrossDays(t *testing.T) {
	a := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: time.Date(2026, 7, 30, 23, 59, 0, 0, time.UTC)}
	b := hwprofile.Profile{Machine: "build-01", CPUCount: 16, CapturedAt: time.Date(2026, 7, 31, 0, 1, 0, 0, time.UTC)}
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestIDIsFilesystemSafe(t *testing.T) {
	p := hwprofile.Profile{Machine: "weird/host\\name", CPUCount: 1, CapturedAt: time.Now()}
	id := p.ID()
	for _, r := range id {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'))
	}
}
