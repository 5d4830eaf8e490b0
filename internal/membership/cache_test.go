package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

func TestClassify(t *testing.T) {
	cache := New(42, []int64{5}, []int64{9})

	assert.Equal(t, Pending, cache.Classify(5))
	assert.Equal(t, Approved, cache.Classify(9))
	assert.Equal(t, Invitable, cache.Classify(7))
}

func TestClassifyIsExhaustiveAndExclusive(t *testing.T) {
	cache := New(1, []int64{1, 2, 3}, []int64{4, 5, 6})

	for id := int64(-2); id < 10; id++ {
		status := cache.Classify(id)
		matches := 0
		for _, s := range []Status{Invitable, Pending, Approved} {
			if status == s {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "user %d", id)
	}
}

func TestClassifyPrefersApprovedOnOverlap(t *testing.T) {
	cache := New(1, []int64{3}, []int64{3})

	assert.Equal(t, Approved, cache.Classify(3))
	assert.Equal(t, []int64{3}, cache.Overlap())
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "member", Approved.String())
	assert.Equal(t, "awaiting", Pending.String())
	assert.Equal(t, "invite", Invitable.String())
}

func TestProjectIDDefaults(t *testing.T) {
	assert.Equal(t, DefaultProjectID, New(0, nil, nil).ProjectID())
	assert.Equal(t, int64(8), New(8, nil, nil).ProjectID())
}

func TestFromSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *pagestate.Snapshot
		fallback int64
		want     int64
	}{
		{"snapshot project wins", &pagestate.Snapshot{ProjectID: 42}, 3, 42},
		{"fallback when snapshot has none", &pagestate.Snapshot{}, 3, 3},
		{"default when neither", &pagestate.Snapshot{}, 0, DefaultProjectID},
		{"nil snapshot", nil, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromSnapshot(tt.snapshot, tt.fallback).ProjectID())
		})
	}
}
