package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/core"
)

// TestTables_Capacity covers Consume bounds and ResetCapacity.
func TestTables_Capacity(t *testing.T) {
	n := mustDiamond(t)
	tb := core.NewTables(n, 1)
	a := mustIndex(t, n, 1, 3)

	require.Equal(t, 3, tb.Remaining(a))
	require.NoError(t, tb.Consume(a, 2))
	require.Equal(t, 1, tb.Remaining(a))

	// Overdraw is refused and leaves the table untouched.
	require.ErrorIs(t, tb.Consume(a, 2), core.ErrCapacityUnderflow)
	require.ErrorIs(t, tb.Consume(a, -1), core.ErrCapacityUnderflow)
	require.Equal(t, 1, tb.Remaining(a))

	require.NoError(t, tb.Consume(a, 1))
	require.Zero(t, tb.Remaining(a))

	tb.ResetCapacity()
	assert.Equal(t, 3, tb.Remaining(a))
}

// TestTables_Pheromone covers seeding, undefined entries and bulk updates.
func TestTables_Pheromone(t *testing.T) {
	n := mustDiamond(t)
	tb := core.NewTables(n, 0.5)
	a := mustIndex(t, n, 1, 3)

	assert.Equal(t, 0.5, tb.Pheromone(a, 1))
	assert.Zero(t, tb.Pheromone(a, 2), "commodity 2 is not carried on 1→3")

	tb.SetPheromone(a, 2, 7)
	assert.Zero(t, tb.Pheromone(a, 2))

	tb.SetPheromone(a, 1, 3)
	assert.Equal(t, 3.0, tb.Pheromone(a, 1))

	visited := 0
	tb.UpdatePheromone(func(arc, commodity int, old float64) float64 {
		visited++
		require.True(t, n.Carries(arc, commodity))
		return old * 2
	})
	assert.Equal(t, len(diamondSpecs()), visited)
	assert.Equal(t, 6.0, tb.Pheromone(a, 1))
	assert.Equal(t, 1.0, tb.Pheromone(mustIndex(t, n, 1, 2), 2))
}

// TestTables_SnapshotAndClone checks that copies are independent.
func TestTables_SnapshotAndClone(t *testing.T) {
	n := mustDiamond(t)
	tb := core.NewTables(n, 1)
	a := mustIndex(t, n, 2, 4)

	before := tb.Snapshot()
	c := tb.Clone()
	require.NoError(t, tb.Consume(a, 4))
	tb.SetPheromone(a, 2, 9)

	if diff := cmp.Diff(before, c.Snapshot()); diff != "" {
		t.Fatalf("clone followed the original (-want +got):\n%s", diff)
	}

	after := tb.Snapshot()
	assert.Equal(t, 2, after.Remaining[core.ArcKey{From: 2, To: 4}])
	assert.Equal(t, 9.0, after.Pheromone[core.PheromoneKey{From: 2, To: 4, Commodity: 2}])
	assert.Equal(t, 6, before.Remaining[core.ArcKey{From: 2, To: 4}])
	assert.Len(t, after.Pheromone, len(diamondSpecs()))
}
