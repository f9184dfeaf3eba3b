package trigger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obbycraft/obby/level"
)

func gridWithCheckpoints(t *testing.T, cells ...[2]int) *level.Grid {
	t.Helper()
	g, err := level.New(10, 10, make([]level.Tile, 100))
	require.NoError(t, err)
	for _, c := range cells {
		g.Set(c[0], c[1], level.Tile{Kind: level.Checkpoint})
	}
	return g
}

func TestCheckpointsIndexedInRowMajorOrder(t *testing.T) {
	g := gridWithCheckpoints(t, [2]int{7, 1}, [2]int{2, 4}, [2]int{5, 4})
	s := NewSpace(g, 0.28)

	cps := s.Checkpoints()
	require.Len(t, cps, 3)
	require.Equal(t, 0, cps[0].ID)
	require.Equal(t, [2]int{7, 1}, [2]int{cps[0].CellX, cps[0].CellZ})
	require.Equal(t, [2]int{2, 4}, [2]int{cps[1].CellX, cps[1].CellZ})
	require.Equal(t, [2]int{5, 4}, [2]int{cps[2].CellX, cps[2].CellZ})

	// Respawn point is the cell center at drop-in height.
	require.InDelta(t, 7.5, cps[0].SpawnX, 1e-12)
	require.InDelta(t, 2.0, cps[0].SpawnY, 1e-12)
	require.InDelta(t, 1.5, cps[0].SpawnZ, 1e-12)
}

func TestActiveAtFindsOverlappingCheckpoint(t *testing.T) {
	g := gridWithCheckpoints(t, [2]int{2, 2}, [2]int{6, 2})
	s := NewSpace(g, 0.28)

	cp, ok := s.ActiveAt(2.5, 2.5)
	require.True(t, ok)
	require.Equal(t, 0, cp.ID)

	// Partial footprint overlap from the neighboring cell still counts.
	cp, ok = s.ActiveAt(3.1, 2.5)
	require.True(t, ok)
	require.Equal(t, 0, cp.ID)

	cp, ok = s.ActiveAt(6.4, 2.9)
	require.True(t, ok)
	require.Equal(t, 1, cp.ID)

	_, ok = s.ActiveAt(4.5, 2.5)
	require.False(t, ok)
	_, ok = s.ActiveAt(2.5, 7.5)
	require.False(t, ok)
}

func TestActiveAtPrefersLowestID(t *testing.T) {
	g := gridWithCheckpoints(t, [2]int{2, 2}, [2]int{3, 2})
	s := NewSpace(g, 0.28)

	// Standing on the shared edge overlaps both tiles.
	cp, ok := s.ActiveAt(3.0, 2.5)
	require.True(t, ok)
	require.Equal(t, 0, cp.ID)
}

func TestEmptyCourseHasNoTriggers(t *testing.T) {
	g := gridWithCheckpoints(t)
	s := NewSpace(g, 0.28)

	require.Empty(t, s.Checkpoints())
	_, ok := s.ActiveAt(5, 5)
	require.False(t, ok)
}
