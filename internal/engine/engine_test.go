package engine

import (
	"testing"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveGrids enumerates every grid without a line.
func liveGrids() []entity.Grid {
	var grids []entity.Grid
	for bits := range 1 << entity.GridCells {
		var grid entity.Grid
		for i := range entity.GridCells {
			grid[i/entity.GridSize][i%entity.GridSize] = bits&(1<<i) != 0
		}
		if !grid.IsDead() {
			grids = append(grids, grid)
		}
	}
	return grids
}

func TestRotations(t *testing.T) {
	t.Run("Identity comes first", func(t *testing.T) {
		grid := entity.MustParseGrid("XX.|..X|...")
		assert.Equal(t, grid, Rotations(grid)[0])
	})

	t.Run("Asymmetric grid has eight distinct images", func(t *testing.T) {
		// Given: a grid with no symmetry of its own
		grid := entity.MustParseGrid("XX.|..X|...")

		// When: producing its images
		images := Rotations(grid)

		// Then: all eight should differ and keep the mark count
		seen := make(map[entity.Grid]struct{})
		for _, image := range images {
			seen[image] = struct{}{}
			assert.Equal(t, 3, image.Marks())
		}
		assert.Len(t, seen, NoRotations)
	})

	t.Run("Center mark is fixed by every symmetry", func(t *testing.T) {
		grid := entity.MustParseGrid("...|.X.|...")
		for _, image := range Rotations(grid) {
			assert.Equal(t, grid, image)
		}
	})

	t.Run("Images are closed under the group", func(t *testing.T) {
		// Given: the images of a grid
		grid := entity.MustParseGrid("X..|..X|.X.")
		images := Rotations(grid)

		// Then: every image generates the same set
		want := make(map[entity.Grid]struct{})
		for _, image := range images {
			want[image] = struct{}{}
		}
		for _, image := range images {
			got := make(map[entity.Grid]struct{})
			for _, again := range Rotations(image) {
				got[again] = struct{}{}
			}
			assert.Equal(t, want, got)
		}
	})
}

func TestCatalog(t *testing.T) {
	t.Run("Entry counts per mark count", func(t *testing.T) {
		want := []int{1, 3, 8, 13, 15, 5, 1}
		for marks, count := range want {
			assert.Len(t, Catalog(marks), count, "marks %d", marks)
		}
		assert.Nil(t, Catalog(7))
		assert.Nil(t, Catalog(-1))
	})

	t.Run("Entries are live and hold their mark count", func(t *testing.T) {
		for marks := range MaxLiveMarks + 1 {
			for _, conf := range Catalog(marks) {
				assert.False(t, conf.Grid.IsDead(), conf.Grid.String())
				assert.Equal(t, marks, conf.Grid.Marks(), conf.Grid.String())
			}
		}
	})
}

func TestClassify(t *testing.T) {
	t.Run("Every image of a configuration has its value", func(t *testing.T) {
		for marks := range MaxLiveMarks + 1 {
			for _, conf := range Catalog(marks) {
				for _, image := range Rotations(conf.Grid) {
					// When: classifying a symmetric image
					value, err := Classify(image, false)

					// Then: the configuration's value comes back
					require.NoError(t, err, image.String())
					assert.Equal(t, conf.Value, value, image.String())
				}
			}
		}
	})

	t.Run("Every live grid is classified", func(t *testing.T) {
		// Given: all 230 line-free grids
		grids := liveGrids()
		require.Len(t, grids, 230)

		for _, grid := range grids {
			// When: classifying
			_, err := Classify(grid, false)

			// Then: no grid falls through the catalog
			require.NoError(t, err, grid.String())
		}
	})

	t.Run("Dead grids ignore their content", func(t *testing.T) {
		for _, pattern := range []string{"XXX|...|...", "...|...|...", "XX.|X.X|.XX"} {
			value, err := Classify(entity.MustParseGrid(pattern), true)
			require.NoError(t, err)
			assert.Equal(t, DeadValue, value)
		}
	})

	t.Run("Known values", func(t *testing.T) {
		cases := map[string]Pair{
			"...|...|...": {C, None},
			"...|.X.|...": {C, C},
			"..X|...|...": {One, None},
			".XX|...|...": {A, D},
			"...|...|X.X": {B, None},
			"X.X|.X.|.X.": {B, None},
			".XX|X.X|XX.": {A, None},
		}
		for pattern, want := range cases {
			value, err := Classify(entity.MustParseGrid(pattern), false)
			require.NoError(t, err, pattern)
			assert.Equal(t, want, value, pattern)
		}
	})

	t.Run("Unreachable live grid is reported", func(t *testing.T) {
		// Given: seven marks flagged as alive
		grid := entity.MustParseGrid("XXX|XX.|XX.")

		// When: classifying
		_, err := Classify(grid, false)

		// Then: a classification gap is returned rather than a guess
		require.ErrorIs(t, err, apperror.ErrClassificationGap)
		assert.Contains(t, err.Error(), grid.String())
	})

	t.Run("Grid with a line flagged alive is reported", func(t *testing.T) {
		for _, pattern := range []string{"XXX|XXX|...", "X..|X..|X..", "XX.|.X.|..X"} {
			// Given: a stale liveness flag on a grid holding a line
			grid := entity.MustParseGrid(pattern)

			// When: classifying it as alive
			_, err := Classify(grid, false)

			// Then: the stale flag surfaces as a gap instead of a value
			require.ErrorIs(t, err, apperror.ErrClassificationGap, pattern)
			assert.Contains(t, err.Error(), "flagged alive", pattern)
		}
	})

	t.Run("Six-mark live grid takes its single class", func(t *testing.T) {
		value, err := Classify(entity.MustParseGrid("XX.|X.X|.XX"), false)

		require.NoError(t, err)
		assert.Equal(t, Catalog(MaxLiveMarks)[0].Value, value)
	})
}

func TestPositionValue(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: evaluating
		position, err := PositionValue(board)

		// Then: three empty grids give three c's, which is not winning
		require.NoError(t, err)
		assert.Equal(t, Position{C, None, C, None, C, None}, position)
		assert.Equal(t, "c0 c0 c0", position.String())
		assert.False(t, IsWinning(position))
	})

	t.Run("Two dead grids and a single mark", func(t *testing.T) {
		// Given: two dead grids and one corner mark
		board := entity.NewBoard()
		board.Grids[0] = entity.MustParseGrid("XXX|...|...")
		board.Grids[1] = entity.MustParseGrid("X..|X..|X..")
		board.Grids[2] = entity.MustParseGrid("X..|...|...")
		board.UpdateLiveness()

		// When: evaluating
		position, err := PositionValue(board)

		// Then: only informational slots remain
		require.NoError(t, err)
		assert.Equal(t, Position{One, None, One, None, One, None}, position)
		assert.False(t, IsWinning(position))
	})

	t.Run("Gap is propagated with the grid index", func(t *testing.T) {
		board := entity.NewBoard()
		board.Grids[1] = entity.MustParseGrid("XXX|XX.|XX.")

		_, err := PositionValue(board)

		require.ErrorIs(t, err, apperror.ErrClassificationGap)
		assert.Contains(t, err.Error(), "grid 1")
	})
}

func TestIsWinning(t *testing.T) {
	cases := []struct {
		name     string
		position Position
		want     bool
	}{
		{"single a", Position{A, None, One, None, One, None}, true},
		{"two b", Position{B, None, B, None, One, None}, true},
		{"b and c", Position{C, None, One, None, B, None}, true},
		{"two c", Position{C, None, C, None, One, None}, true},
		{"two c in one grid", Position{C, C, One, None, One, None}, true},
		{"three c", Position{C, None, C, None, C, None}, false},
		{"a with d", Position{A, D, One, None, One, None}, false},
		{"two a", Position{A, None, A, None, One, None}, false},
		{"a and b", Position{A, B, One, None, One, None}, false},
		{"single b", Position{B, None, One, None, One, None}, false},
		{"single c", Position{C, None, One, None, One, None}, false},
		{"only counts", Position{One, None, One, None, One, None}, false},
		{"three b", Position{B, None, B, None, B, None}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsWinning(tc.position))
		})
	}
}

// endgame builds a board with two dead grids and the given last grid.
func endgame(pattern string) entity.Board {
	board := entity.NewBoard()
	board.Grids[0] = entity.MustParseGrid("XXX|...|...")
	board.Grids[1] = entity.MustParseGrid("X..|X..|X..")
	board.Grids[2] = entity.MustParseGrid(pattern)
	board.UpdateLiveness()
	return board
}

func TestSelector_SelectMove(t *testing.T) {
	t.Run("Opening move is the first forced win", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: selecting a move
		move, err := NewSelector().SelectMove(board)

		// Then: a corner of the first grid leaves {c,c}
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Grid: 0, Row: 0, Col: 0}, move)
	})

	t.Run("Finds the opposite corner", func(t *testing.T) {
		// Given: two dead grids and a corner mark on the last one
		board := endgame("X..|...|...")

		// When: selecting a move
		move, err := NewSelector().SelectMove(board)

		// Then: the opposite corner gives {a}
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Grid: 2, Row: 2, Col: 2}, move)
	})

	t.Run("First win in enumeration order", func(t *testing.T) {
		// Given: an edge mark, which has three winning replies
		board := endgame(".X.|...|...")

		// When: selecting a move
		move, err := NewSelector().SelectMove(board)

		// Then: the earliest one is taken
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Grid: 2, Row: 1, Col: 0}, move)
	})

	t.Run("Avoids sealing its own defeat", func(t *testing.T) {
		// Given: a last grid where three moves complete a line and none wins
		board := endgame("...|.X.|X.X")
		safe := []entity.Move{
			{Grid: 2, Row: 0, Col: 1},
			{Grid: 2, Row: 1, Col: 0},
			{Grid: 2, Row: 1, Col: 2},
		}

		for seed := range int64(50) {
			// When: selecting with different seeds
			move, err := NewSeededSelector(seed).SelectMove(board)

			// Then: only non-losing moves are picked
			require.NoError(t, err)
			assert.Contains(t, safe, move)
		}
	})

	t.Run("Every move loses", func(t *testing.T) {
		// Given: a six-mark last grid where each free cell completes a line
		board := endgame("XX.|X.X|.XX")
		losing := []entity.Move{
			{Grid: 2, Row: 0, Col: 2},
			{Grid: 2, Row: 1, Col: 1},
			{Grid: 2, Row: 2, Col: 0},
		}

		// When: selecting a move
		move, err := NewSelector().SelectMove(board)

		// Then: one of the forced losses is played
		require.NoError(t, err)
		assert.Contains(t, losing, move)
	})

	t.Run("Board is not mutated", func(t *testing.T) {
		// Given: a position
		board := endgame("...|.X.|...")
		before := board

		// When: selecting a move
		_, err := NewSelector().SelectMove(board)

		// Then: the caller's board is unchanged
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Same seed, same choice", func(t *testing.T) {
		board := endgame("...|.X.|...")

		first, err := NewSeededSelector(7).SelectMove(board)
		require.NoError(t, err)
		second, err := NewSeededSelector(7).SelectMove(board)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("No moves on a finished board", func(t *testing.T) {
		board := endgame("XXX|...|...")

		_, err := NewSelector().SelectMove(board)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestSelector_ChooseMove(t *testing.T) {
	// Given: two dead grids and a corner mark
	board := endgame("X..|...|...")

	// When: the engine plays
	move, err := NewSelector().ChooseMove(&board)

	// Then: the mark is on the board and the position is winning for the engine
	require.NoError(t, err)
	assert.True(t, board.Grids[move.Grid][move.Row][move.Col])

	position, err := PositionValue(board)
	require.NoError(t, err)
	assert.True(t, IsWinning(position))
}
