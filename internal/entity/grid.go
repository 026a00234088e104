package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	GridSize  = 3
	GridCells = GridSize * GridSize

	MarkCell  = 'X'
	EmptyCell = '.'
)

var (
	ErrInvalidGrid = errors.New("invalid grid pattern")

	// WinCombos lists every line of three as (row, col) pairs.
	WinCombos = [][3][2]int{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{2, 0}, {1, 1}, {0, 2}},
	}
)

// Grid is one 3x3 sub-board. A true cell holds a mark.
type Grid [GridSize][GridSize]bool

// ParseGrid reads a grid from row strings. Rows may be passed separately or joined with '|'.
// 'X', 'x' and '1' are marks; '.', '0', '_' and ' ' are empty.
func ParseGrid(rows ...string) (Grid, error) {
	var grid Grid

	if len(rows) == 1 {
		rows = strings.Split(rows[0], "|")
	}

	if len(rows) != GridSize {
		return grid, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidGrid, GridSize, len(rows))
	}

	for r, row := range rows {
		if len(row) != GridSize {
			return grid, fmt.Errorf("%w: row %d has %d cells", ErrInvalidGrid, r, len(row))
		}

		for c := range GridSize {
			switch row[c] {
			case 'X', 'x', '1':
				grid[r][c] = true
			case '.', '0', '_', ' ':
			default:
				return grid, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidGrid, row[c], r, c)
			}
		}
	}

	return grid, nil
}

// MustParseGrid is ParseGrid for constant input.
func MustParseGrid(rows ...string) Grid {
	grid, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return grid
}

func (that Grid) Marks() int {
	count := 0
	for r := range GridSize {
		for c := range GridSize {
			if that[r][c] {
				count++
			}
		}
	}
	return count
}

// IsDead reports whether some row, column or diagonal is fully marked.
func (that Grid) IsDead() bool {
	for _, combo := range WinCombos {
		if that[combo[0][0]][combo[0][1]] && that[combo[1][0]][combo[1][1]] && that[combo[2][0]][combo[2][1]] {
			return true
		}
	}
	return false
}

func (that Grid) String() string {
	var sb strings.Builder
	for r := range GridSize {
		if r > 0 {
			sb.WriteByte('|')
		}
		for c := range GridSize {
			if that[r][c] {
				sb.WriteByte(MarkCell)
			} else {
				sb.WriteByte(EmptyCell)
			}
		}
	}
	return sb.String()
}
