package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/notakto/internal/apperror"
)

const NoGrids = 3

var ErrInvalidCell = errors.New("invalid cell index")

// Move addresses one cell of one grid.
type Move struct {
	Grid int `json:"grid"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d:%d,%d", that.Grid, that.Row, that.Col)
}

// Snapshot is the cell content of a board, as kept by the history stacks and the save file.
type Snapshot [NoGrids]Grid

// Board is the three grids together with their liveness flags.
type Board struct {
	Grids [NoGrids]Grid `json:"grids"`
	Dead  [NoGrids]bool `json:"dead"`
}

func NewBoard() Board {
	return Board{}
}

// Clone returns an independent copy. Board holds only arrays, so a value copy is deep.
func (that *Board) Clone() Board {
	return *that
}

// UpdateLiveness marks grids that now hold a line. A dead flag is never cleared here.
func (that *Board) UpdateLiveness() {
	for i := range that.Grids {
		if !that.Dead[i] {
			that.Dead[i] = that.Grids[i].IsDead()
		}
	}
}

// RefreshLiveness recomputes every flag from the cells.
func (that *Board) RefreshLiveness() {
	for i := range that.Grids {
		that.Dead[i] = that.Grids[i].IsDead()
	}
}

func (that *Board) IsFinished() bool {
	that.UpdateLiveness()

	for _, dead := range that.Dead {
		if !dead {
			return false
		}
	}

	return true
}

// DeadCount reports how many grids are flagged dead.
func (that *Board) DeadCount() int {
	count := 0
	for _, dead := range that.Dead {
		if dead {
			count++
		}
	}
	return count
}

func (that *Board) IsValid(move Move) error {
	if move.Grid < 0 || move.Grid >= NoGrids ||
		move.Row < 0 || move.Row >= GridSize ||
		move.Col < 0 || move.Col >= GridSize {
		return fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	if that.Dead[move.Grid] {
		return fmt.Errorf("%w: grid %d is dead", apperror.ErrIllegalMove, move.Grid)
	}

	if that.Grids[move.Grid][move.Row][move.Col] {
		return fmt.Errorf("%w: cell %s is occupied", apperror.ErrIllegalMove, move)
	}

	return nil
}

// Place sets the mark without validation.
func (that *Board) Place(move Move) {
	that.Grids[move.Grid][move.Row][move.Col] = true
}

// EmptyCells lists legal moves in grid, row, column order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, NoGrids*GridCells)
	for g := range that.Grids {
		if that.Dead[g] {
			continue
		}

		for r := range GridSize {
			for c := range GridSize {
				if !that.Grids[g][r][c] {
					moves = append(moves, Move{Grid: g, Row: r, Col: c})
				}
			}
		}
	}
	return moves
}

func (that *Board) Snapshot() Snapshot {
	return Snapshot(that.Grids)
}

// Restore installs the cells of a snapshot and recomputes liveness from scratch.
func (that *Board) Restore(snapshot Snapshot) {
	that.Grids = snapshot
	that.RefreshLiveness()
}
