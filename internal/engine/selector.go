package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/notakto/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Selector picks engine moves: a forced win when one exists, otherwise a random move
// that does not kill the last live grid.
type Selector struct {
	newRand func() *rand.Rand
}

// NewSelector reseeds from the clock on every selection.
func NewSelector() *Selector {
	return &Selector{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
		},
	}
}

// NewSeededSelector shares one deterministic source across selections.
func NewSeededSelector(seed int64) *Selector {
	rnd := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok

	return &Selector{
		newRand: func() *rand.Rand {
			return rnd
		},
	}
}

// SelectMove evaluates every legal move on a scratch copy and leaves board untouched.
func (that *Selector) SelectMove(board entity.Board) (entity.Move, error) {
	board.UpdateLiveness()

	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		return entity.Move{}, ErrNoAvailableMoves
	}

	var safe, losing []entity.Move
	for _, move := range candidates {
		scratch := board.Clone()
		othersDead := scratch.DeadCount() == entity.NoGrids-1

		scratch.Place(move)
		scratch.UpdateLiveness()

		position, err := PositionValue(scratch)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to evaluate move %s: %w", move, err)
		}

		if IsWinning(position) {
			return move, nil
		}

		if othersDead && scratch.Dead[move.Grid] {
			losing = append(losing, move)
		} else {
			safe = append(safe, move)
		}
	}

	rnd := that.newRand()
	if len(safe) > 0 {
		return safe[rnd.Intn(len(safe))], nil
	}

	return losing[rnd.Intn(len(losing))], nil
}

// ChooseMove selects a move and plays it on board.
func (that *Selector) ChooseMove(board *entity.Board) (entity.Move, error) {
	move, err := that.SelectMove(*board)
	if err != nil {
		return entity.Move{}, err
	}

	board.Place(move)
	board.UpdateLiveness()

	return move, nil
}
