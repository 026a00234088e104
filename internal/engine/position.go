package engine

import (
	"fmt"

	"github.com/rocketscienceinc/notakto/internal/entity"
)

const PositionSlots = 2 * entity.NoGrids

// Position is the value of the whole board: one Pair per grid, in board order.
type Position [PositionSlots]Value

func (that Position) String() string {
	var out []byte
	for i, value := range that {
		if i > 0 && i%2 == 0 {
			out = append(out, ' ')
		}
		out = append(out, value.String()...)
	}
	return string(out)
}

// PositionValue classifies the three grids of a board.
func PositionValue(board entity.Board) (Position, error) {
	var position Position
	for i := range board.Grids {
		pair, err := Classify(board.Grids[i], board.Dead[i])
		if err != nil {
			return Position{}, fmt.Errorf("failed to classify grid %d: %w", i, err)
		}

		position[2*i] = pair[0]
		position[2*i+1] = pair[1]
	}
	return position, nil
}

// IsWinning reports whether the player who just produced this position can force a win.
// Only the classes A to D count; the winning multisets are {a}, {b,b}, {b,c} and {c,c}.
func IsWinning(position Position) bool {
	var count [D + 1]int
	for _, value := range position {
		if value >= A && value <= D {
			count[value]++
		}
	}

	a, b, c, d := count[A], count[B], count[C], count[D]
	if d != 0 {
		return false
	}

	switch {
	case a == 1 && b == 0 && c == 0:
		return true
	case a == 0 && b == 2 && c == 0:
		return true
	case a == 0 && b == 1 && c == 1:
		return true
	case a == 0 && b == 0 && c == 2:
		return true
	default:
		return false
	}
}
