package engine

import (
	"fmt"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
)

// Classify returns the value of a grid. Dead grids are not looked up.
func Classify(grid entity.Grid, dead bool) (Pair, error) {
	if dead {
		return DeadValue, nil
	}

	marks := grid.Marks()
	configs := Catalog(marks)

	switch {
	case len(configs) == 0:
		return Pair{}, fmt.Errorf("%w: %s has %d marks", apperror.ErrClassificationGap, grid, marks)
	case grid.IsDead():
		return Pair{}, fmt.Errorf("%w: %s holds a line but is flagged alive", apperror.ErrClassificationGap, grid)
	// empty and six-mark grids have a single class
	case marks == 0, marks == MaxLiveMarks:
		return configs[0].Value, nil
	}

	for _, conf := range configs {
		if equivalent(grid, conf.Grid) {
			return conf.Value, nil
		}
	}

	return Pair{}, fmt.Errorf("%w: %s", apperror.ErrClassificationGap, grid)
}
