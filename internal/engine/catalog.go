package engine

import "github.com/rocketscienceinc/notakto/internal/entity"

// Configuration is a canonical live grid and its value. Every live grid is
// equivalent under Rotations to exactly one configuration with the same mark count.
type Configuration struct {
	Grid  entity.Grid
	Value Pair
}

func config(pattern string, value Pair) Configuration {
	return Configuration{Grid: entity.MustParseGrid(pattern), Value: value}
}

// DeadValue is assigned to every dead grid.
var DeadValue = Pair{One, None}

// MaxLiveMarks is the most marks a grid can hold without a line.
const MaxLiveMarks = 6

// catalog groups the canonical configurations by mark count.
var catalog = [MaxLiveMarks + 1][]Configuration{
	// zero marks
	{
		config("...|...|...", Pair{C, None}),
	},
	// one mark
	{
		config("X..|...|...", Pair{One, None}),
		config(".X.|...|...", Pair{One, None}),
		config("...|.X.|...", Pair{C, C}),
	},
	// two marks
	{
		config("XX.|...|...", Pair{A, D}),
		config("X.X|...|...", Pair{B, None}),
		config("X..|.X.|...", Pair{B, None}),
		config("X..|..X|...", Pair{B, None}),
		config("X..|...|..X", Pair{A, None}),
		config(".X.|X..|...", Pair{A, None}),
		config(".X.|.X.|...", Pair{B, None}),
		config(".X.|...|.X.", Pair{A, None}),
	},
	// three marks
	{
		config("XX.|X..|...", Pair{B, None}),
		config("XX.|.X.|...", Pair{A, B}),
		config("XX.|..X|...", Pair{D, None}),
		config("XX.|...|X..", Pair{A, None}),
		config("XX.|...|.X.", Pair{D, None}),
		config("XX.|...|..X", Pair{D, None}),
		config("X.X|.X.|...", Pair{A, None}),
		config("X.X|...|X..", Pair{A, B}),
		config("X.X|...|.X.", Pair{A, None}),
		config("X..|.XX|...", Pair{A, None}),
		config("X..|..X|.X.", Pair{One, None}),
		config(".X.|XX.|...", Pair{A, B}),
		config(".X.|X.X|...", Pair{B, None}),
	},
	// four marks
	{
		config("XX.|XX.|...", Pair{A, None}),
		config("XX.|X.X|...", Pair{A, None}),
		config("XX.|X..|..X", Pair{A, None}),
		config("XX.|.XX|...", Pair{B, None}),
		config("XX.|.X.|X..", Pair{B, None}),
		config("XX.|..X|X..", Pair{B, None}),
		config("XX.|..X|.X.", Pair{A, B}),
		config("XX.|..X|..X", Pair{A, B}),
		config("XX.|...|XX.", Pair{B, None}),
		config("XX.|...|X.X", Pair{B, None}),
		config("XX.|...|.XX", Pair{A, None}),
		config("X.X|.X.|.X.", Pair{B, None}),
		config("X.X|...|X.X", Pair{A, None}),
		config("X..|.XX|.X.", Pair{B, None}),
		config(".X.|X.X|.X.", Pair{A, None}),
	},
	// five marks
	{
		config("XX.|X.X|.X.", Pair{B, None}),
		config("XX.|X.X|..X", Pair{B, None}),
		config("XX.|.XX|X..", Pair{A, None}),
		config("XX.|..X|XX.", Pair{A, None}),
		config("XX.|..X|X.X", Pair{A, None}),
	},
	// six marks
	{
		config("XX.|X.X|.XX", Pair{A, None}),
	},
}

// Catalog returns the configurations holding the given number of marks.
func Catalog(marks int) []Configuration {
	if marks < 0 || marks > MaxLiveMarks {
		return nil
	}
	return catalog[marks]
}
