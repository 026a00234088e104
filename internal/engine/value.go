package engine

// Value is the symbolic game value of a grid slot. None and One are plain counts,
// A to D are the named classes.
type Value uint8

const (
	None Value = iota
	One
	A
	B
	C
	D
)

func (that Value) String() string {
	switch that {
	case None:
		return "0"
	case One:
		return "1"
	case A:
		return "a"
	case B:
		return "b"
	case C:
		return "c"
	case D:
		return "d"
	default:
		return "?"
	}
}

// Pair is the two-slot value of one grid.
type Pair [2]Value

func (that Pair) String() string {
	return that[0].String() + that[1].String()
}
