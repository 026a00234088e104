package entity

// Mode selects who plays the second seat.
type Mode uint8

const (
	ModeTwoPlayer Mode = 0
	ModeVsEngine  Mode = 1
)

func (that Mode) String() string {
	if that == ModeVsEngine {
		return "engine"
	}
	return "two-player"
}

// Turn is +1 for player one (the engine in engine games) and -1 for player two (the user).
type Turn int8

const (
	TurnFirst  Turn = 1
	TurnSecond Turn = -1
)

func (that Turn) Other() Turn {
	return -that
}

// Stats counts finished games per mode. First/Second follow Turn.
type Stats struct {
	Mode       Mode `json:"mode"`
	FirstWins  int  `json:"first_wins"`
	SecondWins int  `json:"second_wins"`
}

func (that Stats) Total() int {
	return that.FirstWins + that.SecondWins
}
