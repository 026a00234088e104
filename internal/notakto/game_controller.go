package notakto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/rocketscienceinc/notakto/internal/history"
	"github.com/rocketscienceinc/notakto/internal/savefile"
)

// In engine games the engine holds the first seat and the user the second.
const (
	EngineTurn = entity.TurnFirst
	UserTurn   = entity.TurnSecond
)

type moveSelector interface {
	SelectMove(board entity.Board) (entity.Move, error)
}

// Session is one game: the board, whose turn it is and the move history.
type Session struct {
	id       string
	mode     entity.Mode
	turn     entity.Turn
	winner   entity.Turn
	board    entity.Board
	history  *history.History
	selector moveSelector
}

func NewSession(mode entity.Mode, selector moveSelector) *Session {
	session := &Session{
		id:       uuid.NewString(),
		mode:     mode,
		history:  history.New(),
		selector: selector,
	}
	session.Reset(false)

	return session
}

// Reset starts a fresh game in the same mode. In engine games engineFirst gives the engine the opening move.
func (that *Session) Reset(engineFirst bool) {
	that.board = entity.NewBoard()
	that.history.Clear()
	that.winner = 0

	switch {
	case that.mode == entity.ModeVsEngine && !engineFirst:
		that.turn = UserTurn
	default:
		that.turn = entity.TurnFirst
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Mode() entity.Mode {
	return that.mode
}

func (that *Session) Turn() entity.Turn {
	return that.turn
}

// Winner is zero while the game is running.
func (that *Session) Winner() entity.Turn {
	return that.winner
}

// Board returns a copy of the current board.
func (that *Session) Board() entity.Board {
	return that.board
}

func (that *Session) IsFinished() bool {
	return that.board.IsFinished()
}

func (that *Session) IsEngineTurn() bool {
	return that.mode == entity.ModeVsEngine && that.turn == EngineTurn && !that.IsFinished()
}

func (that *Session) CanUndo() bool {
	return that.history.CanUndo()
}

func (that *Session) CanRedo() bool {
	return that.history.CanRedo()
}

func (that *Session) IsValid(move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return that.board.IsValid(move)
}

// PlayMove records the current board, places the mark and passes the turn.
// The player who kills the last grid loses.
func (that *Session) PlayMove(move entity.Move) error {
	if err := that.IsValid(move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.history.RecordMove(that.board)
	that.board.Place(move)
	that.turn = that.turn.Other()
	that.settle()

	return nil
}

// EngineMove lets the engine play when it holds the turn.
func (that *Session) EngineMove() (entity.Move, error) {
	if !that.IsEngineTurn() {
		return entity.Move{}, apperror.ErrNotEngineTurn
	}

	move, err := that.selector.SelectMove(that.board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	if err = that.PlayMove(move); err != nil {
		return entity.Move{}, fmt.Errorf("engine move %s rejected: %w", move, err)
	}

	return move, nil
}

// Undo takes back one move, or in engine games everything back to the user's last turn.
func (that *Session) Undo() error {
	if err := that.undoPly(); err != nil {
		return err
	}

	if that.mode != entity.ModeVsEngine || that.turn == UserTurn {
		return nil
	}

	if err := that.undoPly(); err != nil {
		// the engine opened and the user has nothing to take back
		if redoErr := that.redoPly(); redoErr != nil {
			return fmt.Errorf("failed to roll back undo: %w", redoErr)
		}
		return err
	}

	return nil
}

// Redo replays what Undo took back.
func (that *Session) Redo() error {
	if err := that.redoPly(); err != nil {
		return err
	}

	if that.mode == entity.ModeVsEngine && that.turn == EngineTurn && that.history.CanRedo() {
		return that.redoPly()
	}

	return nil
}

func (that *Session) undoPly() error {
	if err := that.history.Undo(&that.board); err != nil {
		return err
	}

	that.turn = that.turn.Other()
	that.settle()

	return nil
}

func (that *Session) redoPly() error {
	if err := that.history.Redo(&that.board); err != nil {
		return err
	}

	that.turn = that.turn.Other()
	that.settle()

	return nil
}

// settle refreshes the winner: after the losing move the turn has already passed to the winner.
func (that *Session) settle() {
	if that.board.IsFinished() {
		that.winner = that.turn
		return
	}
	that.winner = 0
}

// Record exports the state kept in a save file.
func (that *Session) Record() savefile.Record {
	return savefile.Record{
		Mode:  that.mode,
		Turn:  that.turn,
		Board: that.board,
		Undo:  that.history.UndoStates(),
	}
}

// Apply replaces the whole session state with a decoded record.
func (that *Session) Apply(record savefile.Record) {
	that.mode = record.Mode
	that.turn = record.Turn
	that.board = record.Board
	that.history.Replace(record.Undo)
	that.settle()
}
