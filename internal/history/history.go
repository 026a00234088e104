package history

import (
	"fmt"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
)

// History keeps the undo and redo stacks of one game.
type History struct {
	undo Stack
	redo Stack
}

func New() *History {
	return &History{}
}

// RecordMove stores the board as it is before a move. Any undone future is dropped.
func (that *History) RecordMove(board entity.Board) {
	that.undo.Push(board)
	that.redo.Clear()
}

func (that *History) Undo(board *entity.Board) error {
	if err := step(&that.undo, &that.redo, board); err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}
	return nil
}

func (that *History) Redo(board *entity.Board) error {
	if err := step(&that.redo, &that.undo, board); err != nil {
		return fmt.Errorf("failed to redo: %w", err)
	}
	return nil
}

// step moves the board one snapshot back along from, saving the current board on to.
func step(from, to *Stack, board *entity.Board) error {
	if from.IsEmpty() {
		return apperror.ErrEmptyHistory
	}

	to.Push(*board)
	from.PeekRestore(board)
	from.Pop()

	return nil
}

func (that *History) CanUndo() bool {
	return !that.undo.IsEmpty()
}

func (that *History) CanRedo() bool {
	return !that.redo.IsEmpty()
}

// UndoStates returns the undo stack oldest first.
func (that *History) UndoStates() []entity.Snapshot {
	return that.undo.Snapshots()
}

// Replace installs an undo stack given oldest first and drops the redo stack.
func (that *History) Replace(undo []entity.Snapshot) {
	that.Clear()
	that.undo.nodes = append(that.undo.nodes, undo...)
}

func (that *History) Clear() {
	that.undo.Clear()
	that.redo.Clear()
}
