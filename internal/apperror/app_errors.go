package apperror

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrEmptyHistory      = errors.New("nothing to undo or redo")
	ErrCorruptSaveFile   = errors.New("corrupt save file")
	ErrSaveFileNotFound  = errors.New("save file not found")
	ErrInvalidSaveName   = errors.New("save name must be alphanumeric")
	ErrClassificationGap = errors.New("grid matches no catalog configuration")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotEngineTurn     = errors.New("it's not the engine's turn")
	ErrNotUserTurn       = errors.New("it's not the user's turn")
	ErrNoActiveGame      = errors.New("no active game")
)
