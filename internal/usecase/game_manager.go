package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/rocketscienceinc/notakto/internal/notakto"
	"github.com/rocketscienceinc/notakto/internal/repository"
	"github.com/rocketscienceinc/notakto/internal/savefile"
)

type saveRepo interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

type statsRepo interface {
	RecordWin(ctx context.Context, mode entity.Mode, winner entity.Turn) error
	Get(ctx context.Context, mode entity.Mode) (entity.Stats, error)
}

type moveSelector interface {
	SelectMove(board entity.Board) (entity.Move, error)
}

// GameManager owns the active session and connects it to saves and statistics.
type GameManager struct {
	logger *slog.Logger

	saveRepo  saveRepo
	statsRepo statsRepo
	selector  moveSelector

	session     *notakto.Session
	engineFirst bool
	scored      bool
}

func NewGameManager(logger *slog.Logger, saveRepo saveRepo, statsRepo statsRepo, selector moveSelector) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		saveRepo:  saveRepo,
		statsRepo: statsRepo,
		selector:  selector,
	}
}

// Session is nil until the first NewGame or LoadGame.
func (that *GameManager) Session() *notakto.Session {
	return that.session
}

// NewGame replaces the active session. In engine games the engine opens when engineFirst is set.
func (that *GameManager) NewGame(ctx context.Context, mode entity.Mode, engineFirst bool) (*notakto.Session, error) {
	session := notakto.NewSession(mode, that.selector)
	session.Reset(engineFirst)

	that.session = session
	that.engineFirst = engineFirst
	that.scored = false

	log := that.log("NewGame")
	log.Info("game started", "mode", mode.String(), "engine_first", engineFirst)

	if _, err := that.replyIfEngineTurn(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

// Restart begins a new game with the same mode and playing order.
func (that *GameManager) Restart(ctx context.Context) error {
	if that.session == nil {
		return apperror.ErrNoActiveGame
	}

	if _, err := that.NewGame(ctx, that.session.Mode(), that.engineFirst); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return nil
}

func (that *GameManager) IsValid(move entity.Move) error {
	if that.session == nil {
		return apperror.ErrNoActiveGame
	}

	return that.session.IsValid(move)
}

func (that *GameManager) IsFinished() bool {
	return that.session != nil && that.session.IsFinished()
}

// PlayMove plays a user move. In engine games the engine answers at once and its move is returned.
func (that *GameManager) PlayMove(ctx context.Context, move entity.Move) (*entity.Move, error) {
	if that.session == nil {
		return nil, apperror.ErrNoActiveGame
	}

	log := that.log("PlayMove")

	// the engine seat stays taken after a failed reply until EngineMove succeeds
	if that.session.IsEngineTurn() {
		return nil, apperror.ErrNotUserTurn
	}

	if err := that.session.PlayMove(move); err != nil {
		log.Debug("move rejected", "move", move.String(), "error", err)
		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	log.Debug("move played", "move", move.String())
	that.scoreIfFinished(ctx)

	return that.replyIfEngineTurn(ctx)
}

// EngineMove lets the engine play when it holds the turn.
func (that *GameManager) EngineMove(ctx context.Context) (entity.Move, error) {
	if that.session == nil {
		return entity.Move{}, apperror.ErrNoActiveGame
	}

	move, err := that.session.EngineMove()
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to play engine move: %w", err)
	}

	that.log("EngineMove").Debug("engine played", "move", move.String())
	that.scoreIfFinished(ctx)

	return move, nil
}

func (that *GameManager) Undo() error {
	if that.session == nil {
		return apperror.ErrNoActiveGame
	}

	if err := that.session.Undo(); err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}

	return nil
}

func (that *GameManager) Redo() error {
	if that.session == nil {
		return apperror.ErrNoActiveGame
	}

	if err := that.session.Redo(); err != nil {
		return fmt.Errorf("failed to redo: %w", err)
	}

	return nil
}

// SaveGame writes the session, undo history included, under name.
func (that *GameManager) SaveGame(ctx context.Context, name string) error {
	if that.session == nil {
		return apperror.ErrNoActiveGame
	}

	if err := repository.ValidateSaveName(name); err != nil {
		return err
	}

	if err := that.saveRepo.Save(ctx, name, savefile.Encode(that.session.Record())); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	that.log("SaveGame").Info("game saved", "name", name)

	return nil
}

// LoadGame replaces the session with a saved one. Nothing changes unless the whole load succeeds.
// A loaded engine game resumes on the user's turn: if the engine was to move it plays first.
func (that *GameManager) LoadGame(ctx context.Context, name string) (*notakto.Session, error) {
	log := that.logger.With("method", "LoadGame", "name", name)

	data, err := that.saveRepo.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	record, err := savefile.Decode(data)
	if err != nil {
		log.Warn("save rejected", "error", err)
		return nil, fmt.Errorf("failed to decode save %s: %w", name, err)
	}

	session := notakto.NewSession(record.Mode, that.selector)
	session.Apply(record)

	if session.IsEngineTurn() {
		if _, err = session.EngineMove(); err != nil {
			return nil, fmt.Errorf("failed to resume loaded game: %w", err)
		}
	}

	that.session = session
	that.engineFirst = false
	that.scored = session.IsFinished()

	log.Info("game loaded", "session", session.ID(), "mode", session.Mode().String())

	return session, nil
}

func (that *GameManager) ListSaves(ctx context.Context) ([]string, error) {
	names, err := that.saveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	return names, nil
}

// Stats returns the counters of both modes, engine games first.
func (that *GameManager) Stats(ctx context.Context) ([]entity.Stats, error) {
	modes := []entity.Mode{entity.ModeVsEngine, entity.ModeTwoPlayer}

	stats := make([]entity.Stats, 0, len(modes))
	for _, mode := range modes {
		modeStats, err := that.statsRepo.Get(ctx, mode)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s stats: %w", mode, err)
		}
		stats = append(stats, modeStats)
	}

	return stats, nil
}

func (that *GameManager) replyIfEngineTurn(ctx context.Context) (*entity.Move, error) {
	if !that.session.IsEngineTurn() {
		return nil, nil //nolint: nilnil // no reply is due
	}

	move, err := that.EngineMove(ctx)
	if err != nil {
		return nil, err
	}

	return &move, nil
}

// scoreIfFinished counts each game once, even when undo and redo cross its end again.
func (that *GameManager) scoreIfFinished(ctx context.Context) {
	if that.scored || !that.session.IsFinished() {
		return
	}
	that.scored = true

	log := that.log("scoreIfFinished")
	log.Info("game finished", "mode", that.session.Mode().String(), "winner", int(that.session.Winner()))

	if err := that.statsRepo.RecordWin(ctx, that.session.Mode(), that.session.Winner()); err != nil {
		log.Error("failed to record win", "error", err)
	}
}

func (that *GameManager) log(method string) *slog.Logger {
	return that.logger.With("method", method, "session", that.session.ID())
}
