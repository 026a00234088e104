package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
)

var errUsage = errors.New("wrong arguments")

// handleNewGame - new [engine|two] [first|second]; the order is the user's seat against the engine.
func (that *Server) handleNewGame(ctx context.Context, args []string) error {
	mode := entity.ModeVsEngine
	engineFirst := false

	for _, arg := range args {
		switch arg {
		case "engine":
			mode = entity.ModeVsEngine
		case "two":
			mode = entity.ModeTwoPlayer
		case "first":
			engineFirst = false
		case "second":
			engineFirst = true
		default:
			return fmt.Errorf("%w: new [engine|two] [first|second]", errUsage)
		}
	}

	if _, err := that.uGame.NewGame(ctx, mode, engineFirst); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printBoard()

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ []string) error {
	if err := that.uGame.Restart(ctx); err != nil {
		return err
	}

	that.printBoard()

	return nil
}

// handlePlay - play <grid> <row> <col>, all counted from 1.
func (that *Server) handlePlay(ctx context.Context, args []string) error {
	move, err := parseMove(args)
	if err != nil {
		return err
	}

	reply, err := that.uGame.PlayMove(ctx, move)
	if err != nil {
		return err
	}

	if reply != nil {
		that.printf("engine plays %s\n", formatMove(*reply))
	}

	that.printBoard()

	return nil
}

func (that *Server) handleUndo(_ context.Context, _ []string) error {
	if err := that.uGame.Undo(); err != nil {
		return err
	}

	that.printBoard()

	return nil
}

func (that *Server) handleRedo(_ context.Context, _ []string) error {
	if err := that.uGame.Redo(); err != nil {
		return err
	}

	that.printBoard()

	return nil
}

func (that *Server) handleSave(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: save <name>", errUsage)
	}

	if err := that.uGame.SaveGame(ctx, args[0]); err != nil {
		return err
	}

	that.printf("saved %s\n", args[0])

	return nil
}

func (that *Server) handleLoad(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load <name>", errUsage)
	}

	if _, err := that.uGame.LoadGame(ctx, args[0]); err != nil {
		return err
	}

	that.printBoard()

	return nil
}

func (that *Server) handleListSaves(ctx context.Context, _ []string) error {
	names, err := that.uGame.ListSaves(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		that.printf("no saves\n")
		return nil
	}

	for _, name := range names {
		that.printf("  %s\n", name)
	}

	return nil
}

func (that *Server) handleStats(ctx context.Context, _ []string) error {
	stats, err := that.uGame.Stats(ctx)
	if err != nil {
		return err
	}

	for _, modeStats := range stats {
		first, second := "player one", "player two"
		if modeStats.Mode == entity.ModeVsEngine {
			first, second = "engine", "you"
		}

		that.printf("%-10s  %s %d : %d %s  (%d games)\n",
			modeStats.Mode, first, modeStats.FirstWins, modeStats.SecondWins, second, modeStats.Total())
	}

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	if that.uGame.Session() == nil {
		return apperror.ErrNoActiveGame
	}

	that.printBoard()

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printHelp()

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

func parseMove(args []string) (entity.Move, error) {
	if len(args) != 3 {
		return entity.Move{}, fmt.Errorf("%w: play <grid> <row> <col>", errUsage)
	}

	var coords [3]int
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return entity.Move{}, fmt.Errorf("%w: %q is not a number", errUsage, arg)
		}
		coords[i] = value - 1
	}

	return entity.Move{Grid: coords[0], Row: coords[1], Col: coords[2]}, nil
}

func formatMove(move entity.Move) string {
	return fmt.Sprintf("%d %d %d", move.Grid+1, move.Row+1, move.Col+1)
}
