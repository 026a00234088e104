package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/rocketscienceinc/notakto/internal/notakto"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(ctx context.Context, mode entity.Mode, engineFirst bool) (*notakto.Session, error)
	Restart(ctx context.Context) error
	PlayMove(ctx context.Context, move entity.Move) (*entity.Move, error)
	Undo() error
	Redo() error
	SaveGame(ctx context.Context, name string) error
	LoadGame(ctx context.Context, name string) (*notakto.Session, error)
	ListSaves(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) ([]entity.Stats, error)
	Session() *notakto.Session
}

type handler func(ctx context.Context, args []string) error

// Server reads one command per line and answers with the board after every change.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out *termenv.Output

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		in:  in,
		out: termenv.NewOutput(out, opts...),

		handlers: make(map[string]handler),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["restart"] = server.handleRestart
	server.handlers["play"] = server.handlePlay
	server.handlers["undo"] = server.handleUndo
	server.handlers["redo"] = server.handleRedo
	server.handlers["save"] = server.handleSave
	server.handlers["load"] = server.handleLoad
	server.handlers["saves"] = server.handleListSaves
	server.handlers["stats"] = server.handleStats
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - serves commands until quit, end of input or ctx is canceled.
// On cancellation an input that is an io.Closer is closed so the reader goroutine returns.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if closer, ok := that.in.(io.Closer); ok {
		context.AfterFunc(ctx, func() {
			if err := closer.Close(); err != nil {
				log.Debug("failed to close input", "error", err)
			}
		})
	}

	that.printHelp()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			err := that.dispatch(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				log.Debug("command failed", "line", line, "error", err)
				that.printError(err)
			}
		}
	}
}

func (that *Server) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	handle, ok := that.handlers[fields[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, type help", fields[0])
	}

	return handle(ctx, fields[1:])
}
