package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/notakto/internal/engine"
	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/rocketscienceinc/notakto/internal/repository"
	"github.com/rocketscienceinc/notakto/internal/usecase"
)

func run(t *testing.T, saveDir, script string) (string, *usecase.GameManager) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger,
		repository.NewFileSaveRepository(saveDir),
		repository.NewMemoryStatsRepository(),
		engine.NewSeededSelector(1),
	)

	var out bytes.Buffer
	server := New(logger, manager, strings.NewReader(script), &out, termenv.WithProfile(termenv.Ascii))

	require.NoError(t, server.Start(context.Background()))

	return out.String(), manager
}

func TestServer_Start(t *testing.T) {
	t.Run("Two-player session", func(t *testing.T) {
		// Given: a script with a legal move, an illegal one and an undo
		script := "new two\nplay 1 1 1\nplay 1 1 1\nundo\nquit\nplay 2 2 2\n"

		// When: running it
		out, manager := run(t, t.TempDir(), script)

		// Then: the illegal move is reported and input after quit is ignored
		assert.Contains(t, out, "illegal move")
		assert.Contains(t, out, "player one to move")
		assert.Equal(t, entity.NewBoard(), manager.Session().Board())
	})

	t.Run("Engine answers", func(t *testing.T) {
		out, manager := run(t, t.TempDir(), "new engine\nplay 3 2 2\n")

		assert.Contains(t, out, "engine plays")
		assert.Contains(t, out, "you to move")
		assert.Equal(t, 2, manager.Session().Board().Grids[0].Marks()+
			manager.Session().Board().Grids[1].Marks()+
			manager.Session().Board().Grids[2].Marks())
	})

	t.Run("Save and load", func(t *testing.T) {
		// Given: a saved game
		dir := t.TempDir()
		_, _ = run(t, dir, "new two\nplay 1 1 1\nsave slot1\n")

		// When: a new console loads it
		out, manager := run(t, dir, "load slot1\nsaves\n")

		// Then: the mark is back and the save is listed
		require.NotNil(t, manager.Session())
		assert.True(t, manager.Session().Board().Grids[0][0][0])
		assert.Contains(t, out, "  slot1\n")
	})

	t.Run("Bad input", func(t *testing.T) {
		out, _ := run(t, t.TempDir(), "dance\nplay 1 x 1\nnew three\nboard\nsave bad-name\n")

		assert.Contains(t, out, `unknown command "dance"`)
		assert.Contains(t, out, `"x" is not a number`)
		assert.Contains(t, out, "new [engine|two] [first|second]")
		assert.Contains(t, out, "no active game")
	})

	t.Run("Stats", func(t *testing.T) {
		out, _ := run(t, t.TempDir(), "stats\n")

		assert.Contains(t, out, "engine 0 : 0 you  (0 games)")
		assert.Contains(t, out, "player one 0 : 0 player two")
	})

	t.Run("Cancel closes a blocked input", func(t *testing.T) {
		// Given: an input that never delivers a line
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		reader, writer := io.Pipe()
		defer writer.Close()
		in := &closeTracker{Reader: reader, closeFn: reader.Close}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- New(logger, nil, in, io.Discard).Start(ctx)
		}()

		// When: the context is canceled
		cancel()

		// Then: Start returns and the input is closed, releasing the reader goroutine
		assert.NoError(t, <-done)
		assert.Eventually(t, in.closed.Load, time.Second, 10*time.Millisecond)
	})

	t.Run("Canceled context", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		server := New(logger, nil, strings.NewReader("help\n"), io.Discard)

		assert.NoError(t, server.Start(ctx))
	})
}

type closeTracker struct {
	io.Reader
	closeFn func() error
	closed  atomic.Bool
}

func (that *closeTracker) Close() error {
	that.closed.Store(true)
	return that.closeFn()
}

func TestRenderBoard(t *testing.T) {
	// Given: a board with a dead first grid
	board := entity.NewBoard()
	board.Grids[0] = entity.MustParseGrid("XXX|...|...")
	board.Grids[2] = entity.MustParseGrid("...|.X.|...")
	board.UpdateLiveness()

	// When: rendering with dead grids bracketed
	out := renderBoard(board, func(s string, dead bool) string {
		if dead {
			return "[" + s + "]"
		}
		return s
	})

	// Then: grids sit side by side
	want := "  1       2       3  \n" +
		"[ XXX ]    ...     ... \n" +
		"[ ... ]    ...     .X. \n" +
		"[ ... ]    ...     ... "
	assert.Equal(t, want, out)
}
