package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/notakto/internal/entity"
	"github.com/rocketscienceinc/notakto/internal/notakto"
)

const helpText = `commands:
  new [engine|two] [first|second]   start a game
  play <grid> <row> <col>           place a mark, counted from 1
  undo | redo                       step through the history
  save <name> | load <name> | saves
  restart | board | stats | help | quit`

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) prompt() {
	that.printf("%s ", that.out.String(">").Bold())
}

func (that *Server) printHelp() {
	that.printf("%s\n", helpText)
}

func (that *Server) printError(err error) {
	that.printf("%s\n", that.out.String("error: "+err.Error()).Foreground(that.out.Color("1")))
}

func (that *Server) printBoard() {
	session := that.uGame.Session()
	if session == nil {
		return
	}

	that.printf("%s\n", renderBoard(session.Board(), func(s string, dead bool) string {
		if dead {
			return that.out.String(s).Faint().String()
		}
		return s
	}))
	that.printf("%s\n", that.status(session))
}

// renderBoard lays the grids side by side; style marks up the cells of each grid.
func renderBoard(board entity.Board, style func(s string, dead bool) string) string {
	var sb strings.Builder

	for g := range entity.NoGrids {
		if g > 0 {
			sb.WriteString("   ")
		}
		fmt.Fprintf(&sb, "  %d  ", g+1)
	}
	sb.WriteByte('\n')

	for r := range entity.GridSize {
		for g := range entity.NoGrids {
			if g > 0 {
				sb.WriteString("   ")
			}

			row := make([]byte, 0, entity.GridSize)
			for c := range entity.GridSize {
				cell := byte(entity.EmptyCell)
				if board.Grids[g][r][c] {
					cell = entity.MarkCell
				}
				row = append(row, cell)
			}
			sb.WriteString(style(" "+string(row)+" ", board.Dead[g]))
		}
		if r < entity.GridSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (that *Server) status(session *notakto.Session) string {
	if session.IsFinished() {
		return "game over: " + that.out.String(seatName(session, session.Winner())+" won").Bold().String()
	}

	return seatName(session, session.Turn()) + " to move"
}

func seatName(session *notakto.Session, turn entity.Turn) string {
	if session.Mode() == entity.ModeVsEngine {
		if turn == notakto.EngineTurn {
			return "engine"
		}
		return "you"
	}

	if turn == entity.TurnFirst {
		return "player one"
	}
	return "player two"
}
