package savefile

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/notakto/internal/apperror"
	"github.com/rocketscienceinc/notakto/internal/entity"
)

const (
	HeaderSize = 5
	BoardSize  = entity.NoGrids * entity.GridCells

	offsetMode = 0
	offsetTurn = 1
	offsetDead = 2
)

// Record is everything a save file holds. Undo is ordered oldest first.
type Record struct {
	Mode  entity.Mode
	Turn  entity.Turn
	Board entity.Board
	Undo  []entity.Snapshot
}

// Encode lays out mode, turn, dead flags, the live board and the undo snapshots,
// one byte per field.
func Encode(record Record) []byte {
	data := make([]byte, HeaderSize, HeaderSize+BoardSize*(1+len(record.Undo)))

	data[offsetMode] = bit(record.Mode == entity.ModeVsEngine)
	data[offsetTurn] = bit(record.Turn == entity.TurnFirst)
	for i, dead := range record.Board.Dead {
		data[offsetDead+i] = bit(dead)
	}

	data = appendSnapshot(data, record.Board.Snapshot())
	for _, snapshot := range record.Undo {
		data = appendSnapshot(data, snapshot)
	}

	return data
}

// Decode validates the whole stream before building a record.
func Decode(data []byte) (Record, error) {
	if len(data) < HeaderSize+BoardSize || (len(data)-HeaderSize)%BoardSize != 0 {
		return Record{}, fmt.Errorf("%w: unexpected length %d", apperror.ErrCorruptSaveFile, len(data))
	}

	for i, b := range data {
		if b > 1 {
			return Record{}, fmt.Errorf("%w: byte %d has value %d", apperror.ErrCorruptSaveFile, i, b)
		}
	}

	record := Record{
		Mode: entity.ModeTwoPlayer,
		Turn: entity.TurnSecond,
	}
	if data[offsetMode] == 1 {
		record.Mode = entity.ModeVsEngine
	}
	if data[offsetTurn] != 0 {
		record.Turn = entity.TurnFirst
	}
	for i := range record.Board.Dead {
		record.Board.Dead[i] = data[offsetDead+i] == 1
	}

	groups := data[HeaderSize:]
	record.Board.Grids = readSnapshot(groups[:BoardSize])

	nodes := len(groups)/BoardSize - 1
	if nodes > 0 {
		record.Undo = make([]entity.Snapshot, 0, nodes)
	}
	for offset := BoardSize; offset < len(groups); offset += BoardSize {
		record.Undo = append(record.Undo, readSnapshot(groups[offset:offset+BoardSize]))
	}

	return record, nil
}

func Write(w io.Writer, record Record) error {
	if _, err := w.Write(Encode(record)); err != nil {
		return fmt.Errorf("failed to write save data: %w", err)
	}
	return nil
}

func Read(r io.Reader) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read save data: %w", err)
	}
	return Decode(data)
}

func appendSnapshot(data []byte, snapshot entity.Snapshot) []byte {
	for g := range snapshot {
		for r := range entity.GridSize {
			for c := range entity.GridSize {
				data = append(data, bit(snapshot[g][r][c]))
			}
		}
	}
	return data
}

func readSnapshot(data []byte) entity.Snapshot {
	var snapshot entity.Snapshot
	for i, b := range data {
		g, cell := i/entity.GridCells, i%entity.GridCells
		snapshot[g][cell/entity.GridSize][cell%entity.GridSize] = b == 1
	}
	return snapshot
}

func bit(set bool) byte {
	if set {
		return 1
	}
	return 0
}
