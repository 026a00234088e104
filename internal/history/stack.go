package history

import "github.com/rocketscienceinc/notakto/internal/entity"

// Stack is a LIFO of board snapshots. Snapshots are values, so a stack never
// shares state with a board or with another stack.
type Stack struct {
	nodes []entity.Snapshot
}

func (that *Stack) Push(board entity.Board) {
	that.nodes = append(that.nodes, board.Snapshot())
}

// Pop drops the newest snapshot. Popping an empty stack is a no-op.
func (that *Stack) Pop() {
	if len(that.nodes) == 0 {
		return
	}
	that.nodes = that.nodes[:len(that.nodes)-1]
}

func (that *Stack) Peek() (entity.Snapshot, bool) {
	if len(that.nodes) == 0 {
		return entity.Snapshot{}, false
	}
	return that.nodes[len(that.nodes)-1], true
}

// PeekRestore installs the newest snapshot on board without popping it.
func (that *Stack) PeekRestore(board *entity.Board) bool {
	snapshot, ok := that.Peek()
	if !ok {
		return false
	}

	board.Restore(snapshot)
	return true
}

func (that *Stack) Len() int {
	return len(that.nodes)
}

func (that *Stack) IsEmpty() bool {
	return len(that.nodes) == 0
}

func (that *Stack) Clear() {
	that.nodes = nil
}

// Snapshots returns a copy of the stack, oldest first.
func (that *Stack) Snapshots() []entity.Snapshot {
	return append([]entity.Snapshot(nil), that.nodes...)
}
