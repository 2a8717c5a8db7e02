// Package history implements undo/redo over map edits. Commands issued
// between the start and end of a stroke are buffered and sealed into one
// block, so a whole brush stroke undoes as a single unit.
package history

// Command is a reversible map edit.
type Command interface {
	Execute()
	Undo()
}

// History holds the undo and redo stacks plus the in-progress buffer.
// The zero value is ready to use.
type History struct {
	undo   [][]Command
	redo   [][]Command
	buffer []Command
}

// Execute runs the command and buffers it into the current action.
// Any redoable actions are invalidated.
func (h *History) Execute(cmd Command) {
	cmd.Execute()
	h.buffer = append(h.buffer, cmd)
	h.redo = h.redo[:0]
}

// FinishAction seals buffered commands into one undoable block. Called at
// the end of a stroke; a no-op if nothing was buffered.
func (h *History) FinishAction() {
	if len(h.buffer) == 0 {
		return
	}
	block := make([]Command, len(h.buffer))
	copy(block, h.buffer)
	h.undo = append(h.undo, block)
	h.buffer = h.buffer[:0]
}

// Undo reverts the most recent action, commands in reverse order.
func (h *History) Undo() {
	if len(h.undo) == 0 {
		return
	}
	block := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	for i := len(block) - 1; i >= 0; i-- {
		block[i].Undo()
	}
	h.redo = append(h.redo, block)
}

// Redo re-applies the most recently undone action.
func (h *History) Redo() {
	if len(h.redo) == 0 {
		return
	}
	block := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	for _, cmd := range block {
		cmd.Execute()
	}
	h.undo = append(h.undo, block)
}

// CanUndo reports whether an action is available to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an action is available to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops all history.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.buffer = h.buffer[:0]
}
