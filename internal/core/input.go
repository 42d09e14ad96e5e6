package core

// Command is a semantic game command, abstracted from physical key presses.
// Mapping raw keys to commands is the platform's job.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandPause
	CommandResume
	CommandRestart
	CommandQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandRestart:
		return "Restart"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the known commands.
func (c Command) Valid() bool {
	return c >= CommandNone && c <= CommandQuit
}

// InputSource delivers at most one command per tick.
// PollCommand must not block; it returns CommandNone when nothing is pending.
type InputSource interface {
	PollCommand() Command
}

// DefaultQueueSize bounds how many keystrokes may wait for future ticks.
const DefaultQueueSize = 8

// InputQueue buffers commands between ticks in arrival order, one consumed per
// tick. It is not safe for concurrent use; Bubble Tea delivers key and tick
// messages on the same goroutine.
type InputQueue struct {
	pending []Command
	limit   int
}

// NewInputQueue creates a queue holding at most limit commands.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &InputQueue{
		pending: make([]Command, 0, limit),
		limit:   limit,
	}
}

// Push enqueues a command. CommandNone and overflow are dropped.
// Returns whether the command was accepted.
func (q *InputQueue) Push(c Command) bool {
	if c == CommandNone || len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, c)
	return true
}

// PollCommand implements InputSource.
func (q *InputQueue) PollCommand() Command {
	if len(q.pending) == 0 {
		return CommandNone
	}
	c := q.pending[0]
	q.pending = q.pending[1:]
	return c
}

// Len returns the number of pending commands.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending commands.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}
