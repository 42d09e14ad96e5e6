package core

import "testing"

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue(4)

	if q.PollCommand() != CommandNone {
		t.Fatal("Empty queue should poll CommandNone")
	}

	q.Push(CommandMoveUp)
	q.Push(CommandMoveLeft)

	if got := q.PollCommand(); got != CommandMoveUp {
		t.Errorf("First poll = %v, expected MoveUp", got)
	}
	if got := q.PollCommand(); got != CommandMoveLeft {
		t.Errorf("Second poll = %v, expected MoveLeft", got)
	}
	if got := q.PollCommand(); got != CommandNone {
		t.Errorf("Drained queue should poll None, got %v", got)
	}
}

func TestInputQueueLimit(t *testing.T) {
	q := NewInputQueue(2)

	if !q.Push(CommandPause) || !q.Push(CommandResume) {
		t.Fatal("Push within limit should succeed")
	}
	if q.Push(CommandQuit) {
		t.Error("Push beyond limit should be dropped")
	}
	if q.Push(CommandNone) {
		t.Error("CommandNone should never be queued")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", q.Len())
	}

	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", q.Len())
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		c        Command
		expected string
	}{
		{CommandNone, "None"},
		{CommandMoveRight, "MoveRight"},
		{CommandQuit, "Quit"},
		{Command(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.c.String() != tc.expected {
			t.Errorf("Command(%d).String() = %q, expected %q", tc.c, tc.c.String(), tc.expected)
		}
	}

	if Command(99).Valid() {
		t.Error("Command(99) should not be valid")
	}
	if !CommandRestart.Valid() {
		t.Error("CommandRestart should be valid")
	}
}
