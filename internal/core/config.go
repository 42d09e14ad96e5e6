package core

import "time"

// DefaultTickInterval is the classic frame interval.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickInterval time.Duration // Fixed sleep between ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Phase is the current stage of the game lifecycle.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnded
	PhaseRestarting
	PhaseExiting
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	case PhaseRestarting:
		return "restarting"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Event is something noteworthy that happened during a tick.
// Platforms use events for side channels such as sound.
type Event int

const (
	EventAte Event = iota + 1
	EventCrashed
	EventBoardFull
	EventRestarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventCrashed:
		return "crashed"
	case EventBoardFull:
		return "board_full"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score uint32 // Current score
	Phase Phase  // Current lifecycle phase
}

// GameOver reports whether the round has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// Exiting reports whether the process loop should shut down.
func (s GameState) Exiting() bool {
	return s.Phase == PhaseExiting
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred this tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
