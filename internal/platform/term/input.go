package term

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// eventPoller is the part of tcell.Screen the input reader needs.
// PollEvent returns nil once the screen is finalized.
type eventPoller interface {
	PollEvent() tcell.Event
}

// Input reads terminal events on its own goroutine and hands commands to
// the game loop without ever blocking it.
type Input struct {
	cmds     chan core.Command
	quit     atomic.Bool
	onResize func()
	done     chan struct{}
}

// NewInput starts reading events from p. onResize may be nil.
func NewInput(p eventPoller, onResize func()) *Input {
	in := &Input{
		cmds:     make(chan core.Command, core.DefaultQueueSize),
		onResize: onResize,
		done:     make(chan struct{}),
	}
	go in.read(p)
	return in
}

func (in *Input) read(p eventPoller) {
	defer close(in.done)
	for {
		ev := p.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := mapKey(ev.Key(), ev.Rune())
			switch cmd {
			case core.CommandNone:
			case core.CommandQuit:
				in.quit.Store(true)
			default:
				select {
				case in.cmds <- cmd:
				default:
					// Full: the player is typing faster than the tick rate
				}
			}
		case *tcell.EventResize:
			if in.onResize != nil {
				in.onResize()
			}
		}
	}
}

// PollCommand returns the oldest pending command, or CommandNone.
// A pending Quit wins over everything queued before it.
func (in *Input) PollCommand() core.Command {
	if in.quit.Load() {
		return core.CommandQuit
	}
	select {
	case cmd := <-in.cmds:
		return cmd
	default:
		return core.CommandNone
	}
}

// Done is closed when the event reader has stopped.
func (in *Input) Done() <-chan struct{} {
	return in.done
}

// mapKey translates a tcell key to a game command.
func mapKey(k tcell.Key, r rune) core.Command {
	switch k {
	case tcell.KeyUp:
		return core.CommandMoveUp
	case tcell.KeyDown:
		return core.CommandMoveDown
	case tcell.KeyLeft:
		return core.CommandMoveLeft
	case tcell.KeyRight:
		return core.CommandMoveRight
	case tcell.KeyCtrlC:
		return core.CommandQuit
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return core.CommandMoveUp
		case 's', 'S':
			return core.CommandMoveDown
		case 'a', 'A':
			return core.CommandMoveLeft
		case 'd', 'D':
			return core.CommandMoveRight
		case 'p':
			return core.CommandPause
		case 'c':
			return core.CommandResume
		case 'r':
			return core.CommandRestart
		case 'q':
			return core.CommandQuit
		}
	}
	return core.CommandNone
}

var _ core.InputSource = (*Input)(nil)
