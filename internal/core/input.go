package core

import (
	"sync"
	"time"
)

// Command is a discrete, device-independent player command.
type Command int

const (
	CommandNone        Command = iota
	CommandImpulse             // Flap upward
	CommandTogglePause         // Flip the paused flag
	CommandRestart             // Reset run and level state
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandImpulse:
		return "impulse"
	case CommandTogglePause:
		return "pause"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// ParseCommand maps a wire name ("impulse", "pause", "restart") to a Command.
// Unknown names map to CommandNone.
func ParseCommand(name string) Command {
	switch name {
	case "impulse", "flap", "jump":
		return CommandImpulse
	case "pause", "togglePause":
		return CommandTogglePause
	case "restart":
		return CommandRestart
	default:
		return CommandNone
	}
}

// InputFrame holds the commands applied during a single tick, with how
// often each was queued.
type InputFrame struct {
	commands map[Command]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{commands: make(map[Command]int)}
}

// Set adds one occurrence of a command to this frame.
func (f *InputFrame) Set(c Command) {
	if c == CommandNone {
		return
	}
	if f.commands == nil {
		f.commands = make(map[Command]int)
	}
	f.commands[c]++
}

// Has reports whether the command is present.
func (f InputFrame) Has(c Command) bool {
	return f.commands[c] > 0
}

// Count returns how many times the command was queued for this frame.
func (f InputFrame) Count(c Command) int {
	return f.commands[c]
}

// Clear removes a command from the frame.
func (f *InputFrame) Clear(c Command) {
	delete(f.commands, c)
}

// Empty reports whether no commands are set.
func (f InputFrame) Empty() bool {
	return len(f.commands) == 0
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	out := NewInputFrame()
	for c, n := range f.commands {
		out.commands[c] = n
	}
	return out
}

// CommandQueue collects commands from input callbacks between ticks.
// Producers call Push from any goroutine; the frame driver calls Drain
// once at the start of each tick.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
}

// Push queues a command for the next tick.
func (q *CommandQueue) Push(c Command) {
	if c == CommandNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, c)
	q.mu.Unlock()
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain empties the queue into a single InputFrame.
func (q *CommandQueue) Drain() InputFrame {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	frame := NewInputFrame()
	for _, c := range pending {
		frame.Set(c)
	}
	return frame
}

// RepeatGuard filters auto-repeated command events so that holding a key
// triggers its command once. Devices that report repeats explicitly pass
// repeat=true; for those that don't, each command stays latched after an
// accepted press until no event for it has arrived for its release window.
type RepeatGuard struct {
	window       time.Duration
	toggleWindow time.Duration
	last         map[Command]time.Time
}

// DefaultRepeatWindow is the release window for impulse. It is longer than
// the auto-repeat interval, so fast taps still flap.
const DefaultRepeatWindow = 60 * time.Millisecond

// ToggleRepeatWindow is the release window for pause and restart. It
// outlasts the initial delay terminals wait before auto-repeat starts.
const ToggleRepeatWindow = 650 * time.Millisecond

// NewRepeatGuard creates a guard whose impulse window is window. Toggle
// commands use ToggleRepeatWindow, or window if that is longer.
func NewRepeatGuard(window time.Duration) *RepeatGuard {
	if window < 0 {
		window = 0
	}
	return &RepeatGuard{
		window:       window,
		toggleWindow: max(window, ToggleRepeatWindow),
		last:         make(map[Command]time.Time),
	}
}

func (g *RepeatGuard) windowFor(c Command) time.Duration {
	switch c {
	case CommandTogglePause, CommandRestart:
		return g.toggleWindow
	default:
		return g.window
	}
}

// Accept reports whether the event should be forwarded to the simulation.
// Every event refreshes the last-seen time, so a held key stays suppressed
// for as long as repeats keep arriving.
func (g *RepeatGuard) Accept(c Command, now time.Time, repeat bool) bool {
	if c == CommandNone {
		return false
	}
	prev, seen := g.last[c]
	g.last[c] = now
	if repeat {
		return false
	}
	if seen && now.Sub(prev) < g.windowFor(c) {
		return false
	}
	return true
}

// Reset forgets all previously seen events.
func (g *RepeatGuard) Reset() {
	clear(g.last)
}
