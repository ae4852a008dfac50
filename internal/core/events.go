package core

import "fmt"

// EventKind identifies a gameplay event emitted during a tick.
type EventKind int

const (
	EventLevelAdvanced EventKind = iota
	EventBossDefeated
	EventLifeLost
	EventShieldBroken
	EventShieldGained
	EventStarCollected
	EventGameOver
	EventVictory
	EventRestart
)

var eventNames = [...]string{
	EventLevelAdvanced: "level_advanced",
	EventBossDefeated:  "boss_defeated",
	EventLifeLost:      "life_lost",
	EventShieldBroken:  "shield_broken",
	EventShieldGained:  "shield_gained",
	EventStarCollected: "star_collected",
	EventGameOver:      "game_over",
	EventVictory:       "victory",
	EventRestart:       "restart",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Event is a notable thing that happened during a tick.
// Level is the level the event happened on.
type Event struct {
	Kind  EventKind `msgpack:"kind" json:"kind"`
	Level int       `msgpack:"level" json:"level"`
}

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	State   GameState
	Changed bool // State differs from the previous tick's
	Events  []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
