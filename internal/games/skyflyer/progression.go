package skyflyer

import "github.com/vovakirdan/skyflyer/internal/core"

// Phase is the run's state machine. Exactly one phase holds at a time,
// so a run can never be both over and won.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends active simulation.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

func (g *Game) terminal() bool {
	return g.phase.Terminal()
}

// togglePause flips between playing and paused. In a terminal phase the
// toggle only flips the reported paused flag.
func (g *Game) togglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhasePlaying
	default:
		g.pausedFlag = !g.pausedFlag
	}
}

// requestAdvance records a level transition to apply at the end of the tick.
func (g *Game) requestAdvance() {
	g.pendingAdvance = true
}

// applyTransition is the second phase of a tick: a pending advance either
// sets up the next level or, past the final level, ends the run in victory.
// A game over reached in the same tick wins.
func (g *Game) applyTransition() {
	if !g.pendingAdvance {
		return
	}
	g.pendingAdvance = false
	if g.terminal() {
		return
	}

	if g.levelNum+1 > g.cfg.Progression.FinalLevel {
		g.phase = PhaseVictory
		g.emit(core.EventVictory)
		return
	}

	g.levelNum++
	g.setupLevel()
	g.emit(core.EventLevelAdvanced)
}

// setupLevel discards the current level and builds the next one.
// A config queued by SetConfig takes effect here.
func (g *Game) setupLevel() {
	g.applyPendingConfig()
	g.level = newLevel(g.levelNum, g.cfg, g.width, g.height)
}

// restart resets run state to level 1 and rebuilds the level.
func (g *Game) restart() {
	g.applyPendingConfig()
	g.phase = PhasePlaying
	g.pausedFlag = false
	g.pendingAdvance = false
	g.levelNum = 1
	g.score = 0
	g.lives = g.cfg.Progression.Lives
	g.setupLevel()
}

func (g *Game) applyPendingConfig() {
	if g.nextCfg == nil {
		return
	}
	g.cfg = *g.nextCfg
	g.nextCfg = nil
}
