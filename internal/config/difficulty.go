package config

import "math"

// Difficulty holds the parameters of one level, derived from the tuning.
// Pickup intervals are the base values before random jitter.
type Difficulty struct {
	Level            int
	Boss             bool
	Speed            float64
	Gap              float64
	ObstacleInterval int
	Goal             int // Obstacle pairs to pass; 0 on boss levels
	BossHP           int // 0 on non-boss levels
	FireInterval     int
	Spread           int
	StarInterval     float64
	StarJitterMin    float64
	StarJitterMax    float64
	RingInterval     float64
	RingJitterMin    float64
	RingJitterMax    float64
	PickupSpeed      float64 // Horizontal pickup speed (positive, moving left)
}

// ForLevel computes the difficulty of a level. Levels below 1 are treated as 1.
func (c SkyflyerConfig) ForLevel(level int) Difficulty {
	level = max(level, 1)
	lf := float64(level)

	speed := c.Physics.BaseSpeed + float64(min(level-1, c.Physics.SpeedLevelCap))*c.Physics.SpeedPerLevel
	o := c.Obstacles
	d := Difficulty{
		Level:            level,
		Boss:             c.IsBossLevel(level),
		Speed:            speed,
		Gap:              clampF(o.BaseGap-o.GapPerLevel*lf, o.MinGap, o.MaxGap),
		ObstacleInterval: max(o.BaseInterval-o.IntervalPerLevel*level, o.MinInterval),
	}

	star, ring := c.Pickups.Star, c.Pickups.Ring
	if d.Boss {
		d.BossHP = c.BossHP(level)
		d.FireInterval = c.Boss.FireInterval
		if level == c.Progression.FinalLevel {
			d.FireInterval = c.Boss.FinalFireInterval
		}
		d.Spread = c.Boss.Spread
		if level >= c.Boss.WideSpreadFrom {
			d.Spread = c.Boss.WideSpread
		}
		d.StarInterval, d.StarJitterMin, d.StarJitterMax = star.BossInterval, star.BossJitterMin, star.BossJitterMax
		d.RingInterval, d.RingJitterMin, d.RingJitterMax = ring.BossInterval, ring.BossJitterMin, ring.BossJitterMax
		d.PickupSpeed = speed * c.Pickups.BossSpeedFactor
		return d
	}

	d.Goal = c.Progression.GoalBase + int(math.Floor(c.Progression.GoalPerLevel*lf))
	d.StarInterval = star.BaseInterval - star.IntervalPerLevel*lf
	d.StarJitterMin, d.StarJitterMax = star.JitterMin, star.JitterMax
	d.RingInterval = ring.BaseInterval - ring.IntervalPerLevel*lf
	d.RingJitterMin, d.RingJitterMax = ring.JitterMin, ring.JitterMax
	d.PickupSpeed = speed
	return d
}

// BossHP returns the boss hit points for a level.
func (c SkyflyerConfig) BossHP(level int) int {
	if hp, ok := c.Boss.HP[level]; ok {
		return hp
	}
	return c.Boss.DefaultHP
}

// clampF restricts a float64 to [lo, hi]; hi < lo collapses to lo.
func clampF(val, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, val))
}
