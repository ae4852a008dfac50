// Package config provides YAML-based tuning for skyflyer: physics,
// spawn cadence, boss behavior and the per-level difficulty curve.
package config

// SkyflyerConfig contains all tunable parameters of the simulation.
// World units are pixels of a virtual playfield; velocities are per tick.
type SkyflyerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Flyer       FlyerConfig       `yaml:"flyer"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Pickups     PickupsConfig     `yaml:"pickups"`
	Boss        BossConfig        `yaml:"boss"`
	Progression ProgressionConfig `yaml:"progression"`
	Particles   ParticleConfig    `yaml:"particles"`
	Render      RenderConfig      `yaml:"render"`
}

// PhysicsConfig defines flyer dynamics and scroll speed.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	ImpulseVelocity float64 `yaml:"impulse_velocity"` // Negative = up
	MaxVelocity     float64 `yaml:"max_velocity"`     // Vertical velocity clamp, both directions
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	SpeedLevelCap   int     `yaml:"speed_level_cap"` // Levels past 1 that still add speed
}

// FlyerConfig defines the flyer body and damage knockback.
type FlyerConfig struct {
	X               float64 `yaml:"x"`
	StartY          float64 `yaml:"start_y"`
	Radius          float64 `yaml:"radius"`
	ObstacleInset   float64 `yaml:"obstacle_inset"` // Radius shrink for obstacle hits
	ShieldKnockback float64 `yaml:"shield_knockback"`
	HitKnockback    float64 `yaml:"hit_knockback"`
}

// ObstacleConfig defines obstacle pairs and their cadence.
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	SpawnOffset      float64 `yaml:"spawn_offset"` // Distance past the right edge
	BaseGap          float64 `yaml:"base_gap"`
	GapPerLevel      float64 `yaml:"gap_per_level"`
	MinGap           float64 `yaml:"min_gap"`
	MaxGap           float64 `yaml:"max_gap"`
	TopMin           float64 `yaml:"top_min"`        // Minimum top obstacle height
	BottomReserve    float64 `yaml:"bottom_reserve"` // Space kept below the gap
	BaseInterval     int     `yaml:"base_interval"`
	IntervalPerLevel int     `yaml:"interval_per_level"`
	MinInterval      int     `yaml:"min_interval"`
	PruneMargin      float64 `yaml:"prune_margin"`
}

// PickupsConfig defines stars, rings and their shared behavior.
type PickupsConfig struct {
	Star            PickupKind `yaml:"star"`
	Ring            PickupKind `yaml:"ring"`
	StarScore       int        `yaml:"star_score"`
	BossSpeedFactor float64    `yaml:"boss_speed_factor"`
	PruneMargin     float64    `yaml:"prune_margin"`
}

// PickupKind defines the shape and cadence of one pickup type.
// Intervals are base - perLevel*level + rand(jitterMin, jitterMax);
// on boss levels the boss interval and jitter replace them.
type PickupKind struct {
	Radius           float64 `yaml:"radius"`
	Margin           float64 `yaml:"margin"` // Vertical spawn margin
	BaseInterval     float64 `yaml:"base_interval"`
	IntervalPerLevel float64 `yaml:"interval_per_level"`
	JitterMin        float64 `yaml:"jitter_min"`
	JitterMax        float64 `yaml:"jitter_max"`
	BossInterval     float64 `yaml:"boss_interval"`
	BossJitterMin    float64 `yaml:"boss_jitter_min"`
	BossJitterMax    float64 `yaml:"boss_jitter_max"`
}

// BossConfig defines boss levels, movement and volleys.
type BossConfig struct {
	Levels            []int        `yaml:"levels"`
	HP                map[int]int  `yaml:"hp"` // Hit points by level
	DefaultHP         int          `yaml:"default_hp"`
	Width             float64      `yaml:"width"`
	Height            float64      `yaml:"height"`
	StartX            float64      `yaml:"start_x"`
	StartY            float64      `yaml:"start_y"`
	Drift             float64      `yaml:"drift"`
	MaxVelocity       float64      `yaml:"max_velocity"`
	MinXFraction      float64      `yaml:"min_x_fraction"`
	RightMargin       float64      `yaml:"right_margin"`
	VerticalMargin    float64      `yaml:"vertical_margin"`
	FireInterval      int          `yaml:"fire_interval"`
	FinalFireInterval int          `yaml:"final_fire_interval"`
	Spread            int          `yaml:"spread"`
	WideSpread        int          `yaml:"wide_spread"`
	WideSpreadFrom    int          `yaml:"wide_spread_from"`
	Bullet            BulletConfig `yaml:"bullet"`
}

// BulletConfig defines boss projectiles.
type BulletConfig struct {
	Radius      float64 `yaml:"radius"`
	OffsetX     float64 `yaml:"offset_x"`
	Spacing     float64 `yaml:"spacing"`
	SpeedBonus  float64 `yaml:"speed_bonus"`
	SpreadSpeed float64 `yaml:"spread_speed"` // Extra speed per step from the center lane
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Wobble      float64 `yaml:"wobble"` // Max absolute vertical velocity
	PruneMargin float64 `yaml:"prune_margin"`
}

// ProgressionConfig defines lives and level goals.
type ProgressionConfig struct {
	FinalLevel   int     `yaml:"final_level"`
	Lives        int     `yaml:"lives"`
	GoalBase     int     `yaml:"goal_base"`
	GoalPerLevel float64 `yaml:"goal_per_level"`
}

// ParticleConfig defines cosmetic bursts.
type ParticleConfig struct {
	Count      int     `yaml:"count"`
	Speed      float64 `yaml:"speed"`
	LifeMin    float64 `yaml:"life_min"`
	LifeJitter float64 `yaml:"life_jitter"`
	Gravity    float64 `yaml:"gravity"`
	FadeLife   float64 `yaml:"fade_life"`
}

// RenderConfig defines how terminal cells map to world units.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// IsBossLevel reports whether the level is in the boss set.
func (c SkyflyerConfig) IsBossLevel(level int) bool {
	for _, l := range c.Boss.Levels {
		if l == level {
			return true
		}
	}
	return false
}
