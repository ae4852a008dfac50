package config

import (
	_ "embed"
)

//go:embed defaults/skyflyer.yaml
var defaultSkyflyerYAML []byte

// DefaultSkyflyerConfig returns the built-in tuning.
// It mirrors defaults/skyflyer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSkyflyerConfig() SkyflyerConfig {
	return SkyflyerConfig{
		Physics: PhysicsConfig{
			Gravity:         0.35,
			ImpulseVelocity: -6.5,
			MaxVelocity:     10,
			BaseSpeed:       2,
			SpeedPerLevel:   0.4,
			SpeedLevelCap:   6,
		},
		Flyer: FlyerConfig{
			X:               120,
			StartY:          200,
			Radius:          16,
			ObstacleInset:   2,
			ShieldKnockback: -4,
			HitKnockback:    -5,
		},
		Obstacles: ObstacleConfig{
			Width:            60,
			SpawnOffset:      40,
			BaseGap:          130,
			GapPerLevel:      3,
			MinGap:           90,
			MaxGap:           130,
			TopMin:           40,
			BottomReserve:    120,
			BaseInterval:     85,
			IntervalPerLevel: 5,
			MinInterval:      45,
			PruneMargin:      50,
		},
		Pickups: PickupsConfig{
			Star: PickupKind{
				Radius:           7,
				Margin:           40,
				BaseInterval:     300,
				IntervalPerLevel: 10,
				JitterMin:        -30,
				JitterMax:        30,
				BossInterval:     180,
				BossJitterMin:    -40,
				BossJitterMax:    20,
			},
			Ring: PickupKind{
				Radius:           12,
				Margin:           60,
				BaseInterval:     420,
				IntervalPerLevel: 10,
				JitterMin:        -40,
				JitterMax:        40,
				BossInterval:     260,
				BossJitterMin:    -30,
				BossJitterMax:    30,
			},
			StarScore:       2,
			BossSpeedFactor: 0.9,
			PruneMargin:     30,
		},
		Boss: BossConfig{
			Levels:            []int{3, 6, 9, 10},
			HP:                map[int]int{3: 6, 6: 6, 9: 9, 10: 12},
			DefaultHP:         6,
			Width:             70,
			Height:            70,
			StartX:            560,
			StartY:            180,
			Drift:             0.2,
			MaxVelocity:       1.2,
			MinXFraction:      0.55,
			RightMargin:       20,
			VerticalMargin:    30,
			FireInterval:      60,
			FinalFireInterval: 40,
			Spread:            1,
			WideSpread:        2,
			WideSpreadFrom:    9,
			Bullet: BulletConfig{
				Radius:      6,
				OffsetX:     10,
				Spacing:     14,
				SpeedBonus:  1,
				SpreadSpeed: 0.4,
				MinSpeed:    3,
				MaxSpeed:    5,
				Wobble:      0.5,
				PruneMargin: 20,
			},
		},
		Progression: ProgressionConfig{
			FinalLevel:   10,
			Lives:        3,
			GoalBase:     12,
			GoalPerLevel: 1.5,
		},
		Particles: ParticleConfig{
			Count:      18,
			Speed:      1.5,
			LifeMin:    30,
			LifeJitter: 10,
			Gravity:    0.05,
			FadeLife:   30,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkyflyerYAML
}
