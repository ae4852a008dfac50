package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in each search directory.
const FileName = "skyflyer.yaml"

// Load loads skyflyer configuration.
// Search order: customPath -> ~/.skyflyer/configs/skyflyer.yaml -> ./configs/skyflyer.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files in the implicit locations fall through to the next one.
func Load(customPath string) (SkyflyerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	return parseDefault(), nil
}

// Resolve returns the file Load would read, or "" for the embedded default.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile reads and validates a single YAML file.
// Keys missing from the file keep their default values.
func LoadFile(path string) (SkyflyerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkyflyerConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SkyflyerConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SkyflyerConfig, error) {
	cfg := DefaultSkyflyerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyflyerConfig{}, err
	}
	cfg.Validate()
	return cfg, nil
}

func parseDefault() SkyflyerConfig {
	cfg, err := Parse(defaultSkyflyerYAML)
	if err != nil {
		return DefaultSkyflyerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyflyer", "configs", filename)
}

// Validate clamps out-of-range values into a playable range.
// It never fails: a bad value is replaced, not reported.
func (c *SkyflyerConfig) Validate() {
	d := DefaultSkyflyerConfig()

	p := &c.Physics
	p.Gravity = max(p.Gravity, 0)
	if p.MaxVelocity <= 0 {
		p.MaxVelocity = d.Physics.MaxVelocity
	}
	p.ImpulseVelocity = clampF(p.ImpulseVelocity, -p.MaxVelocity, 0)
	p.BaseSpeed = max(p.BaseSpeed, 0.1)
	p.SpeedPerLevel = max(p.SpeedPerLevel, 0)
	p.SpeedLevelCap = max(p.SpeedLevelCap, 0)

	f := &c.Flyer
	f.Radius = max(f.Radius, 1)
	f.ObstacleInset = clampF(f.ObstacleInset, 0, f.Radius-1)
	f.X = max(f.X, f.Radius)
	f.StartY = max(f.StartY, 0)

	o := &c.Obstacles
	o.Width = max(o.Width, 1)
	o.MinGap = max(o.MinGap, 2*f.Radius)
	o.MaxGap = max(o.MaxGap, o.MinGap)
	o.TopMin = max(o.TopMin, 0)
	o.BottomReserve = max(o.BottomReserve, 0)
	o.MinInterval = max(o.MinInterval, 1)
	o.PruneMargin = max(o.PruneMargin, 0)

	for _, k := range []*PickupKind{&c.Pickups.Star, &c.Pickups.Ring} {
		k.Radius = max(k.Radius, 1)
		k.Margin = max(k.Margin, 0)
		if k.JitterMax < k.JitterMin {
			k.JitterMin, k.JitterMax = k.JitterMax, k.JitterMin
		}
		if k.BossJitterMax < k.BossJitterMin {
			k.BossJitterMin, k.BossJitterMax = k.BossJitterMax, k.BossJitterMin
		}
	}
	c.Pickups.StarScore = max(c.Pickups.StarScore, 0)
	c.Pickups.BossSpeedFactor = max(c.Pickups.BossSpeedFactor, 0)
	c.Pickups.PruneMargin = max(c.Pickups.PruneMargin, 0)

	b := &c.Boss
	b.DefaultHP = max(b.DefaultHP, 1)
	for level, hp := range b.HP {
		b.HP[level] = max(hp, 1)
	}
	b.Width = max(b.Width, 1)
	b.Height = max(b.Height, 1)
	b.Drift = max(b.Drift, 0)
	b.MaxVelocity = max(b.MaxVelocity, 0)
	b.MinXFraction = clampF(b.MinXFraction, 0, 1)
	b.RightMargin = max(b.RightMargin, 0)
	b.VerticalMargin = max(b.VerticalMargin, 0)
	b.FireInterval = max(b.FireInterval, 1)
	b.FinalFireInterval = max(b.FinalFireInterval, 1)
	b.Spread = max(b.Spread, 0)
	b.WideSpread = max(b.WideSpread, b.Spread)
	bl := &b.Bullet
	bl.Radius = max(bl.Radius, 1)
	bl.MinSpeed = max(bl.MinSpeed, 0.1)
	bl.MaxSpeed = max(bl.MaxSpeed, bl.MinSpeed)
	bl.Wobble = max(bl.Wobble, 0)
	bl.PruneMargin = max(bl.PruneMargin, 0)

	pr := &c.Progression
	pr.FinalLevel = max(pr.FinalLevel, 1)
	pr.Lives = max(pr.Lives, 1)
	pr.GoalBase = max(pr.GoalBase, 1)
	pr.GoalPerLevel = max(pr.GoalPerLevel, 0)

	pa := &c.Particles
	pa.Count = max(pa.Count, 0)
	pa.Speed = max(pa.Speed, 0)
	pa.LifeMin = max(pa.LifeMin, 1)
	pa.LifeJitter = max(pa.LifeJitter, 0)
	if pa.FadeLife <= 0 {
		pa.FadeLife = d.Particles.FadeLife
	}

	c.Render.CellWidth = max(c.Render.CellWidth, 1)
	c.Render.CellHeight = max(c.Render.CellHeight, 1)
}
