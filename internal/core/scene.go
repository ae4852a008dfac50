package core

// Scene is the drawable export of one tick, in world units.
// It is non-authoritative: presentations read it and never write back.
type Scene struct {
	Width       float64         `msgpack:"w" json:"w"`
	Height      float64         `msgpack:"h" json:"h"`
	Flyer       FlyerPose       `msgpack:"flyer" json:"flyer"`
	Obstacles   []ObstacleShape `msgpack:"obstacles" json:"obstacles"`
	Stars       []Circle        `msgpack:"stars" json:"stars"`
	Rings       []Circle        `msgpack:"rings" json:"rings"`
	Boss        *BossPose       `msgpack:"boss,omitempty" json:"boss,omitempty"`
	Projectiles []Circle        `msgpack:"bullets" json:"bullets"`
	Particles   []ParticleDot   `msgpack:"particles" json:"particles"`
	LevelLabel  string          `msgpack:"label" json:"label"`
	Banner      string          `msgpack:"banner,omitempty" json:"banner,omitempty"`
}

// FlyerPose is the flyer's position and orientation.
type FlyerPose struct {
	X        float64 `msgpack:"x" json:"x"`
	Y        float64 `msgpack:"y" json:"y"`
	R        float64 `msgpack:"r" json:"r"`
	Tilt     float64 `msgpack:"tilt" json:"tilt"` // radians, derived from vertical velocity
	Shielded bool    `msgpack:"shielded" json:"shielded"`
}

// ObstacleShape is one obstacle pair as two boxes.
type ObstacleShape struct {
	Top    Box `msgpack:"top" json:"top"`
	Bottom Box `msgpack:"bottom" json:"bottom"`
}

// BossPose is the boss body plus its remaining health.
type BossPose struct {
	Body  Box     `msgpack:"body" json:"body"`
	HP    int     `msgpack:"hp" json:"hp"`
	MaxHP int     `msgpack:"maxHp" json:"maxHp"`
	Ratio float64 `msgpack:"ratio" json:"ratio"`
}

// ParticleDot is one cosmetic particle.
type ParticleDot struct {
	X     float64 `msgpack:"x" json:"x"`
	Y     float64 `msgpack:"y" json:"y"`
	Alpha float64 `msgpack:"a" json:"a"`
	Color Color   `msgpack:"c" json:"c"`
}
