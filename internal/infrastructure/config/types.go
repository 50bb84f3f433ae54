package config

import "errors"

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Level     LevelConfig     `yaml:"level"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsSettings `yaml:"physics"`
	Movement  MovementConfig  `yaml:"movement"`
	Collision CollisionConfig `yaml:"collision"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	TPS          int    `yaml:"tps"`
}

type LevelConfig struct {
	GridSize     int     `yaml:"gridSize"`     // Pixel edge of one cell
	StartLevel   int     `yaml:"startLevel"`   // Level number loaded first
	CameraBuffer float64 `yaml:"cameraBuffer"` // Culling margin around the view (pixels)
}

type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Lives  int     `yaml:"lives"`
	Sprite string  `yaml:"sprite"`
}

type PhysicsSettings struct {
	Gravity           float64 `yaml:"gravity"`
	GravityScale      float64 `yaml:"gravityScale"`
	TerminalVelocity  float64 `yaml:"terminalVelocity"`
	Metre             float64 `yaml:"metre"` // Pixels per metre
	FrictionStep      float64 `yaml:"frictionStep"`
	FrictionThreshold float64 `yaml:"frictionThreshold"`
	StallThreshold    float64 `yaml:"stallThreshold"` // Frames longer than this (seconds) are skipped
}

type MovementConfig struct {
	MoveStep    float64 `yaml:"moveStep"`
	MaxRunSpeed float64 `yaml:"maxRunSpeed"`
	JumpImpulse float64 `yaml:"jumpImpulse"`
}

type CollisionConfig struct {
	// |y| of the push direction at or above which a contact counts as floor or ceiling
	NormalThreshold float64 `yaml:"normalThreshold"`
}

// Default returns the canonical tuning values
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			Title:        "Ringball",
			ScreenWidth:  800,
			ScreenHeight: 800,
			TPS:          60,
		},
		Level: LevelConfig{
			GridSize:     64,
			StartLevel:   1,
			CameraBuffer: 64,
		},
		Player: PlayerConfig{
			Radius: 28,
			Lives:  3,
			Sprite: "Ball",
		},
		Physics: PhysicsSettings{
			Gravity:           9.8,
			GravityScale:      2,
			TerminalVelocity:  33,
			Metre:             64,
			FrictionStep:      0.2,
			FrictionThreshold: 0.3,
			StallThreshold:    2.0 / 60.0,
		},
		Movement: MovementConfig{
			MoveStep:    1,
			MaxRunSpeed: 3,
			JumpImpulse: 7.5,
		},
		Collision: CollisionConfig{
			NormalThreshold: 0.7,
		},
	}
}

// CellSize returns the grid size as a float for pixel math
func (c *PhysicsConfig) CellSize() float64 {
	return float64(c.Level.GridSize)
}

// ColliderOffset is the offset from the sprite origin to the collider center
func (c *PhysicsConfig) ColliderOffset() float64 {
	return c.CellSize() / 2
}

// Validate checks values the simulation divides by or sizes with
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display size must be positive"))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, errors.New("display.tps must be positive"))
	}
	if c.Level.GridSize <= 0 {
		errs = append(errs, errors.New("level.gridSize must be positive"))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, errors.New("player.radius must be positive"))
	}
	if c.Physics.StallThreshold <= 0 {
		errs = append(errs, errors.New("physics.stallThreshold must be positive"))
	}
	return errors.Join(errs...)
}
