package flamerush

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable gameplay constant. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Shield     ShieldConfig     `yaml:"shield"`
	Coin       CoinConfig       `yaml:"coin"`
	Cull       CullConfig       `yaml:"cull"`
	Audio      AudioConfig      `yaml:"audio"`
	// Debug logs per-second loop stats and shows FPS and entity counts.
	Debug bool `yaml:"debug"`
}

// WindowConfig describes the playfield and window.
type WindowConfig struct {
	Title string `yaml:"title"`
	// Width and Height are the logical playfield size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Scale multiplies the logical size for the initial window size.
	Scale      float64 `yaml:"scale"`
	TPS        int     `yaml:"tps"`
	Background string  `yaml:"background"`
}

// PlayerConfig describes the player flame.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Radius float64 `yaml:"radius"`
	// BoundsX and BoundsY clamp pointer-driven movement.
	BoundsX Range `yaml:"bounds_x"`
	BoundsY Range `yaml:"bounds_y"`
}

// SpawnConfig drives the obstacle and collectible timers.
type SpawnConfig struct {
	ObstaclePeriod    time.Duration `yaml:"obstacle_period"`
	CollectiblePeriod time.Duration `yaml:"collectible_period"`
	// X is the horizontal spawn range shared by every entity kind.
	X             Range   `yaml:"x"`
	ObstacleY     float64 `yaml:"obstacle_y"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
	Drift         Range   `yaml:"drift"`
	SpinRate      Range   `yaml:"spin_rate"`
	ObstacleScale Range   `yaml:"obstacle_scale"`
	ObstacleTint  uint32  `yaml:"obstacle_tint"`
	CoinY         float64 `yaml:"coin_y"`
	CoinSpeed     float64 `yaml:"coin_speed"`
	CoinScale     float64 `yaml:"coin_scale"`
	CoinTint      uint32  `yaml:"coin_tint"`
	ShieldChance  float64 `yaml:"shield_chance"`
	ShieldY       float64 `yaml:"shield_y"`
	ShieldSpeed   float64 `yaml:"shield_speed"`
	ShieldScale   float64 `yaml:"shield_scale"`
	ShieldTint    uint32  `yaml:"shield_tint"`
	// EntityRadius is the unscaled collision radius of obstacles and
	// collectibles.
	EntityRadius float64 `yaml:"entity_radius"`
}

// DifficultyConfig describes the linear difficulty ramp.
type DifficultyConfig struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
	// ScoreFactor converts difficulty into points per tick.
	ScoreFactor float64 `yaml:"score_factor"`
}

// ShieldConfig describes the shield power-up.
type ShieldConfig struct {
	Duration time.Duration `yaml:"duration"`
	// ResetOnPickup restarts the countdown when a shield is collected while
	// one is already active. When false every pickup schedules its own
	// expiry and the earliest one ends the shield.
	ResetOnPickup bool `yaml:"reset_on_pickup"`
}

// CoinConfig describes coin rewards.
type CoinConfig struct {
	Value          int           `yaml:"value"`
	ShakeDuration  time.Duration `yaml:"shake_duration"`
	ShakeIntensity float64       `yaml:"shake_intensity"`
}

// CullConfig controls off-screen entity removal. Entities further than
// Margin pixels below or beside the playfield are destroyed.
type CullConfig struct {
	Margin float64 `yaml:"margin"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// DefaultConfig returns the stock game tuning.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Flame Rush",
			Width:      360,
			Height:     640,
			Scale:      1,
			TPS:        60,
			Background: "#1a1a1a",
		},
		Player: PlayerConfig{
			StartX:  180,
			StartY:  600,
			Radius:  25,
			BoundsX: Range{Min: 30, Max: 330},
			BoundsY: Range{Min: 30, Max: 610},
		},
		Spawn: SpawnConfig{
			ObstaclePeriod:    1500 * time.Millisecond,
			CollectiblePeriod: 2500 * time.Millisecond,
			X:                 Range{Min: 50, Max: 310},
			ObstacleY:         -100,
			ObstacleSpeed:     200,
			Drift:             Range{Min: -100, Max: 100},
			SpinRate:          Range{Min: -200, Max: 200},
			ObstacleScale:     Range{Min: 0.5, Max: 1.2},
			ObstacleTint:      0x666666,
			CoinY:             -50,
			CoinSpeed:         150,
			CoinScale:         0.8,
			CoinTint:          0xffd700,
			ShieldChance:      0.25,
			ShieldY:           -100,
			ShieldSpeed:       120,
			ShieldScale:       1.2,
			ShieldTint:        0x00ff00,
			EntityRadius:      16,
		},
		Difficulty: DifficultyConfig{
			Start:       1,
			Step:        0.002,
			ScoreFactor: 10,
		},
		Shield: ShieldConfig{
			Duration:      5 * time.Second,
			ResetOnPickup: true,
		},
		Coin: CoinConfig{
			Value:          10,
			ShakeDuration:  50 * time.Millisecond,
			ShakeIntensity: 0.005,
		},
		Cull: CullConfig{
			Margin: 100,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.3,
			SampleRate: 44100,
		},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig. Keys missing
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("flamerush: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("flamerush: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every inconsistent setting, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window.tps %d must be positive", c.Window.TPS)
	check(c.Window.Scale > 0, "window.scale %v must be positive", c.Window.Scale)
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		errs = append(errs, err)
	}
	check(c.Player.Radius > 0, "player.radius %v must be positive", c.Player.Radius)
	check(c.Player.BoundsX.valid() && c.Player.BoundsY.valid(), "player bounds must have min <= max")
	check(c.Spawn.ObstaclePeriod > 0, "spawn.obstacle_period must be positive")
	check(c.Spawn.CollectiblePeriod > 0, "spawn.collectible_period must be positive")
	check(c.Spawn.X.valid(), "spawn.x must have min <= max")
	check(c.Spawn.Drift.valid(), "spawn.drift must have min <= max")
	check(c.Spawn.SpinRate.valid(), "spawn.spin_rate must have min <= max")
	check(c.Spawn.ObstacleScale.valid() && c.Spawn.ObstacleScale.Min > 0, "spawn.obstacle_scale must be a positive range")
	check(c.Spawn.ShieldChance >= 0 && c.Spawn.ShieldChance <= 1, "spawn.shield_chance %v must be in [0, 1]", c.Spawn.ShieldChance)
	check(c.Spawn.EntityRadius > 0, "spawn.entity_radius must be positive")
	check(c.Difficulty.Step >= 0, "difficulty.step %v must not be negative", c.Difficulty.Step)
	check(c.Difficulty.Start >= 0, "difficulty.start %v must not be negative", c.Difficulty.Start)
	check(c.Difficulty.ScoreFactor >= 0, "difficulty.score_factor must not be negative")
	check(c.Shield.Duration > 0, "shield.duration must be positive")
	check(c.Coin.Value >= 0, "coin.value must not be negative")
	check(c.Cull.Margin >= 0, "cull.margin must not be negative")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v must be in [0, 1]", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio.sample_rate must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("flamerush: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// tickDuration is the logical time covered by one Update call.
func (c Config) tickDuration() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}

// playfield returns the logical playfield rectangle.
func (c Config) playfield() Rect {
	return Rect{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}
