package flamerush

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestDefaultConfigTuning(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != 360 || cfg.Window.Height != 640 {
		t.Errorf("window = %dx%d, want 360x640", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Spawn.ObstaclePeriod != 1500*time.Millisecond {
		t.Errorf("obstacle period = %v, want 1.5s", cfg.Spawn.ObstaclePeriod)
	}
	if cfg.Spawn.CollectiblePeriod != 2500*time.Millisecond {
		t.Errorf("collectible period = %v, want 2.5s", cfg.Spawn.CollectiblePeriod)
	}
	if cfg.Shield.Duration != 5*time.Second {
		t.Errorf("shield duration = %v, want 5s", cfg.Shield.Duration)
	}
	if cfg.Coin.Value != 10 {
		t.Errorf("coin value = %d, want 10", cfg.Coin.Value)
	}
	assertNear(t, "difficulty step", cfg.Difficulty.Step, 0.002)
	if got := cfg.tickDuration(); got != time.Second/60 {
		t.Errorf("tickDuration = %v, want %v", got, time.Second/60)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flamerush.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
debug: true
spawn:
  obstacle_period: 750ms
  shield_chance: 0.5
shield:
  duration: 3s
  reset_on_pickup: false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not applied")
	}
	if cfg.Spawn.ObstaclePeriod != 750*time.Millisecond {
		t.Errorf("obstacle period = %v, want 750ms", cfg.Spawn.ObstaclePeriod)
	}
	assertNear(t, "shield chance", cfg.Spawn.ShieldChance, 0.5)
	if cfg.Shield.Duration != 3*time.Second || cfg.Shield.ResetOnPickup {
		t.Errorf("shield = %+v, want 3s without reset", cfg.Shield)
	}
	// Untouched keys keep their defaults.
	if cfg.Spawn.CollectiblePeriod != 2500*time.Millisecond {
		t.Errorf("collectible period = %v, want default 2.5s", cfg.Spawn.CollectiblePeriod)
	}
	if cfg.Player.Radius != 25 {
		t.Errorf("player radius = %v, want default 25", cfg.Player.Radius)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
spawn:
  shield_chance: 2
  x: {min: 300, max: 10}
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"shield_chance", "spawn.x"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "spawn: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Background = "dark"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bad background color")
	}
}

func TestValidateReportsEverySetting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TPS = 0
	cfg.Player.Radius = -1
	cfg.Audio.Volume = 3
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"window.tps", "player.radius", "audio.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
