package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// ShooterConfigFile is the file name looked up in the config directories.
const ShooterConfigFile = "shooter.yaml"

// LoadShooter loads bubble shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
// Values missing from a file keep their defaults. The result is validated.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ShooterConfigFile), filepath.Join("configs", ShooterConfigFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (ShooterConfig, bool) {
	cfg := DefaultShooterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Shots += 10
		cfg.Targets.Rows = max(1, cfg.Targets.Rows-1)
	case DifficultyHard:
		cfg.Gameplay.Shots = max(5, cfg.Gameplay.Shots-10)
		cfg.Bubbles.Step *= 1.5
	}
}

// Validate reports every problem found in the configuration.
func (c ShooterConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for name, sheet := range map[string]SheetConfig{
		"penguin": c.Sprites.Penguin,
		"shooter": c.Sprites.Shooter,
		"bubble":  c.Sprites.Bubble,
	} {
		if err := sheet.validate(); err != nil {
			fail("sprites.%s: %w", name, err)
		}
	}

	frames := len(c.Sprites.Penguin.Frames)
	if c.Player.StartFrame < 1 || c.Player.StartFrame > frames {
		fail("player.start_frame: %d outside 1..%d", c.Player.StartFrame, frames)
	}
	for name, r := range map[string]AnimationRange{
		"left":  c.Player.Left,
		"right": c.Player.Right,
		"shoot": c.Player.Shoot,
	} {
		if err := r.validate(frames); err != nil {
			fail("player.%s: %w", name, err)
		}
	}
	if c.Player.LoopTimeMs <= 0 || c.Player.RotationLoopMs <= 0 || c.Player.SteerReleaseMs <= 0 {
		fail("player: loop_time_ms, rotation_loop_ms and steer_release_ms must be positive")
	}

	if c.Shooter.MaxRotationLeft > 0 || c.Shooter.MaxRotationRight < 0 {
		fail("shooter: max_rotation_left must be <= 0 and max_rotation_right >= 0")
	}
	if c.Shooter.RotationStep <= 0 {
		fail("shooter.rotation_step: must be positive")
	}

	if c.Bubbles.Step <= 0 || c.Bubbles.ChamberStep <= 0 {
		fail("bubbles: step and chamber_step must be positive")
	}
	if c.Bubbles.LoopTimeMs <= 0 || c.Bubbles.ChamberLoopMs <= 0 || c.Bubbles.BurstLoopMs <= 0 {
		fail("bubbles: loop_time_ms, chamber_loop_ms and burst_loop_ms must be positive")
	}
	if bf := len(c.Sprites.Bubble.Frames); c.Bubbles.BurstFrom < 2 || c.Bubbles.BurstFrom > bf {
		fail("bubbles.burst_from: %d outside 2..%d", c.Bubbles.BurstFrom, bf)
	}
	if len(c.Bubbles.Colors) == 0 {
		fail("bubbles.colors: at least one color required")
	}
	for _, name := range c.Bubbles.Colors {
		if _, ok := core.ParseColor(name); !ok || name == "" {
			fail("bubbles.colors: unknown color %q", name)
		}
	}

	if c.Targets.Rows < 1 || c.Targets.MaxRows < c.Targets.Rows {
		fail("targets: need 1 <= rows <= max_rows, got rows=%d max_rows=%d", c.Targets.Rows, c.Targets.MaxRows)
	}
	if c.Gameplay.Shots < 1 {
		fail("gameplay.shots: must be positive")
	}
	if c.Gameplay.Match < 2 {
		fail("gameplay.match: must be at least 2")
	}

	return errors.Join(errs...)
}

func (s SheetConfig) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", s.Width, s.Height)
	}
	if len(s.Frames) == 0 {
		return errors.New("no frames")
	}
	if _, ok := core.ParseColor(s.Color); !ok {
		return fmt.Errorf("unknown color %q", s.Color)
	}
	for i, frame := range s.Frames {
		if len(frame) != s.Height {
			return fmt.Errorf("frame %d has %d rows, expected %d", i+1, len(frame), s.Height)
		}
		for _, row := range frame {
			if utf8.RuneCountInString(row) != s.Width {
				return fmt.Errorf("frame %d row %q is not %d wide", i+1, row, s.Width)
			}
		}
	}
	return nil
}

func (r AnimationRange) validate(frames int) error {
	if r.From < 1 || r.From > frames || r.To < 1 || r.To > frames {
		return fmt.Errorf("range %d..%d outside 1..%d", r.From, r.To, frames)
	}
	if r.From == r.To {
		return fmt.Errorf("range %d..%d is empty", r.From, r.To)
	}
	switch r.Mode {
	case "", "none", "loop", "circle":
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	return nil
}
