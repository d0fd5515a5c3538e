// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// ShooterConfig contains all configuration for the penguin bubble shooter.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Shooter    ShooterGun       `yaml:"shooter"`
	Bubbles    BubblesConfig    `yaml:"bubbles"`
	Targets    TargetsConfig    `yaml:"targets"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Debug      bool             `yaml:"debug"` // Overlay entity text on the field
}

// FieldConfig defines the play area inside the screen.
type FieldConfig struct {
	TopMargin    int `yaml:"top_margin"`    // Rows reserved for the HUD
	SideMargin   int `yaml:"side_margin"`   // Columns left free on each side
	BottomMargin int `yaml:"bottom_margin"` // Rows below the penguin
}

// AnimationRange is one named frame animation of a sprite sheet.
type AnimationRange struct {
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	Mode string `yaml:"mode"` // "none", "loop" or "circle"
}

// PlayerConfig defines the penguin and its controls.
type PlayerConfig struct {
	StartFrame     int            `yaml:"start_frame"`
	LoopTimeMs     int            `yaml:"loop_time_ms"`     // Penguin frame interval
	OffsetX        int            `yaml:"offset_x"`         // Penguin column relative to the shooter
	RotationLoopMs int            `yaml:"rotation_loop_ms"` // Shooter rotation observer period
	SteerReleaseMs int            `yaml:"steer_release_ms"` // Idle time after a steer key before centering
	Left           AnimationRange `yaml:"left"`
	Right          AnimationRange `yaml:"right"`
	Shoot          AnimationRange `yaml:"shoot"`
}

// ShooterGun defines the rotating shooter.
type ShooterGun struct {
	MaxRotationLeft  float64 `yaml:"max_rotation_left"`  // Degrees, negative
	MaxRotationRight float64 `yaml:"max_rotation_right"` // Degrees, positive
	RotationStep     float64 `yaml:"rotation_step"`      // Degrees per observer tick
}

// BubblesConfig defines bubble motion and colors.
type BubblesConfig struct {
	Step          float64  `yaml:"step"`            // Cells per motion tick when fired
	LoopTimeMs    int      `yaml:"loop_time_ms"`    // Motion tick when fired
	ChamberStep   float64  `yaml:"chamber_step"`    // Cells per tick when loading
	ChamberLoopMs int      `yaml:"chamber_loop_ms"` // Motion tick when loading
	BurstLoopMs   int      `yaml:"burst_loop_ms"`   // Burst animation frame interval
	BurstFrom     int      `yaml:"burst_from"`      // First frame of the burst animation
	Colors        []string `yaml:"colors"`
}

// TargetsConfig defines the rows of bubbles waiting at the top of the field.
type TargetsConfig struct {
	Rows    int `yaml:"rows"`     // Rows on the first level
	MaxRows int `yaml:"max_rows"` // Rows never exceed this
	Gap     int `yaml:"gap"`      // Columns between neighbouring bubbles
}

// GameplayConfig defines scoring and the end of the game.
type GameplayConfig struct {
	Shots      int `yaml:"shots"`       // Shots available per level
	Match      int `yaml:"match"`       // Connected bubbles of one color that pop
	Points     int `yaml:"points"`      // Score per popped or dropped bubble
	LevelBonus int `yaml:"level_bonus"` // Score per unused shot when a level is cleared
}

// SpritesConfig holds the rune-art sheets.
type SpritesConfig struct {
	Penguin SheetConfig `yaml:"penguin"`
	Shooter SheetConfig `yaml:"shooter"`
	Bubble  SheetConfig `yaml:"bubble"`
}

// SheetConfig is a horizontal sprite sheet: each frame is Height rows of
// Width runes.
type SheetConfig struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to bubble speed at max difficulty
	ExtraRows       int     `yaml:"extra_rows"`       // Target rows added at max difficulty
	ShotReduction   int     `yaml:"shot_reduction"`   // Shots removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Millis converts a millisecond config value to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
