package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default bubble shooter configuration.
// It mirrors defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			TopMargin:  2,
			SideMargin: 2,
		},
		Player: PlayerConfig{
			StartFrame:     3,
			LoopTimeMs:     60,
			OffsetX:        -7,
			RotationLoopMs: 16,
			SteerReleaseMs: 180,
			Left:           AnimationRange{From: 3, To: 1},
			Right:          AnimationRange{From: 3, To: 5},
			Shoot:          AnimationRange{From: 6, To: 7},
		},
		Shooter: ShooterGun{
			MaxRotationLeft:  -70,
			MaxRotationRight: 70,
			RotationStep:     1,
		},
		Bubbles: BubblesConfig{
			Step:          1.2,
			LoopTimeMs:    16,
			ChamberStep:   1,
			ChamberLoopMs: 20,
			BurstLoopMs:   50,
			BurstFrom:     2,
			Colors:        []string{"red", "green", "blue", "yellow", "magenta"},
		},
		Targets: TargetsConfig{
			Rows:    3,
			MaxRows: 7,
			Gap:     1,
		},
		Gameplay: GameplayConfig{
			Shots:      25,
			Match:      3,
			Points:     10,
			LevelBonus: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraRows:       3,
				ShotReduction:   10,
			},
		},
		Sprites: SpritesConfig{
			Penguin: SheetConfig{
				Width:  5,
				Height: 3,
				Color:  "white",
				Frames: [][]string{
					{".-.  ", "(oo) ", "/)_) "},
					{" .-. ", "(oo )", " )_) "},
					{" .-. ", "(o o)", " (_) "},
					{" .-. ", "( oo)", " (_( "},
					{"  .-.", " (oo)", " (_( "},
					{" .-. ", "(^ ^)", " (_) "},
					{" .-. ", "(O O)", "/(_)|"},
				},
			},
			Shooter: SheetConfig{
				Width:  3,
				Height: 3,
				Color:  "orange",
				Frames: [][]string{
					{" ^ ", " | ", " | "},
				},
			},
			Bubble: SheetConfig{
				Width:  3,
				Height: 1,
				Color:  "default",
				Frames: [][]string{
					{"(@)"}, {"(*)"}, {"<*>"}, {" * "}, {" . "},
				},
			},
		},
	}
}
