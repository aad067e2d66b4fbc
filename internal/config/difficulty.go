package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// ParsePreset converts a preset name into a DifficultyPreset.
// The empty string selects the normal preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Modes.Normal.Lives = 5
		cfg.Difficulty.InitialSpeed = 2.0
		cfg.Spawn.BombChance = 0.4
		cfg.Basket.Width = 120
	case DifficultyHard:
		cfg.Modes.Normal.Lives = 2
		cfg.Difficulty.InitialSpeed = 3.0
		cfg.Spawn.BombChance = 0.75
		cfg.Basket.Width = 80
	}
}

// Validate checks the values the simulation relies on.
func (c CatcherConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Basket.Width <= 0 || c.Basket.Width > c.Playfield.Width:
		return fmt.Errorf("%w: basket width %v does not fit the playfield", ErrInvalid, c.Basket.Width)
	case c.Basket.Smoothing <= 0 || c.Basket.Smoothing > 1:
		return fmt.Errorf("%w: basket smoothing %v outside (0, 1]", ErrInvalid, c.Basket.Smoothing)
	case c.Entities.Size <= 0:
		return fmt.Errorf("%w: entity size must be positive", ErrInvalid)
	case c.Entities.PulseMin > c.Entities.PulseMax:
		return fmt.Errorf("%w: pulse_min above pulse_max", ErrInvalid)
	}

	w := c.Entities.FruitWeights
	if w.Apple < 0 || w.Banana < 0 || w.Orange < 0 || w.StarFruit < 0 || w.Blueberry < 0 ||
		w.Apple+w.Banana+w.Orange+w.StarFruit+w.Blueberry == 0 {
		return fmt.Errorf("%w: fruit weights must be non-negative with a positive sum", ErrInvalid)
	}

	for name, p := range map[string]float64{
		"bomb_chance":      c.Spawn.BombChance,
		"bomb_warn_chance": c.Spawn.BombWarnChance,
		"powerup_chance":   c.Spawn.PowerUpChance,
		"bonus_chance":     c.Modes.Unlimited.BonusChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalid, name, p)
		}
	}

	if c.Spawn.InitialMinMS <= 0 || c.Spawn.InitialMinMS > c.Spawn.InitialMaxMS {
		return fmt.Errorf("%w: initial spawn range [%d, %d]", ErrInvalid, c.Spawn.InitialMinMS, c.Spawn.InitialMaxMS)
	}
	if c.Spawn.PowerUpMinMS <= 0 || c.Spawn.PowerUpMinMS > c.Spawn.PowerUpMaxMS {
		return fmt.Errorf("%w: power-up spawn range [%d, %d]", ErrInvalid, c.Spawn.PowerUpMinMS, c.Spawn.PowerUpMaxMS)
	}
	if c.Spawn.PatternChangeMS <= 0 {
		return fmt.Errorf("%w: pattern_change_ms must be positive", ErrInvalid)
	}

	for name, m := range map[string]ModeConfig{"normal": c.Modes.Normal, "unlimited": c.Modes.Unlimited} {
		if m.Lives <= 0 && m.DurationMS <= 0 {
			return fmt.Errorf("%w: mode %s needs lives or a duration to end", ErrInvalid, name)
		}
		if m.FruitsPerDrop <= 0 || m.FruitsPerDrop > m.MaxFruitsPerDrop {
			return fmt.Errorf("%w: mode %s fruits per drop %d not in [1, %d]", ErrInvalid, name, m.FruitsPerDrop, m.MaxFruitsPerDrop)
		}
		if m.FruitDelayMS <= 0 {
			return fmt.Errorf("%w: mode %s fruit delay must be positive", ErrInvalid, name)
		}
	}

	if c.Difficulty.MilestoneStep <= 0 || c.Difficulty.LevelSize <= 0 {
		return fmt.Errorf("%w: milestone_step and level_size must be positive", ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 || c.Audio.FadeSteps <= 0 {
		return fmt.Errorf("%w: sample_rate and fade_steps must be positive", ErrInvalid)
	}
	if c.Audio.Ceiling <= 0 || c.Audio.Ceiling > 1 {
		return fmt.Errorf("%w: audio ceiling %v outside (0, 1]", ErrInvalid, c.Audio.Ceiling)
	}
	return nil
}
