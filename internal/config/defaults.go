package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the hardcoded default configuration.
// It mirrors defaults/catcher.yaml and is used when the embedded file
// cannot be parsed.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Basket: BasketConfig{
			Width:        100,
			Height:       50,
			Speed:        10,
			Smoothing:    0.2,
			BottomOffset: 100,
		},
		Entities: EntityConfig{
			Size: 48,
			FruitWeights: FruitWeights{
				Apple:     25,
				Banana:    25,
				Orange:    25,
				StarFruit: 15,
				Blueberry: 15,
			},
			SpeedJitter:     0.1,
			BombSpeedFactor: 1.1,
			BombSpeedJitter: 0.05,
			PowerUpSpeed:    3,
			Wobble:          1,
			RotationSpeed:   2,
			PulseMin:        0.05,
			PulseMax:        0.1,
		},
		Spawn: SpawnConfig{
			InitialMinMS:     1000,
			InitialMaxMS:     2000,
			MinIntervalMS:    1000,
			FruitJitterLowMS: 300,
			FruitJitterUpMS:  200,
			BombDelayMS:      1500,
			BombJitterLowMS:  200,
			BombJitterUpMS:   500,
			BombChance:       0.6,
			BombWarnChance:   0.5,
			PatternChangeMS:  15000,
			PowerUpMinMS:     8000,
			PowerUpMaxMS:     12000,
			PowerUpChance:    0.5,
		},
		Modes: ModesConfig{
			Normal: ModeConfig{
				Lives:            3,
				FruitDelayMS:     2000,
				FruitsPerDrop:    1,
				MaxFruitsPerDrop: 6,
				BombEndsGame:     true,
				MissCostsLife:    true,
			},
			Unlimited: ModeConfig{
				DurationMS:       55000,
				FruitDelayMS:     1200,
				FruitsPerDrop:    8,
				MaxFruitsPerDrop: 15,
				BonusChance:      0.3,
				BonusMax:         3,
				BombPenalty:      50,
				PowerUps:         true,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialSpeed:    2.5,
			FruitPoints:     100,
			BonusPoints:     500,
			MilestoneStep:   1000,
			SpeedStep:       0.2,
			DelayStepMS:     100,
			MinDelayMS:      800,
			BoostAt:         2000,
			BoostSpeed:      0.5,
			BoostDelayMS:    200,
			BoostMinDelayMS: 600,
			LevelSize:       1000,
		},
		Particles: ParticleConfig{
			MaxParticles:   4000,
			CatchBurst:     20,
			MissBurst:      15,
			BombBurst:      50,
			PenaltyBurst:   30,
			PowerUpBurst:   25,
			PatternBursts:  20,
			PatternSize:    15,
			MilestoneSize:  20,
			GameOverBursts: 25,
			GameOverSize:   20,
		},
		Audio: AudioConfig{
			SampleRate:   44100,
			Ceiling:      0.9,
			SFXVolume:    0.4,
			MusicVolume:  0.4,
			FadeMS:       2000,
			FadeSteps:    20,
			MusicSeconds: 10,
			MusicBPM:     120,
		},
		Timers: TimerConfig{
			GameOverDelayMS: 2000,
			BannerMS:        2000,
			SpeedBoostMS:    5000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCatcherYAML
}
