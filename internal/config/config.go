// Package config provides YAML-based configuration for the fruit catcher game:
// playfield geometry, spawn timing, per-mode rules, difficulty escalation,
// particle budgets and audio levels.
package config

import "time"

// CatcherConfig contains all configuration for the game.
type CatcherConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Basket     BasketConfig     `yaml:"basket"`
	Entities   EntityConfig     `yaml:"entities"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Modes      ModesConfig      `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Particles  ParticleConfig   `yaml:"particles"`
	Audio      AudioConfig      `yaml:"audio"`
	Timers     TimerConfig      `yaml:"timers"`
}

// PlayfieldConfig is the logical playfield size in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BasketConfig defines the player's basket.
type BasketConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Target movement per tick while a key is held
	Smoothing    float64 `yaml:"smoothing"`     // Fraction of the distance to target covered per tick
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the playfield bottom to the basket center
}

// EntityConfig defines falling object parameters.
type EntityConfig struct {
	Size            float64      `yaml:"size"`
	FruitWeights    FruitWeights `yaml:"fruit_weights"`
	SpeedJitter     float64      `yaml:"speed_jitter"`      // Fruit speed is base * U(1-j, 1+j)
	BombSpeedFactor float64      `yaml:"bomb_speed_factor"` // Bombs fall faster than fruit
	BombSpeedJitter float64      `yaml:"bomb_speed_jitter"`
	PowerUpSpeed    float64      `yaml:"powerup_speed"`
	Wobble          float64      `yaml:"wobble"`         // Max horizontal jitter per tick
	RotationSpeed   float64      `yaml:"rotation_speed"` // Max degrees per tick, either direction
	PulseMin        float64      `yaml:"pulse_min"`
	PulseMax        float64      `yaml:"pulse_max"`
}

// FruitWeights are the relative spawn weights of the fruit variants.
type FruitWeights struct {
	Apple     int `yaml:"apple"`
	Banana    int `yaml:"banana"`
	Orange    int `yaml:"orange"`
	StarFruit int `yaml:"star_fruit"`
	Blueberry int `yaml:"blueberry"`
}

// SpawnConfig defines the spawn timers. All durations are milliseconds.
type SpawnConfig struct {
	InitialMinMS     int     `yaml:"initial_min_ms"`
	InitialMaxMS     int     `yaml:"initial_max_ms"`
	MinIntervalMS    int     `yaml:"min_interval_ms"`
	FruitJitterLowMS int     `yaml:"fruit_jitter_low_ms"`
	FruitJitterUpMS  int     `yaml:"fruit_jitter_up_ms"`
	BombDelayMS      int     `yaml:"bomb_delay_ms"`
	BombJitterLowMS  int     `yaml:"bomb_jitter_low_ms"`
	BombJitterUpMS   int     `yaml:"bomb_jitter_up_ms"`
	BombChance       float64 `yaml:"bomb_chance"`
	BombWarnChance   float64 `yaml:"bomb_warn_chance"`
	PatternChangeMS  int     `yaml:"pattern_change_ms"`
	PowerUpMinMS     int     `yaml:"powerup_min_ms"`
	PowerUpMaxMS     int     `yaml:"powerup_max_ms"`
	PowerUpChance    float64 `yaml:"powerup_chance"`
}

// ModesConfig holds the rules of both game modes.
type ModesConfig struct {
	Normal    ModeConfig `yaml:"normal"`
	Unlimited ModeConfig `yaml:"unlimited"`
}

// ModeConfig defines the rules of one game mode.
type ModeConfig struct {
	Lives            int     `yaml:"lives"`       // 0 means lives are not tracked
	DurationMS       int     `yaml:"duration_ms"` // 0 means no countdown
	FruitDelayMS     int     `yaml:"fruit_delay_ms"`
	FruitsPerDrop    int     `yaml:"fruits_per_drop"`
	MaxFruitsPerDrop int     `yaml:"max_fruits_per_drop"`
	BonusChance      float64 `yaml:"bonus_chance"` // Chance of extra fruit in a drop
	BonusMax         int     `yaml:"bonus_max"`
	BombEndsGame     bool    `yaml:"bomb_ends_game"`
	BombPenalty      int     `yaml:"bomb_penalty"`
	MissCostsLife    bool    `yaml:"miss_costs_life"`
	PowerUps         bool    `yaml:"powerups"`
}

// Duration returns the mode's countdown length.
func (m ModeConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// DifficultyConfig defines the milestone-driven difficulty curve and the
// cosmetic level counter.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialSpeed    float64 `yaml:"initial_speed"`
	FruitPoints     int     `yaml:"fruit_points"`
	BonusPoints     int     `yaml:"bonus_points"` // time power-up
	MilestoneStep   int     `yaml:"milestone_step"`
	SpeedStep       float64 `yaml:"speed_step"`
	DelayStepMS     int     `yaml:"delay_step_ms"`
	MinDelayMS      int     `yaml:"min_delay_ms"`
	BoostAt         int     `yaml:"boost_at"`
	BoostSpeed      float64 `yaml:"boost_speed"`
	BoostDelayMS    int     `yaml:"boost_delay_ms"`
	BoostMinDelayMS int     `yaml:"boost_min_delay_ms"`
	LevelSize       int     `yaml:"level_size"`
}

// ParticleConfig defines burst sizes and the live particle cap.
type ParticleConfig struct {
	MaxParticles   int `yaml:"max_particles"`
	CatchBurst     int `yaml:"catch_burst"`
	MissBurst      int `yaml:"miss_burst"`
	BombBurst      int `yaml:"bomb_burst"`
	PenaltyBurst   int `yaml:"penalty_burst"`
	PowerUpBurst   int `yaml:"powerup_burst"`
	PatternBursts  int `yaml:"pattern_bursts"`
	PatternSize    int `yaml:"pattern_size"`
	MilestoneSize  int `yaml:"milestone_size"`
	GameOverBursts int `yaml:"gameover_bursts"`
	GameOverSize   int `yaml:"gameover_size"`
}

// AudioConfig defines synthesis and mixing levels.
type AudioConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	Ceiling      float64 `yaml:"ceiling"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	FadeMS       int     `yaml:"fade_ms"`
	FadeSteps    int     `yaml:"fade_steps"`
	MusicSeconds float64 `yaml:"music_seconds"`
	MusicBPM     float64 `yaml:"music_bpm"`
}

// Fade returns the music fade length.
func (a AudioConfig) Fade() time.Duration {
	return time.Duration(a.FadeMS) * time.Millisecond
}

// TimerConfig defines screen and effect timers in milliseconds.
type TimerConfig struct {
	GameOverDelayMS int `yaml:"gameover_delay_ms"`
	BannerMS        int `yaml:"banner_ms"`
	SpeedBoostMS    int `yaml:"speed_boost_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
