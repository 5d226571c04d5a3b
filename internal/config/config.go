// Package config provides YAML-based game configuration loading for the
// flappy game. Every size is a ratio of the viewport height so the board
// looks the same in a 24-row terminal and a 1080p window.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Board     FlappyBoard     `yaml:"board"`
	Actor     FlappyActor     `yaml:"actor"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Physics   FlappyPhysics   `yaml:"physics"`
	HUD       FlappyHUD       `yaml:"hud"`
	Audio     FlappyAudio     `yaml:"audio"`
	Viewport  FlappyViewport  `yaml:"viewport"`
	Theme     string          `yaml:"theme"`    // Initial theme ID ("classic", "dark")
	GodMode   bool            `yaml:"god_mode"` // Disables collisions and flapping
}

// FlappyBoard defines the board aspect ratio (width:height).
type FlappyBoard struct {
	AspectWidth  float64 `yaml:"aspect_width"`
	AspectHeight float64 `yaml:"aspect_height"`
}

// FlappyActor defines the bird size and placement.
type FlappyActor struct {
	HeightRatio  float64 `yaml:"height_ratio"`  // Bird height / viewport height
	SpriteWidth  float64 `yaml:"sprite_width"`  // Source sprite width, used for aspect only
	SpriteHeight float64 `yaml:"sprite_height"` // Source sprite height, used for aspect only
	XDivisor     float64 `yaml:"x_divisor"`     // Bird x = board width / x_divisor
}

// FlappyObstacles defines pipe size, gap and spawn cadence.
type FlappyObstacles struct {
	HeightRatio    float64 `yaml:"height_ratio"`     // Pipe height / viewport height
	WidthRatio     float64 `yaml:"width_ratio"`      // Pipe width / pipe height
	OpenSpaceRatio float64 `yaml:"open_space_ratio"` // Gap / pipe height
	SpawnInterval  float64 `yaml:"spawn_interval"`   // Seconds between pairs
}

// FlappyPhysics defines velocities as ratios of the viewport height.
type FlappyPhysics struct {
	SpeedDivisor float64 `yaml:"speed_divisor"` // Horizontal speed = height / speed_divisor per second
	JumpRatio    float64 `yaml:"jump_ratio"`    // Jump force = height * jump_ratio
	GravityRatio float64 `yaml:"gravity_ratio"` // Gravity = height * gravity_ratio
}

// FlappyHUD places the score text. Each field divides the viewport height.
type FlappyHUD struct {
	FontDivisor       float64 `yaml:"font_divisor"`
	ScoreXDivisor     float64 `yaml:"score_x_divisor"`
	BestXDivisor      float64 `yaml:"best_x_divisor"`
	BannerFontDivisor float64 `yaml:"banner_font_divisor"`
	BannerXDivisor    float64 `yaml:"banner_x_divisor"`
}

// FlappyAudio defines cue playback.
type FlappyAudio struct {
	Volume float64 `yaml:"volume"` // 0 mutes all cues
}

// FlappyViewport defines resize handling.
type FlappyViewport struct {
	ResizeDebounceMS int `yaml:"resize_debounce_ms"`
}

// ResizeDebounce returns the resize quiet period as a duration.
func (v FlappyViewport) ResizeDebounce() time.Duration {
	return time.Duration(v.ResizeDebounceMS) * time.Millisecond
}

// Validate reports every field that would make the board degenerate.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("board.aspect_width", c.Board.AspectWidth)
	positive("board.aspect_height", c.Board.AspectHeight)
	positive("actor.height_ratio", c.Actor.HeightRatio)
	positive("actor.sprite_width", c.Actor.SpriteWidth)
	positive("actor.sprite_height", c.Actor.SpriteHeight)
	positive("actor.x_divisor", c.Actor.XDivisor)
	positive("obstacles.height_ratio", c.Obstacles.HeightRatio)
	positive("obstacles.width_ratio", c.Obstacles.WidthRatio)
	positive("obstacles.open_space_ratio", c.Obstacles.OpenSpaceRatio)
	positive("obstacles.spawn_interval", c.Obstacles.SpawnInterval)
	positive("physics.speed_divisor", c.Physics.SpeedDivisor)
	positive("physics.jump_ratio", c.Physics.JumpRatio)
	positive("physics.gravity_ratio", c.Physics.GravityRatio)
	positive("hud.font_divisor", c.HUD.FontDivisor)
	positive("hud.score_x_divisor", c.HUD.ScoreXDivisor)
	positive("hud.best_x_divisor", c.HUD.BestXDivisor)
	positive("hud.banner_font_divisor", c.HUD.BannerFontDivisor)
	positive("hud.banner_x_divisor", c.HUD.BannerXDivisor)

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Viewport.ResizeDebounceMS < 0 {
		errs = append(errs, fmt.Errorf("viewport.resize_debounce_ms must not be negative, got %d", c.Viewport.ResizeDebounceMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
