package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: FlappyBoard{
			AspectWidth:  9,
			AspectHeight: 16,
		},
		Actor: FlappyActor{
			HeightRatio:  0.0375,
			SpriteWidth:  408,
			SpriteHeight: 228,
			XDivisor:     8,
		},
		Obstacles: FlappyObstacles{
			HeightRatio:    0.8,
			WidthRatio:     0.125,
			OpenSpaceRatio: 0.25,
			SpawnInterval:  2,
		},
		Physics: FlappyPhysics{
			SpeedDivisor: 7.4,
			JumpRatio:    0.6,
			GravityRatio: 2.0,
		},
		HUD: FlappyHUD{
			FontDivisor:       20,
			ScoreXDivisor:     80,
			BestXDivisor:      4.4,
			BannerFontDivisor: 15,
			BannerXDivisor:    12,
		},
		Audio: FlappyAudio{
			Volume: 0.2,
		},
		Viewport: FlappyViewport{
			ResizeDebounceMS: 1000,
		},
		Theme: "classic",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
