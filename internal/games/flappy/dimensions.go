package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Dimensions are the sizes derived from the viewport. Everything scales with
// the viewport height; the width only decides how the host centers the board.
type Dimensions struct {
	ViewW, ViewH float64

	BoardW, BoardH float64

	ActorX, ActorStartY float64
	ActorW, ActorH      float64

	PaneW, PaneH float64
	SpawnX       float64 // Pipes enter at the right edge of the board
	BaseY        float64
	OpenSpace    float64

	Speed     float64 // Horizontal pipe speed, units per second
	JumpForce float64 // Upward velocity set by a flap
	Gravity   float64 // Acceleration once the bird has flapped

	FontSize   float64
	ScoreX     float64
	BestX      float64
	TextY      float64
	BannerFont float64
	BannerX    float64
	BannerY    float64
}

// ComputeDimensions derives all sizes from cfg for a viewW x viewH viewport.
func ComputeDimensions(cfg config.FlappyConfig, viewW, viewH float64) Dimensions {
	h := viewH
	boardW := h / cfg.Board.AspectHeight * cfg.Board.AspectWidth
	actorH := h * cfg.Actor.HeightRatio
	paneH := h * cfg.Obstacles.HeightRatio

	return Dimensions{
		ViewW: viewW,
		ViewH: viewH,

		BoardW: boardW,
		BoardH: h,

		ActorX:      boardW / cfg.Actor.XDivisor,
		ActorStartY: h / 2,
		ActorW:      actorH / cfg.Actor.SpriteHeight * cfg.Actor.SpriteWidth,
		ActorH:      actorH,

		PaneW:     paneH * cfg.Obstacles.WidthRatio,
		PaneH:     paneH,
		SpawnX:    boardW,
		BaseY:     0,
		OpenSpace: paneH * cfg.Obstacles.OpenSpaceRatio,

		Speed:     h / cfg.Physics.SpeedDivisor,
		JumpForce: h * cfg.Physics.JumpRatio,
		Gravity:   h * cfg.Physics.GravityRatio,

		FontSize:   h / cfg.HUD.FontDivisor,
		ScoreX:     h / cfg.HUD.ScoreXDivisor,
		BestX:      h / cfg.HUD.BestXDivisor,
		TextY:      h / cfg.HUD.FontDivisor,
		BannerFont: h / cfg.HUD.BannerFontDivisor,
		BannerX:    h / cfg.HUD.BannerXDivisor,
		BannerY:    h / 2,
	}
}
