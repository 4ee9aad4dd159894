// internal/config/config.go
package config

import "image/color"

// Viewer constants. The simulation itself only reads Settings.
const (
	HUDHeight    = 72
	MaxDeltaTime = 0.06

	EnemyHealthBarHeight = 3.0
	ProjectileRadius     = 3.0
	TowerStrokeWidth     = 2.0
	RouteStrokeWidth     = 2.0

	ButtonSize    = 10
	ClickCooldown = 150 // milliseconds
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	BuildableColor   = color.RGBA{70, 100, 120, 220}
	ObstacleColor    = color.RGBA{150, 70, 70, 220}
	RouteColor       = color.RGBA{194, 178, 128, 255}
	DecorationColor  = color.RGBA{40, 90, 50, 220}
	SpawnColor       = color.RGBA{0, 255, 0, 255}
	GoalColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{90, 20, 20, 255}
	ProjectileColor  = color.RGBA{255, 255, 0, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 0, 128}
	PausedColor      = color.RGBA{70, 130, 180, 220}
	GameOverColor    = color.RGBA{220, 60, 60, 220}
	HUDColor         = color.RGBA{30, 34, 48, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	WaveColor        = color.RGBA{70, 130, 220, 255}
	MilestoneColor   = color.RGBA{220, 40, 40, 255}
	PlayButtonColor  = color.RGBA{60, 180, 90, 255}
	SpeedColors      = []color.RGBA{{100, 160, 220, 255}, {240, 170, 40, 255}}
)
