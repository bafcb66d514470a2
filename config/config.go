package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Collision box in level pixels
	Width  float64
	Height float64

	// Instantaneous vertical impulse applied on jump, scaled by gravity sign
	JumpImpulse float64

	// Boost tile multipliers
	BoostWith    float64 // Moving in the boost direction
	BoostAgainst float64 // Moving against the boost direction
}

// PhysicsConfig contains global physics constants
type PhysicsConfig struct {
	AccelerationY float64 // Per-second increase of the per-step vertical displacement
	MaxFrameDelta float64 // Seconds; longer frames are clamped
}

// TileConfig contains tile grid constants and the tileset collision table
type TileConfig struct {
	Size float64

	// Collision maps a raw tile-sheet index to a collision code (0..7)
	Collision []int
}

// CameraConfig contains scroll behavior values in level pixels
type CameraConfig struct {
	LeadRight float64 // Player distance from the left view edge when moving right
	LeadLeft  float64 // Player distance from the right view edge when moving left
	MarginY   float64 // Vertical dead-zone margin
}

// SessionConfig contains level lifecycle timing in seconds
type SessionConfig struct {
	IrisStart    float64
	IrisEnd      float64
	IrisDuration float64

	PauseFadeDuration     float64
	PauseFadeAlpha        float64
	DeathFadeDelay        float64
	DeathFadeDuration     float64
	FinishFadeDuration    float64
	InputLockFadeDuration float64
	LoopFadeDuration      float64 // Step loop fade-out after input locks
}

// PauseConfig describes the tap zones of the pause button and pause menu.
// Button coordinates are density-independent pixels; menu columns are
// fractions of the screen width.
type PauseConfig struct {
	Density float64

	ButtonMin float64
	ButtonMax float64

	MenuLeft  float64
	MenuRight float64

	ContinueTop    float64 // Offsets from the vertical center
	ContinueBottom float64
	ExitTop        float64
	ExitBottom     float64

	OverlayColor color.RGBA
	ButtonColor  color.RGBA
	TextColor    color.RGBA
}

// UIConfig contains HUD and rendering values
type UIConfig struct {
	HUDMargin     float64
	FontSize      float64
	TitleFontSize float64

	TileColors      map[int]color.RGBA
	PlayerColor     color.RGBA
	Backgrounds     map[string]color.RGBA
	DefaultBackdrop color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowGrid    bool // Draw tile grid lines and the player collision box
	WatchLevels bool // Reload the current level when its file changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Tiles TileConfig
var Camera CameraConfig
var Session SessionConfig
var Pause PauseConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Width:        18,
		Height:       24,
		JumpImpulse:  5,
		BoostWith:    1.5,
		BoostAgainst: 2.0 / 3.0,
	}

	Physics = PhysicsConfig{
		AccelerationY: 10,
		MaxFrameDelta: 0.05,
	}

	Tiles = TileConfig{
		Size: 24,
		// Sheet layout: ground variants, spikes, inverters, boosts, goal, lock, decoration
		Collision: []int{
			1, 1, 1, 1, // 0-3 ground, wall, ceiling, block
			2, 2, // 4-5 spikes up, spikes down
			3,    // 6 direction inverter
			4, 5, // 7-8 boost right, boost left
			6,    // 9 finish
			7,    // 10 input lock
			0, 0, // 11-12 decoration
		},
	}

	Camera = CameraConfig{
		LeadRight: 96,
		LeadLeft:  120,
		MarginY:   48,
	}

	Session = SessionConfig{
		IrisStart:    0.1,
		IrisEnd:      1,
		IrisDuration: 0.9,

		PauseFadeDuration:     0.2,
		PauseFadeAlpha:        128,
		DeathFadeDelay:        0.3,
		DeathFadeDuration:     1.0,
		FinishFadeDuration:    3.5,
		InputLockFadeDuration: 2.5,
		LoopFadeDuration:      3.5,
	}

	Pause = PauseConfig{
		Density:   1,
		ButtonMin: 10,
		ButtonMax: 40,

		MenuLeft:  0.33,
		MenuRight: 0.66,

		ContinueTop:    -10,
		ContinueBottom: 50,
		ExitTop:        70,
		ExitBottom:     130,

		OverlayColor: BlackOverlay,
		ButtonColor:  DarkBlue,
		TextColor:    White,
	}

	UI = UIConfig{
		HUDMargin:     10,
		FontSize:      14,
		TitleFontSize: 28,

		TileColors: map[int]color.RGBA{
			1: Grey,
			2: LightRed,
			3: Purple,
			4: Orange,
			5: Yellow,
			6: BrightGreen,
			7: LightBlue,
		},
		PlayerColor: White,
		Backgrounds: map[string]color.RGBA{
			"cave":   {R: 24, G: 20, B: 32, A: 255},
			"forest": {R: 18, G: 40, B: 28, A: 255},
			"lab":    {R: 20, G: 28, B: 44, A: 255},
		},
		DefaultBackdrop: color.RGBA{R: 16, G: 16, B: 24, A: 255},
	}
}
