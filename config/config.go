package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// MotionConfig contains the movement and fade tuning for word entities
type MotionConfig struct {
	FallSpeed    float64 // units/second a falling word descends
	TypeNudge    float64 // units a falling word is pushed up per matched rune
	DriftSpeed   float64 // magnitude of the float-away drift vector (units/second)
	DriftRange   float64 // drift components are drawn from [-DriftRange, DriftRange]
	FadeFactor   float64 // alpha multiplier applied once per frame while floating away
	AlphaEpsilon float64 // alpha below this snaps to 0
	MissMargin   float64 // distance below the bottom edge before a falling word counts as missed
}

// ScoreConfig contains scoring rules
type ScoreConfig struct {
	PointsPerRune int
}

// UIConfig contains HUD and text styling values
type UIConfig struct {
	WordFontSize  float64
	HUDFontSize   float64
	TitleFontSize float64

	MatchedColor   color.RGBA
	RemainingColor color.RGBA
	HUDColor       color.RGBA
	PulseColor     color.RGBA

	HUDMargin     int
	PulseScale    float32 // HUD score scale at the start of a pulse
	PulseDuration float32 // seconds
}

// TitleConfig contains the title screen layout
type TitleConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	SelectedColor   color.RGBA
	TitleY          float64
	LevelY          float64
	HintY           float64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Global configuration instances
var C *Config
var Motion MotionConfig
var Score ScoreConfig
var UI UIConfig
var Title TitleConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
		Title:  "typefall",
	}

	Motion = MotionConfig{
		FallSpeed:    30.0,
		TypeNudge:    50.0,
		DriftSpeed:   50.0,
		DriftRange:   10.0,
		FadeFactor:   0.97,
		AlphaEpsilon: 0.001,
		MissMargin:   0.0,
	}

	Score = ScoreConfig{
		PointsPerRune: 10,
	}

	UI = UIConfig{
		WordFontSize:  60,
		HUDFontSize:   18,
		TitleFontSize: 40,

		MatchedColor:   Yellow,
		RemainingColor: White,
		HUDColor:       White,
		PulseColor:     BrightYellow,

		HUDMargin:     12,
		PulseScale:    1.6,
		PulseDuration: 0.35,
	}

	Title = TitleConfig{
		BackgroundColor: Black,
		TitleColor:      White,
		TextColor:       DarkBlue,
		SelectedColor:   LightBlue,
		TitleY:          140,
		LevelY:          260,
		HintY:           420,
	}
}
