package config

import (
	"image/color"

	"github.com/automoto/kartrace-mp/controller"
)

// RaceConfig contains race flow and controller tuning values
type RaceConfig struct {
	// Countdown phase lengths in ticks
	SetupTicks      int
	TrackIntroTicks int
	ReadyTicks      int
	SetTicks        int
	GoTicks         int // GO is shown this long before the race phase

	// Controller
	StuckSpeed              float64 // m/s below which a kart counts as stationary
	StuckTime               float64 // Seconds stationary before auto-rescue
	FalseStartPenalty       float64 // Seconds of locked throttle after a false start
	DisableSteerWhileUnskid bool

	DefaultTrack string
	PlayerName   string
	MaxKarts     int
}

// ControllerConfig returns the tuning every PlayerController is created with.
func (r RaceConfig) ControllerConfig() controller.Config {
	return controller.Config{
		DisableSteerWhileUnskid: r.DisableSteerWhileUnskid,
		StuckSpeed:              r.StuckSpeed,
		StuckTime:               r.StuckTime,
		FalseStartPenalty:       r.FalseStartPenalty,
		PenaltyMessage:          Message.FalseStart,
	}
}

// KartConfig contains kart physics values. Speeds are in pixels per tick,
// PixelsPerMeter converts them for the controller's m/s thresholds.
type KartConfig struct {
	Acceleration    float64
	BrakeDecel      float64
	Friction        float64
	MaxSpeed        float64
	MaxReverseSpeed float64
	NitroAccel      float64
	NitroMaxSpeed   float64
	ZipperSpeed     float64 // Speed the kart is set to when crossing a zipper
	ZipperTicks     int     // Ticks the zipper fire is shown

	MaxTurn       float64 // Radians per tick at full steering
	FullTurnSpeed float64 // Speed at which steering reaches MaxTurn
	WallBounce    float64 // Fraction of speed kept after hitting a wall

	// Skidding
	SkidMinSpeed   float64 // Minimum speed to start a skid
	SkidTurnBonus  float64 // Turn multiplier while skidding
	SkidBonusTicks int     // Skid length that earns the bonus
	SkidBonusSpeed float64 // Speed added when a long skid is released

	// Rescue animation
	RescueTicks  int
	RescueHeight float64 // Pixels the kart is lifted

	PixelsPerMeter float64
	TicksPerSecond int

	CollisionWidth  float64
	CollisionHeight float64
}

// NetworkConfig holds networking defaults shared by client and server
type NetworkConfig struct {
	Version        string
	DefaultAddress string
	DefaultPort    int
	ServerName     string
	TickRate       int
	MaxPlayers     int
	ConnectTimeout int // Ticks the lobby waits for the join handshake

	LANPort     int     // UDP port servers announce themselves on
	LANInterval float64 // Seconds between announcements
	LANTTL      float64 // Seconds a silent server stays listed
}

// MessageConfig contains race message configuration
type MessageConfig struct {
	FalseStart      string
	DefaultDuration float64 // Seconds
	TextColor       color.RGBA
	TopMargin       float64
}

// InputConfig holds device-independent input settings. Key bindings live with
// the devices since they depend on ebiten.
type InputConfig struct {
	AnalogDeadzone   float64 // 0.0 to 1.0
	TriggerThreshold float64 // Trigger travel below this is released
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw phase and control values over the race
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Race RaceConfig
var Kart KartConfig
var Network NetworkConfig
var Message MessageConfig
var Input InputConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// KartColors tints karts by kart ID. The local kart always uses the first.
var KartColors = []color.RGBA{
	{R: 80, G: 220, B: 80, A: 255},
	{R: 230, G: 70, B: 70, A: 255},
	{R: 70, G: 130, B: 240, A: 255},
	{R: 240, G: 200, B: 60, A: 255},
}

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Race = RaceConfig{
		SetupTicks:      1,
		TrackIntroTicks: 60,
		ReadyTicks:      60,
		SetTicks:        60,
		GoTicks:         60,

		StuckSpeed:        2.0,
		StuckTime:         2.0,
		FalseStartPenalty: 2.0,

		DefaultTrack: "oval",
		PlayerName:   "Player",
		MaxKarts:     4,
	}

	Kart = KartConfig{
		Acceleration:    0.08,
		BrakeDecel:      0.2,
		Friction:        0.03,
		MaxSpeed:        4.0,
		MaxReverseSpeed: 1.5,
		NitroAccel:      0.15,
		NitroMaxSpeed:   5.5,
		ZipperSpeed:     6.0,
		ZipperTicks:     45,

		MaxTurn:       0.06,
		FullTurnSpeed: 2.0,
		WallBounce:    0.0, // Walls stop the kart dead so the stuck monitor can kick in

		SkidMinSpeed:   2.5,
		SkidTurnBonus:  1.5,
		SkidBonusTicks: 60,
		SkidBonusSpeed: 1.0,

		RescueTicks:  90,
		RescueHeight: 24,

		PixelsPerMeter: 16,
		TicksPerSecond: 60,

		CollisionWidth:  14,
		CollisionHeight: 14,
	}

	Network = NetworkConfig{
		Version:        "0.1.0",
		DefaultAddress: "127.0.0.1",
		DefaultPort:    2759,
		ServerName:     "kartrace",
		TickRate:       60,
		MaxPlayers:     4,
		ConnectTimeout: 600,

		LANPort:     2760,
		LANInterval: 1.0,
		LANTTL:      3.0,
	}

	Message = MessageConfig{
		FalseStart:      "False start!  Brakes locked for two seconds.",
		DefaultDuration: 2.0,
		TextColor:       Yellow,
		TopMargin:       24,
	}

	Input = InputConfig{
		AnalogDeadzone:   0.25,
		TriggerThreshold: 0.05,
	}
}
