package config

// Quick sound names used by the race systems
const (
	SoundSkidBonus = "skid_bonus"
	SoundRescue    = "rescue"
	SoundZipper    = "zipper"
	SoundCrash     = "crash"
	SoundMenu      = "menu_select"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	MaxQueued     int // Quick sounds queued per tick beyond this are dropped
}

// SoundConfig maps quick sound names to file paths
type SoundConfig struct {
	SFXPaths          map[string]string
	VolumeMultipliers map[string]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		MaxQueued:     8,
	}

	Sound = SoundConfig{
		SFXPaths: map[string]string{
			SoundSkidBonus: "audio/sfx/skid_bonus.wav",
			SoundRescue:    "audio/sfx/rescue.wav",
			SoundZipper:    "audio/sfx/zipper.wav",
			SoundCrash:     "audio/sfx/crash.wav",
			SoundMenu:      "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[string]float64{
			SoundCrash: 0.7,
		},
	}
}
