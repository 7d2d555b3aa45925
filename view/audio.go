// Package view draws the race and plays its sounds.
package view

import (
	"sync"

	"github.com/automoto/kartrace-mp/assets"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	audioContext  *audio.Context
	audioLoader   *assets.AudioLoader
	sfxVolume     = cfg.Audio.DefaultSFXVol
	audioInitOnce sync.Once
)

func initAudio() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
		audioLoader = assets.NewAudioLoader(audioContext)
	})
}

// PreloadAllSFX decodes every quick sound so the first play has no lag.
func PreloadAllSFX() {
	initAudio()
	for name, path := range cfg.Sound.SFXPaths {
		if err := audioLoader.PreloadSFX(path); err != nil {
			logging.Log.Warnf("[audio] preload %s: %v", name, err)
		}
	}
}

// PlaySounds plays the named quick sounds, at most cfg.Audio.MaxQueued of
// them per call.
func PlaySounds(names []string) {
	if len(names) == 0 || sfxVolume <= 0 {
		return
	}
	initAudio()

	if len(names) > cfg.Audio.MaxQueued {
		names = names[:cfg.Audio.MaxQueued]
	}
	for _, name := range names {
		playSFX(name)
	}
}

func playSFX(name string) {
	path, ok := cfg.Sound.SFXPaths[name]
	if !ok {
		logging.Log.Debugf("[audio] unknown sound %q", name)
		return
	}

	player, err := audioLoader.LoadSFX(path)
	if err != nil {
		logging.Log.Warnf("[audio] %v", err)
		return
	}

	player.SetVolume(SoundVolume(name, sfxVolume))
	player.Play()
}

// SoundVolume applies the per-sound multiplier to the base volume.
func SoundVolume(name string, base float64) float64 {
	if mult, ok := cfg.Sound.VolumeMultipliers[name]; ok {
		return base * mult
	}
	return base
}
