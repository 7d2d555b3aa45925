package assets

import (
	"bytes"
	"embed"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader decodes embedded sound effects once and hands out players
// over the cached PCM.
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for the sound at path.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	pcm, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if pcm, ok := l.sfxCache[path]; ok {
		return pcm, nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read audio file %s", path)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, errors.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "read decoded audio %s", path)
	}
	l.sfxCache[path] = pcm
	return pcm, nil
}
