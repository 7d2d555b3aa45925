package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"path"

	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/pkg/errors"
)

const tracksDir = "tracks"

var asphalt = color.RGBA{R: 58, G: 60, B: 66, A: 255}

var (
	//go:embed all:tracks
	trackFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Track is a loaded track plus its pre-rendered background.
type Track struct {
	*trackdata.Track
	Background *ebiten.Image
}

// TrackFS exposes the embedded track files for the headless loader.
func TrackFS() embed.FS {
	return trackFS
}

// LoadTracks parses every embedded track. The returned names are sorted.
func LoadTracks() (map[string]*trackdata.Track, []string, error) {
	return trackdata.LoadAllTracks(trackFS, tracksDir)
}

// MustLoadTrack loads a track and renders its visible tile layers.
func MustLoadTrack(name string) Track {
	tmxPath := path.Join(tracksDir, name+".tmx")
	data, err := trackdata.Load(trackFS, tmxPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load track %s: %v", name, err))
	}

	bg, err := renderBackground(tmxPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to render track %s: %v", name, err))
	}
	return Track{Track: data, Background: bg}
}

func renderBackground(tmxPath string) (*ebiten.Image, error) {
	trackMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(trackFS))
	if err != nil {
		return nil, errors.Wrap(err, "parse tmx")
	}

	bg := ebiten.NewImage(trackMap.Width*trackMap.TileWidth, trackMap.Height*trackMap.TileHeight)
	bg.Fill(asphalt)

	renderer, err := render.NewRendererWithFileSystem(trackMap, trackFS)
	if err != nil {
		return nil, errors.Wrap(err, "create renderer")
	}

	for i, layer := range trackMap.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			logging.Log.Warnf("[assets] failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return bg, nil
}

var imageCache = make(map[string]*ebiten.Image)

// MustLoadImage returns the embedded image at images/<name>, cached.
func MustLoadImage(name string) *ebiten.Image {
	if img, ok := imageCache[name]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path.Join("images", name))
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", name, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", name, err))
	}

	imageCache[name] = img
	return img
}

// KartImage is the white kart sprite, tinted per driver when drawn.
func KartImage() *ebiten.Image {
	return MustLoadImage("kart.png")
}
