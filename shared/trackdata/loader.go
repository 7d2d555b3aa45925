package trackdata

import (
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
)

// ErrNoTracks is returned by LoadAllTracks when the directory has no .tmx files.
var ErrNoTracks = errors.New("trackdata: no tracks found")

const (
	wallLayer          = "walls"
	startGroup         = "KartStart"
	rescueGroup        = "RescuePoint"
	zipperGroup        = "Zipper"
	headingProperty    = "heading" // Degrees, clockwise from +X like Tiled's rotation
	startIndexProperty = "startIndex"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (server).
func Load(fsys fs.FS, tmxPath string) (*Track, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrapf(err, "load TMX %s", tmxPath)
	}

	track := &Track{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != wallLayer {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if layer.Tiles[y*m.Width+x].IsNil() {
					continue
				}
				track.Walls = append(track.Walls, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case startGroup:
			for _, o := range og.Objects {
				track.Starts = append(track.Starts, StartPoint{
					X:       o.X,
					Y:       o.Y,
					Heading: heading(o),
					Index:   o.Properties.GetInt(startIndexProperty),
				})
			}
		case rescueGroup:
			for _, o := range og.Objects {
				track.RescuePoints = append(track.RescuePoints, RescuePoint{
					X:       o.X,
					Y:       o.Y,
					Heading: heading(o),
				})
			}
		case zipperGroup:
			for _, o := range og.Objects {
				track.Zippers = append(track.Zippers, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	sort.SliceStable(track.Starts, func(i, j int) bool {
		return track.Starts[i].Index < track.Starts[j].Index
	})

	return track, nil
}

func heading(o *tiled.Object) float64 {
	return o.Properties.GetFloat(headingProperty) * math.Pi / 180
}

// LoadAllTracks discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllTracks(fsys fs.FS, dir string) (map[string]*Track, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "glob %s", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, errors.Wrapf(ErrNoTracks, "in %s", dir)
	}

	tracks := make(map[string]*Track, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		track, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		tracks[track.Name] = track
		names = append(names, track.Name)
	}

	sort.Strings(names)
	return tracks, names, nil
}
