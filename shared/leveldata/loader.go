package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/lafriks/go-tiled"
)

var ErrNoTracks = errors.New("no tracks")

// LoadTracks parses a TMX file and returns its tracks. Polygons become
// closed tracks and polylines open ones. A track's "unitSize" property sets
// how many pixels make one world unit (default 1). It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTracks(fsys fs.FS, tmxPath string) (*TrackData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &TrackData{}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != TrackLayer {
			continue
		}
		for _, o := range og.Objects {
			scale := 1.0
			if unit := o.Properties.GetFloat("unitSize"); unit > 0 {
				scale = 1 / unit
			}
			var points []gamemath.Vec3
			closed := false
			switch {
			case len(o.Polygons) > 0 && o.Polygons[0].Points != nil:
				closed = true
				for _, p := range *o.Polygons[0].Points {
					points = append(points, toWorld(o.X+p.X, o.Y+p.Y, scale))
				}
			case len(o.PolyLines) > 0 && o.PolyLines[0].Points != nil:
				// Use the first polyline if multiple polylines exist
				for _, p := range *o.PolyLines[0].Points {
					points = append(points, toWorld(o.X+p.X, o.Y+p.Y, scale))
				}
			}
			if len(points) < 2 {
				continue
			}
			data.Tracks = append(data.Tracks, Track{
				Name:          o.Name,
				Points:        points,
				Closed:        closed,
				BossStart:     o.Properties.GetFloat("bossStart"),
				OpponentStart: o.Properties.GetFloat("opponentStart"),
			})
		}
	}
	if len(data.Tracks) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoTracks)
	}

	sort.SliceStable(data.Tracks, func(i, j int) bool {
		return data.Tracks[i].Name < data.Tracks[j].Name
	})
	return data, nil
}

func toWorld(x, y, scale float64) gamemath.Vec3 {
	return gamemath.Vec3{X: x * scale, Z: y * scale}
}

// Path builds the sampled path of a track.
func (t *Track) Path() (*pathing.Polyline, error) {
	p, err := pathing.NewPolyline(t.Points, t.Closed)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", t.Name, err)
	}
	return p, nil
}

// LoadAllTracks discovers all .tmx files in dir within fsys and returns their
// tracks keyed by file stem, plus the sorted stems.
func LoadAllTracks(fsys fs.FS, dir string) (map[string]*TrackData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*TrackData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadTracks(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		maps[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return maps, names, nil
}
