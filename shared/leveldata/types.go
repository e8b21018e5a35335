// Package leveldata parses race tracks from TMX maps. It has no dependencies
// on donburi or resolv, pure data only.
package leveldata

import "github.com/automoto/sandscorpion/shared/gamemath"

// TrackLayer is the object group tracks are read from.
const TrackLayer = "Tracks"

// Track is one polyline track. Map X becomes world X and map Y becomes
// world Z, scaled by the track's unit size.
type Track struct {
	Name   string
	Points []gamemath.Vec3
	Closed bool

	// Optional per-track overrides, 0 when unset
	BossStart     float64
	OpponentStart float64
}

// TrackData holds every track of one map.
type TrackData struct {
	Tracks []Track
}

// Find returns the track called name, or the first track when name is empty.
func (d *TrackData) Find(name string) (*Track, bool) {
	for i := range d.Tracks {
		if name == "" || d.Tracks[i].Name == name {
			return &d.Tracks[i], true
		}
	}
	return nil, false
}
