package leveldata

import (
	"errors"
	"os"
	"testing"

	"github.com/automoto/sandscorpion/shared/gamemath"
)

func TestLoadTracks(t *testing.T) {
	data, err := LoadTracks(os.DirFS("testdata"), "track.tmx")
	if err != nil {
		t.Fatalf("LoadTracks: %v", err)
	}
	if len(data.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(data.Tracks))
	}

	loop, ok := data.Find("loop")
	if !ok {
		t.Fatal("loop track missing")
	}
	if !loop.Closed || loop.BossStart != 60 {
		t.Fatalf("loop: closed %v, boss start %v", loop.Closed, loop.BossStart)
	}
	if want := (gamemath.Vec3{X: 50, Z: -50}); !loop.Points[2].IsEqualApprox(want) {
		t.Fatalf("loop point 2 = %+v, want %+v", loop.Points[2], want)
	}

	sprint, ok := data.Find("sprint")
	if !ok {
		t.Fatal("sprint track missing")
	}
	if sprint.Closed || sprint.OpponentStart != 5 {
		t.Fatalf("sprint: closed %v, opponent start %v", sprint.Closed, sprint.OpponentStart)
	}
	if want := (gamemath.Vec3{X: 10, Z: 20}); !sprint.Points[0].IsEqualApprox(want) {
		t.Fatalf("sprint start = %+v, want %+v", sprint.Points[0], want)
	}

	cases := []struct {
		track  *Track
		length float64
	}{
		{loop, 200},
		{sprint, 200},
	}
	for _, tc := range cases {
		t.Run(tc.track.Name, func(t *testing.T) {
			p, err := tc.track.Path()
			if err != nil {
				t.Fatalf("Path: %v", err)
			}
			if !gamemath.IsEqualApprox(p.Length(), tc.length) {
				t.Fatalf("length = %v, want %v", p.Length(), tc.length)
			}
			if p.Closed() != tc.track.Closed {
				t.Fatalf("closed = %v", p.Closed())
			}
		})
	}
}

func TestFindDefaultsToFirstTrack(t *testing.T) {
	data := &TrackData{Tracks: []Track{{Name: "a"}, {Name: "b"}}}
	tr, ok := data.Find("")
	if !ok || tr.Name != "a" {
		t.Fatalf("Find(\"\") = %v, %v", tr, ok)
	}
	if _, ok := data.Find("missing"); ok {
		t.Fatal("found a missing track")
	}
}

func TestLoadTracksErrors(t *testing.T) {
	fsys := os.DirFS("testdata")
	if _, err := LoadTracks(fsys, "empty.tmx"); !errors.Is(err, ErrNoTracks) {
		t.Fatalf("empty map: got %v, want ErrNoTracks", err)
	}
	if _, err := LoadTracks(fsys, "missing.tmx"); err == nil {
		t.Fatal("missing map loaded")
	}
}

func TestLoadAllTracks(t *testing.T) {
	if _, _, err := LoadAllTracks(os.DirFS("testdata"), "."); err == nil {
		t.Fatal("expected the empty map to fail the whole load")
	}
	if _, _, err := LoadAllTracks(os.DirFS("testdata"), "nothing"); err == nil {
		t.Fatal("expected an error for a directory without maps")
	}
}
