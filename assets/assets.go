// Package assets embeds the maps and opponent scripts the headless runner
// uses when no files are given on the command line.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/sandscorpion/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:scripts
	scriptFS embed.FS
)

const (
	DefaultLevel  = "desert"
	DefaultScript = "chaser"
)

// LevelFS exposes the embedded levels directory.
func LevelFS() fs.FS {
	return assetFS
}

// MustLoadLevels loads every embedded map keyed by name, plus the sorted
// names. Embedded maps ship with the binary, so a broken one panics.
func MustLoadLevels() (map[string]*leveldata.TrackData, []string) {
	levels, names, err := leveldata.LoadAllTracks(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded levels: %v", err))
	}
	return levels, names
}

// LoadLevel loads one embedded map by name.
func LoadLevel(name string) (*leveldata.TrackData, error) {
	return leveldata.LoadTracks(assetFS, path.Join("levels", name+".tmx"))
}

// Script returns the source of an embedded opponent script.
func Script(name string) ([]byte, error) {
	src, err := scriptFS.ReadFile(path.Join("scripts", name+".tengo"))
	if err != nil {
		return nil, fmt.Errorf("opponent script %q: %w", name, err)
	}
	return src, nil
}

// ScriptNames lists the embedded opponent scripts.
func ScriptNames() []string {
	entries, err := fs.ReadDir(scriptFS, "scripts")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".tengo"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
