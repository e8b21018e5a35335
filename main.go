package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/sandscorpion/assets"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/scenes"
	"github.com/automoto/sandscorpion/shared/leveldata"
	"github.com/automoto/sandscorpion/systems"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file merged over the defaults")
	difficulty := flag.String("difficulty", "", "Override the tuning difficulty: easy, normal or hard")
	watch := flag.Bool("watch", false, "Reapply the tuning file whenever it changes")
	level := flag.String("map", assets.DefaultLevel, "Embedded map to run on")
	tmxPath := flag.String("tmx", "", "TMX file to read tracks from instead of an embedded map")
	trackName := flag.String("track", "", "Track name (empty = first track of the map)")
	scriptName := flag.String("opponent", assets.DefaultScript, "Embedded opponent script")
	scriptPath := flag.String("script", "", "Tengo opponent script file, overrides -opponent")
	tickRate := flag.Int("tickrate", config.Tick.Rate, "Encounter tick rate (updates per second)")
	maxTicks := flag.Int("ticks", 5*60*config.Tick.Rate, "Give up after this many ticks (0 = never)")
	realtime := flag.Bool("realtime", false, "Tick on the wall clock instead of as fast as possible")
	verbose := flag.Bool("events", false, "Log every encounter event")
	flag.Parse()

	tuning, err := loadTuning(*tuningPath, *difficulty)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	mapName, data, err := loadMap(*level, *tmxPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	track, ok := data.Find(*trackName)
	if !ok {
		log.Fatalf("Map %s has no track %q", mapName, *trackName)
	}
	path, err := track.Path()
	if err != nil {
		log.Fatalf("Failed to build track: %v", err)
	}
	applyTrack := func(t *config.ScorpionConfig) *config.ScorpionConfig {
		return trackTuning(t, track.BossStart)
	}

	src, err := loadScript(*scriptName, *scriptPath)
	if err != nil {
		log.Fatalf("Failed to load opponent: %v", err)
	}
	opp, err := opponent.NewScript(path, track.OpponentStart, src)
	if err != nil {
		log.Fatalf("Failed to compile opponent: %v", err)
	}

	enc, err := scenes.NewEncounter(applyTrack(tuning), path, opp)
	if err != nil {
		log.Fatalf("Failed to create encounter: %v", err)
	}
	defer enc.Unload()
	opp.BossProgress = func() float64 {
		if s := enc.Snapshot(); s != nil {
			return s.Progress
		}
		return 0
	}

	// Records are optional, the run goes ahead without them
	_ = systems.InitPersistence()
	recordKey := mapName + "_" + track.Name
	record, _ := systems.LoadRecord(recordKey)

	if *verbose {
		enc.Subscribe(func(e systems.Event) {
			log.Printf("[%6d] %v (health %d)", e.Tick, e.Kind, e.Health)
		})
	} else {
		enc.Subscribe(func(e systems.Event) {
			switch e.Kind {
			case systems.EventActivated, systems.EventPhaseTwo, systems.EventDamaged, systems.EventDefeated:
				log.Printf("[%6d] %v (health %d)", e.Tick, e.Kind, e.Health)
			}
		})
	}

	reloads := make(chan *config.ScorpionConfig, 1)
	if *watch && *tuningPath != "" {
		done := make(chan struct{})
		w, err := watchTuning(*tuningPath, *difficulty, applyTrack, reloads, done)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer w.Close()
			defer close(done)
		}
	}

	loop := scenes.NewGameLoop(enc, *tickRate)
	var scriptErr error
	loop.BeforeTick = func(dt float64) {
		select {
		case t := <-reloads:
			if err := enc.ApplyTuning(t); err != nil {
				log.Printf("Warning: Tuning rejected: %v", err)
			} else {
				log.Println("Tuning reloaded")
			}
		default:
		}
		if err := opp.Step(dt); err != nil {
			scriptErr = err
		}
	}
	loop.AfterTick = func(s *scenes.Snapshot) bool {
		return s.Defeated || scriptErr != nil || (*maxTicks > 0 && s.Tick >= *maxTicks)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down encounter...")
		loop.Stop()
	}()

	log.Printf("Starting encounter on %s/%s (%.0f units, difficulty %v, tick rate %d/s)",
		mapName, track.Name, path.Length(), tuning.Difficulty, *tickRate)
	if *realtime {
		loop.Run()
	} else {
		loop.RunUnpaced()
	}
	if scriptErr != nil {
		log.Printf("Warning: Opponent script failed: %v", scriptErr)
	}

	s := enc.Snapshot()
	log.Printf("Encounter over at tick %d (%.1fs): health %d/%d, defeated %v",
		s.Tick, s.Time, s.Health, s.Max, s.Defeated)

	record.Record(s.Defeated, s.Tick, tuning.Difficulty.String())
	if err := systems.SaveRecord(recordKey, record); err == nil {
		log.Printf("Record for %s: %d attempts, %d defeats, best clear at tick %d",
			recordKey, record.Attempts, record.Defeats, record.BestClearTick)
	}
}

func loadTuning(path, difficulty string) (*config.ScorpionConfig, error) {
	tuning := config.Scorpion.Clone()
	if path != "" {
		var err error
		tuning, err = config.LoadTuning(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
	}
	if difficulty != "" {
		d, err := config.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		tuning.Difficulty = d
	}
	return tuning, nil
}

// trackTuning places the boss at the track's start marker, when it has one,
// and scales the result by difficulty.
func trackTuning(t *config.ScorpionConfig, bossStart float64) *config.ScorpionConfig {
	out := t.Clone()
	if bossStart > 0 {
		out.Movement.StartingProgress = bossStart
	}
	return out.Scaled()
}

// watchTuning reloads the tuning file on every change and hands the result,
// passed through prepare, to the loop, which applies it between ticks. It
// stops when done is closed.
func watchTuning(path, difficulty string, prepare func(*config.ScorpionConfig) *config.ScorpionConfig,
	reloads chan<- *config.ScorpionConfig, done <-chan struct{}) (*config.Watcher, error) {
	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case <-done:
				return
			case <-w.Events:
				tuning, err := loadTuning(path, difficulty)
				if err != nil {
					log.Printf("Warning: Could not reload tuning: %v", err)
					continue
				}
				select {
				case reloads <- prepare(tuning):
				default:
					log.Println("Warning: Dropped tuning reload, previous one still pending")
				}
			case err := <-w.Errors:
				log.Printf("Warning: Tuning watcher error: %v", err)
			}
		}
	}()
	return w, nil
}

func loadMap(level, tmxPath string) (string, *leveldata.TrackData, error) {
	if tmxPath == "" {
		data, err := assets.LoadLevel(level)
		return level, data, err
	}
	name := filepath.Base(tmxPath)
	name = name[:len(name)-len(filepath.Ext(name))]
	data, err := leveldata.LoadTracks(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
	return name, data, err
}

func loadScript(name, path string) ([]byte, error) {
	if path == "" {
		return assets.Script(name)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return src, nil
}
