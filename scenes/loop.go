package scenes

import (
	"log"
	"sync"
	"time"
)

// GameLoop ticks an encounter at a fixed rate from a single goroutine.
type GameLoop struct {
	encounter *Encounter
	tickRate  int
	stopChan  chan struct{}
	stopOnce  sync.Once

	// BeforeTick runs ahead of every tick, usually to step the opponent.
	BeforeTick func(dt float64)
	// AfterTick sees each committed snapshot; returning true ends Run.
	AfterTick func(s *Snapshot) bool
}

func NewGameLoop(encounter *Encounter, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		encounter: encounter,
		tickRate:  tickRate,
		stopChan:  make(chan struct{}),
	}
}

// Run blocks until Stop is called or AfterTick asks to end.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if g.Step() {
				log.Println("Game loop finished")
				return
			}
		}
	}
}

// RunUnpaced ticks back to back without a wall clock until Stop is called
// or AfterTick asks to end.
func (g *GameLoop) RunUnpaced() {
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		default:
		}
		if g.Step() {
			return
		}
	}
}

// Step runs one tick without waiting and reports whether the loop should end.
func (g *GameLoop) Step() bool {
	dt := 1 / float64(g.tickRate)
	if g.BeforeTick != nil {
		g.BeforeTick(dt)
	}
	g.encounter.Tick(dt)
	if g.AfterTick != nil {
		return g.AfterTick(g.encounter.Snapshot())
	}
	return false
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
