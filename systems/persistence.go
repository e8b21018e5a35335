package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// EncounterRecord is the per-track history stored on disk.
type EncounterRecord struct {
	Attempts      int    `json:"attempts"`
	Defeats       int    `json:"defeats"`
	BestClearTick int    `json:"bestClearTick"` // 0 until the boss is first defeated
	Difficulty    string `json:"difficulty"`
}

// Record adds one finished attempt.
func (r *EncounterRecord) Record(defeated bool, tick int, difficulty string) {
	r.Attempts++
	r.Difficulty = difficulty
	if !defeated {
		return
	}
	r.Defeats++
	if r.BestClearTick == 0 || tick < r.BestClearTick {
		r.BestClearTick = tick
	}
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for encounter records
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sandscorpion",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func recordKey(track string) string {
	return "record_" + track
}

// LoadRecord loads the record of a track. A missing record is returned as
// a zero value.
func LoadRecord(track string) (*EncounterRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return &EncounterRecord{}, nil
	}

	data, err := gdataManager.LoadItem(recordKey(track))
	if err != nil {
		log.Printf("Warning: Could not load encounter record: %v", err)
		return &EncounterRecord{}, nil
	}
	if len(data) == 0 {
		return &EncounterRecord{}, nil
	}

	var record EncounterRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse encounter record: %v", err)
		return &EncounterRecord{}, err
	}
	return &record, nil
}

// SaveRecord saves the record of a track
func SaveRecord(track string, r *EncounterRecord) error {
	if !gdataInitialized || gdataManager == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize encounter record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordKey(track), data); err != nil {
		log.Printf("Warning: Could not save encounter record: %v", err)
		return err
	}
	return nil
}
