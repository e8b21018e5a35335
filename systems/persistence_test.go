package systems

import "testing"

func TestEncounterRecord(t *testing.T) {
	var r EncounterRecord
	steps := []struct {
		defeated bool
		tick     int
		want     EncounterRecord
	}{
		{false, 900, EncounterRecord{Attempts: 1, Difficulty: "normal"}},
		{true, 4000, EncounterRecord{Attempts: 2, Defeats: 1, BestClearTick: 4000, Difficulty: "normal"}},
		{true, 5000, EncounterRecord{Attempts: 3, Defeats: 2, BestClearTick: 4000, Difficulty: "normal"}},
		{true, 3500, EncounterRecord{Attempts: 4, Defeats: 3, BestClearTick: 3500, Difficulty: "normal"}},
	}
	for i, step := range steps {
		r.Record(step.defeated, step.tick, "normal")
		if r != step.want {
			t.Fatalf("step %d: record = %+v, want %+v", i, r, step.want)
		}
	}
}

func TestRecordsWithoutPersistence(t *testing.T) {
	r, err := LoadRecord("nowhere")
	if err != nil || *r != (EncounterRecord{}) {
		t.Fatalf("LoadRecord = %+v, %v", r, err)
	}
	if err := SaveRecord("nowhere", r); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
}
