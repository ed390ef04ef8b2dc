package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

// playRounds drives a game the way the terminal host does and returns
// the journal of every round that ended.
func playRounds(t *testing.T, seed int64, ticks int) []Journal {
	t.Helper()

	g := flutter.NewWithConfig(config.DefaultFlutterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})

	rec := NewRecorder(g.ID())
	rec.Begin(g.Round())

	pilot := flutter.DefaultPilot()
	var journals []Journal
	for i := 0; i < ticks; i++ {
		// Alternate flown and abandoned stretches so rounds keep ending.
		in := core.NewInputFrame()
		if (i/250)%2 == 0 {
			in = pilot.Decide(g.Snapshot())
		}
		if i%97 == 0 {
			in.Set(core.ActionFlap)
		}
		if !g.State().GameOver && i%40 == 0 {
			in.Set(core.ActionSlowTime)
		}

		result := g.Step(in)
		switch {
		case result.RoundStarted:
			rec.Begin(g.Round())
			rec.Record(core.NewInputFrame())
		case result.Advanced:
			rec.Record(in)
		}
		if result.RoundEnded {
			journals = append(journals, rec.Finish(result.State.Score))
		}
	}
	return journals
}

func TestRecordedRoundsReplay(t *testing.T) {
	journals := playRounds(t, 77, 3000)
	if len(journals) < 2 {
		t.Fatalf("expected several finished rounds, got %d", len(journals))
	}

	for i, j := range journals {
		res, err := Play(j)
		if err != nil {
			t.Fatalf("round %d: Play: %v", i, err)
		}
		if !res.Matches(j) {
			t.Errorf("round %d: replay gave %+v, journal has ticks %d score %v", i, res, j.Ticks, j.Score)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	journals := playRounds(t, 5, 1500)
	if len(journals) == 0 {
		t.Fatal("expected a finished round")
	}
	j := journals[0]

	data, err := Encode(j)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Seed != j.Seed || got.Ticks != j.Ticks || got.Score != j.Score || len(got.Frames) != len(j.Frames) {
		t.Errorf("decoded journal differs: %+v", got)
	}
	if got.Config != j.Config {
		t.Error("decoded config differs")
	}

	res, err := Play(got)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Matches(j) {
		t.Errorf("decoded journal replay gave %+v", res)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("expected an error for garbage input")
	}

	data, err := Encode(Journal{Version: FormatVersion + 1, GameID: flutter.GameID})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Error("expected an error for an unknown version")
	}
}

func TestRecorderSkipsEmptyFrames(t *testing.T) {
	rec := NewRecorder(flutter.GameID)
	rec.Record(core.NewInputFrame())
	if rec.Ticks() != 0 {
		t.Error("idle recorder should ignore input")
	}

	rec.Begin(flutter.RoundInfo{Seed: 9, Width: 800, Height: 600})
	flap := core.NewInputFrame()
	flap.Set(core.ActionFlap)

	rec.Record(core.NewInputFrame())
	rec.Record(flap)
	rec.Record(core.NewInputFrame())
	rec.Record(flap)

	j := rec.Finish(0)
	if rec.Active() {
		t.Error("recorder should be idle after Finish")
	}
	if j.Ticks != 4 {
		t.Errorf("ticks = %d, want 4", j.Ticks)
	}
	want := []Frame{{Tick: 1, Mask: flap.Mask()}, {Tick: 3, Mask: flap.Mask()}}
	if len(j.Frames) != len(want) || j.Frames[0] != want[0] || j.Frames[1] != want[1] {
		t.Errorf("frames = %+v, want %+v", j.Frames, want)
	}
	if j.Seed != 9 || j.Width != 800 || j.Height != 600 || j.GameID != flutter.GameID {
		t.Errorf("unexpected journal header %+v", j)
	}
}

func TestPlayValidatesFrames(t *testing.T) {
	base := Journal{Version: FormatVersion, GameID: flutter.GameID, Seed: 1, Width: 800, Height: 600, Ticks: 10}
	base.Config = config.DefaultFlutterConfig()

	tests := []struct {
		name   string
		mutate func(*Journal)
	}{
		{"unknown game", func(j *Journal) { j.GameID = "pong" }},
		{"negative ticks", func(j *Journal) { j.Ticks = -1 }},
		{"frame past end", func(j *Journal) { j.Frames = []Frame{{Tick: 10, Mask: 2}} }},
		{"frames out of order", func(j *Journal) { j.Frames = []Frame{{Tick: 5, Mask: 2}, {Tick: 3, Mask: 2}} }},
		{"duplicate tick", func(j *Journal) { j.Frames = []Frame{{Tick: 4, Mask: 2}, {Tick: 4, Mask: 2}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := base
			tt.mutate(&j)
			if _, err := Play(j); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPlayStopsAtRecordedTicks(t *testing.T) {
	j := Journal{Version: FormatVersion, GameID: flutter.GameID, Seed: 1, Width: 800, Height: 600, Ticks: 5}
	j.Config = config.DefaultFlutterConfig()

	res, err := Play(j)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Ticks != 5 || !res.Alive {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Matches(j) {
		t.Error("a round that did not end should not match")
	}
}

func TestSaveAndLoad(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	journals := playRounds(t, 11, 1000)
	if len(journals) == 0 {
		t.Fatal("expected a finished round")
	}
	j := journals[0]

	id, err := Save(store, j)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID: %v", err)
	}
	if run.Seed != j.Seed || run.Ticks != j.Ticks || run.Score != j.Score {
		t.Errorf("stored run header %+v does not match journal", run)
	}

	loaded, err := Load(store, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	res, err := Play(loaded)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Matches(j) {
		t.Errorf("loaded journal replay gave %+v", res)
	}

	if _, err := Load(store, id+100); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Load of a missing run = %v, want ErrNotFound", err)
	}
}
