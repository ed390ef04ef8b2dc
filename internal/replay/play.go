package replay

import (
	"fmt"

	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
)

// Result is the outcome of a headless playback.
type Result struct {
	Ticks int
	Score float64
	Alive bool
}

// Matches reports whether the playback ended the way the journal did:
// the entity died on the final recorded tick with the recorded score.
func (r Result) Matches(j Journal) bool {
	return !r.Alive && r.Ticks == j.Ticks && r.Score == j.Score
}

// Play re-simulates a journal. Playback stops early if the entity dies
// before the recorded tick count.
func Play(j Journal) (Result, error) {
	if j.GameID != flutter.GameID {
		return Result{}, fmt.Errorf("replay: unknown game %q", j.GameID)
	}
	if j.Ticks < 0 {
		return Result{}, fmt.Errorf("replay: negative tick count %d", j.Ticks)
	}
	for i, f := range j.Frames {
		if f.Tick < 0 || f.Tick >= j.Ticks {
			return Result{}, fmt.Errorf("replay: frame %d at tick %d outside round of %d ticks", i, f.Tick, j.Ticks)
		}
		if i > 0 && f.Tick <= j.Frames[i-1].Tick {
			return Result{}, fmt.Errorf("replay: frame %d at tick %d is out of order", i, f.Tick)
		}
	}

	w := flutter.NewWorld(j.Config, j.Seed)
	w.Reset(j.Width, j.Height)

	next := 0
	ticks := 0
	for ticks < j.Ticks && w.Alive() {
		in := core.NewInputFrame()
		if next < len(j.Frames) && j.Frames[next].Tick == ticks {
			in = core.FrameFromMask(j.Frames[next].Mask)
			next++
		}
		w.Apply(in)
		w.Advance(1)
		ticks++
	}

	return Result{Ticks: ticks, Score: w.Score(), Alive: w.Alive()}, nil
}
