// Package replay records the inputs of a round and plays them back
// headlessly. A round is fully determined by its seed, world size,
// configuration and per-tick input, so a journal of those reproduces
// the final score exactly.
package replay

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
)

// FormatVersion is bumped when the encoded journal layout changes.
const FormatVersion = 1

// Frame is the input of one tick. Ticks without input are not stored.
type Frame struct {
	Tick int   `msgpack:"t"`
	Mask uint8 `msgpack:"m"`
}

// Journal is everything needed to replay one round.
type Journal struct {
	Version int                  `msgpack:"v"`
	GameID  string               `msgpack:"game"`
	Seed    int64                `msgpack:"seed"`
	Width   int                  `msgpack:"w"`
	Height  int                  `msgpack:"h"`
	Config  config.FlutterConfig `msgpack:"config"`
	Ticks   int                  `msgpack:"ticks"`
	Score   float64              `msgpack:"score"`
	Frames  []Frame              `msgpack:"frames"`
}

// Encode serializes a journal with msgpack.
func Encode(j Journal) ([]byte, error) {
	data, err := msgpack.Marshal(&j)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode journal: %w", err)
	}
	return data, nil
}

// Decode parses a journal produced by Encode.
func Decode(data []byte) (Journal, error) {
	var j Journal
	if err := msgpack.Unmarshal(data, &j); err != nil {
		return Journal{}, fmt.Errorf("replay: cannot decode journal: %w", err)
	}
	if j.Version != FormatVersion {
		return Journal{}, fmt.Errorf("replay: unsupported journal version %d", j.Version)
	}
	return j, nil
}

// Recorder collects the input of the round in progress.
type Recorder struct {
	gameID string
	info   flutter.RoundInfo
	ticks  int
	frames []Frame
	active bool
}

// NewRecorder creates an idle recorder for the given game.
func NewRecorder(gameID string) *Recorder {
	return &Recorder{gameID: gameID}
}

// Begin starts recording a new round, discarding any unfinished one.
func (r *Recorder) Begin(info flutter.RoundInfo) {
	r.info = info
	r.ticks = 0
	r.frames = r.frames[:0]
	r.active = true
}

// Record appends the input consumed by one simulation tick.
func (r *Recorder) Record(in core.InputFrame) {
	if !r.active {
		return
	}
	if m := in.Mask(); m != 0 {
		r.frames = append(r.frames, Frame{Tick: r.ticks, Mask: m})
	}
	r.ticks++
}

// Active reports whether a round is being recorded.
func (r *Recorder) Active() bool {
	return r.active
}

// Ticks returns the ticks recorded so far.
func (r *Recorder) Ticks() int {
	return r.ticks
}

// Finish closes the round and returns its journal.
func (r *Recorder) Finish(score float64) Journal {
	r.active = false
	frames := make([]Frame, len(r.frames))
	copy(frames, r.frames)
	return Journal{
		Version: FormatVersion,
		GameID:  r.gameID,
		Seed:    r.info.Seed,
		Width:   r.info.Width,
		Height:  r.info.Height,
		Config:  r.info.Config,
		Ticks:   r.ticks,
		Score:   score,
		Frames:  frames,
	}
}
