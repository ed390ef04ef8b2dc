package replay

import (
	"fmt"

	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

// Save encodes a journal and stores it as a run.
func Save(store *storage.Store, j Journal) (int64, error) {
	data, err := Encode(j)
	if err != nil {
		return 0, err
	}
	id, err := store.SaveRun(storage.Run{
		GameID:  j.GameID,
		Seed:    j.Seed,
		Width:   j.Width,
		Height:  j.Height,
		Ticks:   j.Ticks,
		Score:   j.Score,
		Journal: data,
	})
	if err != nil {
		return 0, fmt.Errorf("replay: %w", err)
	}
	return id, nil
}

// Load reads a stored run and decodes its journal.
func Load(store *storage.Store, id int64) (Journal, error) {
	run, err := store.RunByID(id)
	if err != nil {
		return Journal{}, err
	}
	return Decode(run.Journal)
}
