package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:  "flutter",
		Seed:    -42,
		Width:   960,
		Height:  576,
		Ticks:   1234,
		Score:   7.5,
		Journal: []byte{0x81, 0xa1, 0x76, 0x01},
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.ID != id || got.GameID != "flutter" || got.Seed != -42 || got.Width != 960 ||
		got.Height != 576 || got.Ticks != 1234 || got.Score != 7.5 {
		t.Errorf("unexpected run %+v", got)
	}
	if string(got.Journal) != string(run.Journal) {
		t.Errorf("journal = %x, want %x", got.Journal, run.Journal)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID() error = %v, want ErrNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{GameID: "flutter", Ticks: i, Score: float64(i), Journal: []byte{1}}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Ticks != 5 || runs[1].Ticks != 4 || runs[2].Ticks != 3 {
		t.Errorf("unexpected order: %d, %d, %d", runs[0].Ticks, runs[1].Ticks, runs[2].Ticks)
	}
	if runs[0].Journal != nil {
		t.Error("listing should not load journals")
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flutter", Journal: []byte{1}})
	store.SaveRun(Run{GameID: "flutter", Journal: []byte{2}})

	n, err := store.CountRuns()
	if err != nil || n != 2 {
		t.Fatalf("CountRuns() = %d, %v; want 2", n, err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	n, err = store.CountRuns()
	if err != nil || n != 0 {
		t.Errorf("CountRuns() after clear = %d, %v; want 0", n, err)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun(Run{GameID: "flutter", Score: 3, Journal: []byte{1}})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.RunByID(id)
	if err != nil || got.Score != 3 {
		t.Errorf("RunByID() after reopen = %+v, %v", got, err)
	}
}
