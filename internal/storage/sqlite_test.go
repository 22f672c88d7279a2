package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func record(scene string, tps float64, hash uint64) RunRecord {
	return RunRecord{
		SceneID:     scene,
		Ticks:       600,
		Bodies:      12,
		Seed:        1,
		Restitution: 0.9,
		TickRate:    60,
		Elapsed:     1500 * time.Microsecond,
		TicksPerSec: tps,
		Hash:        hash,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// High bit set: must survive the round trip through SQLite.
	want := record("cradle", 1000, 0xfedcba9876543210)
	if _, err := store.SaveRun(want); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(record("rain", 500, 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("cradle", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 cradle run, got %d", len(runs))
	}

	got := runs[0]
	if got.Hash != want.Hash {
		t.Errorf("Hash = %x, want %x", got.Hash, want.Hash)
	}
	if got.Elapsed != want.Elapsed || got.TicksPerSec != want.TicksPerSec {
		t.Errorf("timing not preserved: %+v", got)
	}
	if got.Ticks != 600 || got.Bodies != 12 || got.Seed != 1 || got.Restitution != 0.9 || got.TickRate != 60 {
		t.Errorf("parameters not preserved: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(record("wall", float64(i), uint64(i)))
	}

	runs, err := store.RecentRuns("wall", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first: 4, 3, 2
	if runs[0].Hash != 4 || runs[1].Hash != 3 || runs[2].Hash != 2 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreFastestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(record("pileup", 100, 1))
	store.SaveRun(record("pileup", 300, 2))
	store.SaveRun(record("pileup", 200, 3))

	runs, err := store.FastestRuns("pileup", 0)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].TicksPerSec != 300 || runs[1].TicksPerSec != 200 || runs[2].TicksPerSec != 100 {
		t.Errorf("Runs not sorted by throughput: %v", runs)
	}
}

func TestStoreLastHash(t *testing.T) {
	store := openTestStore(t)

	r := record("rain", 100, 0xaa)
	if _, ok, err := store.LastHash(r); err != nil || ok {
		t.Fatalf("LastHash() on empty store = %v, %v", ok, err)
	}

	store.SaveRun(r)
	r.Hash = 0xbb
	store.SaveRun(r)

	h, ok, err := store.LastHash(r)
	if err != nil || !ok {
		t.Fatalf("LastHash() = %v, %v", ok, err)
	}
	if h != 0xbb {
		t.Errorf("LastHash() = %x, want bb", h)
	}

	// Different parameters do not match.
	other := r
	other.Seed = 2
	if _, ok, _ := store.LastHash(other); ok {
		t.Error("LastHash() matched a run with a different seed")
	}
}

func TestStoreSceneStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetSceneStats("cradle")
	if err != nil {
		t.Fatalf("GetSceneStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastRecord.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(record("cradle", 100, 1))
	store.SaveRun(record("cradle", 300, 1))

	stats, err := store.GetSceneStats("cradle")
	if err != nil {
		t.Fatalf("GetSceneStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 300 || stats.Average != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(record("wall", 1, 1))
	store.SaveRun(record("wall", 2, 2))
	store.SaveRun(record("rain", 3, 3))

	if err := store.ClearRuns("wall"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	wall, _ := store.RecentRuns("wall", 10)
	if len(wall) != 0 {
		t.Errorf("Expected 0 wall runs after clear, got %d", len(wall))
	}
	rain, _ := store.RecentRuns("rain", 10)
	if len(rain) != 1 {
		t.Errorf("Rain runs should not be affected by clearing wall")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
