package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMemory(t *testing.T) {
	for _, dsn := range []string{"", MemoryDSN} {
		store, err := Open(dsn)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", dsn, err)
		}

		if _, err := store.SaveRun(Run{Mode: "trapfall", Level: 3}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		runs, err := store.TopRuns("trapfall", 10)
		if err != nil {
			t.Fatalf("TopRuns() failed: %v", err)
		}
		if len(runs) != 1 {
			t.Errorf("Open(%q): expected 1 run, got %d", dsn, len(runs))
		}
		store.Close()
	}

	// A fresh in-memory board starts empty.
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if best, _ := store.BestLevel("trapfall"); best != 0 {
		t.Errorf("fresh board has best level %d", best)
	}
}

func TestStoreMemoryConcurrent(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{Mode: "trapfall", Level: level}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i + 1)
	}
	wg.Wait()

	stats, err := store.ModeStats("trapfall")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.Runs != 8 || stats.BestLevel != 8 {
		t.Errorf("stats = %+v, want 8 runs with best level 8", stats)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Mode: "trapfall", Player: "ann", Level: 3, Attempts: 9, Seed: 41},
		{Mode: "trapfall", Player: "bob", Level: 5, Attempts: 20, Seed: 41},
		{Mode: "trapfall", Player: "cat", Level: 5, Attempts: 4, Seed: 41},
		{Mode: "trapfall", Player: "dan", Level: 3, Attempts: 9, Seed: 41},
		{Mode: "trapfall_daily", Player: "eve", Level: 9, Attempts: 1, Seed: 20261017},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("trapfall", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	want := []string{"cat", "bob", "ann", "dan"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Player != name {
			t.Errorf("rank %d: got %s, want %s", i+1, got[i].Player, name)
		}
	}
	if got[0].Level != 5 || got[0].Attempts != 4 || got[0].Seed != 41 || got[0].Mode != "trapfall" {
		t.Errorf("first run = %+v", got[0])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	limited, err := store.TopRuns("trapfall", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	daily, err := store.TopRuns("trapfall_daily", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(daily) != 1 || daily[0].Player != "eve" {
		t.Errorf("daily runs = %+v", daily)
	}
}

func TestSaveRunRejectsInvalid(t *testing.T) {
	store := openTemp(t)

	tests := []struct {
		name string
		run  Run
	}{
		{"no mode", Run{Level: 1}},
		{"level zero", Run{Mode: "trapfall"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBestLevel(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestLevel("trapfall")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty board, got %d", best)
	}

	for _, level := range []int{2, 7, 4} {
		if _, err := store.SaveRun(Run{Mode: "trapfall", Level: level}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestLevel("trapfall")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Expected best level 7, got %d", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{Mode: "trapfall", Level: 2})
	store.SaveRun(Run{Mode: "trapfall", Level: 3})
	store.SaveRun(Run{Mode: "trapfall_daily", Level: 4})

	if err := store.ClearRuns("trapfall"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("trapfall", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	daily, _ := store.TopRuns("trapfall_daily", 10)
	if len(daily) != 1 {
		t.Errorf("Expected daily runs to survive, got %d", len(daily))
	}
}

func TestModeStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.ModeStats("trapfall")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestLevel != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Mode: "trapfall", Level: 2, Attempts: 4})
	store.SaveRun(Run{Mode: "trapfall", Level: 6, Attempts: 10})
	store.SaveRun(Run{Mode: "trapfall_daily", Level: 1, Attempts: 1})

	stats, err := store.ModeStats("trapfall")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestLevel != 6 || stats.AvgAttempts != 7 {
		t.Errorf("stats = %+v, want 2 runs, best 6, avg 7", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}

	all, err := store.AllModeStats()
	if err != nil {
		t.Fatalf("AllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["trapfall_daily"].Runs != 1 || all["trapfall"].BestLevel != 6 {
		t.Errorf("all stats = %+v / %+v", all["trapfall"], all["trapfall_daily"])
	}
}
