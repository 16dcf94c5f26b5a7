package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/trapfall/internal/games/trapfall"
	"github.com/vovakirdan/trapfall/internal/storage"
)

func withLogFile(t *testing.T, path string) {
	t.Helper()
	old := flagLogFile
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = old })
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trapfall.log")
	withLogFile(t, path)

	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("run saved", "level", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := closer.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second Close = %v, want the file already closed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "run saved") {
		t.Errorf("log file = %q, want the logged message", data)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	withLogFile(t, "")

	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("Close = %v, want nil", err)
	}
}

func TestPlayUnknownModeReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trapfall.log")
	withLogFile(t, path)

	err := play("no_such_mode")
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("play = %v, want unknown mode error", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("log file should not be opened for an unknown mode")
	}
}

func TestShowScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, r := range []storage.Run{
		{Mode: trapfall.ClassicID, Player: "ann", Level: 4, Attempts: 2},
		{Mode: trapfall.ClassicID, Player: "bob", Level: 2, Attempts: 7},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}
	store.Close()

	var buf bytes.Buffer
	if err := showScores(&buf, dbPath, trapfall.ClassicID, 10, false); err != nil {
		t.Fatalf("showScores failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Run Board - Trap Fall", "ann", "bob", "Runs: 2  Best: level 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "ann") > strings.Index(out, "bob") {
		t.Error("deeper run should be listed first")
	}

	buf.Reset()
	if err := showScores(&buf, dbPath, "", 10, false); err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(buf.String(), trapfall.ClassicID) {
		t.Errorf("summary missing mode:\n%s", buf.String())
	}

	buf.Reset()
	if err := showScores(&buf, dbPath, trapfall.ClassicID, 10, true); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	buf.Reset()
	if err := showScores(&buf, dbPath, trapfall.ClassicID, 10, false); err != nil {
		t.Fatalf("showScores failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("cleared board output:\n%s", buf.String())
	}
}

func TestShowScoresErrors(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	tests := []struct {
		name      string
		mode      string
		clearRuns bool
		want      string
	}{
		{"clear without mode", "", true, "needs a mode"},
		{"unknown mode", "no_such_mode", false, "unknown mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := showScores(&buf, dbPath, tt.mode, 10, tt.clearRuns)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("showScores = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
