package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-defense/internal/maps"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func builtinMap(t *testing.T, id string) maps.Map {
	t.Helper()
	builtin, err := maps.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	m, ok := maps.Find(builtin, id)
	if !ok {
		t.Fatalf("%s missing", id)
	}
	return m
}

func TestPrintMapScores(t *testing.T) {
	store := openTestStore(t)
	m := builtinMap(t, "meadow")

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore(m.ID, score); err != nil {
			t.Fatal(err)
		}
	}
	for i := range 7 {
		if _, err := store.SaveRun(storage.RunRecord{MapID: m.ID, Source: storage.SourcePlay, Seed: int64(i + 1)}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := printMapScores(&buf, store, m, false); err != nil {
		t.Fatalf("printMapScores: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"High Scores - Meadow", "3 games, average 200.0, total 600", "Best: 300", "Recent runs:", "showing 5 of 7 runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMapScoresAll(t *testing.T) {
	store := openTestStore(t)
	m := builtinMap(t, "hive")

	for i := range 12 {
		if _, err := store.SaveScore(m.ID, (i+1)*10); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		all  bool
		rows int
	}{
		{"top ten", false, 10},
		{"every score", true, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printMapScores(&buf, store, m, tc.all); err != nil {
				t.Fatalf("printMapScores: %v", err)
			}
			// rank column rows carry a score and a date
			rows := 0
			for _, line := range strings.Split(buf.String(), "\n") {
				fields := strings.Fields(line)
				if len(fields) != 4 {
					continue
				}
				if _, err := strconv.Atoi(fields[0]); err == nil {
					rows++
				}
			}
			if rows != tc.rows {
				t.Errorf("listed %d scores, expected %d:\n%s", rows, tc.rows, buf.String())
			}
			if strings.Contains(buf.String(), "showing") {
				t.Error("no run footer expected without runs")
			}
		})
	}
}

func TestClearMap(t *testing.T) {
	store := openTestStore(t)
	meadow := builtinMap(t, "meadow")
	hive := builtinMap(t, "hive")

	store.SaveScore(meadow.ID, 500)
	store.SaveScore(hive.ID, 50)
	store.SaveRun(storage.RunRecord{MapID: meadow.ID, Source: storage.SourcePlay})
	store.SaveRun(storage.RunRecord{MapID: meadow.ID, Source: storage.SourceSimulate})
	store.SaveRun(storage.RunRecord{MapID: hive.ID, Source: storage.SourcePlay})

	var buf bytes.Buffer
	if err := clearMap(&buf, store, meadow); err != nil {
		t.Fatalf("clearMap: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared scores and 2 runs for Meadow.") {
		t.Errorf("unexpected output %q", buf.String())
	}

	if best, _ := store.HighScore(meadow.ID); best != 0 {
		t.Errorf("meadow best %d after clear", best)
	}
	if n, _ := store.CountRuns(meadow.ID); n != 0 {
		t.Errorf("meadow still has %d runs", n)
	}
	if best, _ := store.HighScore(hive.ID); best != 50 {
		t.Errorf("hive should be untouched, best %d", best)
	}
	if n, _ := store.CountRuns(hive.ID); n != 1 {
		t.Errorf("hive should keep its run, got %d", n)
	}

	buf.Reset()
	if err := printMapScores(&buf, store, meadow, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("cleared map should list nothing:\n%s", buf.String())
	}
}
