package timesheet_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/matkov/wtt/internal/timesheet"
)

func tempStore(t *testing.T) timesheet.Store {
	t.Helper()
	return timesheet.NewStore(filepath.Join(t.TempDir(), "timesheet.json"))
}

// Property: Load(Save(ts)) preserves every recorded timestamp.
func TestRoundTrip(t *testing.T) {
	store := tempStore(t)

	rapid.Check(t, func(rt *rapid.T) {
		original := generateTimesheet(rt)

		if err := store.Save(original); err != nil {
			rt.Fatalf("Save: %v", err)
		}
		loaded, err := store.Load()
		if err != nil {
			rt.Fatalf("Load: %v", err)
		}

		if !equalSheets(loaded, original) {
			rt.Errorf("round-trip mismatch: got %+v, want %+v", loaded, original)
		}
	})
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := tempStore(t)

	ts, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ts.Periods) != 0 {
		t.Errorf("periods = %v, want empty", ts.Periods)
	}
	if ts.ActiveStart != nil {
		t.Errorf("active start = %v, want nil", ts.ActiveStart)
	}
}

func TestLoadEmptyFileReturnsEmpty(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ts, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ts.Periods) != 0 || ts.ActiveStart != nil {
		t.Errorf("empty file yielded non-empty timesheet: %+v", ts)
	}
}

func TestLoadCorruptData(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"malformed json", `{"periods": [`},
		{"wrong period type", `{"periods": [42], "active_period_start": null}`},
		{"wrong timestamp type", `{"periods": [{"start": 12, "end": 13}], "active_period_start": null}`},
		{"missing period end", `{"periods": [{"start": "2023-10-27T09:00:00Z"}], "active_period_start": null}`},
		{"non-timestamp string", `{"periods": [], "active_period_start": "yesterdayish"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := tempStore(t)
			if err := os.WriteFile(store.Path(), []byte(tc.data), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			_, err := store.Load()
			if err == nil {
				t.Fatal("expected an error for corrupt data, got nil")
			}
			if !errors.Is(err, timesheet.ErrCorruptData) {
				t.Errorf("expected ErrCorruptData, got: %v", err)
			}
		})
	}
}

// The diagnostic names the offending file.
func TestCorruptErrorMentionsPath(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte("not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if got := err.Error(); !strings.Contains(got, store.Path()) {
		t.Errorf("error %q does not mention %q", got, store.Path())
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	store := tempStore(t)

	first := generateFixedSheet()
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := timesheet.New()
	if err := store.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Periods) != 0 {
		t.Errorf("periods = %v, want empty after overwrite", loaded.Periods)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(generateFixedSheet()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the timesheet file, found %v", names)
	}
}

func TestSaveFailurePropagatesError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root; permission checks are ineffective")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	store := timesheet.NewStore(filepath.Join(dir, "timesheet.json"))
	if err := store.Save(timesheet.New()); err == nil {
		t.Fatal("expected error saving into read-only directory, got nil")
	}
}

func generateFixedSheet() *timesheet.Timesheet {
	ts := timesheet.New()
	ts.Periods = append(ts.Periods, timesheet.Period{
		Start: time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 10, 27, 17, 0, 0, 0, time.UTC),
	})
	return ts
}
