package timesheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptData is returned by Load when the data file exists but does
// not match the expected schema. The tool never attempts auto-repair.
var ErrCorruptData = errors.New("corrupt timesheet data")

// Store persists a Timesheet to disk.
type Store interface {
	Load() (*Timesheet, error)
	Save(ts *Timesheet) error
	Path() string
}

// diskStore is the concrete Store backed by a single JSON file.
type diskStore struct {
	path string
}

// NewStore returns a Store writing to the given file path. The path is
// passed in explicitly so tests can redirect it to a temp location.
func NewStore(path string) Store {
	return &diskStore{path: path}
}

// DefaultPath returns ~/.work_time_tracker.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".work_time_tracker.json"), nil
}

func (d *diskStore) Path() string {
	return d.path
}

// Load reads and validates the timesheet file. A missing or empty file
// yields an empty timesheet; anything unparseable or schema-violating
// wraps ErrCorruptData.
func (d *diskStore) Load() (*Timesheet, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	var ts Timesheet
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, d.path, err)
	}
	if ts.Periods == nil {
		ts.Periods = []Period{}
	}
	for i, p := range ts.Periods {
		if p.Start.IsZero() || p.End.IsZero() {
			return nil, fmt.Errorf("%w: %s: period %d is missing a timestamp", ErrCorruptData, d.path, i)
		}
	}
	if ts.ActiveStart != nil && ts.ActiveStart.IsZero() {
		return nil, fmt.Errorf("%w: %s: active_period_start is not a valid timestamp", ErrCorruptData, d.path)
	}
	return &ts, nil
}

// Save marshals ts and writes it atomically via a temp file + os.Rename
// so an interrupted write never leaves a partial file behind.
func (d *diskStore) Save(ts *Timesheet) error {
	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	data = append(data, '\n')

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".work_time_tracker-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	return nil
}
