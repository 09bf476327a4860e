package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matkov/wtt/internal/timesheet"
)

// executeCommand runs a cobra command with the given args and captures combined output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

func tempDataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "timesheet.json")
}

func TestStartBeginsTracking(t *testing.T) {
	path := tempDataFile(t)

	out, err := executeCommand(rootCmd, "start", "--file", path)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(out, "Started tracking time.") {
		t.Errorf("expected start confirmation, got: %q", out)
	}

	ts, err := timesheet.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ts.Tracking() {
		t.Error("expected an active period after start")
	}
	if len(ts.Periods) != 0 {
		t.Errorf("periods = %v, want empty", ts.Periods)
	}
}

// A second start is a successful no-op: same message exit path, no state change.
func TestDoubleStartIsNoOp(t *testing.T) {
	path := tempDataFile(t)

	if _, err := executeCommand(rootCmd, "start", "--file", path); err != nil {
		t.Fatalf("first start: %v", err)
	}
	first, err := timesheet.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out, err := executeCommand(rootCmd, "start", "--file", path)
	if err != nil {
		t.Fatalf("second start should not error, got: %v", err)
	}
	if !strings.Contains(out, "Already tracking time.") {
		t.Errorf("expected no-op message, got: %q", out)
	}

	second, err := timesheet.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(second.Periods) != 0 {
		t.Errorf("second start appended a period: %v", second.Periods)
	}
	if !second.ActiveStart.Equal(*first.ActiveStart) {
		t.Errorf("second start moved the active start: %v → %v", first.ActiveStart, second.ActiveStart)
	}
}
