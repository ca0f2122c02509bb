package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation error",
			err:  errors.New("tracker title must not be empty"),
			want: "Error: tracker title must not be empty",
		},
		{
			name: "wrapped storage error",
			err:  fmt.Errorf("failed to load categories: %w", errors.New("database is locked")),
			want: "Error: failed to load categories: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
		want   string
	}{
		{
			name:   "no args",
			format: "storage not initialized, run 'trackly init' first",
			want:   "Error: storage not initialized, run 'trackly init' first",
		},
		{
			name:   "quoted reference",
			format: "no tracker matches %q",
			args:   []interface{}{"Run"},
			want:   `Error: no tracker matches "Run"`,
		},
		{
			name:   "count and category",
			format: "skipped %d row(s) in category %s",
			args:   []interface{}{2, "Health"},
			want:   "Error: skipped 2 row(s) in category Health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatf(tt.format, tt.args...); got != tt.want {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, got, tt.want)
			}
		})
	}
}

// Fatal exits the process, so the exiting paths run in a subprocess.
func TestFatalExitsWithMessage(t *testing.T) {
	if os.Getenv("TRACKLY_TEST_FATAL") == "1" {
		Fatal(errors.New("storage not initialized, run 'trackly init' first"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalExitsWithMessage")
	cmd.Env = append(os.Environ(), "TRACKLY_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: storage not initialized") {
		t.Errorf("Fatal() stderr = %q, want the formatted message", stderr.String())
	}
}

func TestFatalNilIsNoOp(t *testing.T) {
	if os.Getenv("TRACKLY_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalNilIsNoOp")
	cmd.Env = append(os.Environ(), "TRACKLY_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit non-zero, got: %v", err)
	}
}

func TestFatalfFormatsBeforeExiting(t *testing.T) {
	if os.Getenv("TRACKLY_TEST_FATALF") == "1" {
		Fatalf("no tracker matches %q", "Morning run")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalfFormatsBeforeExiting")
	cmd.Env = append(os.Environ(), "TRACKLY_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatalf() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
	}
	if !strings.Contains(stderr.String(), `Error: no tracker matches "Morning run"`) {
		t.Errorf("Fatalf() stderr = %q, want the formatted message", stderr.String())
	}
}
