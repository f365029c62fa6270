// Package solver runs one external shortest-path executable against a graph
// and measures its wall-clock time.
//
// The executable is a black box: it reads the graph text on stdin, writes
// whatever it likes on stdout, and exits. Output is drained and discarded.
// Timing spans process start-up through the final byte of output and the
// exit, so it includes spawn and teardown overhead.
//
// Failure policy:
//   - The process cannot be started (missing, not executable): ErrLaunch.
//   - The process starts but exits non-zero or is killed: not an error.
//     The Sample carries the exit code and the caller decides.
//   - No timeout. A solver that never exits blocks Run forever.
package solver

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrLaunch indicates the executable could not be started.
	ErrLaunch = errors.New("solver: launch failed")

	// ErrNoPath indicates a Solver without an executable path.
	ErrNoPath = errors.New("solver: empty executable path")
)

// Solver names an external executable.
type Solver struct {
	// Name identifies the solver in logs and must be unique within a run.
	Name string
	// Title is the complexity printed in the report section heading,
	// e.g. "N * N".
	Title string
	// Label goes in the time column header, "Execution Time (<Label>)".
	// Empty means Title.
	Label string
	// Path is the executable, resolved by os/exec (PATH lookup for bare names).
	Path string
	// Args are passed verbatim after Path.
	Args []string
	// Stderr receives the child's stderr; nil discards it.
	Stderr io.Writer
}

// Sample is the outcome of a single run.
type Sample struct {
	Elapsed     time.Duration
	ExitCode    int
	OutputBytes int64
}

// Seconds returns Elapsed in seconds.
func (s Sample) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// countingDiscard drains output and counts it.
type countingDiscard struct{ n int64 }

func (c *countingDiscard) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// Run spawns s, writes input to its stdin, closes stdin, waits for stdout to
// drain and the process to exit, and returns the elapsed time.
func (s Solver) Run(input string, logger zerolog.Logger) (Sample, error) {
	if s.Path == "" {
		return Sample{}, fmt.Errorf("solver %q: %w", s.Name, ErrNoPath)
	}

	out := &countingDiscard{}
	cmd := exec.Command(s.Path, s.Args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = out
	cmd.Stderr = s.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Sample{}, fmt.Errorf("solver %q: %s: %w: %w", s.Name, s.Path, ErrLaunch, err)
	}
	err := cmd.Wait()
	sample := Sample{Elapsed: time.Since(start), OutputBytes: out.n}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		sample.ExitCode = exitErr.ExitCode()
		logger.Warn().
			Str("solver", s.Name).
			Int("exit_code", sample.ExitCode).
			Str("state", exitErr.String()).
			Msg("solver exited abnormally; keeping sample")
	default:
		return Sample{}, fmt.Errorf("solver %q: wait: %w", s.Name, err)
	}

	logger.Debug().
		Str("solver", s.Name).
		Dur("elapsed", sample.Elapsed).
		Int64("output_bytes", sample.OutputBytes).
		Int("input_bytes", len(input)).
		Msg("solver finished")

	return sample, nil
}
