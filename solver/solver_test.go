package solver_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkbench/solver"
)

// stubBodies are the /bin/sh scripts the tests exec. TestMain writes them
// all before any test starts a child (ETXTBSY, golang/go#22315).
var stubBodies = map[string]string{
	"noop":  "exit 0",
	"dump":  `cat > "$1"`,
	"echo":  "cat",
	"slow":  "sleep 0.2",
	"crash": "echo partial; exit 3",
}

var stubDir string

func TestMain(m *testing.M) {
	if runtime.GOOS != "windows" {
		dir, err := writeStubs(stubBodies)
		if err != nil {
			fmt.Fprintln(os.Stderr, "solver tests:", err)
			os.Exit(1)
		}
		stubDir = dir
	}
	code := m.Run()
	if stubDir != "" {
		_ = os.RemoveAll(stubDir)
	}
	os.Exit(code)
}

func writeStubs(bodies map[string]string) (string, error) {
	dir, err := os.MkdirTemp("", "solver-stubs-")
	if err != nil {
		return "", err
	}
	for name, body := range bodies {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
			return "", err
		}
	}

	return dir, nil
}

// stubPath returns the path of a script written by TestMain.
func stubPath(t *testing.T, name string) string {
	t.Helper()
	if stubDir == "" {
		t.Skip("shell stubs require a POSIX shell")
	}
	_, ok := stubBodies[name]
	require.True(t, ok, "unknown stub %q", name)

	return filepath.Join(stubDir, name)
}

func TestRun_ImmediateExitWithoutReading(t *testing.T) {
	t.Parallel()

	s := solver.Solver{Name: "noop", Path: stubPath(t, "noop")}
	// Larger than a pipe buffer so the writer hits a closed pipe.
	input := strings.Repeat("0-1-1\n", 1<<18)

	sample, err := s.Run(input, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, sample.ExitCode)
	assert.GreaterOrEqual(t, sample.Elapsed, time.Duration(0))
}

func TestRun_DeliversExactInput(t *testing.T) {
	t.Parallel()

	dump := filepath.Join(t.TempDir(), "stdin.txt")
	s := solver.Solver{
		Name: "dump",
		Path: stubPath(t, "dump"),
		Args: []string{dump},
	}
	input := "0-1-3\n0-2-7\n1-2-1"

	_, err := s.Run(input, zerolog.Nop())
	require.NoError(t, err)
	got, err := os.ReadFile(dump)
	require.NoError(t, err)
	require.Equal(t, input, string(got), "stdin must be the exact text, no trailing newline")
}

func TestRun_DrainsOutput(t *testing.T) {
	t.Parallel()

	s := solver.Solver{Name: "echo", Path: stubPath(t, "echo")}
	input := strings.Repeat("1-2-3\n", 10000)

	sample, err := s.Run(input, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), sample.OutputBytes)
}

func TestRun_TimingIncludesRuntime(t *testing.T) {
	t.Parallel()

	s := solver.Solver{Name: "slow", Path: stubPath(t, "slow")}
	sample, err := s.Run("", zerolog.Nop())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sample.Elapsed, 200*time.Millisecond)
	assert.InDelta(t, sample.Elapsed.Seconds(), sample.Seconds(), 1e-12)
}

func TestRun_NonZeroExitIsKept(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	s := solver.Solver{Name: "crash", Path: stubPath(t, "crash")}

	sample, err := s.Run("0-1-1", zerolog.New(&logs))
	require.NoError(t, err)
	assert.Equal(t, 3, sample.ExitCode)
	assert.Equal(t, int64(len("partial\n")), sample.OutputBytes)
	assert.Contains(t, logs.String(), `"exit_code":3`)
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestRun_ConcurrentExec(t *testing.T) {
	t.Parallel()

	for i := 0; i < 16; i++ {
		t.Run(fmt.Sprintf("run-%d", i), func(t *testing.T) {
			t.Parallel()
			s := solver.Solver{Name: "noop", Path: stubPath(t, "noop")}
			_, err := s.Run("0-1-1", zerolog.Nop())
			require.NoError(t, err)
		})
	}
}

func TestRun_LaunchFailures(t *testing.T) {
	t.Parallel()

	notExec := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(notExec, []byte("#!/bin/sh\nexit 0\n"), 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(t.TempDir(), "does-not-exist"), solver.ErrLaunch},
		{"not-executable", notExec, solver.ErrLaunch},
		{"empty-path", "", solver.ErrNoPath},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if runtime.GOOS == "windows" {
				t.Skip("POSIX permissions")
			}
			_, err := solver.Solver{Name: tc.name, Path: tc.path}.Run("0-1-1", zerolog.Nop())
			require.ErrorIs(t, err, tc.want)
		})
	}
}
