package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/observability"
)

type countingObserver struct{ n int }

func (c *countingObserver) OnEvent(context.Context, observability.Event) { c.n++ }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_SolveGridFile(t *testing.T) {
	path := writeFile(t, "wall.txt", "S.#..\n..#..\n..#..\n..#..\n....E\n")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-grid", path, "-log-level", "error"}, &out)
	require.NoError(t, err)
	assert.Equal(t,
		"found: cost 8, 13 cells expanded\n"+
			"S.#..\n"+
			"*.#..\n"+
			"*.#..\n"+
			"*.#..\n"+
			"****E\n",
		out.String())
}

func TestRun_SolveGridFile_NoPath(t *testing.T) {
	path := writeFile(t, "blocked.txt", "S#.\n#..\n..E\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-grid", path}, &out))
	assert.Contains(t, out.String(), "no path: 1 cells expanded")
}

// TestRun_LeavesRegistryAlone checks that the binary binds its logger to the
// slog observer without replacing what is registered globally.
func TestRun_LeavesRegistryAlone(t *testing.T) {
	registered := &countingObserver{}
	observability.RegisterObserver(observability.NameSlog, registered)

	logFile := filepath.Join(t.TempDir(), "gridastar.log")
	cfgPath := writeFile(t, "config.json", `{"observer": "slog", "log_level": "debug", "log_file": "`+logFile+`"}`)
	grid := writeFile(t, "open.txt", "S.\n.E\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath, "-grid", grid}, &out))

	obs, err := observability.GetObserver(observability.NameSlog)
	require.NoError(t, err)
	assert.Same(t, registered, obs)
	assert.Zero(t, registered.n, "events go to the run's own logger")

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "search.found")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-grid", filepath.Join(t.TempDir(), "missing.txt")}, &out)
	assert.ErrorContains(t, err, "failed to read grid file")

	err = run(context.Background(), []string{"-log-level", "loud"}, &out)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfgPath := writeFile(t, "config.json", `{"observer": "nope"}`)
	err = run(context.Background(), []string{"-config", cfgPath, "-grid", "unused"}, &out)
	assert.ErrorContains(t, err, "unknown observer")

	bad := writeFile(t, "ragged.txt", "S..\n.E\n")
	err = run(context.Background(), []string{"-grid", bad}, &out)
	assert.Error(t, err)
}
