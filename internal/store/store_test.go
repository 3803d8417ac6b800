package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/lab"
	"github.com/mwichro/dealab/internal/store"
)

func sweep(t *testing.T) []lab.Outcome {
	t.Helper()
	outcomes, err := lab.NewRunner(nil).Run(context.Background(), lab.Names())
	require.NoError(t, err)
	return outcomes
}

func TestSaveRunRoundTrip(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "lab.db"))
	require.NoError(t, err)
	defer s.Close()

	outcomes := sweep(t)
	wantFailed := 0
	for _, o := range outcomes {
		if o.Failed() {
			wantFailed++
		}
	}
	require.Greater(t, wantFailed, 0, "the built-in sweep must contain failures")

	runID, err := s.SaveRun(outcomes)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, len(outcomes), runs[0].Scenarios)
	assert.Equal(t, wantFailed, runs[0].Failures)
	assert.False(t, runs[0].StartedAt.IsZero())

	failures, err := s.Failures(runID)
	require.NoError(t, err)
	require.Len(t, failures, wantFailed)
	for _, f := range failures {
		assert.Equal(t, runID, f.RunID)
		assert.NotEmpty(t, f.Kind)
		assert.NotEmpty(t, f.Condition)
		assert.Greater(t, f.Line, 0)
		assert.Contains(t, f.Report, f.Kind)
	}
}

func TestRunsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	first, err := s.SaveRun(sweep(t))
	require.NoError(t, err)
	second, err := s.SaveRun(sweep(t))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := store.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.ElementsMatch(t, []string{first, second}, []string{runs[0].ID, runs[1].ID})
}

func TestFailuresOfUnknownRunAreEmpty(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "lab.db"))
	require.NoError(t, err)
	defer s.Close()

	failures, err := s.Failures("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestDriverErrorsSurfaceThroughCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o644))

	_, err := store.Open(path)
	require.Error(t, err)

	var e *exc.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "SQLiteError", e.Name())
	assert.Contains(t, e.Error(), "result code")
}
