package replay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// #region harness-tests

// runFixtureFile loads a fixture and replays it, failing the test on any
// turn that misses its expectations. These files are the regression
// baselines for the transition machine.
func runFixtureFile(t *testing.T, name string) Summary {
	t.Helper()
	f, err := LoadFixture(filepath.Join("testdata", name))
	require.NoError(t, err)

	results, summary, err := Run(context.Background(), f, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.Len(t, results, len(f.Turns))

	for i, r := range results {
		if !r.OK() {
			t.Errorf("turn %d (%q): state=%s message=%q, want state=%s containing %q",
				i, r.Utterance, r.State, r.Message, f.Turns[i].WantState, f.Turns[i].WantContains)
		}
	}
	return summary
}

func TestFixture_HappyPath(t *testing.T) {
	summary := runFixtureFile(t, "happy_path.json")

	assert.Equal(t, summary.TotalTurns, summary.Passed)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, "goodbye", summary.FinalState)
}

func TestFixture_ConfirmDeny(t *testing.T) {
	summary := runFixtureFile(t, "confirm_deny.json")

	assert.Equal(t, summary.TotalTurns, summary.Passed)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, "suggest", summary.FinalState)
}

func TestRunReportsMissedExpectations(t *testing.T) {
	f := &Fixture{
		Description: "deliberately wrong expectation",
		Turns: []FixtureTurn{
			{Utterance: "", WantState: "welcome"},
			{Utterance: "hello there", WantState: "goodbye"},
		},
	}

	results, summary, err := Run(context.Background(), f, zap.NewNop().Sugar())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, 1, summary.Failed)
}

func TestRunRejectsUtteranceOnOpeningTurn(t *testing.T) {
	f := &Fixture{
		Turns: []FixtureTurn{{Utterance: "hello", WantState: "welcome"}},
	}

	_, _, err := Run(context.Background(), f, zap.NewNop().Sugar())
	require.Error(t, err)
}

// #endregion harness-tests
