package dataset

// #region imports
import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
)

// #endregion

// #region parse

func TestParse(t *testing.T) {
	input := strings.NewReader(
		"inform im looking for a cheap restaurant\n" +
			"\n" +
			"request what is the phone number\n" +
			"bye goodbye\n")

	samples, err := Parse(input)

	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, Sample{Label: "inform", Utterance: "im looking for a cheap restaurant"}, samples[0])
	assert.Equal(t, "bye", samples[2].Label)
}

func TestParseRejectsLabelOnlyLine(t *testing.T) {
	_, err := Parse(strings.NewReader("inform cheap food\ninform\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// #endregion

// #region transforms

func TestDedupePreservesOrder(t *testing.T) {
	samples := []Sample{
		{Label: "inform", Utterance: "cheap food"},
		{Label: "bye", Utterance: "goodbye"},
		{Label: "inform", Utterance: "cheap food"},
		{Label: "inform", Utterance: "Cheap Food"},
	}

	out := Dedupe(samples)

	require.Len(t, out, 3, "case-differing duplicates survive until lowercased")
	assert.Equal(t, "cheap food", out[0].Utterance)
	assert.Equal(t, "goodbye", out[1].Utterance)
}

func TestLowercaseThenDedupe(t *testing.T) {
	samples := []Sample{
		{Label: "inform", Utterance: "Cheap Food"},
		{Label: "inform", Utterance: "cheap food"},
	}

	out := Dedupe(Lowercase(samples))

	require.Len(t, out, 1)
	assert.Equal(t, "cheap food", out[0].Utterance)
}

func TestCountsSortedByFrequency(t *testing.T) {
	samples := []Sample{
		{Label: "inform", Utterance: "a"},
		{Label: "inform", Utterance: "b"},
		{Label: "request", Utterance: "c"},
		{Label: "bye", Utterance: "d"},
		{Label: "request", Utterance: "e"},
		{Label: "inform", Utterance: "f"},
	}

	counts := Counts(samples)

	require.Len(t, counts, 3)
	assert.Equal(t, LabelCount{Label: "inform", Count: 3}, counts[0])
	assert.Equal(t, LabelCount{Label: "request", Count: 2}, counts[1])
	assert.Equal(t, LabelCount{Label: "bye", Count: 1}, counts[2])
}

func TestWriteRoundTrip(t *testing.T) {
	samples := []Sample{
		{Label: "inform", Utterance: "cheap food in the south"},
		{Label: "bye", Utterance: "goodbye"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samples))
	back, err := Parse(&buf)

	require.NoError(t, err)
	assert.Equal(t, samples, back)
}

// #endregion

// #region evaluate

func TestEvaluateAgainstRuleBased(t *testing.T) {
	samples := []Sample{
		{Label: "inform", Utterance: "im looking for a cheap restaurant"},
		{Label: "request", Utterance: "whats the phone number"},
		{Label: "bye", Utterance: "goodbye"},
		// "thank you goodbye" trips the thankyou keyword first.
		{Label: "bye", Utterance: "thank you goodbye"},
	}

	report, err := Evaluate(context.Background(), classify.NewRuleBased(), samples)

	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Correct)
	assert.InDelta(t, 0.75, report.Accuracy(), 1e-9)
	require.Len(t, report.Mistakes, 1)
	assert.Equal(t, "thankyou", report.Mistakes[0].Predicted)
	assert.Equal(t, 1, report.Confusion["bye"]["thankyou"])
	assert.Equal(t, []string{"bye->thankyou (1)"}, report.TopConfusions(5))
}

func TestEvaluateEmptyDataset(t *testing.T) {
	report, err := Evaluate(context.Background(), classify.NewRuleBased(), nil)

	require.NoError(t, err)
	assert.Zero(t, report.Accuracy())
}

// #endregion
