package dataset

// #region imports
import (
	"context"
	"fmt"
	"sort"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
)

// #endregion

// #region report

// Mistake is one misclassified sample with the predicted label.
type Mistake struct {
	Sample    Sample
	Predicted string
}

// Report summarizes a classifier evaluation over a labeled dataset.
type Report struct {
	Total    int
	Correct  int
	Mistakes []Mistake
	// Confusion counts predictions per true label: Confusion[truth][predicted].
	Confusion map[string]map[string]int
}

// Accuracy is the fraction of correct predictions, 0 on an empty dataset.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// TopConfusions returns the most frequent off-diagonal confusion cells,
// formatted as "truth->predicted", up to n entries.
func (r Report) TopConfusions(n int) []string {
	type cell struct {
		key   string
		count int
	}
	var cells []cell
	for truth, row := range r.Confusion {
		for predicted, count := range row {
			if truth == predicted {
				continue
			}
			cells = append(cells, cell{key: truth + "->" + predicted, count: count})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].count != cells[j].count {
			return cells[i].count > cells[j].count
		}
		return cells[i].key < cells[j].key
	})
	if len(cells) > n {
		cells = cells[:n]
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprintf("%s (%d)", c.key, c.count)
	}
	return out
}

// #endregion

// #region evaluate

// Evaluate runs the classifier over every sample and tallies accuracy,
// mistakes and the confusion table.
func Evaluate(ctx context.Context, c classify.Classifier, samples []Sample) (Report, error) {
	report := Report{
		Total:     len(samples),
		Confusion: make(map[string]map[string]int),
	}
	for _, s := range samples {
		act, err := c.Classify(ctx, s.Utterance)
		if err != nil {
			return Report{}, fmt.Errorf("classify %q: %w", s.Utterance, err)
		}
		predicted := string(act)
		row := report.Confusion[s.Label]
		if row == nil {
			row = make(map[string]int)
			report.Confusion[s.Label] = row
		}
		row[predicted]++
		if predicted == s.Label {
			report.Correct++
			continue
		}
		report.Mistakes = append(report.Mistakes, Mistake{Sample: s, Predicted: predicted})
	}
	return report, nil
}

// #endregion
