// Package dataset handles labeled dialog-act data in the
// `label<space>utterance` line format.
package dataset

// #region imports
import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// #endregion

// #region sample

// Sample is one labeled utterance.
type Sample struct {
	Label     string
	Utterance string
}

// #endregion

// #region parse

// Parse reads samples from the line format. The label is the first
// whitespace-separated token; the rest of the line is the utterance. Blank
// lines are skipped; a line without an utterance is an error.
func Parse(r io.Reader) ([]Sample, error) {
	var out []Sample
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		label, utterance, found := strings.Cut(line, " ")
		if !found || strings.TrimSpace(utterance) == "" {
			return nil, fmt.Errorf("line %d: missing utterance", lineNo)
		}
		out = append(out, Sample{
			Label:     label,
			Utterance: strings.TrimSpace(utterance),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return out, nil
}

// ParseFile reads samples from a .dat file.
func ParseFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// #endregion

// #region transforms

// Dedupe removes exact duplicate samples, keeping the first occurrence and
// preserving order.
func Dedupe(samples []Sample) []Sample {
	seen := make(map[Sample]bool, len(samples))
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Lowercase returns the samples with lowercased utterances. Labels are
// already lowercase in the corpus and are left untouched.
func Lowercase(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		out[i] = Sample{Label: s.Label, Utterance: strings.ToLower(s.Utterance)}
	}
	return out
}

// #endregion

// #region counts

// LabelCount is one row of a label frequency table.
type LabelCount struct {
	Label string
	Count int
}

// Counts returns label frequencies sorted by descending count, ties broken
// alphabetically.
func Counts(samples []Sample) []LabelCount {
	freq := make(map[string]int)
	for _, s := range samples {
		freq[s.Label]++
	}
	out := make([]LabelCount, 0, len(freq))
	for label, n := range freq {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// #endregion

// #region write

// Write emits samples back in the line format.
func Write(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintf(bw, "%s %s\n", s.Label, s.Utterance); err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}
	}
	return bw.Flush()
}

// #endregion
