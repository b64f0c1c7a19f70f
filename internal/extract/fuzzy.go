package extract

import "strings"

// #region constants

// maxEditDistance caps the per-phrase distance budget regardless of length.
const maxEditDistance = 3

// minSegmentLen rejects very short fuzzy comparisons that are mostly noise.
const minSegmentLen = 3

// #endregion

// #region levenshtein

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// #endregion

// #region fuzzy-find

// fuzzyFind recovers a slot value from misspelled text by comparing sliding
// token windows against every candidate phrase with a length-scaled edit
// distance budget. A concrete value always beats a wildcard match, even when
// the wildcard match is closer; the wildcard only wins when no concrete value
// fits the budget.
func (t *slotTable) fuzzyFind(text string) string {
	tokens := contentTokens(text)
	if len(tokens) == 0 {
		return ""
	}

	bestValue := ""
	bestDistance := maxEditDistance + 1
	bestWildcard := ""
	bestWildcardDistance := maxEditDistance + 1

	for _, candidate := range t.fuzzyCandidates {
		canonical := t.mapToOption(candidate)
		if canonical == "" {
			continue
		}

		wordCount := len(strings.Fields(candidate))
		if wordCount < 1 {
			wordCount = 1
		}
		if len(tokens) < wordCount {
			continue
		}

		// Distance budget scales with phrase length: at least 1, capped.
		allowed := len(candidate) / 3
		if allowed < 1 {
			allowed = 1
		}
		if allowed > maxEditDistance {
			allowed = maxEditDistance
		}

		for i := 0; i+wordCount <= len(tokens); i++ {
			seg := strings.Join(tokens[i:i+wordCount], " ")
			if len(seg) < minSegmentLen {
				continue
			}
			// A generic slot word ("priced", "food") signals the slot, not a
			// value; letting it fuzzy-match a synonym hijacks the slot.
			if t.indicators[seg] {
				continue
			}
			d := levenshtein(seg, candidate)
			if d > allowed {
				continue
			}
			if canonical == Wildcard {
				if d < bestWildcardDistance {
					bestWildcardDistance = d
					bestWildcard = canonical
				}
			} else if d < bestDistance {
				bestDistance = d
				bestValue = canonical
			}
		}
	}

	if bestValue != "" {
		return bestValue
	}
	if bestWildcardDistance <= maxEditDistance {
		return bestWildcard
	}
	return ""
}

// #endregion
