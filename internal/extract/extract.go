// Package extract turns a free-text utterance into candidate slot values for
// area, price range and food type. Extraction is a pure function of the text
// and the static domain/synonym tables built once at startup.
package extract

// #region imports
import (
	"strings"
)

// #endregion

// #region slot-table

// slotTable bundles everything needed to extract one slot: the legal option
// set, value/synonym match patterns, broader mention patterns and the raw
// candidate phrases for fuzzy recovery.
type slotTable struct {
	slot            Slot
	options         map[string]bool // domain values plus the wildcard
	synonyms        map[string]string
	valuePatterns   []phrasePattern
	mentionPatterns []phrasePattern
	fuzzyCandidates []string        // cleaned value and synonym phrases
	indicators      map[string]bool // generic slot words, never fuzzy-matched
}

func newSlotTable(slot Slot, values []string, synonyms map[string]string, indicators []string) *slotTable {
	options := make(map[string]bool, len(values)+1)
	for _, v := range values {
		options[cleanText(v)] = true
	}
	options[Wildcard] = true

	valuePhrases := make([]string, 0, len(options)+len(synonyms))
	for v := range options {
		valuePhrases = append(valuePhrases, v)
	}
	for s := range synonyms {
		valuePhrases = append(valuePhrases, s)
	}

	mentionPhrases := append(append([]string{}, valuePhrases...), indicators...)

	indicatorSet := make(map[string]bool, len(indicators))
	for _, ind := range indicators {
		indicatorSet[cleanText(ind)] = true
	}

	t := &slotTable{
		slot:            slot,
		options:         options,
		synonyms:        synonyms,
		valuePatterns:   makePatterns(valuePhrases),
		mentionPatterns: makePatterns(mentionPhrases),
		indicators:      indicatorSet,
	}
	for _, p := range t.valuePatterns {
		t.fuzzyCandidates = append(t.fuzzyCandidates, p.phrase)
	}
	return t
}

// mapToOption resolves a matched phrase to a canonical domain value through
// the synonym table. Phrases that map outside the legal option set yield "".
func (t *slotTable) mapToOption(phrase string) string {
	if phrase == "" {
		return ""
	}
	mapped := phrase
	if m, ok := t.synonyms[phrase]; ok {
		mapped = m
	}
	if t.options[mapped] {
		return mapped
	}
	return ""
}

// mentioned reports whether the slot is referenced anywhere in the text.
func (t *slotTable) mentioned(text string) bool {
	_, ok := firstMatch(t.mentionPatterns, cleanText(text))
	return ok
}

// #endregion

// #region extractor

// Extractor resolves slot values from utterances. Safe for reuse across
// turns; all tables are immutable after construction.
type Extractor struct {
	area  *slotTable
	price *slotTable
	food  *slotTable
}

// New builds an extractor from the dataset-derived slot domains.
func New(domains Domains) *Extractor {
	return &Extractor{
		area:  newSlotTable(SlotArea, domains.Area, areaSynonyms, areaIndicators),
		price: newSlotTable(SlotPrice, domains.Price, priceSynonyms, priceIndicators),
		food:  newSlotTable(SlotFood, domains.Food, foodSynonyms, foodIndicators),
	}
}

// Extract maps the utterance to a per-slot outcome. The food match is located
// first and its span masked before the area search, so a cuisine phrase
// containing a directional word ("north american") cannot be claimed as an
// area mention. Price matching runs unmasked.
func (e *Extractor) Extract(utterance string) Result {
	original := utterance
	lowered := strings.ToLower(utterance)

	priceMatch, _, _ := firstMatchWithSpan(e.price.valuePatterns, lowered)
	foodMatch, foodSpan, foodFound := firstMatchWithSpan(e.food.valuePatterns, lowered)
	food := e.food.mapToOption(foodMatch)

	// Only a concrete cuisine phrase claims its span; a wildcard hit like
	// "any" must stay visible to the area matcher.
	areaSearchText := lowered
	areaMentionText := original
	if foodFound && food != "" && food != Wildcard {
		areaSearchText = maskSpan(lowered, foodSpan)
		areaMentionText = maskSpan(original, foodSpan)
	}
	areaMatch, _, _ := firstMatchWithSpan(e.area.valuePatterns, areaSearchText)

	price := e.price.mapToOption(priceMatch)
	area := e.area.mapToOption(areaMatch)

	// Fuzzy recovery fills slots the regex pass missed, and upgrades a
	// wildcard hit to a concrete value when one is recoverable.
	price = mergeFuzzy(price, e.price.fuzzyFind(original))
	area = mergeFuzzy(area, e.area.fuzzyFind(areaMentionText))
	food = mergeFuzzy(food, e.food.fuzzyFind(original))

	return Result{
		Area:  finalize(area, e.area.mentioned(areaMentionText)),
		Price: finalize(price, e.price.mentioned(original)),
		Food:  finalize(food, e.food.mentioned(original)),
	}
}

// #endregion

// #region helpers

// maskSpan blanks a byte range with spaces so later matchers skip it while
// spans elsewhere in the text keep their positions.
func maskSpan(text string, span []int) string {
	start, end := span[0], span[1]
	return text[:start] + strings.Repeat(" ", end-start) + text[end:]
}

// mergeFuzzy keeps the regex result unless it is empty, or unless it is the
// wildcard and fuzzy recovered a concrete value.
func mergeFuzzy(regex, fuzzy string) string {
	if regex == "" {
		return fuzzy
	}
	if regex == Wildcard && fuzzy != "" && fuzzy != Wildcard {
		return fuzzy
	}
	return regex
}

// finalize collapses to Mentioned only when the mention detector fired.
func finalize(value string, mentioned bool) SlotResult {
	if value != "" {
		return SlotResult{Kind: Resolved, Value: value}
	}
	if mentioned {
		return SlotResult{Kind: Mentioned}
	}
	return SlotResult{}
}

// #endregion
