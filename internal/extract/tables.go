package extract

// #region imports
import (
	"regexp"
	"sort"
	"strings"
)

// #endregion

// #region synonym-maps

// priceSynonyms maps spoken price phrases to canonical price range values.
var priceSynonyms = map[string]string{
	"moderately":        "moderate",
	"moderately priced": "moderate",
	"mid":               "moderate",
	"midrange":          "moderate",
	"mid-range":         "moderate",
	"affordable":        "moderate",
	"budget":            "cheap",
	"low":               "cheap",
	"inexpensive":       "cheap",
	"pricey":            "expensive",
	"high end":          "expensive",
	"high-end":          "expensive",
	"any":               Wildcard,
	"any price":         Wildcard,
	"dont care":         Wildcard,
	"don't care":        Wildcard,
	"doesnt matter":     Wildcard,
	"doesn't matter":    Wildcard,
}

var areaSynonyms = map[string]string{
	"center":             "centre",
	"city center":        "centre",
	"city centre":        "centre",
	"downtown":           "centre",
	"north part of town": "north",
	"south part of town": "south",
	"east part of town":  "east",
	"west part of town":  "west",
	"any":                Wildcard,
	"anywhere":           Wildcard,
	"dont care":          Wildcard,
	"don't care":         Wildcard,
	"doesnt matter":      Wildcard,
	"doesn't matter":     Wildcard,
}

var foodSynonyms = map[string]string{
	"europe":         "european",
	"britain":        "british",
	"portugese":      "portuguese",
	"gastro pub":     "gastropub",
	"asian-oriental": "asian oriental",
	"asian/oriental": "asian oriental",
	"any":            Wildcard,
	"any food":       Wildcard,
	"dont care":      Wildcard,
	"don't care":     Wildcard,
	"doesnt matter":  Wildcard,
	"doesn't matter": Wildcard,
}

// #endregion

// #region indicator-terms

// Indicator terms signal that the user is referring to a slot without
// necessarily providing a value (e.g. "what about the price").
var priceIndicators = []string{
	"price", "price range", "pricerange", "priced", "prices", "pricing",
	"cost", "costs", "costly", "expense", "expensive", "cheap",
	"budget", "affordable", "inexpensive", "how much",
}

var areaIndicators = []string{
	"area", "part of town", "part of the town", "town", "neighborhood",
	"neighbourhood", "location", "side of town", "where",
	"in town", "area of town",
}

var foodIndicators = []string{
	"food", "cuisine", "type of food", "kind of food", "meal", "dish",
	"type of cuisine", "serve", "serves", "serving", "served",
}

// #endregion

// #region default-domains

// DefaultDomains returns the slot value sets of the Cambridge restaurant
// dataset. Production code derives domains from the repository instead; this
// covers tests and offline runs without a dataset on disk.
func DefaultDomains() Domains {
	return Domains{
		Area:  []string{"north", "south", "east", "west", "centre"},
		Price: []string{"cheap", "moderate", "expensive"},
		Food: []string{
			"african", "asian oriental", "australasian", "bistro", "british",
			"catalan", "chinese", "cuban", "european", "french", "fusion",
			"gastropub", "indian", "international", "italian", "jamaican",
			"japanese", "korean", "lebanese", "mediterranean", "moroccan",
			"north american", "persian", "polynesian", "portuguese",
			"romanian", "seafood", "spanish", "steakhouse", "swedish",
			"swiss", "thai", "traditional", "turkish", "tuscan",
			"vietnamese", "world",
		},
	}
}

// #endregion

// #region text-cleaning

var nonWordRe = regexp.MustCompile(`[^\w\s'&/-]+`)
var spaceRe = regexp.MustCompile(`\s+`)

// cleanText lowercases, strips punctuation outside the word-joining whitelist
// and collapses whitespace.
func cleanText(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// #endregion

// #region patterns

// phrasePattern pairs a cleaned phrase with its whole-word regex.
type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

// makePatterns cleans, dedupes and sorts phrases by length descending so that
// multi-word phrases are tried before their substrings ("high end" before
// "high"), then compiles whole-word patterns.
func makePatterns(phrases []string) []phrasePattern {
	seen := make(map[string]bool, len(phrases))
	cleaned := make([]string, 0, len(phrases))
	for _, p := range phrases {
		c := cleanText(p)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cleaned = append(cleaned, c)
	}
	sort.Slice(cleaned, func(i, j int) bool {
		if len(cleaned[i]) != len(cleaned[j]) {
			return len(cleaned[i]) > len(cleaned[j])
		}
		return cleaned[i] < cleaned[j]
	})

	out := make([]phrasePattern, len(cleaned))
	for i, c := range cleaned {
		out[i] = phrasePattern{
			phrase: c,
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(c) + `\b`),
		}
	}
	return out
}

// firstMatch returns the first matching phrase in text, if any.
func firstMatch(patterns []phrasePattern, text string) (string, bool) {
	for _, p := range patterns {
		if p.re.MatchString(text) {
			return p.phrase, true
		}
	}
	return "", false
}

// firstMatchWithSpan returns the first matching phrase and its byte span.
func firstMatchWithSpan(patterns []phrasePattern, text string) (string, []int, bool) {
	for _, p := range patterns {
		if loc := p.re.FindStringIndex(text); loc != nil {
			return p.phrase, loc, true
		}
	}
	return "", nil, false
}

// #endregion
