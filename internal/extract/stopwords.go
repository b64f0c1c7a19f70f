package extract

import "strings"

// #region stopwords
// stopwords are excluded from fuzzy tokenization. Without this, short
// function words collide with cuisine names within the edit-distance budget
// ("that" -> "thai").
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "but": true, "for": true, "from": true,
	"in": true, "into": true, "is": true, "it": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "to": true,
	"was": true, "were": true, "will": true, "with": true,
	"do": true, "does": true, "did": true, "have": true, "has": true,
	"had": true, "would": true, "could": true, "should": true,
	"can": true, "may": true, "might": true, "i": true, "you": true,
	"we": true, "they": true, "my": true, "your": true, "me": true,
	"what": true, "which": true, "who": true, "how": true,
	"when": true, "where": true, "why": true, "this": true,
	"then": true, "than": true, "so": true, "not": true, "no": true,
}

// contentTokens splits cleaned text into tokens with stopwords removed.
func contentTokens(text string) []string {
	var tokens []string
	for _, w := range strings.Fields(cleanText(text)) {
		if stopwords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// #endregion stopwords
