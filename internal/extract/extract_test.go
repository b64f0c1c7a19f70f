package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(DefaultDomains())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		wantArea  SlotResult
		wantPrice SlotResult
		wantFood  SlotResult
	}{
		{
			"empty-ish greeting",
			"hi",
			SlotResult{}, SlotResult{}, SlotResult{},
		},
		{
			"food only",
			"I'm looking for world food",
			SlotResult{}, SlotResult{}, SlotResult{Kind: Resolved, Value: "world"},
		},
		{
			"area synonym",
			"I'm looking for a restaurant in the center",
			SlotResult{Kind: Resolved, Value: "centre"}, SlotResult{}, SlotResult{},
		},
		{
			"area and price",
			"I would like a cheap restaurant in the west part of town",
			SlotResult{Kind: Resolved, Value: "west"},
			SlotResult{Kind: Resolved, Value: "cheap"},
			SlotResult{},
		},
		{
			"price synonym moderately",
			"I'm looking for a moderately priced restaurant with catalan food",
			SlotResult{},
			SlotResult{Kind: Resolved, Value: "moderate"},
			SlotResult{Kind: Resolved, Value: "catalan"},
		},
		{
			"all three",
			"What is a cheap restaurant in the south part of town",
			SlotResult{Kind: Resolved, Value: "south"},
			SlotResult{Kind: Resolved, Value: "cheap"},
			SlotResult{},
		},
		{
			"wildcard area with food",
			"I'm looking for a restaurant in any area that serves tuscan food",
			SlotResult{Kind: Resolved, Value: Wildcard},
			// "any" also satisfies the price wildcard synonyms; the
			// controller decides whether to accept it for the asked slot.
			SlotResult{Kind: Resolved, Value: Wildcard},
			SlotResult{Kind: Resolved, Value: "tuscan"},
		},
	}

	e := newTestExtractor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.utterance)
			assert.Equal(t, tt.wantArea, got.Area, "area")
			assert.Equal(t, tt.wantPrice, got.Price, "price")
			assert.Equal(t, tt.wantFood, got.Food, "food")
		})
	}
}

func TestExtractMaskingPrecedence(t *testing.T) {
	e := newTestExtractor(t)

	// The cuisine phrase claims its span first; "north" inside
	// "north american" must not leak into the area slot.
	got := e.Extract("I want north american food")
	assert.Equal(t, SlotResult{Kind: Resolved, Value: "north american"}, got.Food)
	assert.Equal(t, Absent, got.Area.Kind)
}

func TestExtractFuzzyRecovery(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name      string
		utterance string
		slot      Slot
		want      string
	}{
		{"misspelled cuisine", "Do you have afrcan food?", SlotFood, "african"},
		{"misspelled price", "Looking for a moderatley priced place", SlotPrice, "moderate"},
		{"misspelled price word", "Could you find an expensve restaurant", SlotPrice, "expensive"},
		{"misspelled area", "Anywhere in the noth part of town is fine", SlotArea, "north"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.utterance)
			require.Equal(t, Resolved, got.Of(tt.slot).Kind)
			assert.Equal(t, tt.want, got.Of(tt.slot).Value)
		})
	}
}

func TestExtractStopwordsBlockShortCollisions(t *testing.T) {
	e := newTestExtractor(t)

	// "that" is edit distance 1 from "thai" but is a stopword; the food slot
	// must stay empty rather than hijacking the cuisine.
	got := e.Extract("I want a restaurant that is in the east")
	assert.NotEqual(t, "thai", got.Food.Value)
	assert.Equal(t, SlotResult{Kind: Resolved, Value: "east"}, got.Area)
}

func TestExtractMentionWithoutValue(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name      string
		utterance string
		slot      Slot
	}{
		{"price indicator", "what about the price", SlotPrice},
		{"food indicator", "something with nice cuisine", SlotFood},
		{"area indicator", "somewhere in town", SlotArea},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.utterance)
			assert.Equal(t, Mentioned, got.Of(tt.slot).Kind,
				"slot referenced without a value must be Mentioned, not Absent")
		})
	}
}

func TestExtractWildcardNotUpgradedWithoutConcrete(t *testing.T) {
	e := newTestExtractor(t)

	got := e.Extract("any price will do")
	assert.True(t, got.Price.IsWildcard())
}

func TestExtractReferentialTransparency(t *testing.T) {
	e := newTestExtractor(t)

	const utterance = "I need a cuban restaurant that is moderately priced"
	first := e.Extract(utterance)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(utterance))
	}
	assert.Equal(t, "cuban", first.Food.Value)
	assert.Equal(t, "moderate", first.Price.Value)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"afrcan", "african", 1},
		{"moderatley", "moderately", 2},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
