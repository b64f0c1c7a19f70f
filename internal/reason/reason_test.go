package reason

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

func rec(food, price, quality, crowd, stay string) restaurants.Record {
	return restaurants.Record{
		Name:         "test place",
		Food:         food,
		PriceRange:   price,
		FoodQuality:  quality,
		Crowdedness:  crowd,
		LengthOfStay: stay,
	}
}

func TestFilterRules(t *testing.T) {
	tests := []struct {
		name     string
		record   restaurants.Record
		flags    Flags
		survives bool
	}{
		{"no flags keeps everything", rec("romanian", "expensive", "mediocre", "busy", "long"), Flags{}, true},

		// touristic: cheap and good food
		{"touristic pass", rec("chinese", "cheap", "good", "low", "short"), Flags{Touristic: true}, true},
		{"touristic wrong price", rec("chinese", "expensive", "good", "low", "short"), Flags{Touristic: true}, false},
		{"touristic wrong quality", rec("chinese", "cheap", "mediocre", "low", "short"), Flags{Touristic: true}, false},

		// assigned seats: busy
		{"seats pass", rec("chinese", "cheap", "good", "busy", "short"), Flags{AssignedSeats: true}, true},
		{"seats fail", rec("chinese", "cheap", "good", "low", "short"), Flags{AssignedSeats: true}, false},

		// children: stay not long
		{"children pass", rec("chinese", "cheap", "good", "low", "short"), Flags{Children: true}, true},
		{"children fail", rec("chinese", "cheap", "good", "low", "long"), Flags{Children: true}, false},

		// romantic: long stay and not busy
		{"romantic pass", rec("chinese", "cheap", "good", "low", "long"), Flags{Romantic: true}, true},
		{"romantic short stay", rec("chinese", "cheap", "good", "low", "short"), Flags{Romantic: true}, false},
		{"romantic busy", rec("chinese", "cheap", "good", "busy", "long"), Flags{Romantic: true}, false},

		// any failing active rule removes the candidate
		{"one of two rules fails", rec("chinese", "cheap", "good", "busy", "short"), Flags{Touristic: true, Romantic: true}, false},

		// contradictory flags on one candidate: romantic wants quiet,
		// assigned seats wants busy; no record can satisfy both
		{"romantic-and-seats quiet", rec("chinese", "cheap", "good", "low", "long"), Flags{Romantic: true, AssignedSeats: true}, false},
		{"romantic-and-seats busy", rec("chinese", "cheap", "good", "busy", "long"), Flags{Romantic: true, AssignedSeats: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]restaurants.Record{tt.record}, tt.flags)
			if tt.survives {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterRomanianExclusionOverridesCheapGood(t *testing.T) {
	// Cheap with good food would pass, but romanian cuisine is excluded
	// outright for touristic requests.
	got := Filter([]restaurants.Record{rec("romanian", "cheap", "good", "low", "short")}, Flags{Touristic: true})
	assert.Empty(t, got)
}

func TestFilterJustificationAccumulates(t *testing.T) {
	matches := Filter(
		[]restaurants.Record{rec("chinese", "cheap", "good", "low", "short")},
		Flags{Touristic: true, Children: true},
	)
	require.Len(t, matches, 1)

	j := matches[0].Justification
	assert.Contains(t, j, "touristic because it is cheap and the food quality is good")
	assert.Contains(t, j, "suitable for children because the stay is short")

	// Clauses appear in rule-evaluation order: touristic before children.
	assert.Less(t, strings.Index(j, "touristic"), strings.Index(j, "children"))
}

func TestFilterDropsOnlyFailingCandidates(t *testing.T) {
	candidates := []restaurants.Record{
		rec("chinese", "cheap", "good", "low", "short"),
		rec("italian", "expensive", "good", "low", "short"),
	}
	matches := Filter(candidates, Flags{Touristic: true})
	require.Len(t, matches, 1)
	assert.Equal(t, "chinese", matches[0].Record.Food)
}
