package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkoppelaar/restaurant-dialog/internal/config"
	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a scripted
// conversation with per-turn expectations.
type Fixture struct {
	Description string              `json:"description"`
	Options     FixtureOptions      `json:"options"`
	Seed        int64               `json:"seed"`
	Restaurants []FixtureRestaurant `json:"restaurants"`
	Turns       []FixtureTurn       `json:"turns"`
}

// FixtureOptions mirrors config.Options with JSON tags.
type FixtureOptions struct {
	ConfirmPreferences bool `json:"confirm_each_preference"`
	AllowRestart       bool `json:"allow_restart"`
	InformalPhrasing   bool `json:"informal_phrasing"`
	RandomSlotOrder    bool `json:"random_slot_order"`
}

// FixtureRestaurant mirrors restaurants.Record with JSON tags.
type FixtureRestaurant struct {
	Name         string `json:"name"`
	PriceRange   string `json:"pricerange"`
	Area         string `json:"area"`
	Food         string `json:"food"`
	Phone        string `json:"phone"`
	Addr         string `json:"addr"`
	Postcode     string `json:"postcode"`
	FoodQuality  string `json:"food_quality"`
	Crowdedness  string `json:"crowdedness"`
	LengthOfStay string `json:"length_of_stay"`
}

// FixtureTurn is one scripted turn. An empty utterance on the first turn is
// the system's opening move. WantContains is an optional substring
// expectation on the system message; WantSilent asserts an empty message.
type FixtureTurn struct {
	Utterance    string `json:"utterance"`
	WantState    string `json:"want_state"`
	WantContains string `json:"want_contains"`
	WantSilent   bool   `json:"want_silent"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToOptions converts fixture options to domain options.
func (o FixtureOptions) ToOptions() config.Options {
	return config.Options{
		ConfirmPreferences: o.ConfirmPreferences,
		AllowRestart:       o.AllowRestart,
		InformalPhrasing:   o.InformalPhrasing,
		RandomSlotOrder:    o.RandomSlotOrder,
	}
}

// ToRecord converts a fixture restaurant to a domain record.
func (r FixtureRestaurant) ToRecord() restaurants.Record {
	return restaurants.Record{
		Name:         r.Name,
		PriceRange:   r.PriceRange,
		Area:         r.Area,
		Food:         r.Food,
		Phone:        r.Phone,
		Addr:         r.Addr,
		Postcode:     r.Postcode,
		FoodQuality:  r.FoodQuality,
		Crowdedness:  r.Crowdedness,
		LengthOfStay: r.LengthOfStay,
	}
}

// #endregion fixture-loader
