package replay

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
	"github.com/mkoppelaar/restaurant-dialog/internal/dialog"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

// #region types

// TurnResult captures the outcome of replaying one scripted turn.
type TurnResult struct {
	Utterance string
	State     string
	Message   string
	StateOK   bool
	MessageOK bool
}

// OK reports whether the turn met all of its expectations.
func (r TurnResult) OK() bool {
	return r.StateOK && r.MessageOK
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Description string
	TotalTurns  int
	Passed      int
	Failed      int
	FinalState  string
}

// #endregion types

// #region repository

// fixtureRepo serves the fixture's restaurant list in memory with
// wildcard-aware filtering, so replays need no database.
type fixtureRepo struct {
	records []restaurants.Record
}

func (r fixtureRepo) Lookup(area, price, food string) ([]restaurants.Record, error) {
	var out []restaurants.Record
	for _, rec := range r.records {
		if area != extract.Wildcard && rec.Area != area {
			continue
		}
		if price != extract.Wildcard && rec.PriceRange != price {
			continue
		}
		if food != extract.Wildcard && rec.Food != food {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// #endregion repository

// #region replay

// Run replays the fixture's conversation against a fresh controller wired
// with the rule-based classifier and a seeded randomness source, comparing
// each turn against its expectations. Operates entirely in-memory.
func Run(ctx context.Context, f *Fixture, log *zap.SugaredLogger) ([]TurnResult, Summary, error) {
	records := make([]restaurants.Record, len(f.Restaurants))
	for i, r := range f.Restaurants {
		records[i] = r.ToRecord()
	}

	machine := dialog.NewMachine(
		extract.New(extract.DefaultDomains()),
		fixtureRepo{records: records},
		dialog.NewSeededRand(f.Seed),
		log,
	)
	controller := dialog.NewController(machine, classify.NewRuleBased(), f.Options.ToOptions(), nil, log)

	results := make([]TurnResult, 0, len(f.Turns))
	summary := Summary{Description: f.Description, TotalTurns: len(f.Turns)}

	for i, turn := range f.Turns {
		var message string
		var err error
		if i == 0 {
			if turn.Utterance != "" {
				return nil, Summary{}, fmt.Errorf("turn 0 must be the opening turn with an empty utterance")
			}
			message, err = controller.Open(ctx)
		} else {
			message, err = controller.Respond(ctx, turn.Utterance)
		}
		if err != nil {
			return nil, Summary{}, fmt.Errorf("turn %d: %w", i, err)
		}

		result := TurnResult{
			Utterance: turn.Utterance,
			State:     string(controller.State()),
			Message:   message,
			StateOK:   turn.WantState == "" || string(controller.State()) == turn.WantState,
			MessageOK: messageOK(turn, message),
		}
		if result.OK() {
			summary.Passed++
		} else {
			summary.Failed++
		}
		results = append(results, result)
	}

	summary.FinalState = string(controller.State())
	return results, summary, nil
}

func messageOK(turn FixtureTurn, message string) bool {
	if turn.WantSilent {
		return message == ""
	}
	if turn.WantContains == "" {
		return true
	}
	return strings.Contains(message, turn.WantContains)
}

// #endregion replay
