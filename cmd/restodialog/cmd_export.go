package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/config"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/logging"
	"github.com/mkoppelaar/restaurant-dialog/internal/replay"
)

var (
	flagExportOut  string
	flagExportSeed int64
)

// exportFixtureCmd turns a recorded session into a replay fixture.
var exportFixtureCmd = &cobra.Command{
	Use:   "export-fixture <session-id>",
	Short: "Export a recorded session as a replay fixture",
	Long: `Export a recorded chat session as a JSON replay fixture.

The fixture scripts the session's utterances with the recorded states as
expectations and embeds the current restaurant table, so the conversation can
be replayed deterministically. Recorded messages are not pinned: replays use
the fixture seed for the randomized choices, which need not match the
original session's.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportFixture,
}

func init() {
	exportFixtureCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output fixture JSON path (required)")
	exportFixtureCmd.Flags().Int64Var(&flagExportSeed, "seed", 1, "randomness seed to embed in the fixture")
	exportFixtureCmd.MarkFlagRequired("out")
}

func runExportFixture(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	transcript, err := logging.NewTranscript(store.DB())
	if err != nil {
		return err
	}
	entries, err := transcript.Session(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no turns recorded for session %s", args[0])
	}

	records, err := store.Lookup(extract.Wildcard, extract.Wildcard, extract.Wildcard)
	if err != nil {
		return err
	}

	opts := config.Load(flagConfig)
	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported from session %s", args[0]),
		Options: replay.FixtureOptions{
			ConfirmPreferences: opts.ConfirmPreferences,
			AllowRestart:       opts.AllowRestart,
			InformalPhrasing:   opts.InformalPhrasing,
			RandomSlotOrder:    opts.RandomSlotOrder,
		},
		Seed: flagExportSeed,
	}
	for _, r := range records {
		fixture.Restaurants = append(fixture.Restaurants, replay.FixtureRestaurant{
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
		})
	}
	for _, e := range entries {
		fixture.Turns = append(fixture.Turns, replay.FixtureTurn{
			Utterance: e.Utterance,
			WantState: e.State,
		})
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(flagExportOut, data, 0644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	fmt.Printf("exported %d turns to %s\n", len(fixture.Turns), flagExportOut)
	return nil
}
