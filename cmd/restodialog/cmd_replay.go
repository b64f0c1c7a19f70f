package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/replay"
)

// replayCmd replays a scripted conversation fixture.
var replayCmd = &cobra.Command{
	Use:   "replay <fixture.json>",
	Short: "Replay a scripted conversation fixture",
	Long: `Replay a JSON conversation fixture against the dialog machine.

The fixture scripts user utterances with expected states and message
fragments, and pins the randomness seed, so a run is fully deterministic.
The command fails when any turn misses its expectations.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	fixture, err := replay.LoadFixture(args[0])
	if err != nil {
		return err
	}

	results, summary, err := replay.Run(cmd.Context(), fixture, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "replaying: %s\n", summary.Description)
	for i, r := range results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(out, "turn %2d [%s] %-20s user=%q system=%q\n",
			i, status, r.State, r.Utterance, r.Message)
	}
	fmt.Fprintf(out, "%d/%d turns passed, final state %s\n",
		summary.Passed, summary.TotalTurns, summary.FinalState)

	if summary.Failed > 0 {
		return fmt.Errorf("%d turn(s) missed their expectations", summary.Failed)
	}
	return nil
}
