package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/logging"
)

var flagLast int

// transcriptCmd inspects recorded conversations in the database.
var transcriptCmd = &cobra.Command{
	Use:   "transcript [session-id]",
	Short: "Inspect recorded conversations",
	Long: `Inspect the dialog turns recorded by chat sessions.

Without arguments the most recent sessions are listed; with a session id the
full turn-by-turn transcript is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranscript,
}

func init() {
	transcriptCmd.Flags().IntVar(&flagLast, "last", 20, "number of recent sessions to list")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	transcript, err := logging.NewTranscript(store.DB())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		sessions, err := transcript.Sessions(flagLast)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(out, "no recorded sessions")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintf(out, "%s  turns=%-3d last_state=%-18s started=%s\n",
				s.SessionID, s.Turns, s.LastState, s.StartedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	}

	entries, err := transcript.Session(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no turns recorded for session %s", args[0])
	}
	for _, e := range entries {
		if e.Utterance != "" {
			fmt.Fprintf(out, "turn %2d user:   %s\n", e.TurnNum, e.Utterance)
		}
		fmt.Fprintf(out, "turn %2d system: [%s] %s\n", e.TurnNum, e.State, e.Response)
	}
	return nil
}
