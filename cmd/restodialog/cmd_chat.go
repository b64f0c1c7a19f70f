package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/config"
	"github.com/mkoppelaar/restaurant-dialog/internal/dialog"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/logging"
)

// chatCmd runs an interactive conversation on the terminal.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive conversation on the terminal",
	Long: `Run an interactive restaurant dialog on stdin/stdout.

Type 'exit' or 'quit' to leave at any point; the dialog also ends on its own
once you say goodbye. Behavior toggles are read from the --config file.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	classifier, closeClassifier, err := newClassifier()
	if err != nil {
		return err
	}
	if closeClassifier != nil {
		defer closeClassifier()
	}

	transcript, err := logging.NewTranscript(store.DB())
	if err != nil {
		return err
	}

	opts := config.Load(flagConfig)
	machine := dialog.NewMachine(
		extract.New(storeDomains(store)),
		store,
		dialog.NewSeededRand(time.Now().UnixNano()),
		log,
	)
	controller := dialog.NewController(machine, classifier, opts, transcript, log)

	return controller.Run(cmd.Context(), os.Stdin, os.Stdout)
}
