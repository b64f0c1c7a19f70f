package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/infer"
	"github.com/mkoppelaar/restaurant-dialog/internal/logging"
	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

// #region flags

var (
	flagConfig   string
	flagDB       string
	flagCSV      string
	flagGRPCAddr string
	flagDebug    bool
)

// #endregion flags

// #region root

var rootCmd = &cobra.Command{
	Use:   "restodialog",
	Short: "Restaurant recommendation dialog system",
	Long: `A slot-filling dialog system for restaurant recommendations.

The system elicits an area, price range and food type, asks for secondary
preferences such as romantic or suitable for children, and suggests matching
restaurants with a justification.

Available subcommands:
  chat           - Run an interactive conversation on the terminal
  replay         - Replay a scripted conversation fixture
  eval           - Evaluate the dialog-act classifier on a labeled dataset
  dataset        - Transform and inspect labeled dialog-act data
  expand         - Fill in missing restaurant properties and export to CSV
  transcript     - Inspect recorded conversations
  export-fixture - Export a recorded session as a replay fixture`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.json", "path to the behavior options file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "restaurants.db", "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "restaurant CSV to import into an empty database")
	rootCmd.PersistentFlags().StringVar(&flagGRPCAddr, "grpc-addr", "", "address of the trained classifier service (empty: rule-based)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(exportFixtureCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// #endregion root

// #region wiring

func newLogger() (*zap.SugaredLogger, error) {
	return logging.New(flagDebug)
}

// openStore opens the restaurant database, importing the CSV when one is
// given and the table is still empty.
func openStore() (*restaurants.Store, error) {
	store, err := restaurants.NewStore(flagDB)
	if err != nil {
		return nil, err
	}
	n, err := store.Count()
	if err != nil {
		store.Close()
		return nil, err
	}
	if n == 0 && flagCSV != "" {
		if _, err := store.ImportCSV(flagCSV); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}

// storeDomains derives the slot value sets from the database, falling back
// to the built-in Cambridge domains when the database is empty.
func storeDomains(store *restaurants.Store) extract.Domains {
	area, price, food, err := store.DomainValues()
	if err != nil || len(area) == 0 {
		return extract.DefaultDomains()
	}
	return extract.Domains{Area: area, Price: price, Food: food}
}

// newClassifier picks the trained gRPC classifier when an address is set,
// the keyword classifier otherwise. The returned closer is non-nil only for
// the gRPC path.
func newClassifier() (classify.Classifier, func() error, error) {
	if flagGRPCAddr == "" {
		return classify.NewRuleBased(), nil, nil
	}
	client, err := infer.NewClient(flagGRPCAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("connect classifier at %s: %w", flagGRPCAddr, err)
	}
	return client, client.Close, nil
}

// #endregion wiring
