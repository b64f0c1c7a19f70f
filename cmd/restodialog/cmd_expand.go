package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagExpandOut  string
	flagExpandSeed int64
)

// expandCmd fills in missing restaurant properties and exports the result.
var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Fill in missing restaurant properties and export to CSV",
	Long: `Assign random food quality, crowdedness and length-of-stay tiers to
restaurants that are missing them, and export the expanded table to CSV.

Properties already present are preserved. The export refuses to overwrite an
existing file.`,
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringVarP(&flagExpandOut, "out", "o", "restaurant_info_extra.csv", "output CSV path")
	expandCmd.Flags().Int64Var(&flagExpandSeed, "seed", 0, "randomness seed (0: time-based)")
}

func runExpand(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("database is empty, import restaurants with --csv first")
	}

	seed := flagExpandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	if err := store.Augment(rng.Intn); err != nil {
		return err
	}
	if err := store.ExportCSV(flagExpandOut); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "expanded %d restaurants into %s\n", n, flagExpandOut)
	return nil
}
