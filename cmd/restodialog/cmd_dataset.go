package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/dataset"
)

var flagOut string

// datasetCmd is the parent command for dataset transforms.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Transform and inspect labeled dialog-act data",
	Long: `Transform and inspect datasets in the 'label utterance' line format.

Available subcommands:
  dedupe    - Remove exact duplicate samples, preserving order
  lowercase - Lowercase every utterance
  counts    - Print label frequencies`,
}

var datasetDedupeCmd = &cobra.Command{
	Use:   "dedupe <dataset.dat>",
	Short: "Remove exact duplicate samples, preserving order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformDataset(cmd, args[0], dataset.Dedupe)
	},
}

var datasetLowercaseCmd = &cobra.Command{
	Use:   "lowercase <dataset.dat>",
	Short: "Lowercase every utterance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformDataset(cmd, args[0], dataset.Lowercase)
	},
}

var datasetCountsCmd = &cobra.Command{
	Use:   "counts <dataset.dat>",
	Short: "Print label frequencies",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetCounts,
}

func init() {
	datasetCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "write result to a file instead of stdout")
	datasetCmd.AddCommand(datasetDedupeCmd)
	datasetCmd.AddCommand(datasetLowercaseCmd)
	datasetCmd.AddCommand(datasetCountsCmd)
}

func transformDataset(cmd *cobra.Command, path string, transform func([]dataset.Sample) []dataset.Sample) error {
	samples, err := dataset.ParseFile(path)
	if err != nil {
		return err
	}
	out := samples
	if transform != nil {
		out = transform(samples)
	}
	if flagOut == "" {
		return dataset.Write(cmd.OutOrStdout(), out)
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", flagOut, err)
	}
	defer f.Close()
	return dataset.Write(f, out)
}

func runDatasetCounts(cmd *cobra.Command, args []string) error {
	samples, err := dataset.ParseFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range dataset.Counts(samples) {
		fmt.Fprintf(out, "%-10s %d\n", c.Label, c.Count)
	}
	fmt.Fprintf(out, "%-10s %d\n", "total", len(samples))
	return nil
}
