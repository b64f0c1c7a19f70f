package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoppelaar/restaurant-dialog/internal/dataset"
)

var flagMistakes int

// evalCmd evaluates the dialog-act classifier on a labeled dataset.
var evalCmd = &cobra.Command{
	Use:   "eval <dataset.dat>",
	Short: "Evaluate the dialog-act classifier on a labeled dataset",
	Long: `Evaluate the active classifier against a labeled dataset in the
'label utterance' line format and report accuracy, the most frequent
confusions and optionally a sample of mistakes.

With --grpc-addr the trained classifier service is evaluated; by default the
rule-based keyword baseline is.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVar(&flagMistakes, "mistakes", 0, "print up to N misclassified samples")
}

func runEval(cmd *cobra.Command, args []string) error {
	samples, err := dataset.ParseFile(args[0])
	if err != nil {
		return err
	}

	classifier, closeClassifier, err := newClassifier()
	if err != nil {
		return err
	}
	if closeClassifier != nil {
		defer closeClassifier()
	}

	report, err := dataset.Evaluate(cmd.Context(), classifier, samples)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples:  %d\n", report.Total)
	fmt.Fprintf(out, "correct:  %d\n", report.Correct)
	fmt.Fprintf(out, "accuracy: %.4f\n", report.Accuracy())
	if confusions := report.TopConfusions(10); len(confusions) > 0 {
		fmt.Fprintln(out, "top confusions:")
		for _, c := range confusions {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	for i, m := range report.Mistakes {
		if i >= flagMistakes {
			break
		}
		fmt.Fprintf(out, "mistake: %q true=%s predicted=%s\n",
			m.Sample.Utterance, m.Sample.Label, m.Predicted)
	}
	return nil
}
