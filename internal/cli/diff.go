package cli

import (
	"context"

	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/reconcile"
	"github.com/ksyq12/glabenv/internal/variable"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <file>",
	Short: "Show differences between a file and the live project",
	Long: `Compare a variables file against the project's current variables
and print what a push would change. Nothing is applied.

Examples:
  glabenv diff -p 12345 variables.json
  glabenv diff -p 12345 variables.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	doc, err := variable.ReadFile(args[0])
	if err != nil {
		return err
	}
	desired, err := doc.Collection()
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	observed, err := fetchObserved(context.Background(), sess.store)
	if err != nil {
		return err
	}

	// Show deletions a push would perform; diff itself never mutates.
	plan := reconcile.Reconcile(desired, observed, reconcile.Options{Prune: true, Force: true})

	if jsonOutput {
		return output.JSON(plan)
	}

	renderDiff(plan)
	return nil
}

// renderDiff prints the plan the way a human reads a sync preview
func renderDiff(plan *reconcile.Plan) {
	s := plan.Summary()
	output.Print("=== Variable Differences ===")
	output.Print("Added:    %d", s.Creates)
	output.Print("Removed:  %d", s.Deletes)
	output.Print("Modified: %d", s.Updates)

	if creates := plan.Creates(); len(creates) > 0 {
		output.Print("")
		output.Print("Variables to add:")
		for _, op := range creates {
			output.Added(op.Key)
		}
	}

	if deletes := plan.Deletes(); len(deletes) > 0 {
		output.Print("")
		output.Print("Variables to remove:")
		for _, op := range deletes {
			output.Removed(op.Key)
		}
	}

	if updates := plan.Updates(); len(updates) > 0 {
		output.Print("")
		output.Print("Variables to modify:")
		for _, op := range updates {
			output.Changed(op.Key, op.Reason)
		}
	}

	if len(plan.Warnings) > 0 {
		output.Print("")
		printWarnings(plan)
	}

	if plan.IsEmpty() {
		output.Print("")
		output.Info("No differences")
	}
}
