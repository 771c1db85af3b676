package cli

import (
	"context"

	"github.com/ksyq12/glabenv/internal/apply"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/reconcile"
	"github.com/ksyq12/glabenv/internal/variable"
	"github.com/spf13/cobra"
)

var (
	importForce      bool
	importBestEffort bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import variables from a JSON file",
	Long: `Import variables from a JSON file into a project.

Variables present in the file are created or updated; variables that
exist only remotely are left untouched (use push for a full sync).
Empty values are skipped unless --force is given, so a redacted export
can be re-imported without wiping remote secrets.

Examples:
  glabenv import -p 12345 variables.json
  glabenv import -p 12345 variables.json --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Allow creating and updating variables with empty values")
	importCmd.Flags().BoolVar(&importBestEffort, "continue-on-error", false, "Keep applying after a remote failure instead of stopping")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	// Parse and validate before any remote interaction
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

	ctx := context.Background()
	observed, err := fetchObserved(ctx, sess.store)
	if err != nil {
		return err
	}

	plan := reconcile.Reconcile(desired, observed, reconcile.Options{Force: importForce})
	printWarnings(plan)

	return applyAndReport(ctx, sess, plan, importBestEffort)
}

// applyAndReport applies the plan and prints the outcome, shared by
// import and push
func applyAndReport(ctx context.Context, sess *session, plan *reconcile.Plan, bestEffort bool) error {
	if plan.IsEmpty() {
		if jsonOutput {
			return output.JSON(syncResult{
				Success:  true,
				Project:  sess.projectID,
				Summary:  plan.Summary(),
				Warnings: plan.Warnings,
			})
		}
		output.Info("Nothing to do; remote already matches the file")
		return nil
	}

	applier := &apply.Applier{Store: sess.store, ContinueOnError: bestEffort}
	results, applyErr := applier.Apply(ctx, plan)

	var failed []failedOp
	for _, r := range apply.Failed(results) {
		failed = append(failed, failedOp{
			Action: string(r.Op.Action),
			Key:    r.Op.Key,
			Reason: r.Err.Error(),
		})
	}

	summary := plan.Summary()
	if jsonOutput {
		if err := output.JSON(syncResult{
			Success:  len(failed) == 0,
			Project:  sess.projectID,
			Summary:  summary,
			Failed:   failed,
			Warnings: plan.Warnings,
		}); err != nil {
			return err
		}
		return applyErr
	}

	printFailed(failed)
	applied := len(results) - len(failed)
	if applyErr != nil {
		output.Error("Aborted after %d of %d operations", applied, len(plan.Changes()))
		return applyErr
	}
	if len(failed) > 0 {
		output.Warn("Applied %d operations, %d failed", applied, len(failed))
	} else {
		output.Success("Applied %d operations: %d created, %d updated, %d deleted, %d skipped",
			applied, summary.Creates, summary.Updates, summary.Deletes, summary.NoOps)
	}
	return nil
}
