package cli

import (
	"context"
	"fmt"

	"github.com/ksyq12/glabenv/internal/input"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/reconcile"
	"github.com/ksyq12/glabenv/internal/variable"
	"github.com/spf13/cobra"
)

var (
	pushYes        bool
	pushBestEffort bool
)

var pushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Sync a project's variables to match a JSON file",
	Long: `Push variables from a file as a full sync: variables missing from
the file are deleted remotely, the rest are created or updated. Empty
values are written as-is (push implies --force).

Pending deletions are listed and confirmed interactively unless --yes
is given.

Examples:
  glabenv push -p 12345 variables.json
  glabenv push -p 12345 variables.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

func init() {
	pushCmd.Flags().BoolVarP(&pushYes, "yes", "y", false, "Delete without asking for confirmation")
	pushCmd.Flags().BoolVar(&pushBestEffort, "continue-on-error", false, "Keep applying after a remote failure instead of stopping")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
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

	plan := reconcile.Reconcile(desired, observed, reconcile.Options{Prune: true, Force: true})
	printWarnings(plan)

	if deletes := plan.Deletes(); len(deletes) > 0 && !pushYes {
		output.Warn("Push will delete %d variable(s) not present in the file:", len(deletes))
		for _, op := range deletes {
			output.Removed(op.Key)
		}
		fmt.Print("Continue? [y/N] ")
		if !input.Confirm(deps.StdinReader) {
			output.Info("Aborted; nothing applied")
			return nil
		}
	}

	return applyAndReport(ctx, sess, plan, pushBestEffort)
}
