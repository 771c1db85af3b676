package cli

import (
	"context"
	"time"

	"github.com/ksyq12/glabenv/internal/logger"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/variable"
	"github.com/spf13/cobra"
)

var includeMasked bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export project variables to a JSON file",
	Long: `Export all CI/CD variables of a project to a JSON file.

Masked variable values are redacted in the export unless --include-masked
is given; redacted entries carry a description noting the omission.

Examples:
  glabenv export -p 12345 variables.json
  glabenv export -p group/project variables.json --include-masked`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&includeMasked, "include-masked", false, "Include masked variable values (CAUTION: exposes secrets)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	file := args[0]

	sess, err := newSession()
	if err != nil {
		return err
	}

	vars, err := sess.store.ListVariables(context.Background())
	if err != nil {
		return err
	}

	coll := variable.NewCollection()
	for _, v := range vars {
		if v.Masked && !includeMasked {
			v.Value = ""
			v.Description = "Masked value not exported"
		}
		if err := coll.Add(v); err != nil {
			return err
		}
	}

	doc := variable.NewDocument(coll, sess.projectID, sess.baseURL)
	if err := doc.WriteFile(file); err != nil {
		return err
	}

	// Remember the export on the alias, if one was used
	if sess.alias != "" {
		if p, ok := sess.cfg.Projects[sess.alias]; ok {
			p.LastExport = time.Now()
			if err := deps.ConfigLoader.Save(sess.cfg); err != nil {
				logger.Warn("Could not update config: %v", err)
			}
		}
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":         true,
			"project":         sess.projectID,
			"file":            file,
			"total_variables": coll.Len(),
			"include_masked":  includeMasked,
		})
	}

	output.Success("Exported %d variables to %s", coll.Len(), file)
	if !includeMasked {
		masked := 0
		for _, v := range coll.Variables() {
			if v.Masked {
				masked++
			}
		}
		if masked > 0 {
			output.Warn("%d masked value(s) redacted; re-run with --include-masked to export them", masked)
		}
	}
	return nil
}
