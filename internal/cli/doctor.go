package cli

import (
	"context"
	"fmt"

	"github.com/ksyq12/glabenv/internal/cert"
	"github.com/ksyq12/glabenv/internal/envfile"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/proxy"
	"github.com/spf13/cobra"
)

// CheckResult is the outcome of a single doctor check
type CheckResult struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

// DoctorReport aggregates all checks
type DoctorReport struct {
	Healthy bool          `json:"healthy"`
	Checks  []CheckResult `json:"checks"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration, credentials, and tooling",
	Long: `Run connectivity and environment checks: config file validity,
credential resolution, GitLab API reachability, variable access for the
selected project, acme.sh availability, and the proxy reload strategy.

Project-scoped checks are skipped when no --project is given.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{Healthy: true}

	record := func(r CheckResult) {
		if !r.OK && !r.Skipped {
			report.Healthy = false
		}
		report.Checks = append(report.Checks, r)
	}

	// Config file
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		record(CheckResult{Name: "config", OK: false, Detail: err.Error()})
		return renderDoctor(report)
	}
	record(CheckResult{Name: "config", OK: true, Detail: fmt.Sprintf("%d project alias(es)", len(cfg.Projects))})

	// Credentials
	creds, err := envfile.Resolve(resolveEnvFile(cfg), gitlabURLFlag, tokenFlag)
	if err == nil && creds.GitLabURL == "" {
		creds.GitLabURL = cfg.GitLabURL
	}
	switch {
	case err != nil:
		record(CheckResult{Name: "credentials", OK: false, Detail: err.Error()})
	case creds.GitLabURL == "" || creds.Token == "":
		record(CheckResult{Name: "credentials", OK: false, Detail: "GITLAB_URL or GITLAB_TOKEN is not set"})
	default:
		record(CheckResult{Name: "credentials", OK: true, Detail: creds.GitLabURL})
	}

	// GitLab API, only when a project is selected and credentials resolved
	if projectFlag == "" {
		record(CheckResult{Name: "gitlab", OK: true, Skipped: true, Detail: "no --project given"})
		record(CheckResult{Name: "variables", OK: true, Skipped: true, Detail: "no --project given"})
	} else if creds.GitLabURL == "" || creds.Token == "" {
		record(CheckResult{Name: "gitlab", OK: true, Skipped: true, Detail: "credentials unresolved"})
		record(CheckResult{Name: "variables", OK: true, Skipped: true, Detail: "credentials unresolved"})
	} else {
		sess, err := newSession()
		if err != nil {
			record(CheckResult{Name: "gitlab", OK: false, Detail: err.Error()})
		} else {
			ctx := context.Background()
			if err := sess.store.Ping(ctx); err != nil {
				record(CheckResult{Name: "gitlab", OK: false, Detail: err.Error()})
			} else {
				record(CheckResult{Name: "gitlab", OK: true, Detail: "project " + sess.projectID + " reachable"})
			}

			vars, err := sess.store.ListVariables(ctx)
			if err != nil {
				record(CheckResult{Name: "variables", OK: false, Detail: err.Error()})
			} else {
				record(CheckResult{Name: "variables", OK: true, Detail: fmt.Sprintf("%d variable(s) visible", len(vars))})
			}
		}
	}

	// acme.sh
	if cert.IsInstalled() {
		record(CheckResult{Name: "acme.sh", OK: true})
	} else {
		record(CheckResult{Name: "acme.sh", OK: true, Skipped: true, Detail: "not installed; cert commands unavailable"})
	}

	// Proxy reload strategy
	if _, ok := proxy.Get(cfg.ProxyReload); ok {
		record(CheckResult{Name: "proxy", OK: true, Detail: cfg.ProxyReload})
	} else {
		record(CheckResult{Name: "proxy", OK: false, Detail: fmt.Sprintf("unknown strategy %q (available: %v)", cfg.ProxyReload, proxy.Available())})
	}

	return renderDoctor(report)
}

func renderDoctor(report *DoctorReport) error {
	if jsonOutput {
		return output.JSON(report)
	}

	for _, c := range report.Checks {
		switch {
		case c.Skipped:
			output.Info("%s: skipped (%s)", c.Name, c.Detail)
		case c.OK && c.Detail != "":
			output.Success("%s: %s", c.Name, c.Detail)
		case c.OK:
			output.Success("%s", c.Name)
		default:
			output.Error("%s: %s", c.Name, c.Detail)
		}
	}

	if !report.Healthy {
		return fmt.Errorf("doctor found problems")
	}
	output.Print("")
	output.Success("All checks passed")
	return nil
}
