package cli

import (
	"context"
	"fmt"

	"github.com/ksyq12/glabenv/internal/config"
	"github.com/ksyq12/glabenv/internal/envfile"
	"github.com/ksyq12/glabenv/internal/errors"
	"github.com/ksyq12/glabenv/internal/gitlab"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/reconcile"
	"github.com/ksyq12/glabenv/internal/variable"
)

// session bundles everything a variable command needs to talk to one
// project
type session struct {
	store     gitlab.Store
	cfg       *config.Config
	alias     string // set when the project flag matched a configured alias
	projectID string
	baseURL   string
}

// defaultEnvFile is used when neither the flag nor the config names one
const defaultEnvFile = "gitlab.env"

// resolveEnvFile picks the env file path from flag, config, or default
func resolveEnvFile(cfg *config.Config) string {
	if envFileFlag != "" {
		return envFileFlag
	}
	if cfg.EnvFile != "" {
		return cfg.EnvFile
	}
	return defaultEnvFile
}

// newSession loads config, resolves credentials, and builds the remote
// store client for the selected project
func newSession() (*session, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	creds, err := envfile.Resolve(resolveEnvFile(cfg), gitlabURLFlag, tokenFlag)
	if err != nil {
		return nil, err
	}
	if creds.GitLabURL == "" {
		creds.GitLabURL = cfg.GitLabURL
	}
	if creds.GitLabURL == "" || creds.Token == "" {
		return nil, errors.ErrAuthRequired
	}

	if projectFlag == "" {
		return nil, errors.ErrProjectRequired
	}
	projectID := cfg.ResolveProject(projectFlag)
	alias := ""
	if projectID != projectFlag {
		alias = projectFlag
	}

	store, err := deps.StoreFactory.Create(gitlab.Config{
		BaseURL:            creds.GitLabURL,
		Token:              creds.Token,
		ProjectID:          projectID,
		InsecureSkipVerify: insecureSkipVerify,
		CABundle:           caBundle,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		store:     store,
		cfg:       cfg,
		alias:     alias,
		projectID: projectID,
		baseURL:   creds.GitLabURL,
	}, nil
}

// fetchObserved lists the remote variables as a collection
func fetchObserved(ctx context.Context, store gitlab.Store) (*variable.Collection, error) {
	vars, err := store.ListVariables(ctx)
	if err != nil {
		return nil, err
	}
	return variable.FromVariables(vars)
}

// printWarnings surfaces every policy downgrade on the plan
func printWarnings(plan *reconcile.Plan) {
	for _, w := range plan.Warnings {
		output.Warn("%s: %s", w.Key, w.Reason)
	}
}

// printFailed reports every operation the remote store rejected
func printFailed(failed []failedOp) {
	for _, f := range failed {
		output.Error("%s %s: %s", f.Action, f.Key, f.Reason)
	}
}

// failedOp is the JSON shape of a rejected operation
type failedOp struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// syncResult is the JSON result of import and push
type syncResult struct {
	Success  bool                `json:"success"`
	Project  string              `json:"project"`
	Summary  reconcile.Summary   `json:"summary"`
	Failed   []failedOp          `json:"failed,omitempty"`
	Warnings []reconcile.Warning `json:"warnings,omitempty"`
}
