// Package envfile resolves GitLab and Cloudflare credentials from the
// environment, optionally seeded from a dotenv file.
//
// Secrets are kept out of the YAML config on purpose: the token lives in
// a gitlab.env file next to the project or in the process environment,
// with command-line flags taking precedence over both.
package envfile

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ksyq12/glabenv/internal/errors"
	"github.com/ksyq12/glabenv/internal/logger"
)

// Environment variable names the tool reads
const (
	EnvGitLabURL = "GITLAB_URL"
	EnvToken     = "GITLAB_TOKEN"
	EnvCFToken   = "CF_Token" // acme.sh's expected spelling for the Cloudflare API token
)

// Credentials holds everything resolvable from the environment
type Credentials struct {
	GitLabURL string
	Token     string
	CFToken   string
}

// Load seeds the process environment from the dotenv file at path.
// A missing file is not an error; existing environment variables are
// never overridden.
func Load(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, errors.Wrap(errors.ErrCodeConfig, "failed to load env file", err)
	}
	logger.Info("Loaded environment from %s", path)
	return true, nil
}

// FromEnv reads credentials from the process environment
func FromEnv() Credentials {
	return Credentials{
		GitLabURL: os.Getenv(EnvGitLabURL),
		Token:     os.Getenv(EnvToken),
		CFToken:   os.Getenv(EnvCFToken),
	}
}

// Resolve loads the env file and merges it with explicit overrides.
// Non-empty overrides win over the environment.
func Resolve(path, urlOverride, tokenOverride string) (Credentials, error) {
	if _, err := Load(path); err != nil {
		return Credentials{}, err
	}
	creds := FromEnv()
	if urlOverride != "" {
		creds.GitLabURL = urlOverride
	}
	if tokenOverride != "" {
		creds.Token = tokenOverride
	}
	return creds, nil
}
