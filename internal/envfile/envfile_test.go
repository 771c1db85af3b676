package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitlab.env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		loaded, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded {
			t.Error("missing file should report not loaded")
		}
	})

	t.Run("loads variables", func(t *testing.T) {
		t.Setenv(EnvGitLabURL, "")
		t.Setenv(EnvToken, "")
		os.Unsetenv(EnvGitLabURL)
		os.Unsetenv(EnvToken)

		path := writeEnvFile(t, "GITLAB_URL=https://gitlab.example.com\nGITLAB_TOKEN=glpat-abc\n")
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !loaded {
			t.Error("expected file to be loaded")
		}

		creds := FromEnv()
		if creds.GitLabURL != "https://gitlab.example.com" {
			t.Errorf("GITLAB_URL not loaded: %q", creds.GitLabURL)
		}
		if creds.Token != "glpat-abc" {
			t.Errorf("GITLAB_TOKEN not loaded: %q", creds.Token)
		}
	})

	t.Run("does not override existing environment", func(t *testing.T) {
		t.Setenv(EnvToken, "from-environment")

		path := writeEnvFile(t, "GITLAB_TOKEN=from-file\n")
		if _, err := Load(path); err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if got := FromEnv().Token; got != "from-environment" {
			t.Errorf("existing environment should win, got %q", got)
		}
	})
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvGitLabURL, "")
	t.Setenv(EnvToken, "")
	os.Unsetenv(EnvGitLabURL)
	os.Unsetenv(EnvToken)

	path := writeEnvFile(t, "GITLAB_URL=https://env.example.com\nGITLAB_TOKEN=env-token\nCF_Token=cf-secret\n")

	t.Run("env file values", func(t *testing.T) {
		creds, err := Resolve(path, "", "")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if creds.GitLabURL != "https://env.example.com" || creds.Token != "env-token" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		if creds.CFToken != "cf-secret" {
			t.Errorf("CF_Token not resolved: %q", creds.CFToken)
		}
	})

	t.Run("overrides win", func(t *testing.T) {
		creds, err := Resolve(path, "https://flag.example.com", "flag-token")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if creds.GitLabURL != "https://flag.example.com" || creds.Token != "flag-token" {
			t.Errorf("flag overrides should win: %+v", creds)
		}
	})
}
