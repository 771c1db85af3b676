package cli

import (
	"path/filepath"
	"testing"

	"github.com/ksyq12/glabenv/internal/config"
	"github.com/ksyq12/glabenv/internal/errors"
	"github.com/ksyq12/glabenv/internal/gitlab"
)

// setConnFlags points the connection flags at fake credentials and a
// nonexistent env file, and restores everything when the test ends.
func setConnFlags(t *testing.T, project string) {
	t.Helper()
	projectFlag = project
	gitlabURLFlag = "https://gitlab.example.com"
	tokenFlag = "glpat-test-token"
	envFileFlag = filepath.Join(t.TempDir(), "missing.env")
	jsonOutput = false
	insecureSkipVerify = false
	caBundle = ""
	t.Cleanup(func() {
		projectFlag = ""
		gitlabURLFlag = ""
		tokenFlag = ""
		envFileFlag = ""
		jsonOutput = false
		insecureSkipVerify = false
		caBundle = ""
	})
}

func TestResolveEnvFile(t *testing.T) {
	tests := []struct {
		name string
		flag string
		cfg  string
		want string
	}{
		{"flag wins", "/tmp/flag.env", "/tmp/cfg.env", "/tmp/flag.env"},
		{"config when no flag", "", "/tmp/cfg.env", "/tmp/cfg.env"},
		{"default when neither", "", "", "gitlab.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envFileFlag = tt.flag
			defer func() { envFileFlag = "" }()

			cfg := config.New()
			cfg.EnvFile = tt.cfg

			if got := resolveEnvFile(cfg); got != tt.want {
				t.Errorf("resolveEnvFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) *Dependencies
		wantErr   error
		wantAnyOk bool
		validate  func(t *testing.T, sess *session, d *Dependencies)
	}{
		{
			name: "missing credentials",
			setup: func(t *testing.T) *Dependencies {
				setConnFlags(t, "12345")
				gitlabURLFlag = ""
				tokenFlag = ""
				t.Setenv("GITLAB_URL", "")
				t.Setenv("GITLAB_TOKEN", "")
				return NewMockDeps().Build()
			},
			wantErr: errors.ErrAuthRequired,
		},
		{
			name: "missing project",
			setup: func(t *testing.T) *Dependencies {
				setConnFlags(t, "")
				return NewMockDeps().Build()
			},
			wantErr: errors.ErrProjectRequired,
		},
		{
			name: "config url fallback",
			setup: func(t *testing.T) *Dependencies {
				setConnFlags(t, "12345")
				gitlabURLFlag = ""
				t.Setenv("GITLAB_URL", "")
				cfg := config.New()
				cfg.GitLabURL = "https://gitlab.internal"
				return NewMockDeps().WithConfig(cfg).WithStore(gitlab.NewMockStore()).Build()
			},
			wantAnyOk: true,
			validate: func(t *testing.T, sess *session, d *Dependencies) {
				if sess.baseURL != "https://gitlab.internal" {
					t.Errorf("baseURL = %q, want config fallback", sess.baseURL)
				}
			},
		},
		{
			name: "alias resolution",
			setup: func(t *testing.T) *Dependencies {
				setConnFlags(t, "backend")
				cfg := config.New()
				cfg.Projects["backend"] = &config.Project{ID: "42"}
				return NewMockDeps().WithConfig(cfg).WithStore(gitlab.NewMockStore()).Build()
			},
			wantAnyOk: true,
			validate: func(t *testing.T, sess *session, d *Dependencies) {
				if sess.projectID != "42" {
					t.Errorf("projectID = %q, want 42", sess.projectID)
				}
				if sess.alias != "backend" {
					t.Errorf("alias = %q, want backend", sess.alias)
				}
			},
		},
		{
			name: "tls flags reach the client config",
			setup: func(t *testing.T) *Dependencies {
				setConnFlags(t, "12345")
				insecureSkipVerify = true
				return NewMockDeps().WithStore(gitlab.NewMockStore()).Build()
			},
			wantAnyOk: true,
			validate: func(t *testing.T, sess *session, d *Dependencies) {
				factory := d.StoreFactory.(*MockStoreFactory)
				if !factory.LastConfig.InsecureSkipVerify {
					t.Error("expected InsecureSkipVerify to be passed through")
				}
				if factory.LastConfig.Token != "glpat-test-token" {
					t.Errorf("token = %q, want flag value", factory.LastConfig.Token)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldDeps := deps
			d := tt.setup(t)
			deps = d
			defer func() { deps = oldDeps }()

			sess, err := newSession()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("newSession() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantAnyOk && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, sess, d)
			}
		})
	}
}
