// Package proxy reloads the reverse proxy fronting a GitLab instance so
// that freshly installed certificates take effect.
//
// Two strategies are supported: gitlab-ctl for Omnibus installs, where
// GitLab manages its own bundled nginx, and plain nginx for instances
// behind an externally managed proxy. The config file selects one by
// name; cert install also hands the matching shell command to acme.sh
// as the renewal reload hook.
package proxy

import (
	"fmt"
	"strings"

	"github.com/ksyq12/glabenv/internal/executor"
)

// Reloader reloads a reverse proxy configuration
type Reloader interface {
	// Name returns the strategy name used in config files
	Name() string

	// Reload reloads the proxy now
	Reload() error

	// ReloadCommand returns the shell command acme.sh should run on renewal
	ReloadCommand() string
}

// cmdExecutor is the command executor (can be replaced for testing)
var cmdExecutor executor.CommandExecutor = executor.NewSystemExecutor()

// SetExecutor allows tests to inject a mock executor
func SetExecutor(exec executor.CommandExecutor) {
	cmdExecutor = exec
}

// ResetExecutor resets the executor to the default system executor
func ResetExecutor() {
	cmdExecutor = executor.NewSystemExecutor()
}

// GitLabCtl reloads the bundled nginx of an Omnibus GitLab install
type GitLabCtl struct{}

// Name returns the strategy name
func (g *GitLabCtl) Name() string { return "gitlab-ctl" }

// Reload runs gitlab-ctl hup nginx
func (g *GitLabCtl) Reload() error {
	output, err := cmdExecutor.Execute("gitlab-ctl", "hup", "nginx")
	if err != nil {
		return fmt.Errorf("gitlab-ctl hup nginx failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// ReloadCommand returns the renewal hook command
func (g *GitLabCtl) ReloadCommand() string { return "gitlab-ctl hup nginx" }

// Nginx reloads an externally managed nginx
type Nginx struct{}

// Name returns the strategy name
func (n *Nginx) Name() string { return "nginx" }

// Reload runs nginx -s reload
func (n *Nginx) Reload() error {
	output, err := cmdExecutor.Execute("nginx", "-s", "reload")
	if err != nil {
		return fmt.Errorf("nginx reload failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// ReloadCommand returns the renewal hook command
func (n *Nginx) ReloadCommand() string { return "nginx -s reload" }

// registry holds all known reload strategies
var registry = map[string]Reloader{
	"gitlab-ctl": &GitLabCtl{},
	"nginx":      &Nginx{},
}

// Get returns a reloader by name
func Get(name string) (Reloader, bool) {
	r, ok := registry[name]
	return r, ok
}

// Available returns all registered strategy names
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// MockReloader is a test double for Reloader
type MockReloader struct {
	ReloadFunc  func() error
	ReloadCalls int
}

// Name returns the mock strategy name
func (m *MockReloader) Name() string { return "mock" }

// Reload records the call and invokes the mock function if set
func (m *MockReloader) Reload() error {
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

// ReloadCommand returns a harmless command for tests
func (m *MockReloader) ReloadCommand() string { return "true" }
