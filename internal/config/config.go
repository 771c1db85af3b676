package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	GitLabURL   string              `yaml:"gitlab_url,omitempty"`
	EnvFile     string              `yaml:"env_file,omitempty"`
	Cert        CertConfig          `yaml:"cert"`
	ProxyReload string              `yaml:"proxy_reload"`
	Projects    map[string]*Project `yaml:"projects"`
}

// CertConfig holds certificate provisioning defaults
type CertConfig struct {
	Email       string `yaml:"email,omitempty"`
	DNSProvider string `yaml:"dns_provider"`
	CertDir     string `yaml:"cert_dir"`
}

// configDir is the default config directory
const configDir = ".config/glabenv"
const configFile = "config.yaml"

// New creates a new Config with default values
func New() *Config {
	return &Config{
		EnvFile: "gitlab.env",
		Cert: CertConfig{
			DNSProvider: "dns_cf",
			CertDir:     "/etc/gitlab/ssl",
		},
		ProxyReload: "gitlab-ctl",
		Projects:    make(map[string]*Project),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Initialize Projects map if nil
	if cfg.Projects == nil {
		cfg.Projects = make(map[string]*Project)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// AddProject adds a project alias to the config
func (c *Config) AddProject(alias string, p *Project) error {
	if _, exists := c.Projects[alias]; exists {
		return fmt.Errorf("project alias %s already exists", alias)
	}
	c.Projects[alias] = p
	return nil
}

// RemoveProject removes a project alias from the config
func (c *Config) RemoveProject(alias string) error {
	if _, exists := c.Projects[alias]; !exists {
		return fmt.Errorf("project alias %s not found", alias)
	}
	delete(c.Projects, alias)
	return nil
}

// ResolveProject maps an alias to its project ID. Unknown names pass
// through unchanged so numeric IDs and group/project paths work without
// an alias entry.
func (c *Config) ResolveProject(name string) string {
	if p, ok := c.Projects[name]; ok {
		return p.ID
	}
	return name
}
