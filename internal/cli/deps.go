package cli

import (
	"github.com/ksyq12/glabenv/internal/config"
	"github.com/ksyq12/glabenv/internal/gitlab"
	"github.com/ksyq12/glabenv/internal/input"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader ConfigLoader
	StoreFactory StoreFactory
	StdinReader  input.Reader
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// StoreFactory creates remote store clients
type StoreFactory interface {
	Create(cfg gitlab.Config) (gitlab.Store, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader: &realConfigLoader{},
	StoreFactory: &realStoreFactory{},
	StdinReader:  input.NewStdinReader(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing packages

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realStoreFactory struct{}

func (r *realStoreFactory) Create(cfg gitlab.Config) (gitlab.Store, error) {
	return gitlab.NewClient(cfg)
}
