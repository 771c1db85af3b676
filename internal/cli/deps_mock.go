package cli

import (
	"github.com/ksyq12/glabenv/internal/config"
	"github.com/ksyq12/glabenv/internal/gitlab"
	"github.com/ksyq12/glabenv/internal/input"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockStoreFactory is a test double for StoreFactory
type MockStoreFactory struct {
	Store     gitlab.Store
	CreateErr error

	// LastConfig records the config the CLI built for the client
	LastConfig gitlab.Config
}

func (m *MockStoreFactory) Create(cfg gitlab.Config) (gitlab.Store, error) {
	m.LastConfig = cfg
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.Store, nil
}

// MockDepsBuilder builds Dependencies with mocks for testing
type MockDepsBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a builder with default mocks
func NewMockDeps() *MockDepsBuilder {
	return &MockDepsBuilder{
		deps: &Dependencies{
			ConfigLoader: &MockConfigLoader{},
			StoreFactory: &MockStoreFactory{Store: gitlab.NewMockStore()},
			StdinReader:  input.NewStringReader(),
		},
	}
}

// WithConfig sets the config returned by the mock loader
func (b *MockDepsBuilder) WithConfig(cfg *config.Config) *MockDepsBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithStore sets the remote store returned by the mock factory
func (b *MockDepsBuilder) WithStore(store gitlab.Store) *MockDepsBuilder {
	b.deps.StoreFactory = &MockStoreFactory{Store: store}
	return b
}

// WithInput sets the stdin reader
func (b *MockDepsBuilder) WithInput(inputs ...string) *MockDepsBuilder {
	b.deps.StdinReader = input.NewStringReader(inputs...)
	return b
}

// Build returns the assembled Dependencies
func (b *MockDepsBuilder) Build() *Dependencies {
	return b.deps
}
