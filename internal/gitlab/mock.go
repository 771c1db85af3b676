package gitlab

import (
	"context"

	"github.com/ksyq12/glabenv/internal/variable"
)

// MockStore is a test double for Store
type MockStore struct {
	// Function mocks - set these to customize behavior
	ListFunc   func() ([]variable.Variable, error)
	GetFunc    func(key string) (variable.Variable, error)
	CreateFunc func(v variable.Variable) error
	UpdateFunc func(v variable.Variable) error
	DeleteFunc func(key string) error
	PingFunc   func() error

	// Call tracking - check these to verify interactions
	ListCalls   int
	GetCalls    []string
	CreateCalls []variable.Variable
	UpdateCalls []variable.Variable
	DeleteCalls []string
	PingCalls   int
}

// NewMockStore creates a new MockStore with default no-op implementations
func NewMockStore() *MockStore {
	return &MockStore{}
}

// ListVariables records the call and invokes the mock function if set
func (m *MockStore) ListVariables(ctx context.Context) ([]variable.Variable, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

// GetVariable records the call and invokes the mock function if set
func (m *MockStore) GetVariable(ctx context.Context, key string) (variable.Variable, error) {
	m.GetCalls = append(m.GetCalls, key)
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return variable.Variable{}, nil
}

// CreateVariable records the call and invokes the mock function if set
func (m *MockStore) CreateVariable(ctx context.Context, v variable.Variable) error {
	m.CreateCalls = append(m.CreateCalls, v)
	if m.CreateFunc != nil {
		return m.CreateFunc(v)
	}
	return nil
}

// UpdateVariable records the call and invokes the mock function if set
func (m *MockStore) UpdateVariable(ctx context.Context, v variable.Variable) error {
	m.UpdateCalls = append(m.UpdateCalls, v)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(v)
	}
	return nil
}

// DeleteVariable records the call and invokes the mock function if set
func (m *MockStore) DeleteVariable(ctx context.Context, key string) error {
	m.DeleteCalls = append(m.DeleteCalls, key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(key)
	}
	return nil
}

// Ping records the call and invokes the mock function if set
func (m *MockStore) Ping(ctx context.Context) error {
	m.PingCalls++
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}
