package gitlab

import (
	"context"

	"github.com/ksyq12/glabenv/internal/variable"
)

// Store is the remote variable store boundary. Client implements it
// against the GitLab REST API; MockStore implements it for tests.
type Store interface {
	// ListVariables fetches all variables for the project
	ListVariables(ctx context.Context) ([]variable.Variable, error)

	// GetVariable fetches a single variable by key
	GetVariable(ctx context.Context, key string) (variable.Variable, error)

	// CreateVariable creates a new variable
	CreateVariable(ctx context.Context, v variable.Variable) error

	// UpdateVariable updates an existing variable by key
	UpdateVariable(ctx context.Context, v variable.Variable) error

	// DeleteVariable removes a variable by key
	DeleteVariable(ctx context.Context, key string) error

	// Ping checks project reachability with the configured credentials
	Ping(ctx context.Context) error
}

// compile-time check
var _ Store = (*Client)(nil)
