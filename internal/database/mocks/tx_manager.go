// Package mocks provides mock implementations for database testing.
package mocks

import "context"

// MockTxManager runs the transactional function directly, without a database.
// When WithTxErr is set it is returned immediately and the function never runs.
type MockTxManager struct {
	WithTxErr error
}

// WithTx executes fn with the given context, mimicking a committed transaction.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithTxErr != nil {
		return m.WithTxErr
	}
	return fn(ctx)
}
