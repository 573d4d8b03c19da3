package repositories

import "sync"

// MockTxManager serializes transactions over a fixed in-memory RepoSet with
// one big lock. It has no rollback: callers must perform all checks that can
// fail before the first write, which is how the payment verifier is built.
type MockTxManager struct {
	set RepoSet
	mu  sync.Mutex
}

// NewMockTxManager creates a new instance of MockTxManager.
func NewMockTxManager(set RepoSet) *MockTxManager {
	return &MockTxManager{set: set}
}

// InTx runs fn under the manager's lock.
func (m *MockTxManager) InTx(fn func(RepoSet) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.set)
}
