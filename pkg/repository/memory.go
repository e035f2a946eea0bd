package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu     sync.RWMutex
	checks map[types.CheckID]*model.CheckRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		checks: make(map[types.CheckID]*model.CheckRecord),
	}
}

// SaveCheck saves a check record to memory
func (m *Memory) SaveCheck(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return goerr.New("check record is nil")
	}
	if err := record.Validate(); err != nil {
		return goerr.Wrap(err, "invalid check record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordCopy := *record
	m.checks[record.ID] = &recordCopy
	return nil
}

// GetCheck retrieves a check record by ID
func (m *Memory) GetCheck(ctx context.Context, id types.CheckID) (*model.CheckRecord, error) {
	if id == "" {
		return nil, goerr.New("check ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.checks[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrCheckNotFound, "check not in memory",
			goerr.T(model.ErrTagNotFound),
			goerr.V("id", id),
		)
	}

	// Return a copy to prevent external modification
	recordCopy := *record
	return &recordCopy, nil
}

// ListChecks lists check records, newest first
func (m *Memory) ListChecks(ctx context.Context, limit int) ([]*model.CheckRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.CheckRecord, 0, len(m.checks))
	for _, record := range m.checks {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CheckedAt.Equal(records[j].CheckedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CheckedAt.After(records[j].CheckedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}
