package store

import (
	"context"
	"sync"
	"time"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/internal/service"
)

type memoryStateStore struct {
	mu     sync.RWMutex
	states map[string]model.State
}

var _ service.StateStore = (*memoryStateStore)(nil)

// NewMemoryState returns new instance of state store that keeps states in process memory.
// States are lost on restart.
func NewMemoryState() *memoryStateStore {
	return &memoryStateStore{
		states: make(map[string]model.State),
	}
}

func (m *memoryStateStore) Create(_ context.Context, state *model.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state.ID] = copyState(*state)
	return nil
}

// Get returns the most recently updated state that matches the filter.
func (m *memoryStateStore) Get(_ context.Context, filter service.GetStateFilter) (*model.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *model.State
	for _, state := range m.states {
		if filter.ChatID != 0 && state.ChatID != filter.ChatID {
			continue
		}
		if found != nil && !state.UpdatedAt.After(found.UpdatedAt) {
			continue
		}

		result := copyState(state)
		found = &result
	}

	return found, nil
}

func (m *memoryStateStore) Update(_ context.Context, state *model.State) (*model.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.states[state.ID]
	if !ok {
		return nil, nil
	}

	updated := copyState(*state)
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	m.states[state.ID] = updated

	result := copyState(updated)
	return &result, nil
}

func (m *memoryStateStore) Delete(_ context.Context, stateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, stateID)
	return nil
}

func copyState(state model.State) model.State {
	state.Steps = append(model.FlowSteps(nil), state.Steps...)

	metadata := make(model.Metadata, len(state.Metadata))
	for key, value := range state.Metadata {
		metadata[key] = value
	}
	state.Metadata = metadata

	return state
}
