package service

import (
	"context"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

// Stores represents all stores.
type Stores struct {
	State StateStore
}

// StateStore represents a store for chat states.
//
//go:generate mockery --dir . --name StateStore --output ./mocks
type StateStore interface {
	// Create creates a new state in store.
	Create(ctx context.Context, state *model.State) error
	// Get returns a state from store by chat id.
	Get(ctx context.Context, filter GetStateFilter) (*model.State, error)
	// Update updates state model in store.
	Update(ctx context.Context, state *model.State) (*model.State, error)
	// Delete deletes state from store.
	Delete(ctx context.Context, ID string) error
}

// GetStateFilter represents a filters for StateStore.Get method.
type GetStateFilter struct {
	ChatID int64
}
