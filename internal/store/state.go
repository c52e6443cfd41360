package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/VladPetriv/currency_exchange/pkg/database"
)

type stateStore struct {
	*database.PostgreSQL
}

var _ service.StateStore = (*stateStore)(nil)

// NewState returns new instance of state store.
func NewState(db *database.PostgreSQL) *stateStore {
	return &stateStore{
		db,
	}
}

func (s *stateStore) Create(ctx context.Context, state *model.State) error {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("states").
		Columns("id", "chat_id", "flow", "steps", "metadata").
		Values(state.ID, state.ChatID, state.Flow, state.Steps, state.Metadata).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create state query: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, query, args...)
	return err
}

func (s *stateStore) Get(ctx context.Context, filter service.GetStateFilter) (*model.State, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "chat_id", "flow", "steps", "metadata", "created_at", "updated_at").
		From("states").
		OrderBy("updated_at DESC").
		Limit(1)

	if filter.ChatID != 0 {
		stmt = stmt.Where(sq.Eq{"chat_id": filter.ChatID})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get state query: %w", err)
	}

	var state model.State
	err = s.DB.GetContext(ctx, &state, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &state, nil
}

func (s *stateStore) Update(ctx context.Context, state *model.State) (*model.State, error) {
	var updatedState model.State
	err := s.DB.QueryRowxContext(
		ctx,
		`UPDATE states
		SET
			chat_id = $1,
			flow = $2,
			steps = $3,
			metadata = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING id, chat_id, flow, steps, metadata, created_at, updated_at;`,
		state.ChatID, state.Flow, state.Steps, state.Metadata, state.ID,
	).StructScan(&updatedState)
	if err != nil {
		return nil, err
	}

	return &updatedState, nil
}

func (s *stateStore) Delete(ctx context.Context, stateID string) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM states WHERE id = $1;", stateID)
	return err
}
