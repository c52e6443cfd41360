package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
	"github.com/google/uuid"
)

type stateService struct {
	logger *logger.Logger
	stores Stores
	apis   APIs
}

var _ StateService = (*stateService)(nil)

// StateOptions represents input options for creating new instance of state service.
type StateOptions struct {
	Logger *logger.Logger
	Stores Stores
	APIs   APIs
}

// NewState returns new instance of state service.
func NewState(opts *StateOptions) *stateService {
	return &stateService{
		logger: opts.Logger,
		stores: opts.Stores,
		apis:   opts.APIs,
	}
}

func (s stateService) HandleState(ctx context.Context, message Message) (*HandleStateOutput, error) {
	logger := s.logger.With().Str("name", "stateService.HandleState").Logger()
	logger.Debug().
		Any("message", message.GetText()).
		Any("sender", message.GetSenderName()).
		Any("chat_id", message.GetChatID()).
		Msg("handling message")

	event := getEventFromMsg(message)
	logger.Debug().Any("event", event).Msg("got event based on bot message")

	state, err := s.stores.State.Get(ctx, GetStateFilter{
		ChatID: int64(message.GetChatID()),
	})
	if err != nil {
		logger.Error().Err(err).Msg("get state from store")
		return nil, fmt.Errorf("get state from store: %w", err)
	}
	logger.Debug().Any("state", state).Msg("got state from store")

	if state == nil {
		return s.createState(ctx, message, event)
	}

	if isSimpleEvent(event) {
		return s.replaceState(ctx, message, state, event)
	}

	if !state.IsFlowFinished() && isBotCommand(message.GetText()) {
		return s.handleUnfinishedFlow(message, state)
	}

	if event == model.UnknownEvent {
		if state.IsFlowFinished() {
			return &HandleStateOutput{Event: model.UnknownEvent}, nil
		}

		return &HandleStateOutput{State: state, Event: state.GetEvent()}, nil
	}

	return s.replaceState(ctx, message, state, event)
}

func (s stateService) createState(ctx context.Context, message Message, event model.Event) (*HandleStateOutput, error) {
	logger := s.logger.With().Str("name", "stateService.createState").Logger()

	if event == model.UnknownEvent {
		return &HandleStateOutput{Event: model.UnknownEvent}, nil
	}

	newState := &model.State{
		ID:        uuid.NewString(),
		ChatID:    int64(message.GetChatID()),
		Flow:      model.EventToFlow[event],
		Steps:     model.FlowSteps{model.StartFlowStep},
		Metadata:  model.Metadata{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.stores.State.Create(ctx, newState)
	if err != nil {
		logger.Error().Err(err).Msg("create state in store")
		return nil, fmt.Errorf("create state in store: %w", err)
	}

	logger.Info().Any("state", newState).Msg("created new state")
	return &HandleStateOutput{State: newState, Event: event}, nil
}

func (s stateService) replaceState(ctx context.Context, message Message, state *model.State, event model.Event) (*HandleStateOutput, error) {
	logger := s.logger.With().Str("name", "stateService.replaceState").Logger()

	err := s.stores.State.Delete(ctx, state.ID)
	if err != nil {
		logger.Error().Err(err).Msg("delete state from store")
		return nil, fmt.Errorf("delete state from store: %w", err)
	}

	return s.createState(ctx, message, event)
}

func (s stateService) handleUnfinishedFlow(message Message, state *model.State) (*HandleStateOutput, error) {
	logger := s.logger.With().Str("name", "stateService.handleUnfinishedFlow").Logger()

	err := s.apis.Messenger.SendMessage(
		message.GetChatID(),
		fmt.Sprintf("Your previous flow(%s) is not finished. Please, finish it or cancel it before running new one.", state.GetFlowName()),
	)
	if err != nil {
		logger.Error().Err(err).Msg("send message to user")
		return nil, fmt.Errorf("send message to user: %w", err)
	}

	return nil, nil
}

func (s stateService) DeleteState(ctx context.Context, message Message) error {
	logger := s.logger.With().Str("name", "stateService.DeleteState").Logger()

	state, err := s.stores.State.Get(ctx, GetStateFilter{
		ChatID: int64(message.GetChatID()),
	})
	if err != nil {
		logger.Error().Err(err).Msg("get state from store")
		return fmt.Errorf("get state from store: %w", err)
	}
	if state == nil {
		logger.Info().Msg("state not found, no deletion needed")
		return nil
	}
	logger.Debug().Any("state", state).Msg("got state from store")

	if !state.IsFlowFinished() {
		logger.Warn().Msg("deleting not finished state")
	}

	err = s.stores.State.Delete(ctx, state.ID)
	if err != nil {
		logger.Error().Err(err).Msg("delete state from store")
		return fmt.Errorf("delete state from store: %w", err)
	}

	return nil
}

// isSimpleEvent reports whether event interrupts any flow without confirmation.
func isSimpleEvent(event model.Event) bool {
	return slices.Contains([]model.Event{
		model.StartEvent,
		model.CancelEvent,
		model.ListCurrenciesEvent,
		model.ListExchangeRatesEvent,
	}, event)
}

func isBotCommand(value string) bool {
	if slices.Contains(model.AvailableCommands, value) {
		return true
	}

	_, ok := model.ParseEditExchangeRateCallback(value)
	return ok
}

func getEventFromMsg(message Message) model.Event {
	text := message.GetText()

	if event, ok := model.CommandToEvent[text]; ok {
		return event
	}

	if _, ok := model.ParseEditExchangeRateCallback(text); ok {
		return model.UpdateExchangeRateEvent
	}

	return model.UnknownEvent
}
