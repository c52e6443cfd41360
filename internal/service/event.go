package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
	"github.com/VladPetriv/currency_exchange/pkg/worker"
)

type contextFieldName string

const contextFieldNameState contextFieldName = "state"

type eventService struct {
	logger       *logger.Logger
	apis         APIs
	services     Services
	workersCount int
}

var _ EventService = (*eventService)(nil)

// EventOptions represents an input options for creating new instance of event service.
type EventOptions struct {
	Logger   *logger.Logger
	APIs     APIs
	Services Services
	// WorkersCount is a number of chats whose updates are handled in parallel.
	WorkersCount int
}

// NewEvent returns new instance of event service.
func NewEvent(opts *EventOptions) *eventService {
	return &eventService{
		logger:       opts.Logger,
		apis:         opts.APIs,
		services:     opts.Services,
		workersCount: opts.WorkersCount,
	}
}

func (e eventService) Listen(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	updatesCH := make(chan Message)
	errorsCH := make(chan error)

	go e.apis.Messenger.ReadUpdates(updatesCH, errorsCH)

	pool := worker.NewPool[Message](e.workersCount, e.processUpdate)
	pool.SetErrorFunc(func(id string, err error) {
		logger.Error().Err(err).Str("update_id", id).Msg("process update")
	})
	// Updates that were already received are handled even after shutdown was requested.
	pool.Start(context.WithoutCancel(ctx))

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stop listening for updates")
			pool.Stop()

			return
		case msg := <-updatesCH:
			logger.Debug().Int("update_id", msg.GetUpdateID()).Msg("received update")

			pool.AddJob(strconv.Itoa(msg.GetUpdateID()), strconv.Itoa(msg.GetChatID()), msg)
		case err := <-errorsCH:
			logger.Error().Err(err).Msg("read updates")
		}
	}
}

func (e eventService) processUpdate(ctx context.Context, _ string, msg Message) (err error) {
	logger := e.logger.With().Str("name", "eventService.processUpdate").Logger()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		logger.Error().
			Any("panic", r).
			Str("stack", string(debug.Stack())).
			Msg("recovered from panic while processing bot update")

		deleteErr := e.services.State.DeleteState(ctx, msg)
		if deleteErr != nil {
			logger.Error().Err(deleteErr).Msg("delete state")
		}

		handleErr := e.services.Handler.HandleError(ctx, HandleErrorOptions{
			Err:                 fmt.Errorf("internal error"),
			Msg:                 msg,
			SendDefaultKeyboard: true,
		})
		if handleErr != nil {
			logger.Error().Err(handleErr).Msg("handle error")
		}

		err = fmt.Errorf("panic: %v", r)
	}()

	stateOutput, err := e.services.State.HandleState(ctx, msg)
	if err != nil {
		logger.Error().Err(err).Msg("handle state")
		return fmt.Errorf("handle state: %w", err)
	}
	if stateOutput == nil {
		logger.Debug().Msg("update was handled by state service")
		return nil
	}
	logger.Debug().Any("stateOutput", stateOutput).Msg("handled request state")

	ctx = context.WithValue(ctx, contextFieldNameState, stateOutput.State)
	err = e.ReactOnEvent(ctx, stateOutput.Event, msg)
	if err != nil {
		handleErr := e.services.Handler.HandleError(ctx, HandleErrorOptions{
			Err: err,
			Msg: msg,
		})
		if handleErr != nil {
			logger.Error().Err(handleErr).Msg("handle error")
		}

		if errs.IsExpected(err) {
			return nil
		}

		return fmt.Errorf("react on event: %w", err)
	}

	return nil
}

func (e eventService) ReactOnEvent(ctx context.Context, event model.Event, msg Message) error {
	logger := e.logger.With().Str("name", "eventService.ReactOnEvent").Logger()
	logger.Debug().Any("event", event).Msg("got args")

	eventHandlers := map[model.Event]func(ctx context.Context, msg Message) error{
		model.StartEvent:              e.services.Handler.HandleStart,
		model.CancelEvent:             e.services.Handler.HandleCancel,
		model.ListCurrenciesEvent:     e.services.Handler.HandleListCurrencies,
		model.CreateCurrencyEvent:     e.services.Handler.HandleCreateCurrency,
		model.GetCurrencyEvent:        e.services.Handler.HandleGetCurrency,
		model.ListExchangeRatesEvent:  e.services.Handler.HandleListExchangeRates,
		model.CreateExchangeRateEvent: e.services.Handler.HandleCreateExchangeRate,
		model.UpdateExchangeRateEvent: e.services.Handler.HandleUpdateExchangeRate,
		model.GetExchangeRateEvent:    e.services.Handler.HandleGetExchangeRate,
		model.ConvertEvent:            e.services.Handler.HandleConvert,
	}

	handler, ok := eventHandlers[event]
	if !ok {
		err := e.services.Handler.HandleUnknown(msg)
		if err != nil {
			logger.Error().Err(err).Msg("handle unknown event")
			return fmt.Errorf("handle unknown event: %w", err)
		}

		return nil
	}

	err := handler(ctx, msg)
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Err(err).Msg(err.Error())
			return err
		}

		logger.Error().Err(err).Any("event", event).Msg("handle event")
		return fmt.Errorf("handle event %s: %w", event, err)
	}

	return nil
}
