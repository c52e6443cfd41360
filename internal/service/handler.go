package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
)

type handlerService struct {
	logger   *logger.Logger
	apis     APIs
	services Services
	stores   Stores
	pages    *pages
}

var _ HandlerService = (*handlerService)(nil)

// HandlerOptions represents input options for new instance of handler service.
type HandlerOptions struct {
	Logger   *logger.Logger
	APIs     APIs
	Services Services
	Stores   Stores
}

// NewHandler returns new instance of handler service.
func NewHandler(opts *HandlerOptions) *handlerService {
	return &handlerService{
		logger:   opts.Logger,
		apis:     opts.APIs,
		services: opts.Services,
		stores:   opts.Stores,
		pages:    newPages(),
	}
}

type flowProcessingOptions struct {
	message Message
	state   *model.State
	page    *model.Page
}

type flowStepHandlerFunc func(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error)

// processHandler runs the handler of the current flow step and stores the returned step.
// Empty step means that the state must stay as it is.
func (h handlerService) processHandler(ctx context.Context, msg Message, handlers map[model.FlowStep]flowStepHandlerFunc) error {
	logger := h.logger.With().Str("name", "handlerService.processHandler").Logger()

	state, ok := ctx.Value(contextFieldNameState).(*model.State)
	if !ok || state == nil {
		logger.Error().Msg("state not found in context")
		return fmt.Errorf("state not found in context")
	}

	if state.Metadata == nil {
		state.Metadata = model.Metadata{}
	}

	currentStep := state.GetCurrentStep()
	handler, ok := handlers[currentStep]
	if !ok {
		logger.Error().Any("step", currentStep).Any("flow", state.Flow).Msg("handler for flow step not found")
		return fmt.Errorf("handler for flow step %s not found", currentStep)
	}

	page := h.pages.get(msg.GetChatID())

	nextStep, err := handler(ctx, flowProcessingOptions{
		message: msg,
		state:   state,
		page:    page,
	})
	if nextStep == model.EndFlowStep && !page.EditModal().Open {
		h.pages.forget(msg.GetChatID())
	}
	if nextStep != "" && nextStep != currentStep {
		state.Steps = append(state.Steps, nextStep)
		state.UpdatedAt = time.Now()

		updatedState, updateErr := h.stores.State.Update(ctx, state)
		if updateErr != nil {
			logger.Error().Err(updateErr).Msg("update state in store")
			return fmt.Errorf("update state in store: %w", updateErr)
		}
		logger.Debug().Any("updatedState", updatedState).Msg("updated state in store")
	}
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Err(err).Msg(err.Error())
			return err
		}

		logger.Error().Err(err).Any("step", currentStep).Msg("handle flow step")
		return fmt.Errorf("handle flow step %s: %w", currentStep, err)
	}

	return nil
}

func (h handlerService) HandleStart(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep: h.handleStartFlowStep,
	})
}

func (h handlerService) handleStartFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleStartFlowStep").Logger()
	logger.Debug().Any("sender", opts.message.GetSenderName()).Msg("got args")

	return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(
		opts.message.GetChatID(),
		fmt.Sprintf("Hello, %s!\nWelcome to the currency exchange bot!\nPlease choose command to execute:", opts.message.GetSenderName()),
	)
}

func (h handlerService) HandleCancel(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep: h.handleCancelFlowStep,
	})
}

func (h handlerService) handleCancelFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	h.services.View.CancelExchangeRateEdit(opts.page)

	return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), "Please choose command to execute:")
}

func (h handlerService) HandleUnknown(msg Message) error {
	logger := h.logger.With().Str("name", "handlerService.HandleUnknown").Logger()
	logger.Debug().Any("text", msg.GetText()).Msg("got args")

	err := h.apis.Messenger.SendMessage(
		msg.GetChatID(),
		"Didn't understand you!\nCould you please check available commands!",
	)
	if err != nil {
		logger.Error().Err(err).Msg("send message")
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func (h handlerService) HandleError(_ context.Context, opts HandleErrorOptions) error {
	logger := h.logger.With().Str("name", "handlerService.HandleError").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	if opts.Msg == nil {
		logger.Warn().Err(opts.Err).Msg("message is not set, nobody to report error to")
		return nil
	}

	message := errs.MessageOr(opts.Err, UnexpectedErrorMessage)

	var err error
	if opts.SendDefaultKeyboard {
		err = h.sendMessageWithDefaultKeyboard(opts.Msg.GetChatID(), message)
	} else {
		err = h.apis.Messenger.SendMessage(opts.Msg.GetChatID(), message)
	}
	if err != nil {
		logger.Error().Err(err).Msg("send error message")
		return fmt.Errorf("send error message: %w", err)
	}

	return nil
}

func (h handlerService) sendMessageWithDefaultKeyboard(chatID int, message string) error {
	return h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   chatID,
		Message:  message,
		Keyboard: defaultKeyboardRows,
	})
}

func (h handlerService) sendTableWithDefaultKeyboard(chatID int, table string) error {
	return h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:     chatID,
		Message:    table,
		FormatHTML: true,
		Keyboard:   defaultKeyboardRows,
	})
}

// showNotifications sends every notification of the page to the chat and dismisses it.
// It reports whether at least one notification was shown.
func (h handlerService) showNotifications(chatID int, page *model.Page) (bool, error) {
	logger := h.logger.With().Str("name", "handlerService.showNotifications").Logger()

	notifications := page.Notifications()
	for _, notification := range notifications {
		err := h.sendMessageWithDefaultKeyboard(chatID, "⚠️ "+notification.Message)
		if err != nil {
			logger.Error().Err(err).Msg("send notification")
			return false, fmt.Errorf("send notification: %w", err)
		}

		page.Dismiss(notification.ID)
	}

	return len(notifications) > 0, nil
}
