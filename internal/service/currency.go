package service

import (
	"context"
	"fmt"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

func (h handlerService) HandleListCurrencies(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep: h.handleListCurrenciesFlowStep,
	})
}

func (h handlerService) handleListCurrenciesFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleListCurrenciesFlowStep").Logger()

	err := h.services.View.LoadCurrencies(ctx, opts.page)
	if err != nil {
		logger.Error().Err(err).Msg("load currencies")
		return "", fmt.Errorf("load currencies: %w", err)
	}

	shown, err := h.showNotifications(opts.message.GetChatID(), opts.page)
	if err != nil || shown {
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendTableWithDefaultKeyboard(opts.message.GetChatID(), renderCurrencies(opts.page.Currencies()))
}

func (h handlerService) HandleCreateCurrency(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:             h.handleCreateCurrencyFlowStep,
		model.EnterCurrencyCodeFlowStep: h.handleEnterCurrencyCodeFlowStepForCreate,
		model.EnterCurrencyNameFlowStep: h.handleEnterCurrencyNameFlowStep,
		model.EnterCurrencySignFlowStep: h.handleEnterCurrencySignFlowStep,
	})
}

func (h handlerService) handleCreateCurrencyFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	return model.EnterCurrencyCodeFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  "Enter currency code:",
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleEnterCurrencyCodeFlowStepForCreate(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.CurrencyCodeMetadataKey] = opts.message.GetText()

	return model.EnterCurrencyNameFlowStep, h.apis.Messenger.SendMessage(opts.message.GetChatID(), "Enter currency name:")
}

func (h handlerService) handleEnterCurrencyNameFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.CurrencyNameMetadataKey] = opts.message.GetText()

	return model.EnterCurrencySignFlowStep, h.apis.Messenger.SendMessage(opts.message.GetChatID(), "Enter currency sign:")
}

func (h handlerService) handleEnterCurrencySignFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleEnterCurrencySignFlowStep").Logger()

	code, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.CurrencyCodeMetadataKey)
	name, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.CurrencyNameMetadataKey)

	createOpts := CreateCurrencyOptions{
		Code: code,
		Name: name,
		Sign: opts.message.GetText(),
	}
	logger.Debug().Any("createOpts", createOpts).Msg("prepared create currency options")

	err := h.services.View.CreateCurrency(ctx, opts.page, createOpts)
	if err != nil {
		logger.Error().Err(err).Msg("create currency")
		return "", fmt.Errorf("create currency: %w", err)
	}

	shown, err := h.showNotifications(opts.message.GetChatID(), opts.page)
	if err != nil || shown {
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendTableWithDefaultKeyboard(
		opts.message.GetChatID(),
		"Currency created!\n\n"+renderCurrencies(opts.page.Currencies()),
	)
}

func (h handlerService) HandleGetCurrency(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:             h.handleGetCurrencyFlowStep,
		model.EnterCurrencyCodeFlowStep: h.handleEnterCurrencyCodeFlowStepForGet,
	})
}

func (h handlerService) handleGetCurrencyFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	return model.EnterCurrencyCodeFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  "Enter currency code:",
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleEnterCurrencyCodeFlowStepForGet(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleEnterCurrencyCodeFlowStepForGet").Logger()

	currency, err := h.services.View.GetCurrency(ctx, opts.page, opts.message.GetText())
	if err != nil {
		logger.Error().Err(err).Msg("get currency")
		return "", fmt.Errorf("get currency: %w", err)
	}
	if currency == nil {
		_, err = h.showNotifications(opts.message.GetChatID(), opts.page)
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), renderCurrency(*currency))
}
