package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

const noCurrenciesMessage = "No currencies found. Please add a currency first."

func (h handlerService) HandleListExchangeRates(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep: h.handleListExchangeRatesFlowStep,
	})
}

func (h handlerService) handleListExchangeRatesFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleListExchangeRatesFlowStep").Logger()

	err := h.services.View.LoadExchangeRates(ctx, opts.page)
	if err != nil {
		logger.Error().Err(err).Msg("load exchange rates")
		return "", fmt.Errorf("load exchange rates: %w", err)
	}

	shown, err := h.showNotifications(opts.message.GetChatID(), opts.page)
	if err != nil || shown {
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendExchangeRates(opts.message.GetChatID(), opts.page)
}

// sendExchangeRates sends the exchange rates table with edit buttons under it.
func (h handlerService) sendExchangeRates(chatID int, page *model.Page) error {
	rows := page.ExchangeRates()
	if len(rows) == 0 {
		return h.sendMessageWithDefaultKeyboard(chatID, renderExchangeRates(rows))
	}

	inlineKeyboard := getEditExchangeRatesKeyboard(rows)
	if len(inlineKeyboard) == 0 {
		return h.sendTableWithDefaultKeyboard(chatID, renderExchangeRates(rows))
	}

	return h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:         chatID,
		Message:        renderExchangeRates(rows),
		FormatHTML:     true,
		InlineKeyboard: inlineKeyboard,
	})
}

func (h handlerService) HandleCreateExchangeRate(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:                h.handleCreateExchangeRateFlowStep,
		model.ChooseBaseCurrencyFlowStep:   h.handleChooseBaseCurrencyFlowStepForCreate,
		model.ChooseTargetCurrencyFlowStep: h.handleChooseTargetCurrencyFlowStepForCreate,
		model.EnterExchangeRateFlowStep:    h.handleEnterExchangeRateFlowStep,
	})
}

func (h handlerService) handleCreateExchangeRateFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	return h.chooseCurrency(ctx, opts, chooseCurrencyOptions{
		selectID: model.NewRateBaseCurrencySelect,
		reload:   true,
		message:  "Choose base currency:",
		nextStep: model.ChooseBaseCurrencyFlowStep,
	})
}

func (h handlerService) handleChooseBaseCurrencyFlowStepForCreate(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.BaseCurrencyMetadataKey] = opts.message.GetText()

	return h.chooseCurrency(ctx, opts, chooseCurrencyOptions{
		selectID: model.NewRateTargetCurrencySelect,
		message:  "Choose target currency:",
		nextStep: model.ChooseTargetCurrencyFlowStep,
	})
}

func (h handlerService) handleChooseTargetCurrencyFlowStepForCreate(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.TargetCurrencyMetadataKey] = opts.message.GetText()

	return model.EnterExchangeRateFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  "Enter exchange rate:",
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleEnterExchangeRateFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleEnterExchangeRateFlowStep").Logger()

	base, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.BaseCurrencyMetadataKey)
	target, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.TargetCurrencyMetadataKey)

	createOpts := CreateExchangeRateOptions{
		BaseCurrencyCode:   base,
		TargetCurrencyCode: target,
		Rate:               opts.message.GetText(),
	}
	logger.Debug().Any("createOpts", createOpts).Msg("prepared create exchange rate options")

	err := h.services.View.CreateExchangeRate(ctx, opts.page, createOpts)
	if err != nil {
		logger.Error().Err(err).Msg("create exchange rate")
		return "", fmt.Errorf("create exchange rate: %w", err)
	}

	shown, err := h.showNotifications(opts.message.GetChatID(), opts.page)
	if err != nil || shown {
		return model.EndFlowStep, err
	}

	err = h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), "Exchange rate created!")
	if err != nil {
		logger.Error().Err(err).Msg("send message")
		return model.EndFlowStep, fmt.Errorf("send message: %w", err)
	}

	return model.EndFlowStep, h.sendExchangeRates(opts.message.GetChatID(), opts.page)
}

func (h handlerService) HandleGetExchangeRate(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:                h.handleGetExchangeRateFlowStep,
		model.ChooseBaseCurrencyFlowStep:   h.handleChooseBaseCurrencyFlowStepForGet,
		model.ChooseTargetCurrencyFlowStep: h.handleChooseTargetCurrencyFlowStepForGet,
	})
}

func (h handlerService) handleGetExchangeRateFlowStep(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	return model.ChooseBaseCurrencyFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  "Enter base currency code:",
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleChooseBaseCurrencyFlowStepForGet(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.BaseCurrencyMetadataKey] = opts.message.GetText()

	return model.ChooseTargetCurrencyFlowStep, h.apis.Messenger.SendMessage(opts.message.GetChatID(), "Enter target currency code:")
}

func (h handlerService) handleChooseTargetCurrencyFlowStepForGet(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleChooseTargetCurrencyFlowStepForGet").Logger()

	base, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.BaseCurrencyMetadataKey)
	pair := model.Pair{
		Base:   base,
		Target: opts.message.GetText(),
	}

	rate, err := h.services.View.GetExchangeRate(ctx, opts.page, pair)
	if err != nil {
		logger.Error().Err(err).Msg("get exchange rate")
		return "", fmt.Errorf("get exchange rate: %w", err)
	}
	if rate == nil {
		_, err = h.showNotifications(opts.message.GetChatID(), opts.page)
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), renderExchangeRate(*rate))
}

func (h handlerService) HandleUpdateExchangeRate(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:                    h.handleUpdateExchangeRateFlowStep,
		model.EnterUpdatedExchangeRateFlowStep: h.handleEnterUpdatedExchangeRateFlowStep,
	})
}

func (h handlerService) handleUpdateExchangeRateFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleUpdateExchangeRateFlowStep").Logger()
	logger.Debug().Any("data", opts.message.GetText()).Msg("got args")

	if callbackID := opts.message.GetCallbackID(); callbackID != "" {
		err := h.apis.Messenger.AnswerCallback(callbackID)
		if err != nil {
			logger.Warn().Err(err).Msg("answer callback")
		}
	}

	pair, ok := model.ParseEditExchangeRateCallback(opts.message.GetText())
	if !ok {
		logger.Error().Str("data", opts.message.GetText()).Msg("invalid edit exchange rate callback")
		return model.EndFlowStep, fmt.Errorf("invalid edit exchange rate callback: %s", opts.message.GetText())
	}

	modal, err := h.services.View.StartExchangeRateEdit(opts.page, pair)
	if errors.Is(err, ErrExchangeRateRowNotFound) {
		// The table was rendered before the page was reset, fetch it again.
		logger.Info().Any("pair", pair).Msg("exchange rate row not found, reloading exchange rates")

		err = h.services.View.LoadExchangeRates(ctx, opts.page)
		if err != nil {
			logger.Error().Err(err).Msg("load exchange rates")
			return "", fmt.Errorf("load exchange rates: %w", err)
		}

		var shown bool
		shown, err = h.showNotifications(opts.message.GetChatID(), opts.page)
		if err != nil || shown {
			return model.EndFlowStep, err
		}

		modal, err = h.services.View.StartExchangeRateEdit(opts.page, pair)
	}
	if err != nil {
		logger.Info().Err(err).Msg("start exchange rate edit")
		return model.EndFlowStep, err
	}

	return model.EnterUpdatedExchangeRateFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  fmt.Sprintf("%s\nCurrent rate: %s\nEnter new rate:", modal.Title, modal.Rate),
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleEnterUpdatedExchangeRateFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleEnterUpdatedExchangeRateFlowStep").Logger()

	err := h.services.View.ConfirmExchangeRateEdit(ctx, opts.page, opts.message.GetText())
	if err != nil {
		if errors.Is(err, ErrEditModalClosed) {
			return model.EndFlowStep, err
		}

		logger.Error().Err(err).Msg("confirm exchange rate edit")
		return "", fmt.Errorf("confirm exchange rate edit: %w", err)
	}

	shown, err := h.showNotifications(opts.message.GetChatID(), opts.page)
	if err != nil || shown {
		return model.EndFlowStep, err
	}

	err = h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), "Exchange rate updated!")
	if err != nil {
		logger.Error().Err(err).Msg("send message")
		return model.EndFlowStep, fmt.Errorf("send message: %w", err)
	}

	return model.EndFlowStep, h.sendExchangeRates(opts.message.GetChatID(), opts.page)
}

type chooseCurrencyOptions struct {
	selectID model.SelectID
	reload   bool
	message  string
	nextStep model.FlowStep
}

// chooseCurrency shows the options of the currency select as a reply keyboard.
func (h handlerService) chooseCurrency(ctx context.Context, flowOpts flowProcessingOptions, opts chooseCurrencyOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.chooseCurrency").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	chatID := flowOpts.message.GetChatID()

	if opts.reload {
		err := h.services.View.LoadCurrencies(ctx, flowOpts.page)
		if err != nil {
			logger.Error().Err(err).Msg("load currencies")
			return "", fmt.Errorf("load currencies: %w", err)
		}

		shown, err := h.showNotifications(chatID, flowOpts.page)
		if err != nil || shown {
			return model.EndFlowStep, err
		}
	}

	options := flowOpts.page.Options(opts.selectID)
	if len(options) == 0 {
		return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(chatID, noCurrenciesMessage)
	}

	return opts.nextStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   chatID,
		Message:  opts.message,
		Keyboard: getCurrenciesKeyboard(options),
	})
}
