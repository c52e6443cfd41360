package service

import (
	"context"
	"fmt"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

func (h handlerService) HandleConvert(ctx context.Context, msg Message) error {
	return h.processHandler(ctx, msg, map[model.FlowStep]flowStepHandlerFunc{
		model.StartFlowStep:                h.handleConvertFlowStep,
		model.ChooseBaseCurrencyFlowStep:   h.handleChooseBaseCurrencyFlowStepForConvert,
		model.ChooseTargetCurrencyFlowStep: h.handleChooseTargetCurrencyFlowStepForConvert,
		model.EnterAmountFlowStep:          h.handleEnterAmountFlowStep,
	})
}

func (h handlerService) handleConvertFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	return h.chooseCurrency(ctx, opts, chooseCurrencyOptions{
		selectID: model.ConvertBaseCurrencySelect,
		reload:   true,
		message:  "Choose currency to convert from:",
		nextStep: model.ChooseBaseCurrencyFlowStep,
	})
}

func (h handlerService) handleChooseBaseCurrencyFlowStepForConvert(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.BaseCurrencyMetadataKey] = opts.message.GetText()

	return h.chooseCurrency(ctx, opts, chooseCurrencyOptions{
		selectID: model.ConvertTargetCurrencySelect,
		message:  "Choose currency to convert to:",
		nextStep: model.ChooseTargetCurrencyFlowStep,
	})
}

func (h handlerService) handleChooseTargetCurrencyFlowStepForConvert(_ context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	opts.state.Metadata[model.TargetCurrencyMetadataKey] = opts.message.GetText()

	return model.EnterAmountFlowStep, h.apis.Messenger.SendWithKeyboard(SendWithKeyboardOptions{
		ChatID:   opts.message.GetChatID(),
		Message:  "Enter amount:",
		Keyboard: rowKeyboardWithCancelButtonOnly,
	})
}

func (h handlerService) handleEnterAmountFlowStep(ctx context.Context, opts flowProcessingOptions) (model.FlowStep, error) {
	logger := h.logger.With().Str("name", "handlerService.handleEnterAmountFlowStep").Logger()

	from, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.BaseCurrencyMetadataKey)
	to, _ := model.GetTypedFromMetadata[string](opts.state.Metadata, model.TargetCurrencyMetadataKey)

	exchangeOpts := ExchangeOptions{
		From:   from,
		To:     to,
		Amount: opts.message.GetText(),
	}
	logger.Debug().Any("exchangeOpts", exchangeOpts).Msg("prepared exchange options")

	result, err := h.services.View.Convert(ctx, opts.page, exchangeOpts)
	if err != nil {
		logger.Error().Err(err).Msg("convert amount")
		return "", fmt.Errorf("convert amount: %w", err)
	}
	if result == nil {
		_, err = h.showNotifications(opts.message.GetChatID(), opts.page)
		return model.EndFlowStep, err
	}

	return model.EndFlowStep, h.sendMessageWithDefaultKeyboard(opts.message.GetChatID(), renderExchangeResult(exchangeOpts, *result))
}
