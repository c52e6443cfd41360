package service

import (
	"context"
	"fmt"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
	"github.com/VladPetriv/currency_exchange/pkg/metrics"
	"github.com/rs/zerolog"
)

// UnexpectedErrorMessage is shown when the failure does not carry a message from the exchange API.
const UnexpectedErrorMessage = "Unexpected error occurred, please try again later."

var (
	// ErrEditModalClosed happens when rate is submitted without opened edit modal.
	ErrEditModalClosed = errs.New("Exchange rate edit is not in progress.")
	// ErrExchangeRateRowNotFound happens when edit is requested for a pair that is not on the page.
	ErrExchangeRateRowNotFound = errs.New("Exchange rate not found on the page, please reload exchange rates.")
)

type viewService struct {
	logger  *logger.Logger
	apis    APIs
	metrics *metrics.Metrics
}

var _ ViewService = (*viewService)(nil)

// ViewOptions represents input options for creating new instance of view service.
type ViewOptions struct {
	Logger  *logger.Logger
	APIs    APIs
	Metrics *metrics.Metrics
}

// NewView returns new instance of view service.
func NewView(opts *ViewOptions) *viewService {
	return &viewService{
		logger:  opts.Logger,
		apis:    opts.APIs,
		metrics: opts.Metrics,
	}
}

func (v viewService) LoadCurrencies(ctx context.Context, page *model.Page) error {
	logger := v.logger.With().Str("name", "viewService.LoadCurrencies").Logger()

	ticket := page.Begin(model.CurrenciesResource)

	currencies, err := v.apis.Exchange.ListCurrencies(ctx)
	if err != nil {
		return v.handleFailure(ctx, page, err, logger)
	}
	logger.Debug().Any("currencies", currencies).Msg("got currencies from exchange api")

	if !page.ReplaceCurrencies(ticket, currencies) {
		logger.Info().Uint64("ticket", ticket).Msg("skipped stale currencies response")
	}

	return nil
}

func (v viewService) CreateCurrency(ctx context.Context, page *model.Page, opts CreateCurrencyOptions) error {
	logger := v.logger.With().Str("name", "viewService.CreateCurrency").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	err := checkRequiredFields(
		requiredField{name: "Code", value: opts.Code},
		requiredField{name: "Name", value: opts.Name},
		requiredField{name: "Sign", value: opts.Sign},
	)
	if err != nil {
		v.notify(page, err, logger)
		return nil
	}

	err = v.apis.Exchange.CreateCurrency(ctx, opts)
	if err != nil {
		return v.handleFailure(ctx, page, err, logger)
	}
	logger.Info().Str("code", opts.Code).Msg("created currency")

	return v.LoadCurrencies(ctx, page)
}

func (v viewService) GetCurrency(ctx context.Context, page *model.Page, code string) (*model.Currency, error) {
	logger := v.logger.With().Str("name", "viewService.GetCurrency").Logger()
	logger.Debug().Str("code", code).Msg("got args")

	err := checkRequiredFields(requiredField{name: "Code", value: code})
	if err != nil {
		v.notify(page, err, logger)
		return nil, nil
	}

	currency, err := v.apis.Exchange.GetCurrency(ctx, code)
	if err != nil {
		return nil, v.handleFailure(ctx, page, err, logger)
	}

	return currency, nil
}

func (v viewService) LoadExchangeRates(ctx context.Context, page *model.Page) error {
	logger := v.logger.With().Str("name", "viewService.LoadExchangeRates").Logger()

	ticket := page.Begin(model.ExchangeRatesResource)

	rates, err := v.apis.Exchange.ListExchangeRates(ctx)
	if err != nil {
		return v.handleFailure(ctx, page, err, logger)
	}
	logger.Debug().Any("rates", rates).Msg("got exchange rates from exchange api")

	if !page.ReplaceExchangeRates(ticket, rates) {
		logger.Info().Uint64("ticket", ticket).Msg("skipped stale exchange rates response")
	}

	return nil
}

func (v viewService) CreateExchangeRate(ctx context.Context, page *model.Page, opts CreateExchangeRateOptions) error {
	logger := v.logger.With().Str("name", "viewService.CreateExchangeRate").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	err := checkRequiredFields(
		requiredField{name: "Base currency", value: opts.BaseCurrencyCode},
		requiredField{name: "Target currency", value: opts.TargetCurrencyCode},
		requiredField{name: "Rate", value: opts.Rate},
	)
	if err != nil {
		v.notify(page, err, logger)
		return nil
	}

	err = v.apis.Exchange.CreateExchangeRate(ctx, opts)
	if err != nil {
		return v.handleFailure(ctx, page, err, logger)
	}
	logger.Info().Any("opts", opts).Msg("created exchange rate")

	return v.LoadExchangeRates(ctx, page)
}

func (v viewService) GetExchangeRate(ctx context.Context, page *model.Page, pair model.Pair) (*model.ExchangeRate, error) {
	logger := v.logger.With().Str("name", "viewService.GetExchangeRate").Logger()
	logger.Debug().Any("pair", pair).Msg("got args")

	err := checkRequiredFields(
		requiredField{name: "Base currency", value: pair.Base},
		requiredField{name: "Target currency", value: pair.Target},
	)
	if err != nil {
		v.notify(page, err, logger)
		return nil, nil
	}

	rate, err := v.apis.Exchange.GetExchangeRate(ctx, pair)
	if err != nil {
		return nil, v.handleFailure(ctx, page, err, logger)
	}

	return rate, nil
}

func (v viewService) StartExchangeRateEdit(page *model.Page, pair model.Pair) (*model.EditModal, error) {
	logger := v.logger.With().Str("name", "viewService.StartExchangeRateEdit").Logger()
	logger.Debug().Any("pair", pair).Msg("got args")

	modal, ok := page.OpenEditModal(pair)
	if !ok {
		logger.Info().Any("pair", pair).Msg("exchange rate row not found")
		return nil, ErrExchangeRateRowNotFound
	}

	return &modal, nil
}

func (v viewService) ConfirmExchangeRateEdit(ctx context.Context, page *model.Page, rate string) error {
	logger := v.logger.With().Str("name", "viewService.ConfirmExchangeRateEdit").Logger()
	logger.Debug().Str("rate", rate).Msg("got args")

	modal := page.CloseEditModal()
	if !modal.Open {
		logger.Info().Msg("edit modal is closed")
		return ErrEditModalClosed
	}

	// Restore the table to the last fetched snapshot before the new rate is sent.
	err := v.LoadExchangeRates(ctx, page)
	if err != nil {
		logger.Error().Err(err).Msg("load exchange rates")
		return fmt.Errorf("load exchange rates: %w", err)
	}

	err = v.apis.Exchange.UpdateExchangeRate(ctx, modal.Pair, rate)
	if err != nil {
		return v.handleFailure(ctx, page, err, logger)
	}
	logger.Info().Any("pair", modal.Pair).Str("rate", rate).Msg("updated exchange rate")

	return v.LoadExchangeRates(ctx, page)
}

func (v viewService) CancelExchangeRateEdit(page *model.Page) {
	logger := v.logger.With().Str("name", "viewService.CancelExchangeRateEdit").Logger()

	modal := page.CloseEditModal()
	logger.Debug().Any("modal", modal).Msg("closed edit modal")
}

func (v viewService) Convert(ctx context.Context, page *model.Page, opts ExchangeOptions) (*model.ExchangeResult, error) {
	logger := v.logger.With().Str("name", "viewService.Convert").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	err := checkRequiredFields(
		requiredField{name: "From", value: opts.From},
		requiredField{name: "To", value: opts.To},
		requiredField{name: "Amount", value: opts.Amount},
	)
	if err != nil {
		v.notify(page, err, logger)
		return nil, nil
	}

	ticket := page.Begin(model.ConversionResource)

	result, err := v.apis.Exchange.Exchange(ctx, opts)
	if err != nil {
		return nil, v.handleFailure(ctx, page, err, logger)
	}
	logger.Debug().Any("result", result).Msg("got exchange result")

	if !page.SetConvertedAmount(ticket, result.ConvertedAmount.String()) {
		logger.Info().Uint64("ticket", ticket).Msg("skipped stale exchange response")
	}

	return result, nil
}

// handleFailure shows the failure on the page. Cancellation of the caller is returned instead,
// nobody is left to read the notification.
func (v viewService) handleFailure(ctx context.Context, page *model.Page, err error, logger zerolog.Logger) error {
	if ctx.Err() != nil {
		logger.Warn().Err(err).Msg("request canceled")
		return fmt.Errorf("request canceled: %w", err)
	}

	v.notify(page, err, logger)
	return nil
}

func (v viewService) notify(page *model.Page, err error, logger zerolog.Logger) {
	if errs.IsExpected(err) {
		logger.Info().Err(err).Msg("request failed")
	} else {
		logger.Error().Err(err).Msg("unexpected error")
	}

	notification := page.Notify(errs.MessageOr(err, UnexpectedErrorMessage))
	v.metrics.IncNotifications()

	logger.Debug().Any("notification", notification).Msg("raised notification")
}

type requiredField struct {
	name  string
	value string
}

func checkRequiredFields(fields ...requiredField) error {
	for _, field := range fields {
		if field.value == "" {
			return errs.New(fmt.Sprintf("Please fill out the %s field.", field.name))
		}
	}

	return nil
}
