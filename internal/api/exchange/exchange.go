package exchange

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/VladPetriv/currency_exchange/pkg/metrics"
	"resty.dev/v3"
)

const (
	currenciesEndpoint    = "/currencies"
	currencyEndpoint      = "/currency/{code}"
	exchangeRatesEndpoint = "/exchangeRates"
	exchangeRateEndpoint  = "/exchangeRate/{pair}"
	exchangeEndpoint      = "/exchange"

	jsonContentType = "application/json"
)

type exchangeAPI struct {
	httpClient *resty.Client
	metrics    *metrics.Metrics
}

var _ service.ExchangeAPI = (*exchangeAPI)(nil)

// Options represents options that required for creating new instance of exchange API.
type Options struct {
	// Host represents the base url of exchange API, e.g. http://localhost:8080
	Host string
	// Timeout limits the duration of every request.
	Timeout time.Duration
	// Metrics is optional, requests are not observed when it's nil.
	Metrics *metrics.Metrics
}

// New creates a new instance of exchange API.
func New(opts Options) *exchangeAPI {
	httpClient := resty.New().
		SetBaseURL(opts.Host).
		SetTimeout(opts.Timeout).
		SetResponseBodyUnlimitedReads(true)

	return &exchangeAPI{
		httpClient: httpClient,
		metrics:    opts.Metrics,
	}
}

// Close releases idle connections of underlying http client.
func (e *exchangeAPI) Close() error {
	return e.httpClient.Close()
}

func (e *exchangeAPI) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	var result []currency

	err := e.execute(e.newRequest(ctx).SetResult(&result), http.MethodGet, currenciesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}

	output := make([]model.Currency, 0, len(result))
	for _, c := range result {
		output = append(output, c.toModel())
	}

	return output, nil
}

func (e *exchangeAPI) GetCurrency(ctx context.Context, code string) (*model.Currency, error) {
	var result currency

	request := e.newRequest(ctx).
		SetResult(&result).
		SetPathParam("code", code)

	err := e.execute(request, http.MethodGet, currencyEndpoint)
	if err != nil {
		return nil, fmt.Errorf("get currency: %w", err)
	}

	output := result.toModel()
	return &output, nil
}

func (e *exchangeAPI) CreateCurrency(ctx context.Context, opts service.CreateCurrencyOptions) error {
	request := e.newRequest(ctx).
		SetFormData(map[string]string{
			"code": opts.Code,
			"name": opts.Name,
			"sign": opts.Sign,
		})

	err := e.execute(request, http.MethodPost, currenciesEndpoint)
	if err != nil {
		return fmt.Errorf("create currency: %w", err)
	}

	return nil
}

func (e *exchangeAPI) ListExchangeRates(ctx context.Context) ([]model.ExchangeRate, error) {
	var result []exchangeRate

	err := e.execute(e.newRequest(ctx).SetResult(&result), http.MethodGet, exchangeRatesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}

	output := make([]model.ExchangeRate, 0, len(result))
	for _, rate := range result {
		output = append(output, rate.toModel())
	}

	return output, nil
}

func (e *exchangeAPI) GetExchangeRate(ctx context.Context, pair model.Pair) (*model.ExchangeRate, error) {
	var result exchangeRate

	request := e.newRequest(ctx).
		SetResult(&result).
		SetPathParam("pair", pair.String())

	err := e.execute(request, http.MethodGet, exchangeRateEndpoint)
	if err != nil {
		return nil, fmt.Errorf("get exchange rate: %w", err)
	}

	output := result.toModel()
	return &output, nil
}

func (e *exchangeAPI) CreateExchangeRate(ctx context.Context, opts service.CreateExchangeRateOptions) error {
	request := e.newRequest(ctx).
		SetFormData(map[string]string{
			"baseCurrencyCode":   opts.BaseCurrencyCode,
			"targetCurrencyCode": opts.TargetCurrencyCode,
			"rate":               opts.Rate,
		})

	err := e.execute(request, http.MethodPost, exchangeRatesEndpoint)
	if err != nil {
		return fmt.Errorf("create exchange rate: %w", err)
	}

	return nil
}

func (e *exchangeAPI) UpdateExchangeRate(ctx context.Context, pair model.Pair, rate string) error {
	request := e.newRequest(ctx).
		SetPathParam("pair", pair.String()).
		SetFormData(map[string]string{
			"rate": rate,
		})

	err := e.execute(request, http.MethodPatch, exchangeRateEndpoint)
	if err != nil {
		return fmt.Errorf("update exchange rate: %w", err)
	}

	return nil
}

func (e *exchangeAPI) Exchange(ctx context.Context, opts service.ExchangeOptions) (*model.ExchangeResult, error) {
	var result exchangeResponse

	request := e.newRequest(ctx).
		SetResult(&result).
		SetQueryParams(map[string]string{
			"from":   opts.From,
			"to":     opts.To,
			"amount": opts.Amount,
		})

	err := e.execute(request, http.MethodGet, exchangeEndpoint)
	if err != nil {
		return nil, fmt.Errorf("exchange: %w", err)
	}

	return &model.ExchangeResult{
		BaseCurrency:    result.BaseCurrency.toModel(),
		TargetCurrency:  result.TargetCurrency.toModel(),
		Rate:            result.Rate,
		Amount:          result.Amount,
		ConvertedAmount: result.ConvertedAmount,
	}, nil
}

func (e *exchangeAPI) newRequest(ctx context.Context) *resty.Request {
	return e.httpClient.R().
		SetContext(ctx).
		SetError(&errorResponse{}).
		SetForceResponseContentType(jsonContentType)
}

// execute sends the request and converts non-2xx responses into errors.
// Responses with non-empty message are returned as errs.Err, everything else is unexpected.
func (e *exchangeAPI) execute(request *resty.Request, method, endpoint string) error {
	startedAt := time.Now()
	response, err := request.Execute(method, endpoint)

	var statusCode int
	if response != nil {
		statusCode = response.StatusCode()
	}
	e.metrics.ObserveAPIRequest(method, endpoint, statusCode, time.Since(startedAt))

	if response != nil && response.IsError() {
		errResponse, ok := response.Error().(*errorResponse)
		if err != nil || !ok || errResponse.Message == "" {
			return fmt.Errorf("unexpected response(statusCode: %d, body: %s)", statusCode, response.String())
		}

		return errs.New(errResponse.Message)
	}
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	if !response.IsSuccess() {
		return fmt.Errorf("unexpected response(statusCode: %d, body: %s)", statusCode, response.String())
	}

	return nil
}
