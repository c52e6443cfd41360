package exchange_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/VladPetriv/currency_exchange/internal/api/exchange"
	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/VladPetriv/currency_exchange/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method   string
	rawPath  string
	rawQuery string
	body     string
	ct       string
}

func newTestServer(t *testing.T, statusCode int, contentType, responseBody string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	var captured capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		captured = capturedRequest{
			method:   r.Method,
			rawPath:  r.URL.EscapedPath(),
			rawQuery: r.URL.RawQuery,
			body:     string(body),
			ct:       r.Header.Get("Content-Type"),
		}

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return server, &captured
}

func newClient(t *testing.T, host string) service.ExchangeAPI {
	t.Helper()

	return exchange.New(exchange.Options{
		Host:    host,
		Timeout: 5 * time.Second,
	})
}

func TestExchange_ListCurrencies(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusOK, "application/json",
		`[{"id":1,"code":"USD","name":"US Dollar","sign":"$"},{"id":2,"code":"EUR","name":"Euro","sign":"€"}]`)

	currencies, err := newClient(t, server.URL).ListCurrencies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/currencies", captured.rawPath)
	assert.Equal(t, []model.Currency{
		{Code: "USD", Name: "US Dollar", Sign: "$"},
		{Code: "EUR", Name: "Euro", Sign: "€"},
	}, currencies)
}

func TestExchange_ListExchangeRates(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusOK, "application/json", `[{
		"id": 1,
		"baseCurrency": {"code":"USD","name":"US Dollar","sign":"$"},
		"targetCurrency": {"code":"EUR","name":"Euro","sign":"€"},
		"rate": 0.92
	}]`)

	rates, err := newClient(t, server.URL).ListExchangeRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/exchangeRates", captured.rawPath)
	require.Len(t, rates, 1)
	assert.Equal(t, 1, rates[0].ID)
	assert.Equal(t, model.Pair{Base: "USD", Target: "EUR"}, rates[0].Pair())
	assert.Equal(t, "0.92", rates[0].Rate.String())
}

func TestExchange_CreateCurrency(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusCreated, "application/json",
		`{"id":3,"code":"UAH","name":"Hryvnia","sign":"₴"}`)

	err := newClient(t, server.URL).CreateCurrency(context.Background(), service.CreateCurrencyOptions{
		Code: "UAH",
		Name: "Hryvnia",
		Sign: "₴",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/currencies", captured.rawPath)
	assert.Contains(t, captured.ct, "application/x-www-form-urlencoded")

	form, err := url.ParseQuery(captured.body)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"code": {"UAH"}, "name": {"Hryvnia"}, "sign": {"₴"}}, form)
}

func TestExchange_CreateExchangeRate(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusCreated, "application/json", `{}`)

	err := newClient(t, server.URL).CreateExchangeRate(context.Background(), service.CreateExchangeRateOptions{
		BaseCurrencyCode:   "USD",
		TargetCurrencyCode: "EUR",
		Rate:               "0.92",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/exchangeRates", captured.rawPath)

	form, err := url.ParseQuery(captured.body)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"baseCurrencyCode":   {"USD"},
		"targetCurrencyCode": {"EUR"},
		"rate":               {"0.92"},
	}, form)
}

func TestExchange_UpdateExchangeRate(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc         string
		pair         model.Pair
		expectedPath string
	}{
		{
			desc:         "plain pair",
			pair:         model.Pair{Base: "USD", Target: "EUR"},
			expectedPath: "/exchangeRate/USDEUR",
		},
		{
			desc:         "pair with reserved characters",
			pair:         model.Pair{Base: "A/B", Target: "C?D"},
			expectedPath: "/exchangeRate/A%2FBC%3FD",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			server, captured := newTestServer(t, http.StatusOK, "application/json", `{}`)

			err := newClient(t, server.URL).UpdateExchangeRate(context.Background(), tc.pair, "0.95")
			require.NoError(t, err)

			assert.Equal(t, http.MethodPatch, captured.method)
			assert.Equal(t, tc.expectedPath, captured.rawPath)
			assert.Equal(t, "rate=0.95", captured.body)
		})
	}
}

func TestExchange_GetExchangeRate(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusOK, "application/json", `{
		"id": 7,
		"baseCurrency": {"code":"USD","name":"US Dollar","sign":"$"},
		"targetCurrency": {"code":"EUR","name":"Euro","sign":"€"},
		"rate": "0.92"
	}`)

	rate, err := newClient(t, server.URL).GetExchangeRate(context.Background(), model.Pair{Base: "USD", Target: "EUR"})
	require.NoError(t, err)

	assert.Equal(t, "/exchangeRate/USDEUR", captured.rawPath)
	assert.Equal(t, 7, rate.ID)
	assert.Equal(t, "0.92", rate.Rate.String())
}

func TestExchange_GetCurrency(t *testing.T) {
	t.Parallel()

	server, captured := newTestServer(t, http.StatusOK, "application/json", `{"code":"USD","name":"US Dollar","sign":"$"}`)

	currency, err := newClient(t, server.URL).GetCurrency(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, "/currency/USD", captured.rawPath)
	assert.Equal(t, &model.Currency{Code: "USD", Name: "US Dollar", Sign: "$"}, currency)
}

func TestExchange_Exchange(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		opts          service.ExchangeOptions
		expectedQuery url.Values
	}{
		{
			desc:          "plain values",
			opts:          service.ExchangeOptions{From: "USD", To: "EUR", Amount: "100"},
			expectedQuery: url.Values{"from": {"USD"}, "to": {"EUR"}, "amount": {"100"}},
		},
		{
			desc:          "values with reserved characters",
			opts:          service.ExchangeOptions{From: "US&D", To: "E=UR", Amount: "1 00"},
			expectedQuery: url.Values{"from": {"US&D"}, "to": {"E=UR"}, "amount": {"1 00"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			server, captured := newTestServer(t, http.StatusOK, "application/json", `{
				"baseCurrency": {"code":"USD","name":"US Dollar","sign":"$"},
				"targetCurrency": {"code":"EUR","name":"Euro","sign":"€"},
				"rate": 0.92,
				"amount": 100,
				"convertedAmount": 92
			}`)

			result, err := newClient(t, server.URL).Exchange(context.Background(), tc.opts)
			require.NoError(t, err)

			assert.Equal(t, http.MethodGet, captured.method)
			assert.Equal(t, "/exchange", captured.rawPath)

			query, err := url.ParseQuery(captured.rawQuery)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedQuery, query)

			assert.Equal(t, "92", result.ConvertedAmount.String())
			assert.Equal(t, "EUR", result.TargetCurrency.Code)
		})
	}
}

func TestExchange_Errors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc            string
		statusCode      int
		contentType     string
		body            string
		expectExpected  bool
		expectedMessage string
	}{
		{
			desc:            "error with message",
			statusCode:      http.StatusNotFound,
			contentType:     "application/json",
			body:            `{"message":"Currency not found"}`,
			expectExpected:  true,
			expectedMessage: "Currency not found",
		},
		{
			desc:            "error with message and no content type",
			statusCode:      http.StatusConflict,
			body:            `{"message":"Currency with this code already exists"}`,
			expectExpected:  true,
			expectedMessage: "Currency with this code already exists",
		},
		{
			desc:        "error with non json body",
			statusCode:  http.StatusInternalServerError,
			contentType: "text/html",
			body:        `<html>Internal Server Error</html>`,
		},
		{
			desc:        "error with empty message",
			statusCode:  http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"message":""}`,
		},
		{
			desc:        "error with empty body",
			statusCode:  http.StatusBadGateway,
			contentType: "application/json",
		},
		{
			desc:        "malformed success body",
			statusCode:  http.StatusOK,
			contentType: "application/json",
			body:        `[{"code":`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			server, _ := newTestServer(t, tc.statusCode, tc.contentType, tc.body)

			_, err := newClient(t, server.URL).ListCurrencies(context.Background())
			require.Error(t, err)

			assert.Equal(t, tc.expectExpected, errs.IsExpected(err))
			if tc.expectExpected {
				assert.Equal(t, tc.expectedMessage, errs.MessageOr(err, ""))
			}
		})
	}
}

func TestExchange_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	host := server.URL
	server.Close()

	_, err := newClient(t, host).ListExchangeRates(context.Background())
	require.Error(t, err)
	assert.False(t, errs.IsExpected(err))
}

func TestExchange_Metrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)

	server, _ := newTestServer(t, http.StatusNotFound, "application/json", `{"message":"Exchange rate not found"}`)

	client := exchange.New(exchange.Options{
		Host:    server.URL,
		Timeout: 5 * time.Second,
		Metrics: appMetrics,
	})

	_, err := client.GetExchangeRate(context.Background(), model.Pair{Base: "USD", Target: "EUR"})
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		appMetrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/exchangeRate/{pair}", "404"),
	))
}
