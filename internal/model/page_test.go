package model_test

import (
	"testing"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeRate(t *testing.T, base, target, rate string) model.ExchangeRate {
	t.Helper()

	value, err := money.NewFromString(rate)
	require.NoError(t, err)

	return model.ExchangeRate{
		BaseCurrency:   model.Currency{Code: base},
		TargetCurrency: model.Currency{Code: target},
		Rate:           value,
	}
}

func TestPage_ReplaceCurrencies(t *testing.T) {
	t.Parallel()

	page := model.NewPage()

	ok := page.ReplaceCurrencies(page.Begin(model.CurrenciesResource), []model.Currency{
		{Code: "USD", Name: "US Dollar", Sign: "$"},
		{Code: "EUR", Name: "Euro", Sign: "€"},
	})
	require.True(t, ok)

	ok = page.ReplaceCurrencies(page.Begin(model.CurrenciesResource), []model.Currency{
		{Code: "JPY", Name: "Yen", Sign: "¥"},
	})
	require.True(t, ok)

	assert.Equal(t, []model.CurrencyRow{{Code: "JPY", Name: "Yen", Sign: "¥"}}, page.Currencies())
	for _, id := range model.CurrencySelects {
		assert.Equal(t, []model.Option{{Value: "JPY", Label: "JPY"}}, page.Options(id), id)
	}
}

func TestPage_ReplaceCurrencies_Empty(t *testing.T) {
	t.Parallel()

	page := model.NewPage()
	page.ReplaceCurrencies(page.Begin(model.CurrenciesResource), []model.Currency{{Code: "USD"}})
	page.ReplaceCurrencies(page.Begin(model.CurrenciesResource), nil)

	assert.Empty(t, page.Currencies())
	for _, id := range model.CurrencySelects {
		assert.Empty(t, page.Options(id))
	}
}

func TestPage_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	page := model.NewPage()

	older := page.Begin(model.ExchangeRatesResource)
	newer := page.Begin(model.ExchangeRatesResource)

	require.True(t, page.ReplaceExchangeRates(newer, []model.ExchangeRate{newExchangeRate(t, "USD", "EUR", "0.95")}))
	assert.False(t, page.ReplaceExchangeRates(older, []model.ExchangeRate{newExchangeRate(t, "USD", "EUR", "0.90")}))

	rows := page.ExchangeRates()
	require.Len(t, rows, 1)
	assert.Equal(t, "0.95", rows[0].Rate)

	// Tickets are tracked per resource.
	assert.True(t, page.SetConvertedAmount(page.Begin(model.ConversionResource), "95"))
	assert.Equal(t, "95", page.ConvertedAmount())
}

func TestPage_ReplaceExchangeRates(t *testing.T) {
	t.Parallel()

	page := model.NewPage()
	ok := page.ReplaceExchangeRates(page.Begin(model.ExchangeRatesResource), []model.ExchangeRate{
		newExchangeRate(t, "USD", "EUR", "0.95"),
		newExchangeRate(t, "EUR", "GBP", "0.86"),
	})
	require.True(t, ok)

	assert.Equal(t, []model.ExchangeRateRow{
		{Pair: model.Pair{Base: "USD", Target: "EUR"}, Label: "USDEUR", Rate: "0.95"},
		{Pair: model.Pair{Base: "EUR", Target: "GBP"}, Label: "EURGBP", Rate: "0.86"},
	}, page.ExchangeRates())
}

func TestPage_EditModal(t *testing.T) {
	t.Parallel()

	page := model.NewPage()
	page.ReplaceExchangeRates(page.Begin(model.ExchangeRatesResource), []model.ExchangeRate{
		newExchangeRate(t, "USD", "EUR", "0.95"),
	})

	_, ok := page.OpenEditModal(model.Pair{Base: "USD", Target: "GBP"})
	assert.False(t, ok)
	assert.False(t, page.EditModal().Open)

	modal, ok := page.OpenEditModal(model.Pair{Base: "USD", Target: "EUR"})
	require.True(t, ok)
	assert.Equal(t, model.EditModal{
		Open:  true,
		Title: "Edit USDEUR Exchange Rate",
		Pair:  model.Pair{Base: "USD", Target: "EUR"},
		Rate:  "0.95",
	}, modal)

	previous := page.CloseEditModal()
	assert.Equal(t, modal, previous)
	assert.Equal(t, model.EditModal{}, page.EditModal())
}

func TestPage_Notifications(t *testing.T) {
	t.Parallel()

	page := model.NewPage()

	first := page.Notify("Currency not found")
	second := page.Notify("Exchange rate not found")
	assert.NotEqual(t, first.ID, second.ID)

	notifications := page.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "Currency not found", notifications[0].Message)
	assert.Equal(t, "Exchange rate not found", notifications[1].Message)

	page.Dismiss(first.ID)
	page.Dismiss("unknown")

	notifications = page.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, second.ID, notifications[0].ID)
}
