package service

import (
	"strings"
	"testing"

	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	actual := renderTable(
		[]string{"Code", "Name"},
		[][]string{
			{"USD", "US Dollar"},
			{"A&B", "<script>"},
		},
	)

	assert.Equal(t, "<pre>Code  Name\nUSD   US Dollar\nA&amp;B   &lt;script&gt;</pre>", actual)
}

func TestRenderExchangeRates(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		rows     []model.ExchangeRateRow
		expected string
	}{
		{
			desc:     "empty table",
			expected: "No exchange rates found.",
		},
		{
			desc: "table with rows",
			rows: []model.ExchangeRateRow{
				{Pair: model.Pair{Base: "USD", Target: "EUR"}, Label: "USDEUR", Rate: "0.92"},
			},
			expected: "📈 <b>Exchange Rates</b>\n<pre>Pair    Rate\nUSDEUR  0.92</pre>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, renderExchangeRates(tc.rows))
		})
	}
}

func TestRenderExchangeResult(t *testing.T) {
	t.Parallel()

	opts := ExchangeOptions{From: "USD", To: "EUR", Amount: "100"}

	testCases := [...]struct {
		desc     string
		result   model.ExchangeResult
		expected string
	}{
		{
			desc: "full result",
			result: model.ExchangeResult{
				BaseCurrency:    model.Currency{Code: "USD"},
				TargetCurrency:  model.Currency{Code: "EUR"},
				Rate:            money.NewFromFloat(0.92),
				Amount:          money.NewFromInt(100),
				ConvertedAmount: money.NewFromInt(92),
			},
			expected: "100 USD = 92 EUR\nRate: 0.92",
		},
		{
			desc: "only converted amount returned",
			result: model.ExchangeResult{
				ConvertedAmount: money.NewFromInt(92),
			},
			expected: "100 USD = 92 EUR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, renderExchangeResult(opts, tc.result))
		})
	}
}

func TestGetEditExchangeRatesKeyboard(t *testing.T) {
	t.Parallel()

	usdEUR := model.Pair{Base: "USD", Target: "EUR"}
	longPair := model.Pair{Base: strings.Repeat("X", 60), Target: "EUR"}

	rows := getEditExchangeRatesKeyboard([]model.ExchangeRateRow{
		{Pair: longPair, Label: longPair.String(), Rate: "1"},
		{Pair: usdEUR, Label: "USDEUR", Rate: "0.92"},
	})

	assert.Equal(t, []InlineKeyboardRow{
		{Buttons: []InlineKeyboardButton{{Text: "✏️ Edit USDEUR", Data: model.NewEditExchangeRateCallback(usdEUR)}}},
	}, rows)
	assert.Empty(t, getEditExchangeRatesKeyboard([]model.ExchangeRateRow{{Pair: longPair, Label: "long", Rate: "1"}}))
}

func TestGetRowKeyboardRows(t *testing.T) {
	t.Parallel()

	options := []model.Option{
		{Value: "USD", Label: "USD"},
		{Value: "EUR", Label: "EUR"},
		{Value: "UAH", Label: "UAH"},
		{Value: "GBP", Label: "GBP"},
	}

	testCases := [...]struct {
		desc         string
		withCancel   bool
		expectedRows []KeyboardRow
	}{
		{
			desc: "rows without cancel button",
			expectedRows: []KeyboardRow{
				{Buttons: []string{"USD", "EUR", "UAH"}},
				{Buttons: []string{"GBP"}},
			},
		},
		{
			desc:       "rows with cancel button",
			withCancel: true,
			expectedRows: []KeyboardRow{
				{Buttons: []string{"USD", "EUR", "UAH"}},
				{Buttons: []string{"GBP"}},
				{Buttons: []string{model.BotCancelCommand}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expectedRows, getRowKeyboardRows(options, 3, tc.withCancel))
		})
	}
}
