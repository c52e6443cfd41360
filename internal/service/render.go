package service

import (
	"fmt"
	"html"
	"strings"
	"text/tabwriter"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

func renderTable(header []string, rows [][]string) string {
	var builder strings.Builder

	writer := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	// Flush only fails when the underlying writer fails, strings.Builder never does.
	_ = writer.Flush()

	return "<pre>" + html.EscapeString(strings.TrimRight(builder.String(), "\n")) + "</pre>"
}

func renderCurrencies(rows []model.CurrencyRow) string {
	if len(rows) == 0 {
		return "No currencies found."
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{row.Code, row.Name, row.Sign})
	}

	return "💱 <b>Currencies</b>\n" + renderTable([]string{"Code", "Name", "Sign"}, tableRows)
}

func renderExchangeRates(rows []model.ExchangeRateRow) string {
	if len(rows) == 0 {
		return "No exchange rates found."
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{row.Label, row.Rate})
	}

	return "📈 <b>Exchange Rates</b>\n" + renderTable([]string{"Pair", "Rate"}, tableRows)
}

func renderCurrency(currency model.Currency) string {
	return fmt.Sprintf(
		"Currency Info:\n - Code: %s\n - Name: %s\n - Sign: %s",
		currency.Code, currency.Name, currency.Sign,
	)
}

func renderExchangeRate(rate model.ExchangeRate) string {
	return fmt.Sprintf(
		"Exchange Rate Info:\n - Pair: %s\n - Base: %s (%s)\n - Target: %s (%s)\n - Rate: %s",
		rate.Pair(),
		rate.BaseCurrency.Code, rate.BaseCurrency.Name,
		rate.TargetCurrency.Code, rate.TargetCurrency.Name,
		rate.Rate,
	)
}

// renderExchangeResult falls back to the submitted form values for the fields the server omitted.
func renderExchangeResult(opts ExchangeOptions, result model.ExchangeResult) string {
	amount := opts.Amount
	if !result.Amount.IsZero() {
		amount = result.Amount.String()
	}

	from := opts.From
	if result.BaseCurrency.Code != "" {
		from = result.BaseCurrency.Code
	}

	to := opts.To
	if result.TargetCurrency.Code != "" {
		to = result.TargetCurrency.Code
	}

	text := fmt.Sprintf("%s %s = %s %s", amount, from, result.ConvertedAmount, to)
	if !result.Rate.IsZero() {
		text += "\nRate: " + result.Rate.String()
	}

	return text
}
