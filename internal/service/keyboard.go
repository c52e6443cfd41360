package service

import (
	"github.com/VladPetriv/currency_exchange/internal/model"
)

var defaultKeyboardRows = []KeyboardRow{
	{Buttons: []string{model.BotCurrenciesCommand, model.BotExchangeRatesCommand}},
	{Buttons: []string{model.BotCreateCurrencyCommand, model.BotCreateExchangeRateCommand}},
	{Buttons: []string{model.BotGetCurrencyCommand, model.BotGetExchangeRateCommand}},
	{Buttons: []string{model.BotConvertCommand}},
}

var rowKeyboardWithCancelButtonOnly = []KeyboardRow{
	{Buttons: []string{model.BotCancelCommand}},
}

type identifiable interface {
	GetID() string
	GetName() string
}

func getRowKeyboardRows[T identifiable](data []T, elementLimitPerRow int, includeRowWithCancelButton bool) []KeyboardRow {
	keyboardRows := make([]KeyboardRow, 0)

	var currentRow KeyboardRow
	for i, entry := range data {
		currentRow.Buttons = append(currentRow.Buttons, entry.GetName())

		if len(currentRow.Buttons) == elementLimitPerRow || i == len(data)-1 {
			keyboardRows = append(keyboardRows, currentRow)
			currentRow = KeyboardRow{}
		}
	}

	if includeRowWithCancelButton {
		keyboardRows = append(keyboardRows, rowKeyboardWithCancelButtonOnly...)
	}

	return keyboardRows
}

func getInlineKeyboardRows[T identifiable](data []T, elementLimitPerRow int) []InlineKeyboardRow {
	inlineKeyboardRows := make([]InlineKeyboardRow, 0)

	var currentRow InlineKeyboardRow
	for i, entry := range data {
		currentRow.Buttons = append(currentRow.Buttons, InlineKeyboardButton{
			Text: entry.GetName(),
			Data: entry.GetID(),
		})

		if len(currentRow.Buttons) == elementLimitPerRow || i == len(data)-1 {
			inlineKeyboardRows = append(inlineKeyboardRows, currentRow)
			currentRow = InlineKeyboardRow{}
		}
	}

	return inlineKeyboardRows
}

const (
	currenciesPerKeyboardRow    = 3
	exchangeRatesPerKeyboardRow = 2
)

func getCurrenciesKeyboard(options []model.Option) []KeyboardRow {
	return getRowKeyboardRows(options, currenciesPerKeyboardRow, true)
}

// editButton is an inline button that opens the edit modal of an exchange rate row.
type editButton model.ExchangeRateRow

func (e editButton) GetID() string {
	return model.NewEditExchangeRateCallback(e.Pair)
}

func (e editButton) GetName() string {
	return "✏️ Edit " + e.Label
}

// getEditExchangeRatesKeyboard skips rows whose callback data Telegram would reject.
func getEditExchangeRatesKeyboard(rows []model.ExchangeRateRow) []InlineKeyboardRow {
	buttons := make([]editButton, 0, len(rows))
	for _, row := range rows {
		button := editButton(row)
		if len(button.GetID()) > model.MaxCallbackDataLength {
			continue
		}

		buttons = append(buttons, button)
	}

	return getInlineKeyboardRows(buttons, exchangeRatesPerKeyboardRow)
}
