package telegram

import (
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
)

func createKeyboard(rows []service.KeyboardRow) *telego.ReplyKeyboardMarkup {
	convertedRows := make([][]telego.KeyboardButton, 0, len(rows))

	for _, r := range rows {
		buttons := make([]telego.KeyboardButton, 0, len(r.Buttons))
		for _, b := range r.Buttons {
			buttons = append(buttons, telegoutil.KeyboardButton(b))
		}

		convertedRows = append(convertedRows, buttons)
	}

	return telegoutil.Keyboard(convertedRows...).WithResizeKeyboard()
}

// Telegram rejects messages with more inline buttons than this.
const maxButtonsPerMessage = 100

func createInlineKeyboard(rows []service.InlineKeyboardRow) []*telego.InlineKeyboardMarkup {
	convertedRows := make([][]telego.InlineKeyboardButton, 0, len(rows))

	var totalButtonsCount int
	for _, r := range rows {
		buttons := make([]telego.InlineKeyboardButton, 0, len(r.Buttons))

		for _, b := range r.Buttons {
			totalButtonsCount++

			data := b.Data
			if data == "" {
				data = b.Text
			}

			buttons = append(buttons, telegoutil.InlineKeyboardButton(b.Text).WithCallbackData(data))
		}

		convertedRows = append(convertedRows, buttons)
	}

	if totalButtonsCount <= maxButtonsPerMessage {
		return []*telego.InlineKeyboardMarkup{telegoutil.InlineKeyboard(convertedRows...)}
	}

	return splitInlineKeyboardRows(convertedRows, maxButtonsPerMessage)
}

// splitInlineKeyboardRows groups whole rows into keyboards with at most maxButtons buttons.
func splitInlineKeyboardRows(rows [][]telego.InlineKeyboardButton, maxButtons int) []*telego.InlineKeyboardMarkup {
	result := make([]*telego.InlineKeyboardMarkup, 0, 2)

	var (
		start        int
		buttonsCount int
	)
	for idx, row := range rows {
		if buttonsCount > 0 && buttonsCount+len(row) > maxButtons {
			result = append(result, telegoutil.InlineKeyboard(rows[start:idx]...))

			start = idx
			buttonsCount = 0
		}

		buttonsCount += len(row)
	}

	if start < len(rows) {
		result = append(result, telegoutil.InlineKeyboard(rows[start:]...))
	}

	return result
}
