package model

import (
	"net/url"
	"strings"
)

// Commands that we can received from bot.
const (
	// BotStartCommand represents the command to start the bot
	BotStartCommand string = "/start"

	// BotCurrenciesCommand represents the command to show currencies table
	BotCurrenciesCommand string = "💱 Currencies"
	// BotCreateCurrencyCommand represents the command to create a new currency
	BotCreateCurrencyCommand string = "➕ Add Currency"
	// BotGetCurrencyCommand represents the command to find a single currency
	BotGetCurrencyCommand string = "🔎 Find Currency"

	// BotExchangeRatesCommand represents the command to show exchange rates table
	BotExchangeRatesCommand string = "📈 Exchange Rates"
	// BotCreateExchangeRateCommand represents the command to create a new exchange rate
	BotCreateExchangeRateCommand string = "➕ Add Exchange Rate"
	// BotGetExchangeRateCommand represents the command to find a single exchange rate
	BotGetExchangeRateCommand string = "🔎 Find Exchange Rate"

	// BotConvertCommand represents the command to convert an amount
	BotConvertCommand string = "🔄 Convert"

	// BotCancelCommand represents the command that will cancel the current flow
	BotCancelCommand string = "Cancel action ⬅️"
)

// AvailableCommands is a list of all available bot commands.
var AvailableCommands = []string{
	BotStartCommand,
	BotCurrenciesCommand, BotCreateCurrencyCommand, BotGetCurrencyCommand,
	BotExchangeRatesCommand, BotCreateExchangeRateCommand, BotGetExchangeRateCommand,
	BotConvertCommand,
	BotCancelCommand,
}

// CommandToEvent maps bot commands to their corresponding events
var CommandToEvent = map[string]Event{
	BotStartCommand:  StartEvent,
	BotCancelCommand: CancelEvent,

	// Currency
	BotCurrenciesCommand:     ListCurrenciesEvent,
	BotCreateCurrencyCommand: CreateCurrencyEvent,
	BotGetCurrencyCommand:    GetCurrencyEvent,

	// Exchange rate
	BotExchangeRatesCommand:      ListExchangeRatesEvent,
	BotCreateExchangeRateCommand: CreateExchangeRateEvent,
	BotGetExchangeRateCommand:    GetExchangeRateEvent,

	// Exchange
	BotConvertCommand: ConvertEvent,
}

const (
	editExchangeRateCallbackPrefix = "edit_rate"
	callbackSeparator              = ":"
)

// MaxCallbackDataLength is the Telegram limit for inline button data, in bytes.
const MaxCallbackDataLength = 64

// NewEditExchangeRateCallback returns callback data of the edit button for given pair.
// Codes are query-escaped, so a separator inside a code survives the round trip.
func NewEditExchangeRateCallback(pair Pair) string {
	return strings.Join(
		[]string{editExchangeRateCallbackPrefix, url.QueryEscape(pair.Base), url.QueryEscape(pair.Target)},
		callbackSeparator,
	)
}

// ParseEditExchangeRateCallback extracts the pair from edit button callback data.
func ParseEditExchangeRateCallback(data string) (Pair, bool) {
	parts := strings.Split(data, callbackSeparator)
	if len(parts) != 3 || parts[0] != editExchangeRateCallbackPrefix {
		return Pair{}, false
	}

	base, err := url.QueryUnescape(parts[1])
	if err != nil {
		return Pair{}, false
	}
	target, err := url.QueryUnescape(parts[2])
	if err != nil {
		return Pair{}, false
	}

	pair := Pair{Base: base, Target: target}
	if pair.IsEmpty() {
		return Pair{}, false
	}

	return pair, true
}
