package service

import (
	"context"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

// APIs contains all external APIs.
type APIs struct {
	Messenger Messenger
	Exchange  ExchangeAPI
}

// ExchangeAPI represents the remote REST service that stores currencies and exchange rates.
//
//go:generate mockery --dir . --name ExchangeAPI --output ./mocks
type ExchangeAPI interface {
	// ListCurrencies returns all known currencies.
	ListCurrencies(ctx context.Context) ([]model.Currency, error)
	// GetCurrency returns a currency by its code.
	GetCurrency(ctx context.Context, code string) (*model.Currency, error)
	// CreateCurrency creates a new currency.
	CreateCurrency(ctx context.Context, opts CreateCurrencyOptions) error

	// ListExchangeRates returns all known exchange rates.
	ListExchangeRates(ctx context.Context) ([]model.ExchangeRate, error)
	// GetExchangeRate returns an exchange rate by its pair.
	GetExchangeRate(ctx context.Context, pair model.Pair) (*model.ExchangeRate, error)
	// CreateExchangeRate creates a new exchange rate.
	CreateExchangeRate(ctx context.Context, opts CreateExchangeRateOptions) error
	// UpdateExchangeRate sets a new rate for an existing pair.
	UpdateExchangeRate(ctx context.Context, pair model.Pair, rate string) error

	// Exchange converts an amount between two currencies.
	Exchange(ctx context.Context, opts ExchangeOptions) (*model.ExchangeResult, error)
}

// CreateCurrencyOptions represents input options for creating a currency.
type CreateCurrencyOptions struct {
	Code string
	Name string
	Sign string
}

// CreateExchangeRateOptions represents input options for creating an exchange rate.
type CreateExchangeRateOptions struct {
	BaseCurrencyCode   string
	TargetCurrencyCode string
	Rate               string
}

// ExchangeOptions represents input options for converting an amount.
type ExchangeOptions struct {
	From   string
	To     string
	Amount string
}

// Messenger handles messaging operations between the application and messaging platform.
//
//go:generate mockery --dir . --name Messenger --output ./mocks
type Messenger interface {
	// ReadUpdates retrieves new incoming updates/messages from the messaging platform.
	ReadUpdates(result chan Message, errors chan error)
	// SendMessage sends a text message to the specified chat.
	SendMessage(chatID int, text string) error
	// SendWithKeyboard sends a message with an attached keyboard (inline or reply).
	SendWithKeyboard(opts SendWithKeyboardOptions) error
	// AnswerCallback acknowledges the pressed inline button.
	AnswerCallback(callbackID string) error

	// Close closes the underlying connection to the messaging platform.
	Close() error
}

// SendWithKeyboardOptions represents options for sending a message with a keyboard.
type SendWithKeyboardOptions struct {
	ChatID  int
	Message string
	// FormatHTML enables HTML parse mode, message must be escaped by caller.
	FormatHTML     bool
	Keyboard       []KeyboardRow
	InlineKeyboard []InlineKeyboardRow
}

// KeyboardRow represents keyboard row with buttons.
type KeyboardRow struct {
	Buttons []string
}

// InlineKeyboardRow represents inline keyboard row with buttons.
type InlineKeyboardRow struct {
	Buttons []InlineKeyboardButton
}

// InlineKeyboardButton represents an inline keyboard button with text and data.
type InlineKeyboardButton struct {
	Text string
	Data string
}

// Message represents a message that was received from the messaging platform.
type Message interface {
	// GetUpdateID returns the unique ID of the update that carried the message.
	GetUpdateID() int
	// GetChatID returns the ID of the chat the message was sent to.
	GetChatID() int
	// GetText returns the text content of the message or callback data.
	GetText() string
	// GetSenderName returns the name of the user who sent the message.
	GetSenderName() string
	// GetCallbackID returns the ID of callback query, empty for plain messages.
	GetCallbackID() string
}
