package service

import (
	"context"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

// Services contains all services.
type Services struct {
	View    ViewService
	State   StateService
	Handler HandlerService
	Event   EventService
}

// ViewService binds the page controls to the exchange API.
// Remote failures are shown as page notifications instead of being returned.
type ViewService interface {
	// LoadCurrencies replaces the currencies table and currency selects with the remote list.
	LoadCurrencies(ctx context.Context, page *model.Page) error
	// CreateCurrency creates a currency and reloads the currencies on success.
	CreateCurrency(ctx context.Context, page *model.Page, opts CreateCurrencyOptions) error
	// GetCurrency looks up a single currency, nil result means a notification was raised.
	GetCurrency(ctx context.Context, page *model.Page, code string) (*model.Currency, error)

	// LoadExchangeRates replaces the exchange rates table with the remote list.
	LoadExchangeRates(ctx context.Context, page *model.Page) error
	// CreateExchangeRate creates an exchange rate and reloads the table on success.
	CreateExchangeRate(ctx context.Context, page *model.Page, opts CreateExchangeRateOptions) error
	// GetExchangeRate looks up a single exchange rate, nil result means a notification was raised.
	GetExchangeRate(ctx context.Context, page *model.Page, pair model.Pair) (*model.ExchangeRate, error)

	// StartExchangeRateEdit opens the edit modal for the row with given pair.
	StartExchangeRateEdit(page *model.Page, pair model.Pair) (*model.EditModal, error)
	// ConfirmExchangeRateEdit closes the modal and submits the new rate.
	ConfirmExchangeRateEdit(ctx context.Context, page *model.Page, rate string) error
	// CancelExchangeRateEdit closes the modal without any requests.
	CancelExchangeRateEdit(page *model.Page)

	// Convert converts an amount and stores the converted amount on the page.
	// Nil result means a notification was raised.
	Convert(ctx context.Context, page *model.Page, opts ExchangeOptions) (*model.ExchangeResult, error)
}

// EventService provides functionally for receiving an updates from bot and reacting on it.
type EventService interface {
	// Listen is used to receive all updates from bot and react for them.
	Listen(ctx context.Context)
	// ReactOnEvent is used to react on specific event.
	ReactOnEvent(ctx context.Context, event model.Event, msg Message) error
}

// StateService represents a service for managing chat states.
type StateService interface {
	// HandleState determines the event of incoming message and stores the resulting state.
	HandleState(ctx context.Context, message Message) (*HandleStateOutput, error)
	// DeleteState removes the current state of the chat.
	DeleteState(ctx context.Context, message Message) error
}

// HandleStateOutput represents an output for HandleState method.
type HandleStateOutput struct {
	State *model.State
	Event model.Event
}

// HandlerService provides functionally for handling bot events.
type HandlerService interface {
	HandleStart(ctx context.Context, msg Message) error
	HandleCancel(ctx context.Context, msg Message) error
	HandleUnknown(msg Message) error
	HandleError(ctx context.Context, opts HandleErrorOptions) error

	HandleListCurrencies(ctx context.Context, msg Message) error
	HandleCreateCurrency(ctx context.Context, msg Message) error
	HandleGetCurrency(ctx context.Context, msg Message) error

	HandleListExchangeRates(ctx context.Context, msg Message) error
	HandleCreateExchangeRate(ctx context.Context, msg Message) error
	HandleUpdateExchangeRate(ctx context.Context, msg Message) error
	HandleGetExchangeRate(ctx context.Context, msg Message) error

	HandleConvert(ctx context.Context, msg Message) error
}

// HandleErrorOptions represents input options for HandleError method.
type HandleErrorOptions struct {
	Err                 error
	Msg                 Message
	SendDefaultKeyboard bool
}
