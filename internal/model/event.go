package model

// Event represents the type of event that occurs during bot interaction
type Event string

const (
	// StartEvent represents the event when user starts interacting with the bot
	StartEvent Event = "start"
	// CancelEvent represents the event when user cancels current flow
	CancelEvent Event = "cancel"
	// UnknownEvent represents an unrecognized or unsupported event
	UnknownEvent Event = "unknown"

	// ListCurrenciesEvent represents the event for showing currencies
	ListCurrenciesEvent Event = "currency/list"
	// CreateCurrencyEvent represents the event for creating a new currency
	CreateCurrencyEvent Event = "currency/create"
	// GetCurrencyEvent represents the event for looking up a currency
	GetCurrencyEvent Event = "currency/get"

	// ListExchangeRatesEvent represents the event for showing exchange rates
	ListExchangeRatesEvent Event = "exchange_rate/list"
	// CreateExchangeRateEvent represents the event for creating a new exchange rate
	CreateExchangeRateEvent Event = "exchange_rate/create"
	// UpdateExchangeRateEvent represents the event for editing an exchange rate
	UpdateExchangeRateEvent Event = "exchange_rate/update"
	// GetExchangeRateEvent represents the event for looking up an exchange rate
	GetExchangeRateEvent Event = "exchange_rate/get"

	// ConvertEvent represents the event for converting an amount
	ConvertEvent Event = "exchange/convert"
)

// EventToFlow maps events to their corresponding flows
var EventToFlow = map[Event]Flow{
	StartEvent:              StartFlow,
	CancelEvent:             CancelFlow,
	ListCurrenciesEvent:     ListCurrenciesFlow,
	CreateCurrencyEvent:     CreateCurrencyFlow,
	GetCurrencyEvent:        GetCurrencyFlow,
	ListExchangeRatesEvent:  ListExchangeRatesFlow,
	CreateExchangeRateEvent: CreateExchangeRateFlow,
	UpdateExchangeRateEvent: UpdateExchangeRateFlow,
	GetExchangeRateEvent:    GetExchangeRateFlow,
	ConvertEvent:            ConvertFlow,
}

// FlowToEvent maps flows back to the events that drive them.
var FlowToEvent = func() map[Flow]Event {
	result := make(map[Flow]Event, len(EventToFlow))
	for event, flow := range EventToFlow {
		result[flow] = event
	}

	return result
}()
