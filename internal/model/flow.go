package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Flow represents the type of interaction flow currently active
type Flow string

const (
	// StartFlow represents the initial flow when starting the bot
	StartFlow Flow = "start"
	// CancelFlow represents the flow for stopping current flow
	CancelFlow Flow = "cancel"

	// ListCurrenciesFlow represents the flow for showing currencies table
	ListCurrenciesFlow Flow = "list_currencies"
	// CreateCurrencyFlow represents the flow for creating a new currency
	CreateCurrencyFlow Flow = "create_currency"
	// GetCurrencyFlow represents the flow for looking up a single currency
	GetCurrencyFlow Flow = "get_currency"

	// ListExchangeRatesFlow represents the flow for showing exchange rates table
	ListExchangeRatesFlow Flow = "list_exchange_rates"
	// CreateExchangeRateFlow represents the flow for creating a new exchange rate
	CreateExchangeRateFlow Flow = "create_exchange_rate"
	// UpdateExchangeRateFlow represents the flow for editing an exchange rate
	UpdateExchangeRateFlow Flow = "update_exchange_rate"
	// GetExchangeRateFlow represents the flow for looking up a single exchange rate
	GetExchangeRateFlow Flow = "get_exchange_rate"

	// ConvertFlow represents the flow for converting an amount between currencies
	ConvertFlow Flow = "convert"
)

// FlowSteps represents ordered list of passed flow steps.
type FlowSteps []FlowStep

// Value implements the driver.Valuer interface
func (s FlowSteps) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *FlowSteps) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}

	return json.Unmarshal(bytes, s)
}

// FlowStep represents a single step inside of a flow.
type FlowStep string

const (
	// StartFlowStep represents the first step of every flow
	StartFlowStep FlowStep = "start"
	// EndFlowStep represents the last step of every flow
	EndFlowStep FlowStep = "end"

	// EnterCurrencyCodeFlowStep represents the step for entering currency code
	EnterCurrencyCodeFlowStep FlowStep = "enter_currency_code"
	// EnterCurrencyNameFlowStep represents the step for entering currency name
	EnterCurrencyNameFlowStep FlowStep = "enter_currency_name"
	// EnterCurrencySignFlowStep represents the step for entering currency sign
	EnterCurrencySignFlowStep FlowStep = "enter_currency_sign"

	// ChooseBaseCurrencyFlowStep represents the step for choosing base currency
	ChooseBaseCurrencyFlowStep FlowStep = "choose_base_currency"
	// ChooseTargetCurrencyFlowStep represents the step for choosing target currency
	ChooseTargetCurrencyFlowStep FlowStep = "choose_target_currency"
	// EnterExchangeRateFlowStep represents the step for entering rate of a new exchange rate
	EnterExchangeRateFlowStep FlowStep = "enter_exchange_rate"
	// EnterUpdatedExchangeRateFlowStep represents the step for entering new rate in edit modal
	EnterUpdatedExchangeRateFlowStep FlowStep = "enter_updated_exchange_rate"
	// EnterAmountFlowStep represents the step for entering amount to convert
	EnterAmountFlowStep FlowStep = "enter_amount"
)
