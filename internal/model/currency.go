package model

import (
	"github.com/VladPetriv/currency_exchange/pkg/money"
)

// Currency represents currency model which contains currency code, name and sign.
type Currency struct {
	Code string
	Name string
	Sign string
}

// GetID returns the currency code, which uniquely identifies the currency.
func (c Currency) GetID() string {
	return c.Code
}

// GetName returns the currency text used on buttons.
func (c Currency) GetName() string {
	return c.Code
}

// Pair represents the ordered combination of base and target currency codes
// that identifies one exchange rate.
type Pair struct {
	Base   string
	Target string
}

// String returns concatenated base and target codes, e.g. USDEUR.
func (p Pair) String() string {
	return p.Base + p.Target
}

// IsEmpty reports whether one of the pair codes is missing.
func (p Pair) IsEmpty() bool {
	return p.Base == "" || p.Target == ""
}

// ExchangeRate represents the rate between base and target currencies.
type ExchangeRate struct {
	ID             int
	BaseCurrency   Currency
	TargetCurrency Currency
	Rate           money.Money
}

// Pair returns the pair that identifies exchange rate.
func (e ExchangeRate) Pair() Pair {
	return Pair{
		Base:   e.BaseCurrency.Code,
		Target: e.TargetCurrency.Code,
	}
}

// ExchangeResult represents the result of currency conversion calculated by the exchange API.
type ExchangeResult struct {
	BaseCurrency    Currency
	TargetCurrency  Currency
	Rate            money.Money
	Amount          money.Money
	ConvertedAmount money.Money
}
