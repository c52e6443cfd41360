package exchange

import (
	"github.com/VladPetriv/currency_exchange/internal/model"
	"github.com/VladPetriv/currency_exchange/pkg/money"
)

type currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Sign string `json:"sign"`
}

func (c currency) toModel() model.Currency {
	return model.Currency{
		Code: c.Code,
		Name: c.Name,
		Sign: c.Sign,
	}
}

type exchangeRate struct {
	ID             int         `json:"id"`
	BaseCurrency   currency    `json:"baseCurrency"`
	TargetCurrency currency    `json:"targetCurrency"`
	Rate           money.Money `json:"rate"`
}

func (e exchangeRate) toModel() model.ExchangeRate {
	return model.ExchangeRate{
		ID:             e.ID,
		BaseCurrency:   e.BaseCurrency.toModel(),
		TargetCurrency: e.TargetCurrency.toModel(),
		Rate:           e.Rate,
	}
}

type exchangeResponse struct {
	BaseCurrency    currency    `json:"baseCurrency"`
	TargetCurrency  currency    `json:"targetCurrency"`
	Rate            money.Money `json:"rate"`
	Amount          money.Money `json:"amount"`
	ConvertedAmount money.Money `json:"convertedAmount"`
}

type errorResponse struct {
	Message string `json:"message"`
}
