package model

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SelectID identifies one of the currency select controls of the page.
type SelectID string

const (
	// NewRateBaseCurrencySelect is used to choose base currency of a new exchange rate.
	NewRateBaseCurrencySelect SelectID = "new-rate-base-currency"
	// NewRateTargetCurrencySelect is used to choose target currency of a new exchange rate.
	NewRateTargetCurrencySelect SelectID = "new-rate-target-currency"
	// ConvertBaseCurrencySelect is used to choose currency to convert from.
	ConvertBaseCurrencySelect SelectID = "convert-base-currency"
	// ConvertTargetCurrencySelect is used to choose currency to convert to.
	ConvertTargetCurrencySelect SelectID = "convert-target-currency"
)

// CurrencySelects lists all select controls that are populated from the currencies list.
var CurrencySelects = []SelectID{
	NewRateBaseCurrencySelect, NewRateTargetCurrencySelect,
	ConvertBaseCurrencySelect, ConvertTargetCurrencySelect,
}

// Resource identifies a page region that is filled from a remote response.
type Resource string

const (
	// CurrenciesResource covers the currencies table and the currency selects.
	CurrenciesResource Resource = "currencies"
	// ExchangeRatesResource covers the exchange rates table.
	ExchangeRatesResource Resource = "exchange_rates"
	// ConversionResource covers the converted amount field.
	ConversionResource Resource = "conversion"
)

// CurrencyRow represents one row of the currencies table.
type CurrencyRow struct {
	Code string
	Name string
	Sign string
}

// Option represents one option of a select control.
type Option struct {
	Value string
	Label string
}

// GetID returns option value.
func (o Option) GetID() string {
	return o.Value
}

// GetName returns option label.
func (o Option) GetName() string {
	return o.Label
}

// ExchangeRateRow represents one row of the exchange rates table.
// Pair is kept next to the rendered label so the row identity never has to be parsed from text.
type ExchangeRateRow struct {
	Pair  Pair
	Label string
	Rate  string
}

// EditModal represents the exchange rate edit dialog.
type EditModal struct {
	Open  bool
	Title string
	Pair  Pair
	Rate  string
}

// Notification represents an error message shown to the user.
type Notification struct {
	ID        string
	Message   string
	CreatedAt time.Time
}

// Page is the per-session view model of the exchange page.
// All methods are safe for concurrent use.
type Page struct {
	mu sync.RWMutex

	currencies      []CurrencyRow
	selects         map[SelectID][]Option
	exchangeRates   []ExchangeRateRow
	modal           EditModal
	convertedAmount string
	notifications   []Notification

	issued  map[Resource]uint64
	applied map[Resource]uint64
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{
		selects: make(map[SelectID][]Option, len(CurrencySelects)),
		issued:  make(map[Resource]uint64),
		applied: make(map[Resource]uint64),
	}
}

// Begin issues a new sequence ticket for the resource. The ticket must be taken
// before the request is sent and passed back when the response is applied.
func (p *Page) Begin(resource Resource) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.issued[resource]++
	return p.issued[resource]
}

// accept reports whether response with given ticket is still the newest one.
// Must be called with write lock held.
func (p *Page) accept(resource Resource, ticket uint64) bool {
	if ticket <= p.applied[resource] {
		return false
	}

	p.applied[resource] = ticket
	return true
}

// ReplaceCurrencies replaces the currencies table and every currency select with given list.
// It returns false when a newer response was already applied.
func (p *Page) ReplaceCurrencies(ticket uint64, currencies []Currency) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.accept(CurrenciesResource, ticket) {
		return false
	}

	rows := make([]CurrencyRow, 0, len(currencies))
	options := make([]Option, 0, len(currencies))
	for _, currency := range currencies {
		rows = append(rows, CurrencyRow{
			Code: currency.Code,
			Name: currency.Name,
			Sign: currency.Sign,
		})
		options = append(options, Option{
			Value: currency.Code,
			Label: currency.Code,
		})
	}

	p.currencies = rows
	for _, id := range CurrencySelects {
		p.selects[id] = slices.Clone(options)
	}

	return true
}

// ReplaceExchangeRates replaces the exchange rates table.
// It returns false when a newer response was already applied.
func (p *Page) ReplaceExchangeRates(ticket uint64, rates []ExchangeRate) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.accept(ExchangeRatesResource, ticket) {
		return false
	}

	rows := make([]ExchangeRateRow, 0, len(rates))
	for _, rate := range rates {
		pair := rate.Pair()

		rows = append(rows, ExchangeRateRow{
			Pair:  pair,
			Label: pair.String(),
			Rate:  rate.Rate.String(),
		})
	}

	p.exchangeRates = rows
	return true
}

// SetConvertedAmount overwrites the converted amount field.
// It returns false when a newer response was already applied.
func (p *Page) SetConvertedAmount(ticket uint64, amount string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.accept(ConversionResource, ticket) {
		return false
	}

	p.convertedAmount = amount
	return true
}

// Currencies returns a snapshot of the currencies table.
func (p *Page) Currencies() []CurrencyRow {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.currencies)
}

// Options returns a snapshot of the select options.
func (p *Page) Options(id SelectID) []Option {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.selects[id])
}

// ExchangeRates returns a snapshot of the exchange rates table.
func (p *Page) ExchangeRates() []ExchangeRateRow {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.exchangeRates)
}

// ExchangeRate returns the row that carries given pair.
func (p *Page) ExchangeRate(pair Pair) (ExchangeRateRow, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.findExchangeRate(pair)
}

func (p *Page) findExchangeRate(pair Pair) (ExchangeRateRow, bool) {
	for _, row := range p.exchangeRates {
		if row.Pair == pair {
			return row, true
		}
	}

	return ExchangeRateRow{}, false
}

// ConvertedAmount returns the last converted amount.
func (p *Page) ConvertedAmount() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.convertedAmount
}

// OpenEditModal opens edit modal for the row with given pair.
// The modal is left untouched when no such row exists.
func (p *Page) OpenEditModal(pair Pair) (EditModal, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	row, ok := p.findExchangeRate(pair)
	if !ok {
		return p.modal, false
	}

	p.modal = EditModal{
		Open:  true,
		Title: fmt.Sprintf("Edit %s Exchange Rate", row.Label),
		Pair:  row.Pair,
		Rate:  row.Rate,
	}

	return p.modal, true
}

// CloseEditModal closes edit modal and returns its state before closing.
func (p *Page) CloseEditModal() EditModal {
	p.mu.Lock()
	defer p.mu.Unlock()

	previous := p.modal
	p.modal = EditModal{}

	return previous
}

// EditModal returns current edit modal state.
func (p *Page) EditModal() EditModal {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.modal
}

// Notify adds a new notification to the page.
func (p *Page) Notify(message string) Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	notification := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	p.notifications = append(p.notifications, notification)

	return notification
}

// Dismiss removes the notification with given id. Unknown ids are ignored.
func (p *Page) Dismiss(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notifications = slices.DeleteFunc(p.notifications, func(n Notification) bool {
		return n.ID == id
	})
}

// Notifications returns a snapshot of shown notifications in order they were raised.
func (p *Page) Notifications() []Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.notifications)
}
