package money

import (
	"github.com/shopspring/decimal"
)

// Money represents custom type for processing rates and amounts received from the exchange API.
// The client never calculates amounts itself, so only parsing, comparison and formatting are provided.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromFloat returns decimal from float number.
func NewFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// IsZero reports whether amount is equal to zero.
func (m Money) IsZero() bool {
	return m.decimal.IsZero()
}

// Equal reports whether left and right amounts are equal.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// GreaterThan reports whether left amount is greater than right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// String returns string representation of the amount without any rounding.
func (m Money) String() string {
	return m.decimal.String()
}

// StringFixed returns string representation of float with 2 places after digit.
// Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(2)
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.decimal.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both quoted and plain JSON numbers are accepted.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.decimal.UnmarshalJSON(data)
}
