package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata represents metadata associated with a flow
type Metadata map[MetadataKey]any

// Value implements the driver.Valuer interface
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *Metadata) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}

	return json.Unmarshal(bytes, m)
}

// GetTypedFromMetadata retrieves the value associated with the given key and expected value type.
func GetTypedFromMetadata[T any](m Metadata, key MetadataKey) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}

	val, exists := m[key]
	if !exists {
		return zero, false
	}

	typed, ok := val.(T)
	return typed, ok
}

// MetadataKey represents a key in the metadata map.
type MetadataKey string

const (
	// CurrencyCodeMetadataKey represents the code of the currency.
	CurrencyCodeMetadataKey MetadataKey = "currency_code"
	// CurrencyNameMetadataKey represents the name of the currency.
	CurrencyNameMetadataKey MetadataKey = "currency_name"

	// BaseCurrencyMetadataKey represents the chosen base currency code.
	BaseCurrencyMetadataKey MetadataKey = "base_currency"
	// TargetCurrencyMetadataKey represents the chosen target currency code.
	TargetCurrencyMetadataKey MetadataKey = "target_currency"
)
