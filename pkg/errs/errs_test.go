package errs_test

import (
	"fmt"
	"testing"

	"github.com/VladPetriv/currency_exchange/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func Test_IsExpected(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected bool
	}{
		{
			name:     "should return true, since the error was custom",
			args:     errs.New("custom error"),
			expected: true,
		},
		{
			name:     "should return true, since the custom error was wrapped",
			args:     fmt.Errorf("list currencies: %w", errs.New("custom error")),
			expected: true,
		},
		{
			name:     "should return false, since the error wasn't custom",
			args:     fmt.Errorf("not custom error"),
			expected: false,
		},
		{
			name:     "should return false, since there is no error",
			args:     nil,
			expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual := errs.IsExpected(tc.args)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_MessageOr(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected string
	}{
		{
			name:     "should return custom error message",
			args:     fmt.Errorf("create currency: %w", errs.New("Currency already exists.")),
			expected: "Currency already exists.",
		},
		{
			name:     "should return fallback for not custom error",
			args:     fmt.Errorf("connection refused"),
			expected: "fallback",
		},
		{
			name:     "should return fallback for custom error with empty message",
			args:     errs.New(""),
			expected: "fallback",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, errs.MessageOr(tc.args, "fallback"))
		})
	}
}
