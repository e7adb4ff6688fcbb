package query

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigs(t *testing.T, ns []*big.Int) []string {
	t.Helper()
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.String()
	}
	return out
}

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "embedded runs", text: "a1b22c333", want: []string{"1", "22", "333"}},
		{name: "duplicates kept", text: "7 and 7 and 7", want: []string{"7", "7", "7"}},
		{name: "leading zeros", text: "007", want: []string{"7"}},
		{name: "beyond 64 bits", text: "x 123456789012345678901234567890", want: []string{"123456789012345678901234567890"}},
		{name: "minus sign ignored", text: "-5", want: []string{"5"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bigs(t, ExtractNumbers(tc.text)))
		})
	}
}

func TestExtractNumbersNoDigits(t *testing.T) {
	assert.Empty(t, ExtractNumbers("no digits here"))
	assert.Empty(t, ExtractNumbers(""))
}

func TestLargest(t *testing.T) {
	require.Nil(t, largest(nil))

	got := largest(ExtractNumbers("5, 99999999999999999999, 42"))
	assert.Equal(t, "99999999999999999999", got.String())
}
