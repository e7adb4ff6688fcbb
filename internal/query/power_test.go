package query

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerSmallExponents(t *testing.T) {
	tests := []struct {
		base, exp int64
		want      string
	}{
		{2, 10, "1024"},
		{5, 0, "1"},
		{0, 0, "1"},
		{0, 5, "0"},
		{10, 20, "100000000000000000000"},
		{10, 21, "1e+21"},
		{2, 100, "1.2676506002282294e+30"},
	}

	for _, tc := range tests {
		got := Power(big.NewInt(tc.base), big.NewInt(tc.exp))
		assert.Equal(t, tc.want, got, "%d^%d", tc.base, tc.exp)
	}
}

func TestPowerExactForLargeExponents(t *testing.T) {
	for _, tc := range []struct{ base, exp int64 }{{2, 200}, {3, 101}, {7, 1000}, {12345, 777}} {
		want := new(big.Int).Exp(big.NewInt(tc.base), big.NewInt(tc.exp), nil).String()
		got := Power(big.NewInt(tc.base), big.NewInt(tc.exp))
		assert.Equal(t, want, got, "%d^%d", tc.base, tc.exp)
	}
}

func TestPowerFloatOverflowFallsBackToExact(t *testing.T) {
	want := "1" + strings.Repeat("0", 400)
	assert.Equal(t, want, Power(big.NewInt(10000), big.NewInt(100)))
}

func TestPowerTrivialBases(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, "0", Power(big.NewInt(0), huge))
	assert.Equal(t, "1", Power(big.NewInt(1), huge))
}

func TestPowerApproximatesBeyondExactLimit(t *testing.T) {
	got := Power(big.NewInt(10), big.NewInt(5_000_000))
	assert.Equal(t, "1e+5000000", got)

	got = Power(big.NewInt(2), big.NewInt(10_000_000))
	assert.True(t, strings.HasPrefix(got, "9.04"), got)
	assert.True(t, strings.HasSuffix(got, "e+3010299"), got)
}

func TestPowBySquaring(t *testing.T) {
	for e := uint64(0); e < 64; e++ {
		want := new(big.Int).Lsh(big.NewInt(1), uint(e))
		assert.Equal(t, 0, want.Cmp(powBySquaring(big.NewInt(2), e)), "2^%d", e)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "3.5", formatFloat(3.5))
	assert.Equal(t, "1e-7", formatFloat(1e-7))
	assert.Equal(t, "1.5e+300", formatFloat(1.5e300))
	assert.Equal(t, "0", formatFloat(0))
}
