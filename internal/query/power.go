package query

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// floatExponentLimit is the largest exponent computed in float64.
	floatExponentLimit = 100

	// MaxExactBits caps the size of an exactly computed power. Larger
	// results are approximated in scientific notation.
	MaxExactBits = 1 << 20
)

// Power returns base raised to exponent as a display string. Small
// exponents use float64 arithmetic; larger ones are computed exactly.
// Results too large to materialize are approximated.
func Power(base, exponent *big.Int) string {
	if exponent.Sign() < 0 {
		return approximatePower(base, exponent)
	}

	if exponent.Cmp(big.NewInt(floatExponentLimit)) <= 0 {
		b, _ := new(big.Float).SetInt(base).Float64()
		f := math.Pow(b, float64(exponent.Int64()))
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return formatFloat(f)
		}
	}

	switch {
	case base.Sign() == 0:
		return "0"
	case base.Cmp(big.NewInt(1)) == 0:
		return "1"
	case !exponent.IsUint64():
		return approximatePower(base, exponent)
	}

	e := exponent.Uint64()
	if estimatedBits(base, e) > MaxExactBits {
		return approximatePower(base, exponent)
	}
	return powBySquaring(base, e).String()
}

// powBySquaring computes base**e with O(log e) multiplications.
func powBySquaring(base *big.Int, e uint64) *big.Int {
	result := big.NewInt(1)
	sq := new(big.Int).Set(base)
	for e > 0 {
		if e&1 == 1 {
			result.Mul(result, sq)
		}
		e >>= 1
		if e > 0 {
			sq.Mul(sq, sq)
		}
	}
	return result
}

func estimatedBits(base *big.Int, e uint64) float64 {
	return float64(base.BitLen()) * float64(e)
}

// approximatePower formats base**exponent as d.ddde+N using logarithms.
func approximatePower(base, exponent *big.Int) string {
	b, _ := new(big.Float).SetInt(base).Float64()
	e, _ := new(big.Float).SetInt(exponent).Float64()

	switch {
	case b == 0 && e > 0:
		return "0"
	case b == 0:
		return "Infinity"
	case b == 1:
		return "1"
	}

	log10 := e * math.Log10(b)
	if math.IsInf(log10, 0) || math.IsNaN(log10) {
		if log10 < 0 {
			return "0"
		}
		return "Infinity"
	}

	exp := math.Floor(log10)
	mantissa := math.Pow(10, log10-exp)
	// Rounding can push the mantissa to 10.
	if mantissa >= 10 {
		mantissa /= 10
		exp++
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return strconv.FormatFloat(mantissa, 'f', -1, 64) + "e" + sign + strconv.FormatFloat(exp, 'f', 0, 64)
}

// formatFloat renders f the way a JavaScript number prints: plain digits
// below 1e21 and exponent notation from there on.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if a := math.Abs(f); a != 0 && (a >= 1e21 || a < 1e-6) {
		return trimExponent(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops the zero padding strconv puts on one-digit exponents.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
