package query

import (
	"math"
	"math/big"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// sixthRootEpsilon is how close the real sixth root must be to an integer.
const sixthRootEpsilon = 1e-7

// trialDivisionLimit bounds the range checked by trial division. Above it
// IsPrime switches to the Baillie-PSW test, which has no known
// counterexample and is proven exact for every 64-bit input.
const trialDivisionLimit = 1 << 40

// IsPrime reports whether n is prime. Values below 2^40 use trial division
// by 6k±1; larger ones use the deterministic Baillie-PSW test.
func IsPrime(n uint64) bool {
	switch {
	case n <= 1:
		return false
	case n <= 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	case n >= trialDivisionLimit:
		return new(big.Int).SetUint64(n).ProbablyPrime(0)
	}

	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// isPrimeBig extends IsPrime to integers wider than 64 bits.
func isPrimeBig(n *big.Int) bool {
	if n.IsUint64() {
		return IsPrime(n.Uint64())
	}
	return n.ProbablyPrime(0)
}

// IsPerfectSixthPower reports whether n is both a perfect square and a
// perfect cube, judged by how close its real sixth root is to an integer.
// The float approximation can misjudge values near the top of the range.
func IsPerfectSixthPower(n uint64) bool {
	return sixthRootIsIntegral(float64(n))
}

func isPerfectSixthPowerBig(n *big.Int) bool {
	if n.IsUint64() {
		return IsPerfectSixthPower(n.Uint64())
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return sixthRootIsIntegral(f)
}

func sixthRootIsIntegral(f float64) bool {
	if math.IsInf(f, 0) {
		return false
	}
	root := math.Pow(f, 1.0/6)
	return math.Abs(root-math.Round(root)) < sixthRootEpsilon
}

// IsAnagram reports whether a and b use the same letters the same number
// of times, ignoring case and every non-letter character.
func IsAnagram(a, b string) bool {
	ca, cb := anagramKey(a), anagramKey(b)
	if len(ca) != len(cb) {
		return false
	}
	return slices.Equal(ca, cb)
}

func anagramKey(s string) []rune {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)

	// Casers keep state, so each call folds with its own.
	key := []rune(cases.Fold().String(letters))
	slices.Sort(key)
	return key
}
