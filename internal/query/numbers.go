package query

import (
	"math/big"
	"regexp"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractNumbers returns every maximal run of ASCII digits in text, parsed
// as a base-10 integer, in the order they appear. Duplicates are kept.
// It returns nil when text contains no digits.
func ExtractNumbers(text string) []*big.Int {
	runs := digitRun.FindAllString(text, -1)
	if len(runs) == 0 {
		return nil
	}

	numbers := make([]*big.Int, 0, len(runs))
	for _, run := range runs {
		n, _ := new(big.Int).SetString(run, 10)
		numbers = append(numbers, n)
	}
	return numbers
}

// largest returns the greatest of numbers, or nil for an empty slice.
func largest(numbers []*big.Int) *big.Int {
	var best *big.Int
	for _, n := range numbers {
		if best == nil || n.Cmp(best) > 0 {
			best = n
		}
	}
	return best
}
