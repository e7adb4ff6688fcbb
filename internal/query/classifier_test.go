package query

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	pow200 := new(big.Int).Exp(big.NewInt(2), big.NewInt(200), nil).String()

	tests := []struct {
		query      string
		wantIntent Intent
		wantAnswer string
	}{
		{"What did Shakespeare write?", IntentShakespeare, shakespeareBio},
		{"What is your AndrewID?", IntentAndrewID, "zru"},
		{"What is your name?", IntentName, "Jeremy"},
		{"Which of the following numbers is the largest: 5, 92, 31?", IntentLargest, "92"},
		{"What is the biggest number?", IntentLargest, NoNumbers},
		{"Which of the following numbers is both a square and a cube: 64, 100, 729?", IntentSixthPower, "64, 729"},
		{"Which of the following numbers is both a square and a cube: 63, 100?", IntentSixthPower, NoSixthPowers},
		{"Which of the following numbers are primes: 4, 7, 10, 13?", IntentPrime, "7, 13"},
		{"Which of the following numbers are primes: 4, 8?", IntentPrime, NoPrimes},
		{"Which numbers are prime?", IntentPrime, NoNumbers},
		{"What is 2 to the power of 10?", IntentPower, "1024"},
		{"What is 2 to the power of 200?", IntentPower, pow200},
		{`Is "listen" an anagram of "silent"?`, IntentAnagram, "Yes"},
		{"Is cat an anagram of dog?", IntentAnagram, "No"},
		{"Which of the following is an anagram of listen: enlist, google, inlets, banana?", IntentAnagram, "enlist, inlets"},
		{"Which of the following is an anagram of listen: google, banana?", IntentAnagram, "None of the words are anagrams of listen."},
		{"Tell me about anagrams", IntentAnagram, AnagramConfusion},
		{"What is 2 plus 3 multiplied by 4?", IntentMultiOperation, "14"},
		{"What is 10 minus 2 minus 3?", IntentMultiOperation, "5"},
		{"What is 8 divided by 0 plus 1?", IntentMultiOperation, CannotDivide},
		{"What is 5 plus minus 3?", IntentMultiOperation, CannotEvaluate},
		{"What is 5 plus 3?", IntentArithmetic, "8"},
		{"What is 6 multiplied by 7?", IntentArithmetic, "42"},
		{"What is 10 divided by 0?", IntentArithmetic, CannotDivide},
		{"What is 9 divided by 2?", IntentArithmetic, "4.5"},
		{"What is 3 minus 10?", IntentArithmetic, "-7"},
		{"12*12", IntentArithmetic, "144"},
		{"What is 5 plus 3 in 2024?", IntentArithmetic, "8"},
		{"What is 5 plus 3, a well-known sum?", IntentArithmetic, "8"},
		{"What is 12 plus 7 on 2024-01-01?", IntentArithmetic, "19"},
		{"What is 6 multiplied by 7 and/or more?", IntentArithmetic, "42"},
		{"What is plus minus times?", IntentMultiOperation, NoNumbers},
		{"What is 10-3?", IntentSymbolic, "7"},
		{"What is the weather today?", IntentNone, ""},
		{"", IntentNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := Classify(tc.query)
			assert.Equal(t, tc.wantIntent, got.Intent)
			assert.Equal(t, tc.wantAnswer, got.Answer)
			assert.Equal(t, tc.wantIntent != IntentNone, got.Answered())
		})
	}
}

func TestAnswerPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "trivia beats arithmetic", query: "shakespeare 2+2", want: shakespeareBio},
		{name: "first trivia keyword wins", query: "name of shakespeare", want: shakespeareBio},
		{name: "largest beats prime", query: "largest prime: 4, 9, 11", want: "11"},
		{name: "square and cube beats prime", query: "prime square cube 64 7", want: "64"},
		{name: "prime beats power", query: "prime power 2 3", want: "2, 3"},
		{name: "power beats arithmetic", query: "3 plus power 2", want: "9"},
		{name: "multi operation beats two operand", query: "1 + 2 * 3", want: "7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Answer(tc.query))
		})
	}
}

func TestAnswerIsDeterministic(t *testing.T) {
	const q = "What is 2 plus 3 multiplied by 4?"
	first := Answer(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Answer(q))
	}
}

func TestAnswerSymbolic(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"compute 3+4 now", "7"},
		{"10 / 0", CannotDivide},
		{"9-12", "-3"},
	}

	for _, tc := range tests {
		in := newInput(tc.query)
		assert.True(t, symbolicExpr.MatchString(in.raw))
		assert.Equal(t, tc.want, answerSymbolic(in), tc.query)
	}
}

func TestClassifyHugeFractionIsFinite(t *testing.T) {
	got := Classify("What is " + strings.Repeat("9", 400) + " divided by 2?")
	assert.Equal(t, IntentArithmetic, got.Intent)
	assert.NotEqual(t, "Infinity", got.Answer)
	assert.True(t, strings.HasSuffix(got.Answer, "e+399"), got.Answer)
}

func TestClassifyLargePrimesIsFast(t *testing.T) {
	q := "Which of the following numbers are primes: " + strings.Repeat("18446744073709551557, ", 500)

	start := time.Now()
	got := Classify(q)
	elapsed := time.Since(start)

	assert.Equal(t, IntentPrime, got.Intent)
	assert.True(t, strings.HasPrefix(got.Answer, "18446744073709551557, 18446744073709551557"))
	assert.Less(t, elapsed, 2*time.Second)
}
