// Package query answers free-text questions by matching a fixed, ordered
// list of intents: trivia lookups, numeric predicates, exponentiation and
// arithmetic. Every entry point is pure and safe for concurrent use.
package query

import (
	"errors"
	"math/big"
	"regexp"
	"strings"
)

// Answers returned in place of a numeric result.
const (
	NoNumbers        = "I couldn't find any numbers in your question."
	CannotDivide     = "Cannot divide by zero"
	CannotEvaluate   = "Cannot evaluate"
	NoPrimes         = "None of the numbers are prime."
	NoSixthPowers    = "None of the numbers are both a square and a cube."
	AnagramConfusion = "I couldn't understand the anagram question."
)

// Intent names the rule that produced an answer.
type Intent string

const (
	IntentNone           Intent = "none"
	IntentShakespeare    Intent = "trivia.shakespeare"
	IntentAndrewID       Intent = "trivia.andrewid"
	IntentName           Intent = "trivia.name"
	IntentLargest        Intent = "largest"
	IntentSixthPower     Intent = "sixth_power"
	IntentPrime          Intent = "prime"
	IntentPower          Intent = "power"
	IntentAnagram        Intent = "anagram"
	IntentMultiOperation Intent = "multi_operation"
	IntentArithmetic     Intent = "arithmetic"
	IntentSymbolic       Intent = "symbolic"
)

// Result is the outcome of classifying a query.
type Result struct {
	Intent Intent
	Answer string
}

// Answered reports whether some intent matched.
func (r Result) Answered() bool { return r.Intent != IntentNone }

// input is a query with the derived views the predicates share.
type input struct {
	raw     string
	lower   string
	numbers []*big.Int
	tokens  []Token
}

func newInput(q string) *input {
	return &input{
		raw:     q,
		lower:   strings.ToLower(q),
		numbers: ExtractNumbers(q),
		tokens:  Tokenize(q),
	}
}

func (in *input) contains(words ...string) bool {
	for _, w := range words {
		if strings.Contains(in.lower, w) {
			return true
		}
	}
	return false
}

// operators returns the operator tokens in order.
func (in *input) operators() []Operator {
	var ops []Operator
	for _, t := range in.tokens {
		if !t.IsNumber() {
			ops = append(ops, t.Op)
		}
	}
	return ops
}

type intent struct {
	name   Intent
	match  func(*input) bool
	handle func(*input) string
}

// intents is evaluated top to bottom and the first match wins. Reordering
// it changes the answer to queries that satisfy more than one entry.
var intents = []intent{
	trivia(IntentShakespeare, "shakespeare", shakespeareBio),
	trivia(IntentAndrewID, "andrewid", "zru"),
	trivia(IntentName, "name", "Jeremy"),
	{
		name:   IntentLargest,
		match:  func(in *input) bool { return in.contains("largest", "biggest") },
		handle: answerLargest,
	},
	{
		name:   IntentSixthPower,
		match:  func(in *input) bool { return in.contains("square") && in.contains("cube") },
		handle: answerSixthPowers,
	},
	{
		name:   IntentPrime,
		match:  func(in *input) bool { return in.contains("prime") },
		handle: answerPrimes,
	},
	{
		name:   IntentPower,
		match:  func(in *input) bool { return in.contains("power") && len(in.numbers) >= 2 },
		handle: answerPower,
	},
	{
		name:   IntentAnagram,
		match:  func(in *input) bool { return in.contains("anagram") },
		handle: answerAnagram,
	},
	{
		name:   IntentMultiOperation,
		match:  func(in *input) bool { return len(in.operators()) >= 2 },
		handle: answerExpression,
	},
	{
		name:   IntentArithmetic,
		match:  func(in *input) bool { return len(in.operators()) == 1 && len(in.numbers) >= 2 },
		handle: answerTwoOperands,
	},
	// Reached by hyphen-joined operands such as 10-3, which Tokenize
	// keeps as a single number.
	{
		name:   IntentSymbolic,
		match:  func(in *input) bool { return symbolicExpr.MatchString(in.raw) },
		handle: answerSymbolic,
	},
}

// Answer returns the answer to q, or "" when no intent recognizes it.
func Answer(q string) string {
	return Classify(q).Answer
}

// Classify finds the first intent matching q and returns its answer.
func Classify(q string) Result {
	in := newInput(q)
	for _, it := range intents {
		if it.match(in) {
			return Result{Intent: it.name, Answer: it.handle(in)}
		}
	}
	return Result{Intent: IntentNone}
}

func answerLargest(in *input) string {
	if len(in.numbers) == 0 {
		return NoNumbers
	}
	return largest(in.numbers).String()
}

func answerSixthPowers(in *input) string {
	return answerMatching(in, isPerfectSixthPowerBig, NoSixthPowers)
}

func answerPrimes(in *input) string {
	return answerMatching(in, isPrimeBig, NoPrimes)
}

// answerMatching lists every extracted number satisfying pred.
func answerMatching(in *input, pred func(*big.Int) bool, none string) string {
	if len(in.numbers) == 0 {
		return NoNumbers
	}

	var hits []string
	for _, n := range in.numbers {
		if pred(n) {
			hits = append(hits, n.String())
		}
	}
	if len(hits) == 0 {
		return none
	}
	return strings.Join(hits, ", ")
}

func answerPower(in *input) string {
	return Power(in.numbers[0], in.numbers[1])
}

func answerExpression(in *input) string {
	if len(in.numbers) == 0 {
		return NoNumbers
	}
	return evaluationAnswer(EvaluateTokens(in.tokens))
}

// answerTwoOperands applies the single operator to the first two numbers.
func answerTwoOperands(in *input) string {
	op := in.operators()[0]
	return evaluationAnswer(EvaluateTokens([]Token{
		{Number: in.numbers[0]},
		{Op: op},
		{Number: in.numbers[1]},
	}))
}

var symbolicExpr = regexp.MustCompile(`(\d+)\s*([-+*/])\s*(\d+)`)

func answerSymbolic(in *input) string {
	m := symbolicExpr.FindStringSubmatch(in.raw)
	return evaluationAnswer(Evaluate(m[1] + " " + m[2] + " " + m[3]))
}

func evaluationAnswer(r *big.Rat, err error) string {
	switch {
	case errors.Is(err, ErrDivideByZero):
		return CannotDivide
	case err != nil:
		return CannotEvaluate
	}
	return FormatRat(r)
}
