package query

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrDivideByZero is returned when a division has a zero divisor.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrMalformed is returned for token streams that are not of the
	// form number (operator number)+.
	ErrMalformed = errors.New("malformed expression")
)

// Operator is one of the four arithmetic operators.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

func (o Operator) multiplicative() bool { return o == Multiply || o == Divide }

// operatorWords maps lower-case words to the operator they name.
var operatorWords = map[string]Operator{
	"plus":       Add,
	"added":      Add,
	"and":        Add,
	"minus":      Subtract,
	"subtracted": Subtract,
	"multiplied": Multiply,
	"times":      Multiply,
	"x":          Multiply,
	"divided":    Divide,
	"over":       Divide,
}

// Token is either a number or an operator.
type Token struct {
	Number *big.Int
	Op     Operator
}

// IsNumber reports whether the token carries a number.
func (t Token) IsNumber() bool { return t.Number != nil }

func (t Token) String() string {
	if t.IsNumber() {
		return t.Number.String()
	}
	return string(t.Op)
}

// compactExpr is a word written as symbolic arithmetic, e.g. 2+3*4 or 6x7.
var compactExpr = regexp.MustCompile(`^\d+(?:[-+*/xX]\d+)+$`)

var compactPart = regexp.MustCompile(`\d+|[-+*/xX]`)

// Tokenize splits text on whitespace and turns each word into tokens:
//   - a lone + - * / is that operator
//   - a compact expression such as 2+3*4 expands into its numbers and operators
//   - any other word holding digits yields its first digit run as a number
//   - a word in the operator table yields that operator
//
// Everything else is dropped. Digits joined only by hyphens (2024-01-01)
// read as a single number, not a subtraction.
func Tokenize(text string) []Token {
	var tokens []Token
	for _, word := range strings.Fields(text) {
		tokens = appendWordTokens(tokens, word)
	}
	return tokens
}

func appendWordTokens(tokens []Token, word string) []Token {
	core := strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !isDigit(r) && !isOperatorSymbol(r)
	})

	switch {
	case len(core) == 1 && isOperatorSymbol(rune(core[0])):
		return append(tokens, Token{Op: Operator(core[0])})

	case compactExpr.MatchString(core) && strings.ContainsAny(core, "+*/xX"):
		for _, part := range compactPart.FindAllString(core, -1) {
			tokens = append(tokens, compactToken(part))
		}
		return tokens

	case strings.IndexFunc(core, isDigit) >= 0:
		return append(tokens, Token{Number: firstNumber(core)})
	}

	if op, ok := operatorWords[strings.ToLower(core)]; ok {
		tokens = append(tokens, Token{Op: op})
	}
	return tokens
}

func compactToken(part string) Token {
	switch part {
	case "x", "X":
		return Token{Op: Multiply}
	case "+", "-", "*", "/":
		return Token{Op: Operator(part[0])}
	}
	n, _ := new(big.Int).SetString(part, 10)
	return Token{Number: n}
}

func firstNumber(word string) *big.Int {
	n, _ := new(big.Int).SetString(digitRun.FindString(word), 10)
	return n
}

func isOperatorSymbol(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Evaluate tokenizes text and evaluates it.
func Evaluate(text string) (*big.Rat, error) {
	return EvaluateTokens(Tokenize(text))
}

// EvaluateTokens evaluates an alternating number/operator stream.
// Multiplication and division bind tighter than addition and subtraction;
// operators of equal rank apply left to right.
func EvaluateTokens(tokens []Token) (*big.Rat, error) {
	if err := validate(tokens); err != nil {
		return nil, err
	}

	// First pass folds * and / into their left operand.
	terms := []*big.Rat{new(big.Rat).SetInt(tokens[0].Number)}
	var ops []Operator
	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i].Op
		rhs := new(big.Rat).SetInt(tokens[i+1].Number)
		if !op.multiplicative() {
			terms = append(terms, rhs)
			ops = append(ops, op)
			continue
		}

		last := terms[len(terms)-1]
		result, err := apply(last, op, rhs)
		if err != nil {
			return nil, err
		}
		terms[len(terms)-1] = result
	}

	// Second pass: only + and - remain.
	total := terms[0]
	for i, op := range ops {
		total, _ = apply(total, op, terms[i+1])
	}
	return total, nil
}

func validate(tokens []Token) error {
	if len(tokens) < 3 || len(tokens)%2 == 0 {
		return ErrMalformed
	}
	for i, t := range tokens {
		if t.IsNumber() != (i%2 == 0) {
			return ErrMalformed
		}
	}
	return nil
}

func apply(a *big.Rat, op Operator, b *big.Rat) (*big.Rat, error) {
	r := new(big.Rat)
	switch op {
	case Add:
		return r.Add(a, b), nil
	case Subtract:
		return r.Sub(a, b), nil
	case Multiply:
		return r.Mul(a, b), nil
	case Divide:
		if b.Sign() == 0 {
			return nil, ErrDivideByZero
		}
		return r.Quo(a, b), nil
	}
	return nil, ErrMalformed
}

// FormatRat prints integral values exactly and fractional values as the
// shortest decimal that identifies the nearest float64. Fractions beyond
// the float64 range print with 17 significant digits.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	// Outside the float64 range, round the exact value instead.
	if math.IsInf(f, 0) || f == 0 {
		return new(big.Float).SetRat(r).Text('g', 17)
	}
	return formatFloat(f)
}
