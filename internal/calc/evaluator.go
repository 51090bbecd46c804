// Package calc evaluates arithmetic expressions over radix numbers
// written in prefix (Polish) notation, such as "* + 1.5 FF_16 2".
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/govalues/radix"
)

var (
	ErrNoTokens          = errors.New("no tokens")
	ErrNotEnoughOperands = errors.New("not enough operands")
	ErrExtraOperand      = errors.New("too many operands")
)

// Operators lists the supported operators with their descriptions.
var Operators = map[string]string{
	"+": "addition",
	"-": "subtraction",
	"*": "multiplication",
	"/": "division truncated at the fraction bound",
	"%": "remainder of integer division",
	"^": "integer power",
}

// Evaluator evaluates expressions in a working radix.
// Operands are parsed in the working radix unless they carry a radix suffix,
// as in "FF_16" or "101_2", and results are rendered in the working radix.
// Every number is parsed with the working fraction bound.
type Evaluator struct {
	radix      int
	maxFracLen int
	log        zerolog.Logger
}

// NewEvaluator returns an evaluator for the radix and fraction bound of cfg.
func NewEvaluator(cfg Config, log zerolog.Logger) (*Evaluator, error) {
	e := &Evaluator{log: log}
	if err := e.SetRadix(cfg.Radix); err != nil {
		return nil, err
	}
	if err := e.SetMaxFracLen(cfg.MaxFracLen); err != nil {
		return nil, err
	}
	return e, nil
}

// Radix returns the working radix.
func (e *Evaluator) Radix() int {
	return e.radix
}

// MaxFracLen returns the working fraction bound.
func (e *Evaluator) MaxFracLen() int {
	return e.maxFracLen
}

// SetRadix changes the working radix.
func (e *Evaluator) SetRadix(r int) error {
	if r < radix.MinRadix || radix.MaxRadix < r {
		return fmt.Errorf("setting radix %v: %w", r, radix.ErrRadixRange)
	}
	e.radix = r
	e.log.Debug().Int("radix", r).Msg("working radix changed")
	return nil
}

// SetMaxFracLen changes the working fraction bound.
func (e *Evaluator) SetMaxFracLen(n int) error {
	if n < 0 || radix.MaxFracLenLimit < n {
		return fmt.Errorf("setting fraction bound %v: %w", n, radix.ErrFracLenRange)
	}
	e.maxFracLen = n
	e.log.Debug().Int("max_frac_len", n).Msg("working fraction bound changed")
	return nil
}

// Evaluate computes the value of an expression in prefix notation.
func (e *Evaluator) Evaluate(input string) (radix.Number, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return radix.Number{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return radix.Number{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return radix.Number{}, fmt.Errorf("post-processed stack contains %v: %w", stack, ErrExtraOperand)
	}
	return stack[0].ToRadix(e.radix)
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

func (e *Evaluator) processTokens(tokens []string) ([]radix.Number, error) {
	stack := make([]radix.Number, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if _, ok := Operators[token]; ok {
			stack, err = e.processOperator(stack, token)
		} else {
			stack, err = e.processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
		e.log.Debug().Str("token", token).Int("depth", len(stack)).Stringer("top", stack[len(stack)-1]).Msg("token processed")
	}
	return stack, nil
}

func (e *Evaluator) processOperator(stack []radix.Number, token string) ([]radix.Number, error) {
	if len(stack) < 2 {
		return nil, ErrNotEnoughOperands
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result radix.Number
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		result, err = left.Rem(right)
	case "^":
		result, err = pow(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func pow(d, exp radix.Number) (radix.Number, error) {
	if !exp.IsInt() {
		return radix.Number{}, fmt.Errorf("fractional exponent: %w", radix.ErrInvalidOperation)
	}
	n, err := exp.Int64()
	if err != nil {
		return radix.Number{}, err
	}
	return d.Pow(int(n))
}

func (e *Evaluator) processOperand(stack []radix.Number, token string) ([]radix.Number, error) {
	s, r := token, e.radix
	if k := strings.LastIndexByte(token, '_'); k >= 0 {
		v, err := strconv.Atoi(token[k+1:])
		if err != nil {
			return nil, fmt.Errorf("radix suffix %q: %w", token[k+1:], radix.ErrRadixRange)
		}
		s, r = token[:k], v
	}
	d, err := radix.ParseExact(s, r, e.maxFracLen)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
