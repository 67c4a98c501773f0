package rational_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gameticharles/rational"
)

func evaluate(input string) (rational.Fraction, error) {
	result, rest, err := evalTokens(strings.Fields(input))
	if err != nil {
		return rational.Fraction{}, err
	}
	if len(rest) != 0 {
		return rational.Fraction{}, fmt.Errorf("trailing tokens %v", rest)
	}
	return result, nil
}

// evalTokens consumes one complete expression from the front of the
// token list: either an operator followed by its two operand
// expressions, or a single literal.
func evalTokens(tokens []string) (rational.Fraction, []string, error) {
	if len(tokens) == 0 {
		return rational.Fraction{}, nil, fmt.Errorf("unexpected end of expression")
	}
	token, rest := tokens[0], tokens[1:]
	switch token {
	case "+", "-", "*", "/":
		left, rest, err := evalTokens(rest)
		if err != nil {
			return rational.Fraction{}, nil, err
		}
		right, rest, err := evalTokens(rest)
		if err != nil {
			return rational.Fraction{}, nil, err
		}
		switch token {
		case "+":
			return left.Add(right), rest, nil
		case "-":
			return left.Sub(right), rest, nil
		case "*":
			return left.Mul(right), rest, nil
		default:
			return left.Quo(right), rest, nil
		}
	}
	f, err := rational.Parse(token)
	if err != nil {
		return rational.Fraction{}, nil, fmt.Errorf("processing token %q: %w", token, err)
	}
	return f, rest, nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix (or Polish) notation. Because the
// calculator works on exact fractions, no precision is lost no matter
// how the expression is arranged: one half times one third plus one
// sixth is exactly one quarter.
func Example_prefixCalculator() {
	f, err := evaluate("* 1/2 + 1/3 1/6")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output:
	// 1/4
}

func approximate(terms int64) rational.Decimal {
	pi := rational.Decimal{}
	sign := rational.NewDecimalFromInt64(1)
	denominator := rational.NewDecimalFromInt64(1)
	increment := rational.NewDecimalFromInt64(2)
	multiplier := rational.NewDecimalFromInt64(4)

	for i := int64(0); i < terms; i++ {
		term := multiplier.MustQuo(denominator).Mul(sign)
		pi = pi.Add(term)
		denominator = denominator.Add(increment)
		sign = sign.Neg()
	}
	return pi
}

// This example calculates an approximate value of pi using the Leibniz
// formula, the infinite series 1 - 1/3 + 1/5 - 1/7 + ... = pi/4.
// Each term is rounded at the default digit budget; the accumulated
// rounding error stays far below the truncation error of the series.
func Example_piApproximation() {
	pi := approximate(50000)
	fmt.Println(pi.StringFixed(10))
	// Output:
	// 3.1415726536
}

func ExampleNew() {
	fmt.Println(rational.New(2, 4))
	fmt.Println(rational.New(-3, 9))
	fmt.Println(rational.New(7, 1))
	fmt.Println(rational.New(1, 0))
	fmt.Println(rational.New(0, 0))
	// Output:
	// 1/2
	// -1/3
	// 7
	// Infinity
	// NaN
}

func ExampleParse() {
	fmt.Println(rational.Parse("2 3/4"))
	fmt.Println(rational.Parse("0.25"))
	fmt.Println(rational.Parse("1.5e3"))
	fmt.Println(rational.Parse("-Infinity"))
	// Output:
	// 11/4 <nil>
	// 1/4 <nil>
	// 1500 <nil>
	// -Infinity <nil>
}

func ExampleFraction_Add() {
	f := rational.MustParse("1/2")
	g := rational.MustParse("1/3")
	fmt.Println(f.Add(g))
	fmt.Println(rational.Inf(1).Add(rational.Inf(-1)))
	// Output:
	// 5/6
	// NaN
}

func ExampleFraction_Quo() {
	f := rational.MustParse("3/4")
	fmt.Println(f.Quo(rational.MustParse("1/2")))
	fmt.Println(f.Quo(rational.Fraction{}))
	fmt.Println(f.Neg().Quo(rational.Fraction{}))
	// Output:
	// 3/2
	// Infinity
	// -Infinity
}

func ExampleFraction_Cmp() {
	fmt.Println(rational.MustParse("1/2").Cmp(rational.MustParse("1/3")))
	fmt.Println(rational.NaN().Cmp(rational.MustParse("1/3")))
	fmt.Println(rational.MustParse("1/3").Cmp(rational.NaN()))
	// Output:
	// 1
	// 0
	// 0
}

func ExampleFraction_Mod() {
	fmt.Println(rational.NewFromInt64(-7).Mod(rational.NewFromInt64(3)))
	fmt.Println(rational.MustParse("7/2").Mod(rational.MustParse("1/3")))
	// Output:
	// 2
	// 1/6
}

func ExampleNewDecimal() {
	d, err := rational.NewDecimal(rational.New(1, 64))
	fmt.Println(d, err)
	_, err = rational.NewDecimal(rational.New(1, 3))
	fmt.Println(err)
	// Output:
	// 0.015625 <nil>
	// decimal from 1/3: no finite decimal representation
}

func ExampleContext_Sqrt() {
	ctx := rational.MustContext(10)
	d, err := ctx.Sqrt(rational.NewDecimalFromInt64(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 1.4142135624
}

func ExampleContext_Pow() {
	ctx := rational.MustContext(10)
	fmt.Println(ctx.Pow(rational.NewDecimalFromInt64(8), rational.NewDecimalFromInt64(-2)))
	fmt.Println(ctx.Pow(rational.NewDecimalFromInt64(2), rational.MustParseDecimal("0.5")))
	// Output:
	// 0.015625 <nil>
	// 1.4142135624 <nil>
}

func ExampleDecimal_StringFixed() {
	d := rational.MustParseDecimal("2.5")
	fmt.Println(d.StringFixed(3))
	fmt.Println(d.StringFixed(0))
	// Output:
	// 2.500
	// 3
}

func ExampleDecimal_StringExponential() {
	d := rational.MustParseDecimal("-1234")
	fmt.Println(d.StringExponential(2))
	// Output:
	// -1.23e+3
}

func ExampleFraction_MarshalJSON() {
	f := rational.MustParse("11/4")
	b, err := json.Marshal(f)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output:
	// "11/4"
}
