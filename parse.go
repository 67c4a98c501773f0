package rational

import (
	"fmt"
	"math/big"
)

// maxParseExp bounds the scientific-notation exponent so that a
// malicious literal cannot demand an astronomically large power of
// ten during normalization.
const maxParseExp = 1_000_000

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	11/4
//	2 3/4
//	-1234
//	+0.000001234
//	1.83e5
//	.22E-9
//	NaN
//	-Infinity
//
// The formal EBNF grammar for the supported format is as follows:
//
//	special        ::= 'NaN' | 'Infinity' | '+Infinity' | '-Infinity'
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	body           ::= digits ' ' digits '/' digits
//	               | digits '/' digits
//	               | digits '.' digits | '.' digits
//	               | digits
//	numeric-string ::= special | [sign] body [('e' | 'E') [sign] digits]
//
// The matched groups are normalized into an integer numerator over a
// power-of-ten (or literal) denominator and handed to the normalizing
// constructor, so "2/4" parses to 1/2 and "1/0" parses to Infinity.
//
// Parse returns an error wrapping [ErrInvalidFraction] if the string
// does not match the grammar, and an error wrapping [ErrExponentRange]
// if the exponent magnitude exceeds 1,000,000.
func Parse(s string) (Fraction, error) {
	// Special values
	switch s {
	case "NaN":
		return Fraction{form: nan}, nil
	case "Infinity", "+Infinity":
		return Fraction{form: posInf}, nil
	case "-Infinity":
		return Fraction{form: negInf}, nil
	}

	var (
		pos    int
		width  int
		neg    bool
		whole  *big.Int
		num    *big.Int
		den    *big.Int
		scale  int
		hasnum bool
		eneg   bool
		exp    int
		hasexp bool
	)

	width = len(s)
	num = new(big.Int)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// First digit group
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hasnum = true
		fsa(num, s[pos]-'0')
		pos++
	}

	// Body
	if pos < width {
		switch s[pos] {
		case '.':
			// Decimal literal: the integer part is optional, the
			// fractional part is not.
			pos++
			hasnum = false
			for pos < width && s[pos] >= '0' && s[pos] <= '9' {
				hasnum = true
				fsa(num, s[pos]-'0')
				scale++
				pos++
			}
			if !hasnum {
				return Fraction{}, fmt.Errorf("parsing %q: no digits after decimal point: %w", s, ErrInvalidFraction)
			}
			den = new(big.Int).Set(pow10(scale))
		case ' ':
			// Mixed number: the group scanned so far is the whole part.
			if !hasnum {
				return Fraction{}, fmt.Errorf("parsing %q: no whole part: %w", s, ErrInvalidFraction)
			}
			whole = num
			num = new(big.Int)
			pos++
			hasnum = false
			for pos < width && s[pos] >= '0' && s[pos] <= '9' {
				hasnum = true
				fsa(num, s[pos]-'0')
				pos++
			}
			if !hasnum || pos == width || s[pos] != '/' {
				return Fraction{}, fmt.Errorf("parsing %q: malformed mixed number: %w", s, ErrInvalidFraction)
			}
			fallthrough
		case '/':
			pos++
			den = new(big.Int)
			hasden := false
			for pos < width && s[pos] >= '0' && s[pos] <= '9' {
				hasden = true
				fsa(den, s[pos]-'0')
				pos++
			}
			if !hasnum || !hasden {
				return Fraction{}, fmt.Errorf("parsing %q: malformed fraction: %w", s, ErrInvalidFraction)
			}
		}
	}
	if den == nil {
		den = new(big.Int).Set(intOne)
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Digits
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxParseExp {
				return Fraction{}, fmt.Errorf("parsing %q: %w", s, ErrExponentRange)
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return Fraction{}, fmt.Errorf("parsing %q: no exponent digits: %w", s, ErrInvalidFraction)
		}
	}

	if pos != width {
		return Fraction{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrInvalidFraction)
	}
	if !hasnum {
		return Fraction{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidFraction)
	}

	// Mixed numbers fold the whole part into the numerator before the
	// sign is applied, so "-2 3/4" means -(2 + 3/4).
	if whole != nil {
		whole.Mul(whole, den)
		num.Add(num, whole)
	}

	// Exponent
	if exp > 0 {
		if eneg {
			mulPow10(den, den, exp)
		} else {
			mulPow10(num, num, exp)
		}
	}

	// Sign
	if neg {
		num.Neg(num)
	}

	return newFraction(num, den), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}

// ParseOrNaN is like [Parse] but returns NaN if the string cannot be
// parsed. It is the opt-in form for callers that prefer the closed
// arithmetic of special values over error handling.
func ParseOrNaN(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		return Fraction{form: nan}
	}
	return f
}
