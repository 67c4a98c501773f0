package rational

import (
	"fmt"
	"math/big"
	"strconv"
)

// Decimal is a representation of a number with finite decimal
// precision: a fraction whose reduced denominator has no prime
// factors other than 2 and 5, so its value terminates in base 10.
// The zero value is the numeric value 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Addition, subtraction, and multiplication of decimals are exact.
// Division and the elementary functions round their result at the
// digit budget of a [Context], since an exact result is generally not
// representable. Values like 1/3 cannot be constructed directly; they
// arise only as approximations that have been rounded to a budget
// before being wrapped.
type Decimal struct {
	val Fraction
}

// decimal wraps a fraction that is already known to terminate.
func decimal(f Fraction) Decimal {
	return Decimal{val: f}
}

// NewDecimal returns a decimal equal to the fraction f.
// NewDecimal returns an error wrapping [ErrNonTerminating] if f is a
// special value or if its reduced denominator has a prime factor
// other than 2 or 5.
func NewDecimal(f Fraction) (Decimal, error) {
	if !terminates(f) {
		return Decimal{}, fmt.Errorf("decimal from %v: %w", f, ErrNonTerminating)
	}
	return Decimal{val: f}, nil
}

// terminates reports whether f is finite with a reduced denominator
// whose only prime factors are 2 and 5, so that f has a terminating
// decimal form.
func terminates(f Fraction) bool {
	if f.form != finite {
		return false
	}
	t := new(big.Int).Set(f.denom())
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
	}
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(t, intFiv, r)
		if r.Sign() != 0 {
			break
		}
		t.Set(q)
	}
	return t.Cmp(intOne) == 0
}

// MustNewDecimal is like [NewDecimal] but panics if the fraction has
// no terminating decimal form. It simplifies safe initialization of
// global variables holding decimals.
func MustNewDecimal(f Fraction) Decimal {
	d, err := NewDecimal(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewDecimal(%v) failed: %v", f, err))
	}
	return d
}

// NewDecimalFromInt64 returns a decimal equal to n.
func NewDecimalFromInt64(n int64) Decimal {
	return decimal(NewFromInt64(n))
}

// NewDecimalFromBigInt returns a decimal equal to n.
// The argument is copied and may be reused by the caller.
func NewDecimalFromBigInt(n *big.Int) Decimal {
	return decimal(newFraction(new(big.Int).Set(n), big.NewInt(1)))
}

// NewDecimalFromFloat64 returns a decimal equal to x.
// The float is converted through its shortest decimal string form, so
// no binary-float artifacts leak into the value. NaN and infinities
// return an error wrapping [ErrNonTerminating].
func NewDecimalFromFloat64(x float64) (Decimal, error) {
	return NewDecimal(NewFromFloat64(x))
}

// ParseDecimal converts a string to a decimal, accepting the full
// literal grammar of [Parse]. Literals whose value does not terminate
// in base 10, such as "1/3", return an error wrapping
// [ErrNonTerminating].
func ParseDecimal(s string) (Decimal, error) {
	f, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return NewDecimal(f)
}

// MustParseDecimal is like [ParseDecimal] but panics if the string
// cannot be parsed or does not terminate.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// Fraction returns the exact fraction backing d.
func (d Decimal) Fraction() Fraction {
	return d.val
}

// Scale returns the number of digits to the right of the decimal
// point: the smallest s such that d * 10^s is an integer. It is
// computed by repeated multiplication by ten, which terminates because
// the denominator has only 2 and 5 as prime factors.
func (d Decimal) Scale() int {
	r := d.val
	s := 0
	for !r.IsInt() {
		r = newFraction(new(big.Int).Mul(&r.num, intTen), new(big.Int).Set(r.denom()))
		s++
	}
	return s
}

// Prec returns the total number of significant digits of d:
// the digit count of d * 10^Scale(). Prec reports 1 for zero.
func (d Decimal) Prec() int {
	c, _ := d.coef()
	return prec(c)
}

// coef returns |d| * 10^scale as an integer, together with the
// minimal scale.
func (d Decimal) coef() (*big.Int, int) {
	s := d.Scale()
	c := mulPow10(new(big.Int), &d.val.num, s)
	c.Quo(c, d.val.denom())
	return c.Abs(c), s
}

// Sign returns -1 if d < 0, 0 if d == 0, and +1 if d > 0.
func (d Decimal) Sign() int {
	return d.val.Sign()
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.val.IsInt()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return decimal(d.val.Neg())
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return decimal(d.val.Abs())
}

// Add returns the exact sum of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	return decimal(d.val.Add(e.val))
}

// Sub returns the exact difference of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return decimal(d.val.Sub(e.val))
}

// Mul returns the exact product of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	return decimal(d.val.Mul(e.val))
}

// Quo returns the quotient of d and e rounded at the digit budget of
// the default context. Also see [Context.Quo].
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return defaultContext().Quo(d, e)
}

// Cmp compares d and e and returns -1, 0, or +1.
func (d Decimal) Cmp(e Decimal) int {
	return d.val.Cmp(e.val)
}

// Equal returns true if d and e represent the same value.
func (d Decimal) Equal(e Decimal) bool {
	return d.val.Equal(e.val)
}

// Round returns d rounded half away from zero at the given number of
// digits after the decimal point. A negative scale rounds to the left
// of the decimal point, so Round(-2) of 1234 is 1200.
func (d Decimal) Round(scale int) Decimal {
	return decimal(roundFracAt(d.val, scale, quoHalfAway))
}

// Trunc returns d rounded towards zero at the given scale.
func (d Decimal) Trunc(scale int) Decimal {
	return decimal(roundFracAt(d.val, scale, quoTrunc))
}

// Floor returns d rounded towards negative infinity at the given
// scale.
func (d Decimal) Floor(scale int) Decimal {
	return decimal(roundFracAt(d.val, scale, quoFloor))
}

// Ceil returns d rounded towards positive infinity at the given scale.
func (d Decimal) Ceil(scale int) Decimal {
	return decimal(roundFracAt(d.val, scale, quoCeil))
}

// roundFracAt rounds a finite fraction at the given decimal scale
// using the supplied integer rounding mode, returning the exact
// rounded fraction. The shift, the integer rounding, and the shift
// back are the primitive every decimal rounding operation builds on.
func roundFracAt(f Fraction, scale int, round func(z, x, y *big.Int) *big.Int) Fraction {
	num := new(big.Int)
	den := new(big.Int)
	if scale >= 0 {
		mulPow10(num, &f.num, scale)
		den.Set(f.denom())
	} else {
		num.Set(&f.num)
		mulPow10(den, f.denom(), -scale)
	}
	round(num, num, den)
	if scale >= 0 {
		den.Set(pow10(scale))
	} else {
		mulPow10(num, num, -scale)
		den.Set(intOne)
	}
	return newFraction(num, den)
}

// String implements the [fmt.Stringer] interface and returns the
// shortest fixed-point decimal form of d, such as "0.015625" or
// "-12". The returned string parses back to the same value and is
// also the JSON encoding of d.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	c, s := d.coef()
	return formatCoef(d.Sign() < 0, c, s)
}

// StringFixed returns d in fixed-point notation with exactly scale
// digits after the decimal point, rounding half away from zero and
// zero-padding as needed. A negative scale is treated as zero.
//
//	MustParseDecimal("2.5").StringFixed(3) // "2.500"
//	MustParseDecimal("2.5").StringFixed(0) // "3"
func (d Decimal) StringFixed(scale int) string {
	if scale < 0 {
		scale = 0
	}
	r := d.Round(scale)
	c, _ := r.coef()
	mulPow10(c, c, scale-r.Scale())
	return formatCoef(r.Sign() < 0, c, scale)
}

// StringExponential returns d in scientific notation with exactly
// fracDigits digits after the decimal point, such as "1.41e+0" or
// "-2.50e-3". A negative fracDigits is treated as zero.
func (d Decimal) StringExponential(fracDigits int) string {
	if fracDigits < 0 {
		fracDigits = 0
	}
	if d.IsZero() {
		return formatCoef(false, new(big.Int), fracDigits) + "e+0"
	}
	c, e10 := d.sciCoef(fracDigits)
	s := formatCoef(d.Sign() < 0, c, fracDigits)
	if e10 < 0 {
		return s + "e-" + strconv.Itoa(-e10)
	}
	return s + "e+" + strconv.Itoa(e10)
}

// sciCoef returns |d| rounded to 1+fracDigits significant digits as
// an integer coefficient, together with the decimal exponent.
func (d Decimal) sciCoef(fracDigits int) (*big.Int, int) {
	c, s := d.coef()
	e10 := prec(c) - s - 1
	f := roundFracAt(d.val.Abs(), fracDigits-e10, quoHalfAway)
	c, _ = decimal(f).coef()
	// For large values the rounding scale is negative and the
	// coefficient carries trailing zeros, so the shift divides exactly.
	if shift := fracDigits - e10 - decimal(f).Scale(); shift >= 0 {
		mulPow10(c, c, shift)
	} else {
		c.Quo(c, pow10(-shift))
	}
	// Rounding may have carried into a new leading digit, e.g. 9.99
	// becoming 10.0.
	if prec(c) > fracDigits+1 {
		c.Quo(c, intTen)
		e10++
	}
	return c, e10
}

// StringPrecision returns d rounded to the given number of significant
// digits, in fixed-point notation when the decimal exponent is between
// -7 and digits, and in scientific notation otherwise.
// StringPrecision returns an error wrapping [ErrDigitsRange] if digits
// is less than 1.
func (d Decimal) StringPrecision(digits int) (string, error) {
	if digits < 1 {
		return "", fmt.Errorf("StringPrecision(%v): %w", digits, ErrDigitsRange)
	}
	if d.IsZero() {
		return formatCoef(false, new(big.Int), digits-1), nil
	}
	c, s := d.coef()
	e10 := prec(c) - s - 1
	if e10 < -6 || e10 >= digits {
		return d.StringExponential(digits - 1), nil
	}
	scale := digits - 1 - e10
	r := d.Round(scale)
	c, _ = r.coef()
	mulPow10(c, c, scale-r.Scale())
	return formatCoef(r.Sign() < 0, c, scale), nil
}

// formatCoef renders a non-negative integer coefficient as a decimal
// string with the point placed scale digits from the right.
func formatCoef(neg bool, c *big.Int, scale int) string {
	digits := c.String()
	var buf []byte
	switch {
	case scale == 0:
		buf = make([]byte, 0, len(digits)+1)
		if neg {
			buf = append(buf, '-')
		}
		buf = append(buf, digits...)
	case len(digits) > scale:
		buf = make([]byte, 0, len(digits)+2)
		if neg {
			buf = append(buf, '-')
		}
		buf = append(buf, digits[:len(digits)-scale]...)
		buf = append(buf, '.')
		buf = append(buf, digits[len(digits)-scale:]...)
	default:
		buf = make([]byte, 0, scale+3)
		if neg {
			buf = append(buf, '-')
		}
		buf = append(buf, '0', '.')
		for i := len(digits); i < scale; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	}
	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v, %f: 1.25
//	%q:        "1.25"
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'f', 'F':
		state.Write([]byte(d.String()))
	case 'q', 'Q':
		state.Write([]byte("\"" + d.String() + "\""))
	default:
		fmt.Fprintf(state, "%%!%c(rational.Decimal=%s)", verb, d.String())
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as its [Decimal.String] form, quoted.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both string-encoded and bare numeric JSON values are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unmarshaling %s: %w", data, ErrInvalidFraction)
		}
	}
	var err error
	*d, err = ParseDecimal(s)
	return err
}
