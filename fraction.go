package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Fraction is a representation of an exact rational number.
// The zero value is the numeric value 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A finite fraction is a fully reduced numerator/denominator pair:
// the denominator is positive and shares no common factor with the
// numerator. The three special values NaN, Infinity, and -Infinity
// are distinguished by a separate variant tag, so a finite fraction
// with a zero denominator is not constructible.
type Fraction struct {
	form form    // finite or one of the special values
	num  big.Int // numerator, carries the sign
	den  big.Int // denominator, positive when finite
}

// form distinguishes finite fractions from the special values.
type form int8

const (
	finite form = iota
	nan
	posInf
	negInf
)

var (
	// ErrInvalidFraction indicates a malformed literal string.
	ErrInvalidFraction = errors.New("invalid fraction")
	// ErrDigitsRange indicates a digit budget below 1.
	ErrDigitsRange = errors.New("digits out of range")
	// ErrNonTerminating indicates a value with no terminating decimal form.
	ErrNonTerminating = errors.New("no finite decimal representation")
	// ErrNegativeRoot indicates a square root of a negative number.
	ErrNegativeRoot = errors.New("square root of negative number")
	// ErrLogDomain indicates a logarithm of a non-positive number.
	ErrLogDomain = errors.New("logarithm of non-positive number")
	// ErrZeroPower indicates the undefined power 0^0.
	ErrZeroPower = errors.New("zero raised to the power of zero")
	// ErrDivisionByZero indicates a division of a decimal by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrExponentRange indicates an exponent outside the supported range.
	ErrExponentRange = errors.New("exponent out of range")
	// ErrSpecialValue indicates an integer conversion of a special value.
	ErrSpecialValue = errors.New("unsupported operation on special value")
)

// newFraction normalizes the given numerator/denominator pair and
// returns the canonical fraction. It takes ownership of both arguments.
//
// A zero denominator yields NaN for a zero numerator and a signed
// infinity otherwise. A negative denominator flips both signs. The
// pair is reduced by their greatest common divisor.
func newFraction(num, den *big.Int) Fraction {
	// Special values
	if den.Sign() == 0 {
		switch num.Sign() {
		case 0:
			return Fraction{form: nan}
		case 1:
			return Fraction{form: posInf}
		default:
			return Fraction{form: negInf}
		}
	}

	// Zero
	if num.Sign() == 0 {
		return Fraction{}
	}

	// Sign of the denominator
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	// Reduction
	g := getInt()
	defer putInt(g)
	a := getInt()
	defer putInt(a)
	a.Abs(num)
	g.GCD(nil, nil, a, den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Fraction{num: *num, den: *den}
}

// denom returns the denominator of a finite fraction.
// The zero value Fraction{} carries a zero denominator word and is
// treated as 0/1, mirroring the convention of [big.Rat].
func (f *Fraction) denom() *big.Int {
	if f.den.Sign() == 0 {
		return intOne
	}
	return &f.den
}

// New returns a fraction equal to num / den.
//
//	New(2, 4)  // 1/2
//	New(1, 0)  // Infinity
//	New(0, 0)  // NaN
func New(num, den int64) Fraction {
	return newFraction(big.NewInt(num), big.NewInt(den))
}

// NewFromInt64 returns a fraction equal to n.
func NewFromInt64(n int64) Fraction {
	return newFraction(big.NewInt(n), big.NewInt(1))
}

// NewFromBigInt returns a fraction equal to num / den.
// The arguments are copied and may be reused by the caller.
func NewFromBigInt(num, den *big.Int) Fraction {
	return newFraction(new(big.Int).Set(num), new(big.Int).Set(den))
}

// NewFromFloat64 returns a fraction equal to x.
// Finite floats are converted through their shortest decimal string
// form, so NewFromFloat64(0.1) is exactly 1/10, not the nearest binary
// float. Float NaN and infinities map to the corresponding special
// values.
func NewFromFloat64(x float64) Fraction {
	switch {
	case math.IsNaN(x):
		return Fraction{form: nan}
	case math.IsInf(x, 1):
		return Fraction{form: posInf}
	case math.IsInf(x, -1):
		return Fraction{form: negInf}
	}
	f, err := Parse(strconv.FormatFloat(x, 'g', -1, 64))
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64(%v) failed: %v", x, err))
	}
	return f
}

// NaN returns the not-a-number value.
func NaN() Fraction {
	return Fraction{form: nan}
}

// Inf returns Infinity if sign >= 0 and -Infinity if sign < 0.
func Inf(sign int) Fraction {
	if sign >= 0 {
		return Fraction{form: posInf}
	}
	return Fraction{form: negInf}
}

// Num returns a copy of the numerator.
// Special values report their encoded numerator: 0 for NaN, 1 for
// Infinity, and -1 for -Infinity.
func (f Fraction) Num() *big.Int {
	switch f.form {
	case nan:
		return new(big.Int)
	case posInf:
		return big.NewInt(1)
	case negInf:
		return big.NewInt(-1)
	}
	return new(big.Int).Set(&f.num)
}

// Denom returns a copy of the denominator.
// Special values report a zero denominator.
func (f Fraction) Denom() *big.Int {
	if f.form != finite {
		return new(big.Int)
	}
	return new(big.Int).Set(f.denom())
}

// IsNaN returns true if f is the NaN value.
func (f Fraction) IsNaN() bool {
	return f.form == nan
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is Infinity.
// If sign < 0, IsInf reports whether f is -Infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Fraction) IsInf(sign int) bool {
	return (sign >= 0 && f.form == posInf) || (sign <= 0 && f.form == negInf)
}

// IsFinite returns true if f is neither NaN nor an infinity.
func (f Fraction) IsFinite() bool {
	return f.form == finite
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.form == finite && f.num.Sign() == 0
}

// IsInt returns true if f is finite with a denominator of 1.
func (f Fraction) IsInt() bool {
	return f.form == finite && f.denom().Cmp(intOne) == 0
}

// IsPos returns true if f is greater than zero, including Infinity.
func (f Fraction) IsPos() bool {
	return f.Sign() > 0
}

// IsNeg returns true if f is less than zero, including -Infinity.
func (f Fraction) IsNeg() bool {
	return f.Sign() < 0
}

// Sign returns:
//
//	-1 if f < 0, including -Infinity
//	 0 if f == 0 or f is NaN
//	+1 if f > 0, including Infinity
func (f Fraction) Sign() int {
	switch f.form {
	case posInf:
		return 1
	case negInf:
		return -1
	case nan:
		return 0
	}
	return f.num.Sign()
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	switch f.form {
	case nan:
		return f
	case posInf:
		return Fraction{form: negInf}
	case negInf:
		return Fraction{form: posInf}
	}
	return Fraction{
		num: *new(big.Int).Neg(&f.num),
		den: *new(big.Int).Set(f.denom()),
	}
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	if f.IsNeg() {
		return f.Neg()
	}
	return f
}

// Inv returns the reciprocal of f.
// Inv(0) is Infinity, the reciprocal of an infinity is 0, and NaN is
// preserved.
func (f Fraction) Inv() Fraction {
	switch f.form {
	case nan:
		return f
	case posInf, negInf:
		return Fraction{}
	}
	return newFraction(new(big.Int).Set(f.denom()), new(big.Int).Set(&f.num))
}

// Add returns the sum of f and g.
//
// NaN is absorbing. Infinities of matching sign pass through
// unchanged; Infinity + -Infinity is NaN.
func (f Fraction) Add(g Fraction) Fraction {
	if f.form == finite && g.form == finite {
		return addFast(f, g)
	}
	return addSlow(f, g)
}

func addFast(f, g Fraction) Fraction {
	// a/b + c/d = (ad + cb) / bd
	num := new(big.Int).Mul(&f.num, g.denom())
	t := getInt()
	defer putInt(t)
	t.Mul(&g.num, f.denom())
	num.Add(num, t)
	den := new(big.Int).Mul(f.denom(), g.denom())
	return newFraction(num, den)
}

func addSlow(f, g Fraction) Fraction {
	switch {
	case f.form == nan || g.form == nan:
		return Fraction{form: nan}
	case f.form == finite:
		return g
	case g.form == finite:
		return f
	case f.form == g.form:
		return f
	}
	// Infinity + -Infinity
	return Fraction{form: nan}
}

// Sub returns the difference of f and g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns the product of f and g.
//
// NaN is absorbing and 0 * Infinity is NaN; any other product with an
// infinity is an infinity carrying the sign of the operand product.
func (f Fraction) Mul(g Fraction) Fraction {
	if f.form == finite && g.form == finite {
		return mulFast(f, g)
	}
	return mulSlow(f, g)
}

func mulFast(f, g Fraction) Fraction {
	// a/b * c/d = ac / bd
	num := new(big.Int).Mul(&f.num, &g.num)
	den := new(big.Int).Mul(f.denom(), g.denom())
	return newFraction(num, den)
}

func mulSlow(f, g Fraction) Fraction {
	if f.form == nan || g.form == nan {
		return Fraction{form: nan}
	}
	// At least one operand is infinite.
	if f.Sign()*g.Sign() == 0 {
		return Fraction{form: nan} // 0 * Infinity
	}
	return Inf(f.Sign() * g.Sign())
}

// Quo returns the quotient of f and g.
//
// Division is closed: a non-zero finite value divided by zero is a
// signed infinity, 0/0 and Infinity/Infinity are NaN, and a finite
// value divided by an infinity is 0.
func (f Fraction) Quo(g Fraction) Fraction {
	if f.form == finite && g.form == finite {
		return quoFast(f, g)
	}
	return quoSlow(f, g)
}

func quoFast(f, g Fraction) Fraction {
	// (a/b) / (c/d) = ad / bc
	// A zero divisor surfaces as a zero denominator here, and the
	// normalizing constructor derives NaN or a signed infinity.
	num := new(big.Int).Mul(&f.num, g.denom())
	den := new(big.Int).Mul(f.denom(), &g.num)
	return newFraction(num, den)
}

func quoSlow(f, g Fraction) Fraction {
	switch {
	case f.form == nan || g.form == nan:
		return Fraction{form: nan}
	case f.form == finite:
		// finite / Infinity
		return Fraction{}
	case g.form == finite:
		// Infinity / finite, where a zero divisor counts as positive
		sign := g.num.Sign()
		if sign == 0 {
			sign = 1
		}
		return Inf(f.Sign() * sign)
	}
	// Infinity / Infinity
	return Fraction{form: nan}
}

// Mod returns f - floor(f/g) * g, the floored modulo of f and g.
// The result has the sign of g. Any special operand or a zero divisor
// yields NaN, which is what the defining formula produces.
func (f Fraction) Mod(g Fraction) Fraction {
	if f.form == finite && g.form == finite && g.num.Sign() != 0 {
		// q = floor((a/b) / (c/d)) = floor(ad / cb)
		n1 := new(big.Int).Mul(&f.num, g.denom())
		n2 := new(big.Int).Mul(&g.num, f.denom())
		if n2.Sign() < 0 {
			n1.Neg(n1)
			n2.Neg(n2)
		}
		q := quoFloor(new(big.Int), n1, n2)
		// r = f - q*g
		num := n1.Mul(&f.num, g.denom())
		t := n2.Mul(q, &g.num)
		t.Mul(t, f.denom())
		num.Sub(num, t)
		den := new(big.Int).Mul(f.denom(), g.denom())
		return newFraction(num, den)
	}
	return Fraction{form: nan}
}

// QuoInt returns the quotient of f and g truncated towards zero.
// Special operands propagate through the quotient: an infinity divided
// by a finite value stays infinite, a finite value divided by an
// infinity is 0, and NaN is absorbing.
func (f Fraction) QuoInt(g Fraction) Fraction {
	if f.form == finite && g.form == finite && g.num.Sign() != 0 {
		n1 := new(big.Int).Mul(&f.num, g.denom())
		n2 := new(big.Int).Mul(&g.num, f.denom())
		return Fraction{
			num: *n1.Quo(n1, n2),
			den: *new(big.Int).Set(intOne),
		}
	}
	// The quotient on this path is either special or exactly zero,
	// so no truncation is left to do.
	return f.Quo(g)
}

// PowInt returns f raised to the integer power e.
//
// A zero exponent yields 1 for every fraction. Negative exponents
// invert first, so PowInt(New(0, 1), -1) is Infinity. Infinities
// follow sign parity: PowInt(Inf(-1), 2) is Infinity.
func (f Fraction) PowInt(e int) Fraction {
	if e == 0 {
		return NewFromInt64(1)
	}
	switch f.form {
	case nan:
		return f
	case posInf, negInf:
		if e < 0 {
			return Fraction{}
		}
		if f.form == negInf && e%2 != 0 {
			return Fraction{form: negInf}
		}
		return Fraction{form: posInf}
	}
	p := getInt()
	defer putInt(p)
	if e < 0 {
		p.SetInt64(int64(-e))
	} else {
		p.SetInt64(int64(e))
	}
	num := new(big.Int).Exp(&f.num, p, nil)
	den := new(big.Int).Exp(f.denom(), p, nil)
	if e < 0 {
		num, den = den, num
	}
	// Powers of a reduced pair stay reduced, but the constructor is
	// still needed to fix signs and derive specials for a zero base.
	return newFraction(num, den)
}

// Cmp compares f and g and returns:
//
//	-1 if f < g
//	 0 if f == g or either operand is NaN
//	+1 if f > g
//
// Finite fractions compare by cross-multiplication, never through
// floats. Infinity is greater and -Infinity is less than every finite
// value. A NaN operand compares equal to anything, in both operand
// orders; this deliberately breaks antisymmetry and is relied upon by
// [Fraction.Min] and [Fraction.Max].
func (f Fraction) Cmp(g Fraction) int {
	if f.form == finite && g.form == finite {
		// a/b <=> c/d is ad <=> cb
		l := getInt()
		defer putInt(l)
		r := getInt()
		defer putInt(r)
		l.Mul(&f.num, g.denom())
		r.Mul(&g.num, f.denom())
		return l.Cmp(r)
	}
	switch {
	case f.form == nan || g.form == nan:
		return 0
	case f.form == g.form:
		return 0
	case f.form == posInf || g.form == negInf:
		return 1
	}
	return -1
}

// Equal returns true if f and g represent the same value.
// Equal is defined through [Fraction.Cmp], so NaN compares equal to
// everything.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// Max returns the larger of f and g according to [Fraction.Cmp].
func (f Fraction) Max(g Fraction) Fraction {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns the smaller of f and g according to [Fraction.Cmp].
func (f Fraction) Min(g Fraction) Fraction {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// Truncate returns f rounded towards zero to an integer.
// Truncate returns an error if f is NaN or an infinity.
func (f Fraction) Truncate() (*big.Int, error) {
	if f.form != finite {
		return nil, fmt.Errorf("truncating %v: %w", f, ErrSpecialValue)
	}
	return new(big.Int).Quo(&f.num, f.denom()), nil
}

// Round returns f rounded half away from zero to an integer.
// Round returns an error if f is NaN or an infinity.
func (f Fraction) Round() (*big.Int, error) {
	if f.form != finite {
		return nil, fmt.Errorf("rounding %v: %w", f, ErrSpecialValue)
	}
	return quoHalfAway(new(big.Int), &f.num, f.denom()), nil
}

// Floor returns the largest integer not greater than f.
// Floor returns an error if f is NaN or an infinity.
func (f Fraction) Floor() (*big.Int, error) {
	if f.form != finite {
		return nil, fmt.Errorf("flooring %v: %w", f, ErrSpecialValue)
	}
	return quoFloor(new(big.Int), &f.num, f.denom()), nil
}

// Ceil returns the smallest integer not less than f.
// Ceil returns an error if f is NaN or an infinity.
func (f Fraction) Ceil() (*big.Int, error) {
	if f.form != finite {
		return nil, fmt.Errorf("ceiling %v: %w", f, ErrSpecialValue)
	}
	n := new(big.Int).Neg(&f.num)
	quoFloor(n, n, f.denom())
	return n.Neg(n), nil
}

// Float64 returns the nearest float64 value for f.
// Magnitudes beyond the float64 range saturate to an infinity, and
// the special values map to their float counterparts.
func (f Fraction) Float64() float64 {
	switch f.form {
	case nan:
		return math.NaN()
	case posInf:
		return math.Inf(1)
	case negInf:
		return math.Inf(-1)
	}
	x, _ := new(big.Rat).SetFrac(&f.num, f.denom()).Float64()
	return x
}

// String implements the [fmt.Stringer] interface and returns the
// canonical string form of f: "num" for integers, "num/den" otherwise,
// and "NaN", "Infinity", or "-Infinity" for the special values.
// Parsing the returned string yields f back.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	switch f.form {
	case nan:
		return "NaN"
	case posInf:
		return "Infinity"
	case negInf:
		return "-Infinity"
	}
	if f.denom().Cmp(intOne) == 0 {
		return f.num.String()
	}
	return f.num.String() + "/" + f.denom().String()
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: 11/4
//	%q:    "11/4"
//
// The '-' flag and a width are supported for padding.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var out string
	switch verb {
	case 's', 'S', 'v', 'V':
		out = f.String()
	case 'q', 'Q':
		out = "\"" + f.String() + "\""
	default:
		fmt.Fprintf(state, "%%!%c(rational.Fraction=%s)", verb, f.String())
		return
	}
	if w, ok := state.Width(); ok && w > len(out) {
		pad := make([]byte, w-len(out))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			out += string(pad)
		} else {
			out = string(pad) + out
		}
	}
	state.Write([]byte(out))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as its canonical string form, which keeps
// special values and arbitrarily large numerators representable.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Fraction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both string-encoded and bare numeric JSON values are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *Fraction) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unmarshaling %s: %w", data, ErrInvalidFraction)
		}
	}
	var err error
	*f, err = Parse(s)
	return err
}
