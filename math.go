package rational

import (
	"fmt"
	"math"
	"math/big"
)

var (
	fracHalf  = New(1, 2)
	fracOne   = NewFromInt64(1)
	fracTwo   = NewFromInt64(2)
	fracThird = New(1, 3)
)

// epsAt returns 10^-scale.
func epsAt(scale int) Fraction {
	return Fraction{
		num: *big.NewInt(1),
		den: *new(big.Int).Set(pow10(scale)),
	}
}

// roundWork rounds f half away from zero at the given decimal scale.
// Series and iterative algorithms apply it to every intermediate
// value, which bounds numerator and denominator growth.
func roundWork(f Fraction, scale int) Fraction {
	return roundFracAt(f, scale, quoHalfAway)
}

// Quo returns the quotient of d and e rounded half away from zero at
// the digit budget of the context. Division is the one basic Decimal
// operation that can lose exactness: 1/3 has no terminating form.
// Quo returns an error wrapping [ErrDivisionByZero] if e is zero.
func (c Context) Quo(d, e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("%v / %v: %w", d, e, ErrDivisionByZero)
	}
	return decimal(roundWork(d.val.Quo(e.val), c.Digits())), nil
}

// Sqrt returns the square root of d, rounded at the digit budget of
// the context.
//
// The root is found by Newton-Raphson iteration g' = (g + d/g) / 2
// starting from d/2, with intermediate divisions carried at the budget
// plus ten guard digits, until successive guesses differ by less than
// 10^-digits.
//
// Sqrt returns an error wrapping [ErrNegativeRoot] if d is negative.
func (c Context) Sqrt(d Decimal) (Decimal, error) {
	if d.Sign() < 0 {
		return Decimal{}, fmt.Errorf("square root of %v: %w", d, ErrNegativeRoot)
	}
	if d.IsZero() {
		return Decimal{}, nil
	}
	digits := c.Digits()
	return decimal(roundWork(sqrtFrac(d.val, digits), digits)), nil
}

func sqrtFrac(x Fraction, digits int) Fraction {
	work := digits + guardDigits
	eps := epsAt(digits)
	g := x.Mul(fracHalf)
	for {
		q := roundWork(x.Quo(g), work)
		next := roundWork(g.Add(q).Mul(fracHalf), work)
		diff := next.Sub(g).Abs()
		g = next
		if diff.Cmp(eps) < 0 {
			return g
		}
	}
}

// Exp returns e raised to d, rounded at the digit budget of the
// context.
//
// The Taylor series sum x^n/n! is evaluated exactly by binary
// splitting: disjoint index ranges are summed recursively and
// combined, which keeps numerator and denominator growth balanced.
// The term count is derived from the budget and the magnitude of d.
//
// Exp returns an error wrapping [ErrExponentRange] if |d| is too
// large for the series to be summed within the supported range.
func (c Context) Exp(d Decimal) (Decimal, error) {
	digits := c.Digits()
	f, err := expFrac(d.val, digits)
	if err != nil {
		return Decimal{}, err
	}
	return decimal(roundWork(f, digits)), nil
}

// expArgLimit bounds the argument magnitude of Exp: beyond it the
// result would carry hundreds of thousands of integer digits.
const expArgLimit = 1e6

func expFrac(x Fraction, digits int) (Fraction, error) {
	if x.IsZero() {
		return fracOne, nil
	}
	n, err := expTerms(x, digits)
	if err != nil {
		return Fraction{}, err
	}
	sum, _ := expSplit(x, 1, n)
	return fracOne.Add(sum), nil
}

// expTerms returns the number of series terms needed to push the
// truncation error of exp(x) below the digit budget, estimated in
// floating-point logarithms.
func expTerms(x Fraction, digits int) (int, error) {
	ax := math.Abs(x.Float64())
	if math.IsInf(ax, 0) || ax >= expArgLimit {
		return 0, fmt.Errorf("exp argument %v: %w", x, ErrExponentRange)
	}
	bound := -float64(digits + 5)
	acc := 0.0
	n := 0
	for {
		n++
		acc += math.Log10(ax / float64(n))
		if float64(n) > ax && acc < bound {
			return n, nil
		}
	}
}

// expSplit returns the scaled partial sum and term ratio of the
// exponential series over the index range [lo, hi]:
//
//	sum   = t[lo]/t[lo-1] + t[lo+1]/t[lo-1] + ... + t[hi]/t[lo-1]
//	ratio = t[hi]/t[lo-1]
//
// where t[n] = x^n/n!. Adjacent ranges combine by
// sum(lo,hi) = sum(lo,m) + ratio(lo,m)*sum(m+1,hi), so the full series
// is 1 + sum(1,n).
func expSplit(x Fraction, lo, hi int) (sum, ratio Fraction) {
	if lo == hi {
		t := x.Quo(NewFromInt64(int64(lo)))
		return t, t
	}
	mid := (lo + hi) / 2
	s1, r1 := expSplit(x, lo, mid)
	s2, r2 := expSplit(x, mid+1, hi)
	return s1.Add(r1.Mul(s2)), r1.Mul(r2)
}

// Ln returns the natural logarithm of d, rounded at the digit budget
// of the context.
//
// The argument is range-reduced by repeated halving or doubling into
// [1, 2), counting the net power of two, and the reduced value m is
// fed through t = (m-1)/(m+1) into the series
// ln(m) = 2(t + t^3/3 + t^5/5 + ...). The power-of-two count is
// reconstructed with ln(2) obtained from the same series at t = 1/3.
//
// Ln returns an error wrapping [ErrLogDomain] if d is not positive.
func (c Context) Ln(d Decimal) (Decimal, error) {
	if d.Sign() <= 0 {
		return Decimal{}, fmt.Errorf("logarithm of %v: %w", d, ErrLogDomain)
	}
	digits := c.Digits()
	return decimal(roundWork(lnFrac(d.val, digits), digits)), nil
}

func lnFrac(x Fraction, digits int) Fraction {
	work := digits + guardDigits

	// Range reduction into [1, 2)
	k := 0
	m := x
	for m.Cmp(fracTwo) >= 0 {
		m = m.Mul(fracHalf)
		k++
	}
	for m.Cmp(fracOne) < 0 {
		m = m.Mul(fracTwo)
		k--
	}

	t := m.Sub(fracOne).Quo(m.Add(fracOne))
	res := atanhSeries(t, work).Mul(fracTwo)

	// Reconstruct the power-of-two exponent
	if k != 0 {
		ln2 := atanhSeries(fracThird, work).Mul(fracTwo)
		res = res.Add(NewFromInt64(int64(k)).Mul(ln2))
	}
	return res
}

// atanhSeries sums t + t^3/3 + t^5/5 + ... with every term rounded at
// the working scale, until a term falls below 10^-work.
// It converges quickly for |t| <= 1/3, which the range reduction in
// lnFrac guarantees.
func atanhSeries(t Fraction, work int) Fraction {
	t = roundWork(t, work)
	if t.IsZero() {
		return t
	}
	t2 := roundWork(t.Mul(t), work)
	eps := epsAt(work)
	term := t
	sum := t
	for i := int64(3); ; i += 2 {
		term = roundWork(term.Mul(t2), work)
		if term.IsZero() {
			return sum
		}
		c := roundWork(term.Quo(NewFromInt64(i)), work)
		sum = sum.Add(c)
		if c.Abs().Cmp(eps) < 0 {
			return sum
		}
	}
}

// Pow returns d raised to e.
//
// An integer exponent, including a negative one, uses
// square-and-multiply on the exact fraction; the result is exact when
// it has a terminating decimal form and is rounded at the digit budget
// of the context otherwise, as for Pow(3, -1). A non-integer exponent
// is computed as exp(e * ln(d)), rounded at the digit budget, so the
// base must be positive.
//
// Pow returns an error wrapping:
//   - [ErrZeroPower] if both base and exponent are zero;
//   - [ErrDivisionByZero] if the base is zero and the exponent is
//     negative;
//   - [ErrExponentRange] if an integer exponent does not fit the
//     machine int range;
//   - [ErrLogDomain] if the base is not positive and the exponent is
//     not an integer.
func (c Context) Pow(d, e Decimal) (Decimal, error) {
	if e.IsZero() {
		if d.IsZero() {
			return Decimal{}, fmt.Errorf("%v ^ %v: %w", d, e, ErrZeroPower)
		}
		return decimal(fracOne), nil
	}
	if e.IsInt() {
		n := &e.val.num
		if !n.IsInt64() || int64(int(n.Int64())) != n.Int64() {
			return Decimal{}, fmt.Errorf("%v ^ %v: %w", d, e, ErrExponentRange)
		}
		if d.IsZero() && n.Sign() < 0 {
			return Decimal{}, fmt.Errorf("%v ^ %v: %w", d, e, ErrDivisionByZero)
		}
		r := d.val.PowInt(int(n.Int64()))
		// A negative exponent inverts the base, which can surface a
		// denominator with no terminating decimal form, e.g. 3^-1.
		if !terminates(r) {
			r = roundWork(r, c.Digits())
		}
		return decimal(r), nil
	}
	if d.Sign() <= 0 {
		return Decimal{}, fmt.Errorf("%v ^ %v: %w", d, e, ErrLogDomain)
	}
	digits := c.Digits()
	work := digits + 5
	p := roundWork(e.val.Mul(lnFrac(d.val, work)), work+guardDigits)
	f, err := expFrac(p, work)
	if err != nil {
		return Decimal{}, err
	}
	return decimal(roundWork(f, digits)), nil
}

// Sin returns the sine of d (an angle in radians), rounded at the
// digit budget of the context.
//
// The alternating Taylor series is accumulated term by term until the
// partial sum stops changing at the digit budget; the fixed-point test
// arms once the term magnitude falls below one, so the growing phase
// of the series for large arguments cannot stop it early.
func (c Context) Sin(d Decimal) Decimal {
	digits := c.Digits()
	return decimal(roundWork(sinFrac(d.val, digits), digits))
}

// Cos returns the cosine of d (an angle in radians), rounded at the
// digit budget of the context.
func (c Context) Cos(d Decimal) Decimal {
	digits := c.Digits()
	return decimal(roundWork(cosFrac(d.val, digits), digits))
}

// Tan returns the tangent of d (an angle in radians): sin(d)/cos(d)
// computed at a widened budget and rounded at the digit budget of the
// context. Tan returns an error wrapping [ErrDivisionByZero] if the
// cosine vanishes at the working precision.
func (c Context) Tan(d Decimal) (Decimal, error) {
	digits := c.Digits()
	s := sinFrac(d.val, digits+5)
	co := cosFrac(d.val, digits+5)
	if co.IsZero() {
		return Decimal{}, fmt.Errorf("tangent of %v: %w", d, ErrDivisionByZero)
	}
	return decimal(roundWork(s.Quo(co), digits)), nil
}

func sinFrac(x Fraction, digits int) Fraction {
	work := digits + guardDigits
	x2 := roundWork(x.Mul(x), work)
	term := x
	sum := x
	for n := int64(1); ; n++ {
		term = roundWork(term.Mul(x2).Quo(NewFromInt64(2*n*(2*n+1))), work).Neg()
		if term.IsZero() {
			return sum
		}
		next := sum.Add(term)
		if term.Abs().Cmp(fracOne) < 0 &&
			roundWork(next, digits).Equal(roundWork(sum, digits)) {
			return next
		}
		sum = next
	}
}

func cosFrac(x Fraction, digits int) Fraction {
	work := digits + guardDigits
	x2 := roundWork(x.Mul(x), work)
	term := fracOne
	sum := fracOne
	for n := int64(1); ; n++ {
		term = roundWork(term.Mul(x2).Quo(NewFromInt64(2*n*(2*n-1))), work).Neg()
		if term.IsZero() {
			return sum
		}
		next := sum.Add(term)
		if term.Abs().Cmp(fracOne) < 0 &&
			roundWork(next, digits).Equal(roundWork(sum, digits)) {
			return next
		}
		sum = next
	}
}

// Sqrt returns the square root of d at the process-wide default digit
// budget. Also see [Context.Sqrt].
func (d Decimal) Sqrt() (Decimal, error) {
	return defaultContext().Sqrt(d)
}

// Exp returns e raised to d at the process-wide default digit budget.
// Also see [Context.Exp].
func (d Decimal) Exp() (Decimal, error) {
	return defaultContext().Exp(d)
}

// Ln returns the natural logarithm of d at the process-wide default
// digit budget. Also see [Context.Ln].
func (d Decimal) Ln() (Decimal, error) {
	return defaultContext().Ln(d)
}

// Pow returns d raised to e at the process-wide default digit budget.
// Also see [Context.Pow].
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	return defaultContext().Pow(d, e)
}

// Sin returns the sine of d at the process-wide default digit budget.
// Also see [Context.Sin].
func (d Decimal) Sin() Decimal {
	return defaultContext().Sin(d)
}

// Cos returns the cosine of d at the process-wide default digit
// budget. Also see [Context.Cos].
func (d Decimal) Cos() Decimal {
	return defaultContext().Cos(d)
}

// Tan returns the tangent of d at the process-wide default digit
// budget. Also see [Context.Tan].
func (d Decimal) Tan() (Decimal, error) {
	return defaultContext().Tan(d)
}
