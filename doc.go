/*
Package rational implements immutable exact-fraction arithmetic and
a precision-bounded decimal layer on top of it.

# Representation

[Fraction] is an arbitrary-precision rational number kept in canonical form:

  - Numerator: a [big.Int] carrying the sign of the value.
  - Denominator: a positive [big.Int] sharing no common factor with the
    numerator.

Every constructor and every arithmetic operation reduces its result by the
greatest common divisor and normalizes the denominator sign, so two equal
values always have identical numerator/denominator pairs. Zero is always
represented as 0/1.

Unlike [big.Rat], a Fraction is closed over the three IEEE-754-like special
values: NaN, Infinity, and -Infinity. A zero denominator given to a
constructor does not panic; it produces NaN when the numerator is zero and
a signed infinity otherwise. Arithmetic follows floating-point convention:
NaN is absorbing, Infinity - Infinity is NaN, 0 * Infinity is NaN, and
division of a non-zero finite value by zero is a signed infinity.

[Decimal] wraps a Fraction whose reduced denominator has no prime factors
other than 2 and 5, so its value terminates in base 10. Decimals support
exact addition, subtraction, and multiplication, and a set of elementary
functions (square root, exponential, natural logarithm, power, sine, cosine,
tangent) computed by convergent iterative or series methods to a configurable
number of decimal digits.

# Precision

Elementary functions are methods on an immutable [Context] holding the digit
budget, so a result is a pure function of its operands and the context:

	ctx, _ := rational.NewContext(10)
	d, _ := rational.NewDecimal(rational.New(2, 1))
	r, _ := ctx.Sqrt(d) // 1.4142135624

The convenience methods on Decimal ([Decimal.Sqrt], [Decimal.Exp], ...) use
the process-wide default context, which starts at [DefaultContextDigits]
digits and can be adjusted with [SetDefaultDigits].

# Conversions

The package provides methods for converting values:

  - from/to string:
    [Parse], [ParseDecimal], [Fraction.String], [Decimal.String],
    [Decimal.StringFixed], [Decimal.StringExponential], [Decimal.StringPrecision].
  - from/to float64:
    [NewFromFloat64], [NewDecimalFromFloat64], [Fraction.Float64].
  - from int64 and [big.Int]:
    [New], [NewFromInt64], [NewFromBigInt], [NewDecimalFromInt64],
    [NewDecimalFromBigInt].

The string form of a Fraction is "num" for integers and "num/den" otherwise;
special values render as "NaN", "Infinity", and "-Infinity". [Parse] also
accepts decimal literals, mixed numbers such as "2 3/4", and scientific
notation; parsing the string form of any Fraction yields that Fraction back.

# Operations

Each binary Fraction operation is carried out in two steps:

 1. If both operands are finite, the result is computed directly by the
    cross-multiplication formula and reduced in a single pass. No
    special-value handling is evaluated on this path.

 2. Otherwise the operation is resolved by the special-value rules above.

Step 1 is the hot path: in ordinary computations special values never occur
and their handling costs nothing beyond the variant check.

# Rounding

[Fraction.Truncate], [Fraction.Round], [Fraction.Floor], and [Fraction.Ceil]
convert a finite Fraction to a [big.Int] (Round uses half-away-from-zero).
The Decimal counterparts take an explicit scale and round at that many digits
after the decimal point; negative scales round to the left of the point.
Elementary functions round their result at the context's digit budget.

# Errors

Fraction arithmetic is total and panic-free: zero denominators and special
operands produce special values, never errors. Errors are returned for
malformed literals, constructing a Decimal from a value with no terminating
decimal form, domain violations (square root of a negative, logarithm of a
non-positive, 0 to the power 0), division of a Decimal by zero, and digit
budgets below 1. The Must* wrappers panic instead of returning an error and
are intended for static initialization and tests.

[big.Int]: https://pkg.go.dev/math/big#Int
[big.Rat]: https://pkg.go.dev/math/big#Rat
*/
package rational
