package rational

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if the divisor is zero.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics if the computation fails.
func (d Decimal) MustSqrt() Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}

// MustExp is like [Decimal.Exp] but panics if the computation fails.
func (d Decimal) MustExp() Decimal {
	f, err := d.Exp()
	if err != nil {
		panic(fmt.Sprintf("MustExp() failed: %v", err))
	}
	return f
}

// MustLn is like [Decimal.Ln] but panics if the computation fails.
func (d Decimal) MustLn() Decimal {
	f, err := d.Ln()
	if err != nil {
		panic(fmt.Sprintf("MustLn() failed: %v", err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if the computation fails.
func (d Decimal) MustPow(e Decimal) Decimal {
	f, err := d.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", e, err))
	}
	return f
}

// MustTan is like [Decimal.Tan] but panics if the computation fails.
func (d Decimal) MustTan() Decimal {
	f, err := d.Tan()
	if err != nil {
		panic(fmt.Sprintf("MustTan() failed: %v", err))
	}
	return f
}
