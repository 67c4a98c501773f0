package rational

import (
	"math/big"
	"sync"
)

var (
	intOne = big.NewInt(1)
	intFiv = big.NewInt(5)
	intTen = big.NewInt(10)
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Cached values are shared and must never be mutated.
var bpow10 = func() [100]*big.Int {
	var c [100]*big.Int
	c[0] = big.NewInt(1)
	for i := 1; i < len(c); i++ {
		c[i] = new(big.Int).Mul(c[i-1], intTen)
	}
	return c
}()

// pow10 returns 10^power as a shared read-only value.
// If power is negative, the result is unpredictable.
func pow10(power int) *big.Int {
	if power < len(bpow10) {
		return bpow10[power]
	}
	y := new(big.Int).SetInt64(int64(power))
	return y.Exp(intTen, y, nil)
}

// mulPow10 calculates z = x * 10^power.
func mulPow10(z, x *big.Int, power int) *big.Int {
	return z.Mul(x, pow10(power))
}

// digit is a cache of the ten digit values used by fsa.
var digit = func() [10]*big.Int {
	var c [10]*big.Int
	for i := range c {
		c[i] = big.NewInt(int64(i))
	}
	return c
}()

// fsa (Fused Shift and Addition) calculates z = z * 10 + d.
// It is the digit-accumulation step of the literal parser.
func fsa(z *big.Int, d byte) *big.Int {
	z.Mul(z, intTen)
	return z.Add(z, digit[d])
}

// quoHalfAway calculates z = x / y rounded half away from zero,
// using a doubled-remainder comparison against the divisor.
// y must be positive.
func quoHalfAway(z, x, y *big.Int) *big.Int {
	r := getInt()
	defer putInt(r)
	z.QuoRem(x, y, r)
	neg := r.Sign() < 0
	r.Abs(r)
	r.Lsh(r, 1) // r = 2 * |x mod y|
	if r.Cmp(y) >= 0 {
		if neg {
			z.Sub(z, intOne)
		} else {
			z.Add(z, intOne)
		}
	}
	return z
}

// quoFloor calculates z = x / y rounded towards negative infinity.
// y must be positive.
func quoFloor(z, x, y *big.Int) *big.Int {
	r := getInt()
	defer putInt(r)
	z.QuoRem(x, y, r)
	if r.Sign() < 0 {
		z.Sub(z, intOne)
	}
	return z
}

// quoCeil calculates z = x / y rounded towards positive infinity.
// y must be positive.
func quoCeil(z, x, y *big.Int) *big.Int {
	z.Neg(x)
	quoFloor(z, z, y)
	return z.Neg(z)
}

// quoTrunc calculates z = x / y rounded towards zero.
// It exists so every rounding mode shares the same signature.
func quoTrunc(z, x, y *big.Int) *big.Int {
	return z.Quo(x, y)
}

// prec returns the length of |x| in decimal digits.
// prec assumes that 0 has one digit.
func prec(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	a := getInt()
	defer putInt(a)
	a.Abs(x)
	// Binary search over the cache, falling back to the decimal
	// string length for very large values.
	if a.Cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(a.Text(10))
	}
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if a.Cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// pool is a cache of reusable *big.Int scratch values.
var pool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

func getInt() *big.Int {
	return pool.Get().(*big.Int)
}

func putInt(b *big.Int) {
	pool.Put(b)
}
