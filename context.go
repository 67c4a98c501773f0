package rational

import (
	"fmt"
	"sync"
)

// DefaultContextDigits is the digit budget of the default context at
// process start.
const DefaultContextDigits = 20

// guardDigits is the extra working precision carried by iterative and
// series algorithms, so that rounding noise in intermediate divisions
// cannot trigger premature convergence.
const guardDigits = 10

// Context carries the digit budget for the elementary functions: the
// number of decimal digits a result is computed and rounded to.
// A Context is immutable and safe for concurrent use; every operation
// is a pure function of its operands and the context.
type Context struct {
	digits int
}

// NewContext returns a context with the given digit budget.
// NewContext returns an error if digits is less than 1.
func NewContext(digits int) (Context, error) {
	if digits < 1 {
		return Context{}, fmt.Errorf("NewContext(%v): %w", digits, ErrDigitsRange)
	}
	return Context{digits: digits}, nil
}

// MustContext is like [NewContext] but panics if the digit budget is
// invalid. It simplifies safe initialization of global variables
// holding contexts.
func MustContext(digits int) Context {
	c, err := NewContext(digits)
	if err != nil {
		panic(fmt.Sprintf("MustContext(%v) failed: %v", digits, err))
	}
	return c
}

// Digits returns the digit budget of the context.
// The zero value Context{} reports the process-start default.
func (c Context) Digits() int {
	if c.digits == 0 {
		return DefaultContextDigits
	}
	return c.digits
}

// defaultCtx holds the process-wide default context consulted by the
// convenience methods on Decimal. It is guarded because the setter
// below may race with concurrent computations.
var (
	defaultMu  sync.RWMutex
	defaultCtx = Context{digits: DefaultContextDigits}
)

// DefaultDigits returns the digit budget of the process-wide default
// context.
func DefaultDigits() int {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCtx.Digits()
}

// SetDefaultDigits adjusts the process-wide default digit budget used
// by the convenience methods on Decimal. It returns an error if digits
// is less than 1.
//
// The default is read at call time, so computations started after a
// successful call observe the new budget. Prefer passing an explicit
// [Context] where reproducibility matters.
func SetDefaultDigits(digits int) error {
	c, err := NewContext(digits)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = c
	return nil
}

func defaultContext() Context {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCtx
}
