// Package rational implements exact arbitrary-precision rational numbers,
// the sole numeric type of the ><> machine. Every value is kept in
// reduced form (gcd(|n|, d) = 1, d > 0) as a constructor-enforced
// invariant, so equality is always value equality of the reduced pair.
package rational

import (
	"math/big"
	"strconv"
)

// Rational is an immutable n/d pair over arbitrary-precision integers.
// The zero value is not valid; use Zero, One or one of the From*
// constructors.
type Rational struct {
	n *big.Int
	d *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero is the additive identity, 0/1.
var Zero = Rational{n: big.NewInt(0), d: big.NewInt(1)}

// One is the multiplicative identity, 1/1.
var One = Rational{n: big.NewInt(1), d: big.NewInt(1)}

// newReduced builds a Rational from a numerator/denominator pair,
// normalizing sign and reducing by gcd. d must be non-zero; callers are
// responsible for rejecting a zero denominator before calling this.
func newReduced(n, d *big.Int) Rational {
	nn := new(big.Int).Set(n)
	dd := new(big.Int).Set(d)
	if dd.Sign() < 0 {
		nn.Neg(nn)
		dd.Neg(dd)
	}
	if nn.Sign() == 0 {
		return Rational{n: big.NewInt(0), d: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(nn), dd)
	if g.Cmp(bigOne) != 0 {
		nn.Quo(nn, g)
		dd.Quo(dd, g)
	}
	return Rational{n: nn, d: dd}
}

// FromInt builds the Rational i/1.
func FromInt(i int64) Rational {
	return Rational{n: big.NewInt(i), d: big.NewInt(1)}
}

// FromBigInt builds the Rational n/1.
func FromBigInt(n *big.Int) Rational {
	return Rational{n: new(big.Int).Set(n), d: big.NewInt(1)}
}

// FromBool maps true to One and false to Zero.
func FromBool(b bool) Rational {
	if b {
		return One
	}
	return Zero
}

// New builds a reduced n/d Rational. It panics if d is zero; callers
// handling user-facing division (the `,` instruction) must check for a
// zero divisor themselves and report DivByZero before calling New.
func New(n, d int64) Rational {
	if d == 0 {
		panic("rational: zero denominator")
	}
	return newReduced(big.NewInt(n), big.NewInt(d))
}

// ToBigInt returns n / d truncated toward zero, as a full-precision
// integer.
func (r Rational) ToBigInt() *big.Int {
	return new(big.Int).Quo(r.n, r.d)
}

// ToInt truncates n/d toward zero and returns it as an int. For values
// outside the int64 range the result is undefined (big.Int.Int64); callers
// that index the grid with this value are expected to stay within
// practical program sizes.
func (r Rational) ToInt() int {
	return int(r.ToBigInt().Int64())
}

// ToBool reports whether the numerator is non-zero. This is the
// language's sole notion of truthiness.
func (r Rational) ToBool() bool {
	return r.n.Sign() != 0
}

// String renders r the way `n` writes a popped value: the plain decimal
// of the numerator when r is an integer (d == 1), otherwise the
// shortest round-trip decimal of n/d.
func (r Rational) String() string {
	if r.d.Cmp(bigOne) == 0 {
		return r.n.String()
	}
	f := new(big.Float).SetPrec(256).Quo(
		new(big.Float).SetInt(r.n),
		new(big.Float).SetInt(r.d),
	)
	approx, _ := f.Float64()
	return strconv.FormatFloat(approx, 'g', -1, 64)
}

// IsZeroDenominator reports whether n is zero, the test DYADIC division
// uses to raise DivByZero (checked on the divisor's numerator, per the
// source).
func (r Rational) IsZeroDenominator() bool {
	return r.n.Sign() == 0
}

// Add returns a + b.
func Add(a, b Rational) Rational {
	n := new(big.Int).Add(new(big.Int).Mul(a.n, b.d), new(big.Int).Mul(b.n, a.d))
	d := new(big.Int).Mul(a.d, b.d)
	return newReduced(n, d)
}

// Sub returns a - b.
func Sub(a, b Rational) Rational {
	n := new(big.Int).Sub(new(big.Int).Mul(a.n, b.d), new(big.Int).Mul(b.n, a.d))
	d := new(big.Int).Mul(a.d, b.d)
	return newReduced(n, d)
}

// Mul returns a * b.
func Mul(a, b Rational) Rational {
	n := new(big.Int).Mul(a.n, b.n)
	d := new(big.Int).Mul(a.d, b.d)
	return newReduced(n, d)
}

// Div returns a / b. The caller must have already rejected b.IsZeroDenominator().
func Div(a, b Rational) Rational {
	n := new(big.Int).Mul(a.n, b.d)
	d := new(big.Int).Mul(a.d, b.n)
	return newReduced(n, d)
}

// Mod returns the remainder of a / b computed, per spec, via
// truncated-quotient division on the cross-multiplied numerators: with
// num = a.n*b.d, den = a.d*b.n, the result is (num - den*trunc(num/den))
// / (a.d*b.d). Sign behavior for negative operands follows truncation,
// not flooring. The caller must have already rejected b.IsZeroDenominator().
func Mod(a, b Rational) Rational {
	num := new(big.Int).Mul(a.n, b.d)
	den := new(big.Int).Mul(a.d, b.n)
	quo := new(big.Int).Quo(num, den)
	rem := new(big.Int).Sub(num, new(big.Int).Mul(den, quo))
	d := new(big.Int).Mul(a.d, b.d)
	return newReduced(rem, d)
}

// Lt reports whether a < b.
func Lt(a, b Rational) bool {
	return new(big.Int).Mul(a.n, b.d).Cmp(new(big.Int).Mul(b.n, a.d)) < 0
}

// Gt reports whether a > b.
func Gt(a, b Rational) bool {
	return Lt(b, a)
}

// Eq reports whether a == b.
func Eq(a, b Rational) bool {
	return new(big.Int).Mul(a.n, b.d).Cmp(new(big.Int).Mul(b.n, a.d)) == 0
}

// Le reports whether a <= b.
func Le(a, b Rational) bool {
	return !Gt(a, b)
}

// Ge reports whether a >= b.
func Ge(a, b Rational) bool {
	return !Lt(a, b)
}

// Ne reports whether a != b.
func Ne(a, b Rational) bool {
	return !Eq(a, b)
}
