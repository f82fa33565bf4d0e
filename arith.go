// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/safedec/internal/floatbits"
	"github.com/avdva/safedec/internal/mathutil"
)

// simplifyFactors removes the common odd factors of a and b, and moves the powers of two
// so that the sum of both exponents is kept, and each of them is as close to 0 as possible.
// If a == 0, the result is (0, 1). If b == 0, the result is (1, 0).
func simplifyFactors[F constraints.Float](a, b F) (F, F) {
	if a == 0 {
		return 0, 1
	}
	if b == 0 {
		return 1, 0
	}
	aSign, aInt, aExp := floatbits.ExponentialForm(a)
	bSign, bInt, bExp := floatbits.ExponentialForm(b)
	gcd := mathutil.GCD(aInt, bInt)
	aInt /= gcd
	bInt /= gcd
	change := mathutil.HalfExp(aExp, bExp)
	return floatbits.FromExponentialForm[F](aSign, aInt, aExp-change),
		floatbits.FromExponentialForm[F](bSign, bInt, bExp-change)
}

// reduceExponent rebalances binary exponents of the numerator and the denominator.
func reduceExponent[F constraints.Float](d Decimal[F]) Decimal[F] {
	if d.num == 0 {
		return Zero[F]()
	}
	nSign, nExp, nMant := floatbits.Decompose(d.num)
	dSign, dExp, dMant := floatbits.Decompose(d.den)
	change := mathutil.HalfExp(nExp, dExp)
	return Decimal[F]{
		num: floatbits.Reconstruct[F](nSign, nExp-change, nMant),
		den: floatbits.Reconstruct[F](dSign, dExp-change, dMant),
	}
}

// Add returns d + other.
func (d Decimal[F]) Add(other Decimal[F]) Decimal[F] {
	d, other = d.canonical(), other.canonical()
	// x holds the factors of d.den missing in other.den, y the other way round.
	x, y := simplifyFactors(d.den, other.den)
	return reduceExponent(Decimal[F]{
		num: d.num*y + other.num*x,
		den: d.den * y,
	})
}

// Sub returns d - other.
func (d Decimal[F]) Sub(other Decimal[F]) Decimal[F] {
	return d.Add(other.Neg())
}

// Neg returns -d.
func (d Decimal[F]) Neg() Decimal[F] {
	d = d.canonical()
	return Decimal[F]{num: -d.num, den: d.den}
}

// Abs returns |d|.
func (d Decimal[F]) Abs() Decimal[F] {
	if math.Signbit(float64(d.num)) {
		return d.Neg()
	}
	return d.canonical()
}

// Mul returns d * other.
func (d Decimal[F]) Mul(other Decimal[F]) Decimal[F] {
	d, other = d.canonical(), other.canonical()
	n1, d2 := simplifyFactors(d.num, other.den)
	n2, d1 := simplifyFactors(other.num, d.den)
	return reduceExponent(Decimal[F]{
		num: n1 * n2,
		den: d1 * d2,
	})
}

// Inv returns 1/d. ok is false, if d is zero.
// The sign of the result is kept in the numerator.
func (d Decimal[F]) Inv() (result Decimal[F], ok bool) {
	d = d.canonical()
	if d.num == 0 {
		return Decimal[F]{}, false
	}
	if math.Signbit(float64(d.num)) {
		return Decimal[F]{num: -d.den, den: -d.num}, true
	}
	return Decimal[F]{num: d.den, den: d.num}, true
}

// MustInv returns 1/d. If d == 0, MustInv panics.
func (d Decimal[F]) MustInv() Decimal[F] {
	result, ok := d.Inv()
	if !ok {
		panic(ErrDivisionByZero)
	}
	return result
}

// Div returns d / other. ok is false, if other is zero.
func (d Decimal[F]) Div(other Decimal[F]) (result Decimal[F], ok bool) {
	inv, ok := other.Inv()
	if !ok {
		return Decimal[F]{}, false
	}
	return d.Mul(inv), true
}

// MustDiv returns d / other. If other == 0, MustDiv panics.
func (d Decimal[F]) MustDiv(other Decimal[F]) Decimal[F] {
	result, ok := d.Div(other)
	if !ok {
		panic(ErrDivisionByZero)
	}
	return result
}
