// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package safedec implements a decimal number stored as a ratio of two binary floats.
//
// A Decimal keeps a numerator and a denominator and re-normalizes both after every
// operation, so that values like 0.1 or 1/3 stay exact while the arithmetic runs
// at native float speed:
//
//	a := safedec.MustFromFloat(0.1)
//	b := safedec.MustFromFloat(0.2)
//	a.Add(b).Eq(safedec.MustFromFloat(0.3)) // true
//
// Precision is bounded by the mantissa of the underlying float type. Exponents are
// kept small by normalization, but are not checked for overflow.
package safedec

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/avdva/safedec/internal/strutil"
)

// Decimal is a number represented as num / den.
// The zero value is 0.
type Decimal[F constraints.Float] struct {
	num F
	den F
}

type (
	// Decimal64 is a Decimal backed by float64 values.
	Decimal64 = Decimal[float64]
	// Decimal32 is a Decimal backed by float32 values.
	Decimal32 = Decimal[float32]
)

// Zero returns 0.
func Zero[F constraints.Float]() Decimal[F] {
	return Decimal[F]{num: 0, den: 1}
}

// One returns 1.
func One[F constraints.Float]() Decimal[F] {
	return Decimal[F]{num: 1, den: 1}
}

// FromInt returns a value for the given integer.
// Integers beyond the mantissa range are rounded to the nearest float.
func FromInt[F constraints.Float](v int64) Decimal[F] {
	return Decimal[F]{num: F(v), den: 1}
}

// FromFraction returns num / den.
// Returns ErrDivisionByZero if den is 0, and ErrBadFloat if any of the arguments is not finite.
func FromFraction[F constraints.Float](num, den F) (Decimal[F], error) {
	if !isFinite(num) || !isFinite(den) {
		return Decimal[F]{}, ErrBadFloat
	}
	if den == 0 {
		return Decimal[F]{}, ErrDivisionByZero
	}
	if den < 0 {
		num, den = -num, -den
	}
	n, d := simplifyFactors(num, den)
	return reduceExponent(Decimal[F]{num: n, den: d}), nil
}

// canonical returns d with the zero value replaced by {0, 1}.
func (d Decimal[F]) canonical() Decimal[F] {
	if d.den == 0 && d.num == 0 {
		return Zero[F]()
	}
	return d
}

// Numerator returns the numerator. It carries the sign of the value.
func (d Decimal[F]) Numerator() F {
	return d.canonical().num
}

// Denominator returns the denominator.
func (d Decimal[F]) Denominator() F {
	return d.canonical().den
}

// Float returns num / den as a float.
func (d Decimal[F]) Float() F {
	d = d.canonical()
	return d.num / d.den
}

// GoString returns debug string representation.
func (d Decimal[F]) GoString() string {
	d = d.canonical()
	return d.String() + fmt.Sprintf(" {%v, %v}", d.num, d.den)
}

// MarshalJSON marshals the value as a string, like `"1234.5678"`.
func (d Decimal[F]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON unmarshals a string or a number into a value.
// Numbers, that the parser does not accept, like `1e-3`, are read as floats.
func (d *Decimal[F]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	if s, ok := strutil.Unquote(data); ok {
		value, err := Parse[F](string(s))
		if err != nil {
			return err
		}
		*d = value
		return nil
	}
	value, err := Parse[F](string(data))
	if err != nil { // could still be a float
		f, fltErr := strconv.ParseFloat(string(data), bitSize[F]())
		if fltErr != nil {
			return err
		}
		if value, err = FromFloat(F(f)); err != nil {
			return err
		}
	}
	*d = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal[F]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal[F]) UnmarshalText(text []byte) error {
	value, err := Parse[F](string(text))
	if err != nil {
		return err
	}
	*d = value
	return nil
}

func isFinite[F constraints.Float](f F) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}
