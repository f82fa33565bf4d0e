// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/avdva/safedec/internal/strutil"
)

// FromFloat returns a value for the given float.
// The shortest decimal form of f, the one strconv prints, is what gets converted,
// so FromFloat(0.1) is exactly 1/10.
// Simple repeating fractions are detected by inverting the fractional part:
// if 1/frac has fewer decimals than frac, the value is built from the inverse.
// When the integer and fraction digits together exceed the mantissa, the sum
// is rounded and Float() of the result may differ from f in the last bit.
// Returns ErrBadFloat for infinities and not-a-numbers.
func FromFloat[F constraints.Float](f F) (Decimal[F], error) {
	if !isFinite(f) {
		return Decimal[F]{}, ErrBadFloat
	}
	integer, fraction, err := splitFloat(f)
	if err != nil {
		return Decimal[F]{}, Error.Wrap(err)
	}
	var neg bool
	if strings.HasPrefix(integer, "-") {
		neg, integer = true, integer[1:]
	}
	result, err := fromFloatParts[F](integer, fraction)
	if err != nil {
		return Decimal[F]{}, Error.Wrap(err)
	}
	if neg {
		result = result.Neg()
	}
	return result, nil
}

// MustFromFloat returns a value for the given float. It panics on errors.
func MustFromFloat[F constraints.Float](f F) Decimal[F] {
	d, err := FromFloat(f)
	if err != nil {
		panic(err)
	}
	return d
}

// FromFloat64 returns a float64-backed value for the given float.
func FromFloat64(f float64) (Decimal64, error) {
	return FromFloat(f)
}

// FromFloat32 returns a float32-backed value for the given float.
func FromFloat32(f float32) (Decimal32, error) {
	return FromFloat(f)
}

// fromFloatParts builds a value from unsigned decimal integer and fraction digits.
func fromFloatParts[F constraints.Float](integer, fraction string) (Decimal[F], error) {
	if len(fraction) == 0 {
		return fromInteger[F](integer, 10), nil
	}
	frac, err := strconv.ParseFloat("0."+fraction, bitSize[F]())
	if err != nil {
		return Decimal[F]{}, err
	}
	inverted := 1 / F(frac)
	if !isFinite(inverted) {
		return fromParts[F](integer, fraction, 10), nil
	}
	invInteger, invFraction, err := splitFloat(inverted)
	if err != nil {
		return Decimal[F]{}, err
	}
	if len(invFraction) >= len(fraction) {
		return fromParts[F](integer, fraction, 10), nil
	}
	invValue, err := fromFloatParts[F](invInteger, invFraction)
	if err != nil {
		return Decimal[F]{}, err
	}
	// the inverse of a positive value can't fail.
	return fromInteger[F](integer, 10).Add(invValue.MustInv()), nil
}

// splitFloat returns the integer and fractional decimal digits of f's shortest representation.
func splitFloat[F constraints.Float](f F) (integer, fraction string, err error) {
	return strutil.SplitScientific(strconv.FormatFloat(float64(f), 'e', -1, bitSize[F]()))
}
