// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"errors"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/avdva/safedec/internal/floatbits"
	"github.com/avdva/safedec/internal/mathutil"
	"github.com/avdva/safedec/internal/seq"
	"github.com/avdva/safedec/internal/strutil"
)

const (
	// maxDecimalDigits is the number of decimal fraction digits taken into account.
	maxDecimalDigits = 22
)

// Parse parses a string into a value.
// The accepted format is
//
//	[-|+][0b|0o|0x]digits[.digits]
//
// where digits are in the radix given by the prefix, or 10 without one.
// Decimal fraction digits beyond the 22nd are ignored, but still validated.
// Returns a *ParseError wrapped in Error on failure.
func Parse[F constraints.Float](s string) (Decimal[F], error) {
	if len(s) == 0 {
		return Decimal[F]{}, newParseError(s, "empty input", 1)
	}
	rest, signOffset, neg := strutil.SplitSign(s)
	rest, radixOffset, radix := strutil.SplitRadix(rest)
	offset := signOffset + radixOffset
	integer, fraction, _ := strutil.SplitDelim(rest)
	if len(integer) == 0 {
		return Decimal[F]{}, newParseError(s, "missing integer digits", offset+1)
	}
	if err := strutil.ValidateDigits(integer, radix); err != nil {
		// +1 to start indices from 1.
		return Decimal[F]{}, toParseError(s, err, offset+1)
	}
	if err := strutil.ValidateDigits(fraction, radix); err != nil {
		// skip the integer part and the delimiter.
		return Decimal[F]{}, toParseError(s, err, offset+len(integer)+2)
	}
	result := fromParts[F](integer, fraction, radix)
	if neg {
		result = result.Neg()
	}
	return result, nil
}

// MustParse parses a string into a value. It panics on errors.
func MustParse[F constraints.Float](s string) Decimal[F] {
	d, err := Parse[F](s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse64 parses a string into a float64-backed value.
func Parse64(s string) (Decimal64, error) {
	return Parse[float64](s)
}

// Parse32 parses a string into a float32-backed value.
func Parse32(s string) (Decimal32, error) {
	return Parse[float32](s)
}

func toParseError(input string, err error, offset int) error {
	var pe *strutil.PosError
	if !errors.As(strutil.AddPosErrorOffset(err, offset), &pe) {
		return Error.Wrap(err)
	}
	return newParseError(input, pe.Msg, pe.Pos)
}

// fromParts builds an unsigned value from validated digits.
func fromParts[F constraints.Float](integer, fraction string, radix int) Decimal[F] {
	var frac Decimal[F]
	switch radix {
	case 2:
		frac = binaryFraction[F](fraction)
	case 8:
		frac = binaryFraction[F](expandBits(fraction, 3))
	case 16:
		frac = binaryFraction[F](expandBits(fraction, 4))
	default:
		frac = decimalFraction[F](fraction)
	}
	return fromInteger[F](integer, radix).Add(frac)
}

// fromInteger parses unsigned integer digits. The result is rounded once to the nearest float.
func fromInteger[F constraints.Float](integer string, radix int) Decimal[F] {
	var i big.Int
	if _, ok := i.SetString(integer, radix); !ok {
		panic("unvalidated digits " + integer) // should not normally happen
	}
	return Decimal[F]{num: bigFloatTo[F](new(big.Float).SetInt(&i)), den: 1}
}

// decimalFraction returns digits / 10^n as (digits / 2^n) / 5^n.
func decimalFraction[F constraints.Float](fraction string) Decimal[F] {
	n := min(len(fraction), maxDecimalDigits)
	if n == 0 {
		return Zero[F]()
	}
	var i big.Int
	if _, ok := i.SetString(fraction[:n], 10); !ok {
		panic("unvalidated digits " + fraction) // should not normally happen
	}
	var num big.Float
	num.SetInt(&i)
	num.SetMantExp(&num, -n)
	return Decimal[F]{
		num: bigFloatTo[F](&num),
		den: F(mathutil.Pow5(n)),
	}
}

// binaryFraction builds the value of 0.<bits> in base 2 directly from float bits.
// Only the mantissa width of bits after the leading 1 is kept.
func binaryFraction[F constraints.Float](bits string) Decimal[F] {
	first := strings.IndexByte(bits, '1')
	if first < 0 {
		return Zero[F]()
	}
	mantBits := int(floatbits.LayoutOf[F]().MantBits)
	var mant uint64
	for c := range seq.Pad(seq.Take(seq.Bytes(bits[first+1:]), mantBits), mantBits, '0') {
		mant = mant<<1 | uint64(c-'0')
	}
	num, den := simplifyFactors(floatbits.Reconstruct[F](0, -(first+1), mant), 1)
	return Decimal[F]{num: num, den: den}
}

// expandBits replaces every digit with its width-bit binary form.
func expandBits(digits string, width int) string {
	var b strings.Builder
	b.Grow(len(digits) * width)
	for i := 0; i < len(digits); i++ {
		v := strutil.DigitValue(digits[i])
		for bit := width - 1; bit >= 0; bit-- {
			b.WriteByte('0' + byte(v>>uint(bit)&1))
		}
	}
	return b.String()
}

func bigFloatTo[F constraints.Float](x *big.Float) F {
	if floatbits.LayoutOf[F]().Width == 32 {
		f, _ := x.Float32()
		return F(f)
	}
	f, _ := x.Float64()
	return F(f)
}

func bitSize[F constraints.Float]() int {
	return int(floatbits.LayoutOf[F]().Width)
}
