// Package floatbits splits IEEE-754 binary floats into their fields and builds them back.
//
// All functions are generic over float32 and float64. Width-specific constants
// live in a Layout, selected by the size of the type parameter.
//
//   float64:  63  62        52  51                                                  0
//             s   eeeeeeeeeee   mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Reconstruct and FromExponentialForm do not check the exponent range.
// A biased exponent that does not fit the field wraps into the neighbouring
// bits, producing an infinity or an unrelated value. Callers keep exponents in range.
package floatbits

import (
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Layout describes the bit fields of a binary floating-point type.
type Layout struct {
	Width    uint // total bits
	ExpBits  uint
	MantBits uint // stored mantissa bits, the implicit bit excluded
	Bias     int
}

var (
	// Layout32 is the IEEE-754 binary32 layout.
	Layout32 = Layout{Width: 32, ExpBits: 8, MantBits: 23, Bias: 127}
	// Layout64 is the IEEE-754 binary64 layout.
	Layout64 = Layout{Width: 64, ExpBits: 11, MantBits: 52, Bias: 1023}
)

// MantMask returns the mask of the stored mantissa bits.
func (l Layout) MantMask() uint64 {
	return 1<<l.MantBits - 1
}

// ExpMask returns the mask of the biased exponent, not shifted.
func (l Layout) ExpMask() uint64 {
	return 1<<l.ExpBits - 1
}

// ImplicitBit returns the value of the hidden leading mantissa bit.
func (l Layout) ImplicitBit() uint64 {
	return 1 << l.MantBits
}

// LayoutOf returns the layout of F.
func LayoutOf[F constraints.Float]() Layout {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return Layout32
	}
	return Layout64
}

// Bits returns the raw IEEE-754 bits of f in the low Width bits.
func Bits[F constraints.Float](f F) uint64 {
	if LayoutOf[F]().Width == 32 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FromBits is the inverse of Bits. Bits above Width are dropped.
func FromBits[F constraints.Float](b uint64) F {
	if LayoutOf[F]().Width == 32 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// Decompose returns the sign bit, the unbiased exponent and the stored mantissa of f.
// Zeros and subnormals report an exponent of -Bias.
func Decompose[F constraints.Float](f F) (sign uint8, exp int, mant uint64) {
	l := LayoutOf[F]()
	b := Bits(f)
	sign = uint8(b >> (l.Width - 1))
	exp = int((b>>l.MantBits)&l.ExpMask()) - l.Bias
	mant = b & l.MantMask()
	return sign, exp, mant
}

// Reconstruct builds a float from a sign bit, an unbiased exponent and a stored mantissa.
// exp+Bias must fit the exponent field; this is not checked.
func Reconstruct[F constraints.Float](sign uint8, exp int, mant uint64) F {
	l := LayoutOf[F]()
	biased := uint64(int64(exp + l.Bias))
	b := uint64(sign)<<(l.Width-1) | biased<<l.MantBits | mant&l.MantMask()
	return FromBits[F](b)
}

// ExponentialForm returns f as sign, integer and exponent, so that |f| = integer * 2^exp
// and integer is odd. Zero is returned as (sign, 0, 0).
func ExponentialForm[F constraints.Float](f F) (sign uint8, integer uint64, exp int) {
	l := LayoutOf[F]()
	sign, e, mant := Decompose(f)
	if f == 0 {
		return sign, 0, 0
	}
	integer = mant | l.ImplicitBit()
	exp = e - int(l.MantBits)
	tz := bits.TrailingZeros64(integer)
	return sign, integer >> tz, exp + tz
}

// FromExponentialForm is the inverse of ExponentialForm.
// The resulting exponent must be representable; this is not checked.
func FromExponentialForm[F constraints.Float](sign uint8, integer uint64, exp int) F {
	l := LayoutOf[F]()
	if integer == 0 {
		return FromBits[F](uint64(sign) << (l.Width - 1))
	}
	shift := int(l.MantBits) - (bits.Len64(integer) - 1)
	if shift >= 0 {
		integer <<= uint(shift)
	} else {
		integer >>= uint(-shift)
	}
	exp -= shift
	return Reconstruct[F](sign, exp+int(l.MantBits), integer&^l.ImplicitBit())
}
