// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

// Cmp compares two values.
// Returns -1 if d < other, 0 if d == other, 1 if d > other.
func (d Decimal[F]) Cmp(other Decimal[F]) int {
	d, other = d.canonical(), other.canonical()
	left := d.num * other.den
	right := d.den * other.num
	switch {
	case left > right:
		return 1
	case left < right:
		return -1
	default:
		return 0
	}
}

// Eq returns true, if both values represent the same number.
func (d Decimal[F]) Eq(other Decimal[F]) bool {
	return d.Cmp(other) == 0
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (d Decimal[F]) Sign() int {
	switch num := d.canonical().num; {
	case num > 0:
		return 1
	case num < 0:
		return -1
	default:
		return 0
	}
}

// IsZero returns true, if d == 0.
func (d Decimal[F]) IsZero() bool {
	return d.canonical().num == 0
}
