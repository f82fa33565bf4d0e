// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type parts struct {
	Num, Den float64
}

func partsOf(d Decimal64) parts {
	return parts{Num: d.Numerator(), Den: d.Denominator()}
}

func TestZeroValue(t *testing.T) {
	a := assert.New(t)
	var d Decimal64
	a.Equal("0", d.String())
	a.Equal(0.0, d.Float())
	a.Equal(1.0, d.Denominator())
	a.True(d.Add(One[float64]()).Eq(One[float64]()))
	a.True(d.Mul(One[float64]()).IsZero())
	a.Equal("0 {0, 1}", d.GoString())
}

func TestNormalizedParts(t *testing.T) {
	tests := []struct {
		d        Decimal64
		expected parts
	}{
		{MustParse[float64]("2.1"), parts{2.625, 1.25}},
		{MustParse[float64]("0.1"), parts{0.5, 5}},
		{MustParse[float64]("-1.5"), parts{-1.875, 1.25}},
		{MustFromFloat(10.0 / 21.0), parts{1.25, 2.625}},
		{FromInt[float64](7), parts{7, 1}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.expected, partsOf(test.d)); diff != "" {
			t.Errorf("parts of %s mismatch (-want +got):\n%s", test.d, diff)
		}
	}
}

func TestImmutability(t *testing.T) {
	a := assert.New(t)
	x := MustParse[float64]("1.25")
	before := x
	_ = x.Add(One[float64]())
	_ = x.Mul(FromInt[float64](3))
	_ = x.Neg()
	_, _ = x.Inv()
	a.Equal(before, x)
}
