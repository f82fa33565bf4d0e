// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	opts := DefaultFormatOptions().WithMaxDecimals(30)
	tests := []struct {
		s        string
		expected string
		f        float64
	}{
		{"12.34", "12.34", 12.34},
		{"0", "0", 0},
		{"-0", "0", 0},
		{"+3", "3", 3},
		{"1.", "1", 1},
		{"007.50", "7.5", 7.5},
		{"0.1", "0.1", 0.1},
		{"-3.2", "-3.2", -3.2},
		{"0x1A", "26", 26},
		{"0x1a", "26", 26},
		{"-0xa.ff", "-10.99609375", -10.99609375},
		{"0xA.F", "10.9375", 10.9375},
		{"0xbeef.decaf", "48879.87028408050537109375", 48879.87028408050537109375},
		{"0b101.011", "5.375", 5.375},
		{"0b0.0000", "0", 0},
		{"0o17.4", "15.5", 15.5},
		{"-0o0.01", "-0.015625", -0.015625},
		{"0.0000000000000000000001", "0.0000000000000000000001", 1e-22},
		{"340282366920938463463374607431768211455", "340282366920938463463374607431768211456", math.Ldexp(1, 128)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := Parse64(test.s)
			if a.NoError(err) {
				a.Equal(test.expected, d.Text(opts), d.GoString())
				a.Equal(test.f, d.Float())
			}
		})
	}
}

func TestParseTruncatesDecimals(t *testing.T) {
	a := assert.New(t)
	long := MustParse[float64]("0.1234567890123456789012345")
	short := MustParse[float64]("0.1234567890123456789012")
	a.Equal(short, long)
	a.InEpsilon(0.1234567890123456789012, long.Float(), 1e-15)
}

func TestParseBigInteger(t *testing.T) {
	a := assert.New(t)
	d := MustParse[float64]("1" + strings.Repeat("0", 400))
	a.True(math.IsInf(d.Float(), 1))
	d = MustParse[float64]("0x1" + strings.Repeat("0", 50))
	a.Equal(math.Ldexp(1, 200), d.Float())
	a.Equal(float32(math.Ldexp(1, 100)), MustParse[float32]("0b1"+strings.Repeat("0", 100)).Float())
}

func TestParse32(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s string
		f float32
	}{
		{"0.1", 0.1},
		{"12.34", 12.34},
		{"0x0.1", 0.0625},
		{"-0b11.11", -3.75},
		{"16777217", 16777216},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := Parse32(test.s)
			if a.NoError(err) {
				a.Equal(test.f, d.Float())
			}
		})
	}
}

func TestParseBinaryMantissa(t *testing.T) {
	a := assert.New(t)
	// bits past the mantissa width after the leading one are dropped.
	s := "0b0.01" + strings.Repeat("0", 52) + "1"
	a.Equal(0.25, MustParse[float64](s).Float())
	s = "0b0.01" + strings.Repeat("0", 51) + "1"
	a.Equal(0.25+math.Ldexp(1, -54), MustParse[float64](s).Float())
	s = "0b0.1" + strings.Repeat("0", 22) + "1"
	a.Equal(float32(0.5)+float32(math.Ldexp(1, -24)), MustParse[float32](s).Float())
	s = "0b0.1" + strings.Repeat("0", 23) + "1"
	a.Equal(float32(0.5), MustParse[float32](s).Float())
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		msg string
		pos int
	}{
		{"", "empty input", 1},
		{"-", "missing integer digits", 2},
		{"0x", "missing integer digits", 3},
		{".5", "missing integer digits", 1},
		{"12a", "unexpected symbol 'a'", 3},
		{"1.2.3", "unexpected symbol '.'", 4},
		{"0b102", "unexpected symbol '2'", 5},
		{"--1", "unexpected symbol '-'", 2},
		{"0X1A", "unexpected symbol 'X'", 2},
		{"0o8", "unexpected symbol '8'", 3},
		{" 1", "unexpected symbol ' '", 1},
		{"1e5", "unexpected symbol 'e'", 2},
		{"0x1.fg", "unexpected symbol 'g'", 6},
		{"1." + strings.Repeat("2", 24) + "x", "unexpected symbol 'x'", 27},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Parse64(test.s)
			if !a.Error(err) {
				return
			}
			a.True(Error.Has(err))
			a.Contains(err.Error(), "parsing failed: "+test.msg)
			var pe *ParseError
			if a.True(errors.As(err, &pe)) {
				a.Equal(test.s, pe.Input)
				a.Equal(test.pos, pe.Pos)
				a.Equal(test.msg, pe.Msg)
			}
		})
	}
	a.Panics(func() { MustParse[float64]("abc") })
}
