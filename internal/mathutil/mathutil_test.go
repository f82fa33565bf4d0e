package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res uint64
	}{
		{45, 105, 15},
		{105, 45, 15},
		{7, 0, 7},
		{0, 7, 7},
		{0, 0, 0},
		{1, math.MaxUint64, 1},
		{1 << 52, 1 << 20, 1 << 20},
		{0xcccccccccccd, 5, 5},
		{0xcccccccccccd, 3, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, GCD(test.a, test.b))
		})
	}
}

func TestPow(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1), Pow5(0))
	a.Equal(uint64(2384185791015625), Pow5(22))
	a.Equal(uint64(0), Pow5(28))
	a.Equal(uint64(0), Pow5(-1))
	for i := 1; i < 28; i++ {
		a.Equal(Pow5(i-1)*5, Pow5(i))
	}
}

func TestHalfExp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res int
	}{
		{4, 2, 3},
		{5, 0, 2},
		{-5, 0, -2},
		{-1023, 1023, 0},
		{-3, -4, -3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			h := HalfExp(test.a, test.b)
			a.Equal(test.res, h)
			a.LessOrEqual(absSum(test.a-h, test.b-h), 1)
		})
	}
}

func absSum(a, b int) int {
	if a+b < 0 {
		return -(a + b)
	}
	return a + b
}

func BenchmarkGCD(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		dummy += GCD(0x1999999999999a, uint64(i)|1)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
