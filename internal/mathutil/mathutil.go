package mathutil

var (
	quinaryFactorTable = [...]uint64{ // up to 5^27
		1, 5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
		9765625, 48828125, 244140625, 1220703125, 6103515625,
		30517578125, 152587890625, 762939453125, 3814697265625,
		19073486328125, 95367431640625, 476837158203125,
		2384185791015625, 11920928955078125, 59604644775390625,
		298023223876953125, 1490116119384765625, 7450580596923828125,
	}
)

// Pow5 returns 5^pow, or 0 if the result does not fit 64 bits.
func Pow5(pow int) uint64 {
	if pow < 0 || pow >= len(quinaryFactorTable) {
		return 0
	}
	return quinaryFactorTable[pow]
}

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) is a.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// HalfExp returns (a+b)/2 truncated toward zero.
// After subtracting it from both a and b, their sum is -1, 0, or 1.
func HalfExp(a, b int) int {
	return (a + b) / 2
}
