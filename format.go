// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/safedec/internal/seq"
	"github.com/avdva/safedec/internal/strutil"
)

const (
	defaultMaxDecimals = 16

	digitChars = "0123456789abcdef"
)

// Radix is the base of the formatted output.
type Radix int

const (
	// RadixBinary is base 2.
	RadixBinary Radix = 2
	// RadixOctal is base 8.
	RadixOctal Radix = 8
	// RadixDecimal is base 10.
	RadixDecimal Radix = 10
	// RadixHexadecimal is base 16.
	RadixHexadecimal Radix = 16
)

func (r Radix) valid() bool {
	switch r {
	case RadixBinary, RadixOctal, RadixDecimal, RadixHexadecimal:
		return true
	}
	return false
}

// Rounding defines what happens with the digits that do not fit the output.
type Rounding uint8

// Non-half modes are applied whenever something is cut off.
// Half modes round to the nearest, and use the direction only for a tie.
const (
	// RoundUp rounds away from zero.
	RoundUp Rounding = iota
	// RoundDown rounds towards zero.
	RoundDown
	// RoundCeil rounds towards +Inf.
	RoundCeil
	// RoundFloor rounds towards -Inf.
	RoundFloor
	// RoundEven rounds to the even last digit.
	RoundEven
	// RoundHalfUp rounds to the nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest, ties towards zero.
	RoundHalfDown
	// RoundHalfCeil rounds to the nearest, ties towards +Inf.
	RoundHalfCeil
	// RoundHalfFloor rounds to the nearest, ties towards -Inf.
	RoundHalfFloor
	// RoundHalfEven rounds to the nearest, ties to the even last digit.
	RoundHalfEven
)

var roundingNames = [...]string{
	RoundUp:        "up",
	RoundDown:      "down",
	RoundCeil:      "ceil",
	RoundFloor:     "floor",
	RoundEven:      "even",
	RoundHalfUp:    "half-up",
	RoundHalfDown:  "half-down",
	RoundHalfCeil:  "half-ceil",
	RoundHalfFloor: "half-floor",
	RoundHalfEven:  "half-even",
}

func (r Rounding) String() string {
	if int(r) < len(roundingNames) {
		return roundingNames[r]
	}
	return "Rounding(" + strconv.Itoa(int(r)) + ")"
}

// ParseRounding returns the rounding mode with the given name, like "half-even".
func ParseRounding(name string) (Rounding, error) {
	for i, n := range roundingNames {
		if n == name {
			return Rounding(i), nil
		}
	}
	return 0, Error.New("unknown rounding %q", name)
}

func (r Rounding) nearest() bool {
	return r >= RoundHalfUp && r <= RoundHalfEven
}

// direction returns the non-half mode with the same direction.
func (r Rounding) direction() Rounding {
	if r.nearest() {
		return r - RoundHalfUp
	}
	return r
}

// shouldIncrement reports whether the last kept digit must be incremented.
// half is the comparison of the dropped remainder with one half of the last digit.
func (r Rounding) shouldIncrement(negative, odd bool, half int) bool {
	if r.nearest() {
		switch {
		case half > 0:
			return true
		case half < 0:
			return false
		}
	}
	switch r.direction() {
	case RoundUp:
		return true
	case RoundCeil:
		return !negative
	case RoundFloor:
		return negative
	case RoundEven:
		return odd
	default:
		return false
	}
}

// FormatOptions define the textual form of a value.
// Use DefaultFormatOptions and the With* methods to build them.
type FormatOptions struct {
	Radix Radix
	// MaxDecimals is the maximum number of fraction digits.
	MaxDecimals int
	Rounding    Rounding
}

// DefaultFormatOptions returns radix 10, 16 decimals, and RoundHalfCeil.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Radix:       RadixDecimal,
		MaxDecimals: defaultMaxDecimals,
		Rounding:    RoundHalfCeil,
	}
}

// WithRadix returns a copy of o with the radix set to r.
func (o FormatOptions) WithRadix(r Radix) FormatOptions {
	o.Radix = r
	return o
}

// WithMaxDecimals returns a copy of o printing at most n decimals.
func (o FormatOptions) WithMaxDecimals(n int) FormatOptions {
	o.MaxDecimals = n
	return o
}

// WithRounding returns a copy of o with the rounding mode set to r.
func (o FormatOptions) WithRounding(r Rounding) FormatOptions {
	o.Rounding = r
	return o
}

// String returns a string representation of the value with default options.
func (d Decimal[F]) String() string {
	return d.Text(DefaultFormatOptions())
}

// Text returns the value in the given radix with at most opts.MaxDecimals fraction digits.
// Trailing zeros are omitted. Text panics if the radix is not 2, 8, 10, or 16.
func (d Decimal[F]) Text(opts FormatOptions) string {
	if !opts.Radix.valid() {
		panic(fmt.Sprintf("invalid radix %d", opts.Radix))
	}
	maxDecimals := max(opts.MaxDecimals, 0)
	d = d.canonical()
	negative := d.num < 0
	num, den := F(math.Abs(float64(d.num))), d.den
	if !isFinite(num / den) {
		return strconv.FormatFloat(float64(d.num/d.den), 'g', -1, bitSize[F]())
	}

	quo := F(math.Trunc(float64(num / den)))
	rem := num - quo*den
	if rem < 0 { // the quotient was rounded up.
		quo--
		rem += den
	}
	integer, _ := new(big.Float).SetFloat64(float64(quo)).Int(nil)

	radix := F(opts.Radix)
	digits := make([]byte, 0, maxDecimals)
	for len(digits) < maxDecimals && rem != 0 {
		rem *= radix
		digit := F(math.Trunc(float64(rem / den)))
		rem -= digit * den
		switch {
		case rem < 0:
			digit--
			rem += den
		case rem >= den:
			digit++
			rem -= den
		}
		digits = append(digits, byte(digit))
	}

	if rem != 0 {
		var odd bool
		if len(digits) == 0 {
			odd = integer.Bit(0) == 1
		} else {
			odd = digits[len(digits)-1]%2 == 1
		}
		half := cmp.Compare(2*rem, den)
		if opts.Rounding.shouldIncrement(negative, odd, half) && increment(digits, byte(opts.Radix)) {
			integer.Add(integer, big.NewInt(1))
		}
	}

	for i := range digits {
		digits[i] = digitChars[digits[i]]
	}
	fraction := strutil.TrimTrailingZeros(string(digits))
	if integer.Sign() == 0 && len(fraction) == 0 {
		return "0"
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(integer.Text(int(opts.Radix)))
	if len(fraction) > 0 {
		b.WriteByte(strutil.Delim)
		b.WriteString(fraction)
	}
	return b.String()
}

// increment adds one to the last digit and propagates the carry.
// Returns true, if the carry went past the first digit.
func increment(digits []byte, radix byte) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < radix-1 {
			digits[i]++
			return false
		}
		digits[i] = 0
	}
	return true
}

// ToFixed returns the value with exactly decimals fraction digits.
func (d Decimal[F]) ToFixed(decimals int, opts FormatOptions) string {
	decimals = max(decimals, 0)
	s := d.Text(opts.WithMaxDecimals(decimals))
	if decimals == 0 {
		return s
	}
	integer, fraction, _ := strutil.SplitDelim(s)
	return integer + string(strutil.Delim) + seq.PadString(fraction, decimals, '0')
}

// FractionString returns the value as "numerator/denominator".
func (d Decimal[F]) FractionString() string {
	d = d.canonical()
	bits := bitSize[F]()
	return strconv.FormatFloat(float64(d.num), 'g', -1, bits) + "/" + strconv.FormatFloat(float64(d.den), 'g', -1, bits)
}

// Format implements fmt.Formatter.
//
//	%v, %s    default text form; %#v is GoString
//	%d        integer part
//	%f        default text form; %.Nf gives exactly N decimals
//	%b %o %x  radix 2, 8, 16; precision limits the number of decimals
func (d Decimal[F]) Format(fs fmt.State, c rune) {
	opts := DefaultFormatOptions()
	prec, hasPrec := fs.Precision()
	var s string
	switch c {
	case 'v':
		if fs.Flag('#') {
			s = d.GoString()
			break
		}
		s = d.String()
	case 's':
		s = d.String()
	case 'd':
		s = d.Text(opts.WithMaxDecimals(0).WithRounding(RoundDown))
	case 'f', 'F':
		if hasPrec {
			s = d.ToFixed(prec, opts)
			break
		}
		s = d.String()
	case 'b', 'o', 'x':
		switch c {
		case 'b':
			opts = opts.WithRadix(RadixBinary)
		case 'o':
			opts = opts.WithRadix(RadixOctal)
		default:
			opts = opts.WithRadix(RadixHexadecimal)
		}
		if hasPrec {
			opts = opts.WithMaxDecimals(prec)
		}
		s = d.Text(opts)
	default:
		s = fmt.Sprintf("%%!%c(safedec.Decimal=%s)", c, d.String())
	}
	if w, ok := fs.Width(); ok {
		if fs.Flag('-') {
			fmt.Fprintf(fs, "%-*s", w, s)
		} else {
			fmt.Fprintf(fs, "%*s", w, s)
		}
		return
	}
	io.WriteString(fs, s)
}
