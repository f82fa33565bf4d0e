// Package strutil contains string helpers shared by the parser and the float importer.
package strutil

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avdva/safedec/internal/seq"
)

const (
	// Delim separates the integer and the fractional parts.
	Delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// PosError is an error at a given position of the input.
type PosError struct {
	Pos int
	Msg string
}

// NewPosError returns a new PosError.
func NewPosError(msg string, pos int) *PosError {
	return &PosError{Msg: msg, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Msg + fmt.Sprintf(" at pos %d", pe.Pos)
}

// AddPosErrorOffset shifts the position of err, if it is a PosError.
func AddPosErrorOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return pe
}

// SplitSign removes a single leading sign.
func SplitSign(s string) (rest string, offset int, neg bool) {
	if len(s) == 0 {
		return s, 0, false
	}
	switch s[0] {
	case '-':
		return s[1:], 1, true
	case '+':
		return s[1:], 1, false
	}
	return s, 0, false
}

// SplitRadix removes a lowercase radix prefix (0b, 0o, 0x) and returns the radix it denotes.
// Without a prefix the radix is 10.
func SplitRadix(s string) (rest string, offset int, radix int) {
	if len(s) < 2 || s[0] != '0' {
		return s, 0, 10
	}
	switch s[1] {
	case 'b':
		return s[2:], 2, 2
	case 'o':
		return s[2:], 2, 8
	case 'x':
		return s[2:], 2, 16
	}
	return s, 0, 10
}

// SplitDelim splits s at the first delimiter.
func SplitDelim(s string) (integer, fraction string, hasDelim bool) {
	idx := strings.IndexByte(s, Delim)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// DigitValue returns the value of an ascii digit, or -1. Letters are case-insensitive.
func DigitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// ValidateDigits returns a PosError for the first byte of s that is not a digit in the radix.
// Positions are 0-based.
func ValidateDigits(s string, radix int) error {
	for i := 0; i < len(s); i++ {
		if v := DigitValue(s[i]); v < 0 || v >= radix {
			return NewPosError(fmt.Sprintf("unexpected symbol %q", s[i]), i)
		}
	}
	return nil
}

// TrimTrailingZeros removes trailing '0' bytes.
func TrimTrailingZeros(s string) string {
	return strings.TrimRight(s, "0")
}

// SplitScientific splits the output of strconv.FormatFloat(f, 'e', -1, bits)
// into integer and fractional digit strings. Trailing zeros of the fraction are removed.
// The integer part carries the '-' sign, if any.
func SplitScientific(s string) (integer, fraction string, err error) {
	mantissa, exponent, ok := strings.Cut(s, "e")
	if !ok {
		return "", "", fmt.Errorf("no exponent in %q", s)
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return "", "", fmt.Errorf("bad exponent in %q: %w", s, err)
	}
	var sign string
	if strings.HasPrefix(mantissa, "-") {
		sign, mantissa = "-", mantissa[1:]
	}
	digits := strings.Replace(mantissa, string(Delim), "", 1)
	if exp >= 0 {
		intLen := min(len(digits), exp+1)
		integer = seq.PadString(digits[:intLen], exp+1, '0')
		return sign + integer, TrimTrailingZeros(digits[intLen:]), nil
	}
	return sign + "0", ZeroStr(-exp-1) + TrimTrailingZeros(digits), nil
}

// ZeroStr returns a string of count zeros.
func ZeroStr(count int) string {
	var b bytes.Buffer
	for i := 0; i < count/len(manyZeros); i++ {
		b.Write(manyZeros)
	}
	if rem := count % len(manyZeros); rem > 0 {
		b.Write(manyZeros[:rem])
	}
	return b.String()
}

// Unquote removes the surrounding double quotes of a JSON string.
// ok is false if s is not quoted.
func Unquote(s []byte) (unquoted []byte, ok bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s, false
	}
	return s[1 : len(s)-1], true
}
