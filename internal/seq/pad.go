// Package seq contains helpers over iter.Seq.
package seq

import (
	"iter"
)

// Pad yields the items of s followed by copies of fill, until at least n items were produced.
// If s has n or more items, all of them are yielded and nothing is added.
func Pad[T any](s iter.Seq[T], n int, fill T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var count int
		for v := range s {
			if !yield(v) {
				return
			}
			count++
		}
		for ; count < n; count++ {
			if !yield(fill) {
				return
			}
		}
	}
}

// Bytes yields the bytes of s.
func Bytes(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Take yields at most n items of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var count int
		for v := range s {
			if !yield(v) {
				return
			}
			if count++; count >= n {
				return
			}
		}
	}
}

// PadString right-pads s with fill up to n bytes.
func PadString(s string, n int, fill byte) string {
	if len(s) >= n {
		return s
	}
	b := make([]byte, 0, n)
	for c := range Pad(Bytes(s), n, fill) {
		b = append(b, c)
	}
	return string(b)
}
