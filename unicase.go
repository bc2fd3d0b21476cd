// Copyright 2024 The unicase Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

package unicase

import (
	"errors"
	"unicode/utf8"

	"github.com/zeebo/xxh3"
)

// ErrInvalidEncoding is returned when input bytes are not valid UTF-8.
// It is only ever returned at construction time ([WrapBytes] and the
// unmarshaling methods); comparison and hashing never fail.
var ErrInvalidEncoding = errors.New("unicase: invalid UTF-8 encoding")

// A Policy decides how text is folded for equality, ordering, and
// hashing. There are exactly two policies, [AsciiFold] and [UnicodeFold];
// the interface is sealed and cannot be implemented outside this package.
type Policy interface {
	equal(s, t string) bool
	compare(s, t string) int
	hash(h *xxh3.Hasher, s string)
}

// AsciiFold folds only the ASCII letters 'A' through 'Z'. Non-ASCII
// bytes are not interpreted as codepoints and compare literally. Faster
// than [UnicodeFold] for protocol tokens and other ASCII-only
// identifiers.
type AsciiFold struct{}

// UnicodeFold applies Unicode simple case folding to each codepoint
// before comparing. Required for correctness on non-ASCII text.
type UnicodeFold struct{}

func (AsciiFold) equal(s, t string) bool        { return equalASCII(s, t) }
func (AsciiFold) compare(s, t string) int       { return compareASCII(s, t) }
func (AsciiFold) hash(h *xxh3.Hasher, s string) { hashASCII(h, s) }

func (UnicodeFold) equal(s, t string) bool        { return equalFold(s, t) }
func (UnicodeFold) compare(s, t string) int       { return compareFold(s, t) }
func (UnicodeFold) hash(h *xxh3.Hasher, s string) { hashFold(h, s) }

// Text is an immutable case-insensitive view over a string. The policy
// is part of the type: Text[AsciiFold] and Text[UnicodeFold] are
// distinct types and comparing them is a compile-time error, as is
// comparing Text values with == (which would be case-sensitive and
// silently wrong). Use [Text.Equal] and [Text.Compare].
//
// The zero value is the empty string.
type Text[P Policy] struct {
	// This artifact prevents Text from being compared with == or used
	// as a native map key. It consumes no space as long as it is not
	// the last field in the struct.
	_ [0]struct{ notComparable []byte }
	s string
}

// New wraps s for comparison under Unicode simple case folding.
func New(s string) Text[UnicodeFold] { return Text[UnicodeFold]{s: s} }

// ASCII wraps s for comparison under ASCII-only folding.
func ASCII(s string) Text[AsciiFold] { return Text[AsciiFold]{s: s} }

// Wrap wraps s under policy P. Construction from a string never fails:
// both policies are total over arbitrary bytes, and any invalid UTF-8
// sequence decodes to utf8.RuneError consistently on both sides of a
// comparison.
func Wrap[P Policy](s string) Text[P] { return Text[P]{s: s} }

// WrapBytes validates b as UTF-8 and wraps a copy of it under policy P.
// It returns [ErrInvalidEncoding] if b is not valid UTF-8.
func WrapBytes[P Policy](b []byte) (Text[P], error) {
	if !utf8.Valid(b) {
		return Text[P]{}, ErrInvalidEncoding
	}
	return Text[P]{s: string(b)}, nil
}

// String returns the original, case-preserved text.
func (t Text[P]) String() string { return t.s }

// Equal reports whether t and u are equal under policy P.
func (t Text[P]) Equal(u Text[P]) bool {
	var p P
	return p.equal(t.s, u.s)
}

// Compare returns -1, 0, or +1 depending on whether t is less than,
// equal to, or greater than u under policy P. The order is lexicographic
// over folded values; when one operand is a prefix of the other the
// shorter operand orders first.
func (t Text[P]) Compare(u Text[P]) int {
	var p P
	return p.compare(t.s, u.s)
}

// Hash returns a 64-bit XXH3 digest of the folded text. Texts that are
// Equal under the same policy hash to the same value.
func (t Text[P]) Hash() uint64 {
	var p P
	var h xxh3.Hasher
	p.hash(&h, t.s)
	return h.Sum64()
}

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}
