// Copyright 2024 The unicase Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

package unicase

import (
	"errors"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/textcase/unicase/internal/tables/assigned"
)

// lowerASCII folds the ASCII letters of s byte-wise, without decoding.
// Invalid UTF-8 must pass through untouched so the oracle agrees with
// AsciiFold on arbitrary inputs.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

var fuzzSeeds = [][2]string{
	{"", ""},
	{"", "a"},
	{"GET", "get"},
	{"GET", "Get2"},
	{"foo bar", "FoO BAR"},
	{"αβδ", "ΑΒΔ"},
	{"στιγμας", "στιγμασ"},
	{"K", "k"},
	{"Maße", "MASSE"},
	{"Hello, 世界", "hello, 世界"},
	{"abc\xff", "ABC\xff"},
	{"a\xc0", "A\xc1"},
}

// FuzzEqualFold cross-checks the UnicodeFold policy against
// strings.EqualFold, which implements the same simple case folding.
func FuzzEqualFold(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed[0], seed[1])
	}
	f.Fuzz(func(t *testing.T, s1, s2 string) {
		a := New(s1)
		b := New(s2)
		got := a.Equal(b)
		if want := strings.EqualFold(s1, s2); got != want {
			t.Errorf("New(%q).Equal(New(%q)) = %t; want: %t", s1, s2, got, want)
		}
		if got != b.Equal(a) {
			t.Errorf("Equal(%q, %q) is not symmetric", s1, s2)
		}
		c := a.Compare(b)
		if (c == 0) != got {
			t.Errorf("New(%q).Compare(New(%q)) = %d; Equal = %t", s1, s2, c, got)
		}
		if neg := b.Compare(a); neg != -c {
			t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", s1, s2, c, s2, s1, neg)
		}
		if got && a.Hash() != b.Hash() {
			t.Errorf("New(%q) and New(%q) are equal but hash differently", s1, s2)
		}
	})
}

// FuzzEqualASCII cross-checks the AsciiFold policy against byte-wise
// ASCII lowering.
func FuzzEqualASCII(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed[0], seed[1])
	}
	f.Fuzz(func(t *testing.T, s1, s2 string) {
		a := ASCII(s1)
		b := ASCII(s2)
		l1 := lowerASCII(s1)
		l2 := lowerASCII(s2)
		got := a.Equal(b)
		if want := l1 == l2; got != want {
			t.Errorf("ASCII(%q).Equal(ASCII(%q)) = %t; want: %t", s1, s2, got, want)
		}
		if c, want := a.Compare(b), strings.Compare(l1, l2); c != want {
			t.Errorf("ASCII(%q).Compare(ASCII(%q)) = %d; want: %d", s1, s2, c, want)
		}
		if got && a.Hash() != b.Hash() {
			t.Errorf("ASCII(%q) and ASCII(%q) are equal but hash differently", s1, s2)
		}
	})
}

func FuzzWrapBytes(f *testing.F) {
	f.Add([]byte("abc"))
	f.Add([]byte("αβδ"))
	f.Add([]byte{0xFF})
	f.Add([]byte{0xED, 0xA0, 0x80})
	f.Fuzz(func(t *testing.T, b []byte) {
		w, err := WrapBytes[UnicodeFold](b)
		if utf8.Valid(b) {
			if err != nil {
				t.Fatalf("WrapBytes(%q) = %v", b, err)
			}
			if w.String() != string(b) {
				t.Errorf("WrapBytes(%q).String() = %q", b, w.String())
			}
		} else if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("WrapBytes(%q) = %v; want: ErrInvalidEncoding", b, err)
		}
	})
}

// TestEqualFoldRunes sweeps the cased categories rune by rune, checking
// single-rune equality against strings.EqualFold for the rune's case
// mappings and fold successor.
func TestEqualFoldRunes(t *testing.T) {
	rt := rangetable.Merge(unicode.L, unicode.Mn, unicode.Nl, unicode.So)
	check := func(r1, r2 rune) {
		s1 := string(r1)
		s2 := string(r2)
		got := New(s1).Equal(New(s2))
		if want := strings.EqualFold(s1, s2); got != want {
			t.Errorf("New(%q).Equal(New(%q)) = %t; want: %t", s1, s2, got, want)
		}
		if got && New(s1).Hash() != New(s2).Hash() {
			t.Errorf("New(%q) and New(%q) are equal but hash differently", s1, s2)
		}
	}
	assigned.Visit(rt, func(r rune) {
		check(r, r)
		check(r, unicode.ToLower(r))
		check(r, unicode.ToUpper(r))
		check(r, unicode.SimpleFold(r))
	})
}
