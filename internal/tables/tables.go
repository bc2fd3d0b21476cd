// Copyright 2024 The unicase Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package tables provides the simple case-folding table used by unicase.
package tables

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// foldPair maps a rune to the canonical rune of its case-folding orbit.
type foldPair struct {
	From uint32
	To   uint32
}

// caseFolds returns the fold table: an entry for every rune whose
// canonical fold differs from itself, sorted by From. Built once on
// first use and immutable afterwards.
var caseFolds = sync.OnceValue(buildCaseFolds)

func buildCaseFolds() []foldPair {
	pairs := make([]foldPair, 0, 2848)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		c := r
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if f < c {
				c = f
			}
		}
		if c != r {
			pairs = append(pairs, foldPair{From: uint32(r), To: uint32(c)})
		}
	}
	return pairs
}

// CaseFold returns the canonical rune of r's simple case-folding orbit:
// the smallest rune that compares equal to r under simple Unicode case
// folding. Runes that do not participate in case folding fold to
// themselves, so CaseFold is total and idempotent.
func CaseFold(r rune) rune {
	if uint32(r) < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}
	folds := caseFolds()
	i, ok := slices.BinarySearchFunc(folds, uint32(r), func(p foldPair, key uint32) int {
		switch {
		case p.From < key:
			return -1
		case p.From > key:
			return 1
		default:
			return 0
		}
	})
	if ok {
		return rune(folds[i].To)
	}
	return r
}

// FoldOrbit returns the runes that compare equal to r under simple case
// folding, in increasing order. The first element is CaseFold(r) and the
// orbit always contains r itself.
func FoldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	slices.Sort(orbit)
	return orbit
}

// FoldPairs calls fn for each entry of the fold table in order.
func FoldPairs(fn func(from, to rune)) {
	for _, p := range caseFolds() {
		fn(rune(p.From), rune(p.To))
	}
}
