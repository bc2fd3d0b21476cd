// Copyright 2024 The unicase Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package unicase provides a wrapper type over text that redefines
// equality, ordering, and hashing to be case-insensitive.
//
// A [Text] value binds a string to one of two folding policies:
// [AsciiFold], which folds only the ASCII letters 'A' through 'Z' and
// compares every other byte literally, and [UnicodeFold], which applies
// Unicode simple case folding codepoint by codepoint. The policy is part
// of the type, so values wrapped under different policies cannot be
// compared by mistake.
//
//	a := unicase.New("Content-Type")
//	b := unicase.New("CONTENT-TYPE")
//	a.Equal(b) // true
//
// Comparisons never allocate a folded copy of the input: folding is
// applied transiently, byte by byte or rune by rune, while comparing.
// [Text.Hash] is consistent with [Text.Equal] under the same policy,
// which is what [Map] relies on.
//
// Simple case folding maps each codepoint to exactly one codepoint.
// There is no mechanism for full case folding, that is, for characters
// whose folding changes the number of codepoints (so "Maße" and "MASSE"
// are not equal; see https://pkg.go.dev/unicode#pkg-note-BUG for the
// same restriction in the standard library).
package unicase
