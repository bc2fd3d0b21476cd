package unicase

import (
	"unicode/utf8"

	"github.com/zeebo/xxh3"

	"github.com/textcase/unicase/internal/tables"
)

// equalFold reports whether s and t are equal under Unicode simple case
// folding. Both operands are decoded in parallel; nothing is allocated.
func equalFold(s, t string) bool {
	// ASCII fast path: byte-wise until the first non-ASCII byte.
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || _lower[sr] == _lower[tr] {
			continue
		}
		return false
	}
	return len(s) == len(t)

hasUnicode:
	s = s[i:]
	t = t[i:]
	for _, sr := range s {
		// If t is exhausted the strings are not equal.
		if len(t) == 0 {
			return false
		}

		// Extract first rune from second string.
		var tr rune
		if t[0] < utf8.RuneSelf {
			tr, t = rune(t[0]), t[1:]
		} else {
			r, size := utf8.DecodeRuneInString(t)
			tr, t = r, t[size:]
		}

		// Easy case.
		if tr == sr {
			continue
		}
		if tables.CaseFold(sr) != tables.CaseFold(tr) {
			return false
		}
	}
	return len(t) == 0
}

// compareFold is a lexicographic comparison over the canonical folds of
// the codepoints of s and t, with the usual prefix ordering. The ASCII
// fast path folds through _fold so that mixed ASCII/Unicode inputs order
// consistently with the rune-wise path.
func compareFold(s, t string) int {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || _fold[sr] == _fold[tr] {
			continue
		}
		return clamp(int(_fold[sr]) - int(_fold[tr]))
	}
	return clamp(len(s) - len(t))

hasUnicode:
	s = s[i:]
	t = t[i:]
	for _, sr := range s {
		// If t is exhausted s sorts after it.
		if len(t) == 0 {
			return 1
		}

		var tr rune
		if t[0] < utf8.RuneSelf {
			tr, t = rune(t[0]), t[1:]
		} else {
			r, size := utf8.DecodeRuneInString(t)
			tr, t = r, t[size:]
		}

		if tr == sr {
			continue
		}
		sf := tables.CaseFold(sr)
		tf := tables.CaseFold(tr)
		if sf != tf {
			return clamp(int(sf) - int(tf))
		}
	}
	if len(t) == 0 {
		return 0
	}
	return -1
}

// hashFold streams the UTF-8 encoding of each folded codepoint of s into
// h. At most utf8.UTFMax bytes of scratch are used per codepoint.
func hashFold(h *xxh3.Hasher, s string) {
	var buf [128]byte
	n := 0
	for _, r := range s {
		if n > len(buf)-utf8.UTFMax {
			h.Write(buf[:n])
			n = 0
		}
		if r < utf8.RuneSelf {
			buf[n] = _fold[byte(r)]
			n++
		} else {
			n += utf8.EncodeRune(buf[n:], tables.CaseFold(r))
		}
	}
	if n > 0 {
		h.Write(buf[:n])
	}
}

// _fold maps each byte to its canonical fold under UnicodeFold: the
// smallest rune of its fold orbit, which for ASCII letters is the upper
// case letter. Matches tables.CaseFold over the ASCII range.
var _fold = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'A', 'B', 'C',
	'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_', '`', 'A',
	'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '{', '|', '}', '~', 127,
	128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172,
	173, 174, 175, 176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187,
	188, 189, 190, 191, 192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 217,
	218, 219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232,
	233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247,
	248, 249, 250, 251, 252, 253, 254, 255,
}
