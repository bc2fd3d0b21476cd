package unicase

import "github.com/zeebo/xxh3"

// equalASCII reports whether s and t are equal after folding the ASCII
// letters of both. Non-ASCII bytes compare literally.
func equalASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _lower[s[i]] != _lower[t[i]] {
			return false
		}
	}
	return true
}

// compareASCII is a lexicographic comparison over the folded bytes of
// s and t. A shared prefix exhausting one operand orders it first.
func compareASCII(s, t string) int {
	for i := 0; i < len(s) && i < len(t); i++ {
		sr := _lower[s[i]]
		tr := _lower[t[i]]
		if sr != tr {
			return clamp(int(sr) - int(tr))
		}
	}
	return clamp(len(s) - len(t))
}

// hashASCII streams the folded bytes of s into h through a small stack
// buffer so that no folded copy of s is ever materialized.
func hashASCII(h *xxh3.Hasher, s string) {
	var buf [128]byte
	for len(s) > 0 {
		n := copy(buf[:], s)
		for i := 0; i < n; i++ {
			buf[i] = _lower[buf[i]]
		}
		h.Write(buf[:n])
		s = s[n:]
	}
}

// _lower maps the ASCII upper case letters to lower case and every other
// byte to itself.
var _lower = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
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
