package highlight

// isNumber reports whether word is a numeric literal:
//
//	decimal: digits with '_' grouping, an optional fraction and an optional
//	         exponent, e.g. 1_000, 3.14, 6e23, 2.5E3
//	radix:   0x1F, 0o17, 0b1010, with '_' grouping
//
// Every '_' must follow a digit and the literal must end in a digit.
func isNumber(word string) bool {
	if word == "" || !isDigit(word[0]) {
		return false
	}
	if len(word) > 1 && word[0] == '0' {
		switch word[1] {
		case 'x', 'X':
			return isRadixDigits(word[2:], isHexDigit)
		case 'o', 'O':
			return isRadixDigits(word[2:], isOctalDigit)
		case 'b', 'B':
			return isRadixDigits(word[2:], isBinaryDigit)
		}
	}

	var prev byte
	seenDot, seenExp := false, false
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case isDigit(c):
		case c == '_':
			if !isDigit(prev) {
				return false
			}
		case c == '.':
			if seenDot || seenExp || !isDigit(prev) {
				return false
			}
			seenDot = true
		case c == 'e' || c == 'E':
			if seenExp || !isDigit(prev) {
				return false
			}
			seenExp = true
		default:
			return false
		}
		prev = c
	}
	return isDigit(prev)
}

func isRadixDigits(s string, digit func(byte) bool) bool {
	if s == "" {
		return false
	}
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case digit(c):
		case c == '_':
			if !digit(prev) {
				return false
			}
		default:
			return false
		}
		prev = c
	}
	return digit(prev)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctalDigit(c byte) bool { return '0' <= c && c <= '7' }

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
