package typediscover

// Character classification for the field scanner. ASCII only, no locale
// awareness — ported directly from the reference discovery algorithm's
// isdigit_ascii/isspace_ascii predicates.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isDecimal(c byte) bool {
	return c == '.'
}

func isParenOpen(c byte) bool {
	return c == '('
}

func isParenClose(c byte) bool {
	return c == ')'
}

// The token-accounting letters below are exhaustive for the true/false/nan
// dispatch table in scanner_field.go: a, e, f, j, l, n, r, s, t, u. Nothing else
// ever contributes to count_bool, count_nan, count_e, or count_j, so there
// is deliberately no isLetter fast path here beyond this fixed set.

func isA(c byte) bool { return c == 'a' || c == 'A' }
func isE(c byte) bool { return c == 'e' || c == 'E' }
func isF(c byte) bool { return c == 'f' || c == 'F' }
func isJ(c byte) bool { return c == 'j' || c == 'J' }
func isL(c byte) bool { return c == 'l' || c == 'L' }
func isN(c byte) bool { return c == 'n' || c == 'N' }
func isR(c byte) bool { return c == 'r' || c == 'R' }
func isS(c byte) bool { return c == 's' || c == 'S' }
func isT(c byte) bool { return c == 't' || c == 'T' }
func isU(c byte) bool { return c == 'u' || c == 'U' }
