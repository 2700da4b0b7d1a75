package typediscover

import "github.com/gnolang/typediscover/internal/types"

// Resolve finalizes a field once all of its characters have been fed
// through ProcessChar, given the total raw character count. It applies a
// fixed set of ordered rules, admitting a few false positives ("8e" ->
// FLOAT; "23j-43" and similar -> COMPLEX) that a downstream numeric
// converter is expected to reject.
func (f *FieldState) Resolve(count int) types.FieldType {
	if count == 0 {
		return types.Empty
	}
	if f.resolvedField == types.String {
		return types.String
	}
	if f.countBool == 4 && f.countNotSpace == 4 {
		return types.Bool
	}
	if f.countBool == -5 && f.countNotSpace == 5 {
		return types.Bool
	}
	if f.countNaN == 3 && f.countNotSpace == 3 {
		return types.Float
	}
	if f.contiguousNumeric {
		switch {
		case f.countDigit == 0:
			return types.String
		case f.countJ == 0 && f.countE == 0 && f.countDecimal == 0 &&
			f.countParenOpen == 0 && f.countParenClose == 0:
			return types.Int
		case f.countJ == 0 && f.countParenOpen == 0 && f.countParenClose == 0 &&
			(f.countDecimal == 1 || f.countE == 1):
			return types.Float
		case f.countJ == 1 && sameParenPresence(f.countParenOpen, f.countParenClose):
			return types.Complex
		case f.countJ == 0 && f.countParenOpen == 1 && f.countParenClose == 1:
			return types.Complex
		}
	}
	return types.String
}

func sameParenPresence(open, close_ int) bool {
	return (open == 1 && close_ == 1) || (open == 0 && close_ == 0)
}
