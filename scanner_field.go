package typediscover

import "github.com/gnolang/typediscover/internal/types"

// Signal is the scanner's two-state control return: Continue to keep
// feeding characters, Stop once a field's type is already decided so an
// early STRING resolution short-circuits the rest of the field.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// FieldState is the scanner's working memory. It is reused across an
// entire column: Reset clears the per-field counters and flags but
// preserves Aggregate, the running line-level verdict. A FieldState is
// not safe for concurrent use — drive distinct columns with distinct
// instances (see DiscoverColumns).
type FieldState struct {
	Aggregate types.FieldType

	resolvedField        types.FieldType
	previousLeadingSpace bool
	previousNumeric      bool
	contiguousNumeric    bool

	countLeadingSpace int
	countNotSpace     int
	countDigit        int
	countSign         int
	countE            int
	countJ            int
	countDecimal      int
	countParenOpen    int
	countParenClose   int
	countNaN          int
	countBool         int
}

// New returns a FieldState ready to process the first field of a column.
func New() *FieldState {
	f := &FieldState{Aggregate: types.Unknown}
	f.Reset()
	return f
}

// Reset clears the per-field portion of the state ahead of the next
// field. Aggregate is untouched.
func (f *FieldState) Reset() {
	f.resolvedField = types.Unknown
	f.previousLeadingSpace = true
	f.previousNumeric = false
	// contiguousNumeric starts false, not vacuously true: a field's first
	// character decides whether a numeric run has even begun (see
	// ProcessChar's pos_field == 0 branch). Starting it true would abort
	// to STRING on the very first letter of "true"/"false"/"nan".
	f.contiguousNumeric = false

	f.countLeadingSpace = 0
	f.countNotSpace = 0
	f.countDigit = 0
	f.countSign = 0
	f.countE = 0
	f.countJ = 0
	f.countDecimal = 0
	f.countParenOpen = 0
	f.countParenClose = 0
	f.countNaN = 0
	f.countBool = 0
}

func (f *FieldState) resolveString() Signal {
	f.resolvedField = types.String
	return Stop
}

// ProcessChar feeds one raw (untrimmed) character at its zero-based
// position in the field. A field already resolved to STRING returns Stop
// immediately for every subsequent character.
func (f *FieldState) ProcessChar(c byte, pos int) Signal {
	if f.resolvedField == types.String {
		return Stop
	}

	if f.previousLeadingSpace {
		if isSpace(c) {
			f.countLeadingSpace++
			return Continue
		}
		f.previousLeadingSpace = false
	}

	if !isSpace(c) {
		f.countNotSpace++
	}

	posField := pos - f.countLeadingSpace

	numeric := false
	needsTokenFallthrough := false

	switch {
	case isSpace(c):
		f.previousNumeric = false
		return Continue
	case isDigit(c):
		f.countDigit++
		numeric = true
	case isSign(c):
		f.countSign++
		if f.countSign > 4 {
			return f.resolveString()
		}
		numeric = true
	case isParenOpen(c):
		f.countParenOpen++
		if posField != 0 || f.countParenOpen > 1 {
			return f.resolveString()
		}
		numeric = true
	case isParenClose(c):
		f.countParenClose++
		if f.countParenClose > 1 {
			return f.resolveString()
		}
		numeric = true
	case isE(c):
		f.countE++
		if posField == 0 || f.countE > 2 {
			return f.resolveString()
		}
		numeric = true
		needsTokenFallthrough = true
	case isJ(c):
		f.countJ++
		if posField == 0 || f.countJ > 1 {
			return f.resolveString()
		}
		numeric = true
	case isDecimal(c):
		f.countDecimal++
		if f.countDecimal > 2 {
			return f.resolveString()
		}
		numeric = true
	default:
		// non-numeric letter (a, f, l, n, r, s, t, u) or other punctuation
	}

	if numeric {
		if posField == 0 {
			f.contiguousNumeric = true
			f.previousNumeric = true
			return Continue
		}
		if !f.previousNumeric {
			f.contiguousNumeric = false
		}
		f.previousNumeric = true
		if f.contiguousNumeric || !needsTokenFallthrough {
			return Continue
		}
		// contiguity already broke and this is the exponent letter: it
		// still needs token accounting below (pos_field 3 of "true",
		// pos_field 4 of "false").
	} else {
		if f.contiguousNumeric {
			return f.resolveString()
		}
		f.previousNumeric = false
	}

	f.accountToken(c, posField)
	return Continue
}

// accountToken applies the position-sensitive true/false/nan dispatch.
// It is only called for characters that are neither pure space nor a
// digit.
func (f *FieldState) accountToken(c byte, posField int) {
	switch posField {
	case 0:
		switch {
		case isT(c):
			f.countBool++
		case isF(c):
			f.countBool--
		}
		if isN(c) {
			f.countNaN++
		}
	case 1:
		switch {
		case isR(c):
			f.countBool++
		case isA(c):
			f.countBool--
		}
		if isA(c) {
			f.countNaN++
		}
	case 2:
		switch {
		case isU(c):
			f.countBool++
		case isL(c):
			f.countBool--
		}
		if isN(c) {
			f.countNaN++
		}
	case 3:
		switch {
		case isE(c):
			f.countBool++
		case isS(c):
			f.countBool--
		}
	case 4:
		if f.countBool == -4 && isE(c) {
			f.countBool--
		}
	}
}
