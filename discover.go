package typediscover

import "github.com/gnolang/typediscover/internal/types"

// Process resets the scanner, feeds every character of field, resolves
// it, folds the result into Aggregate via Promote, and returns the
// updated aggregate.
func (f *FieldState) Process(field string) types.FieldType {
	f.Reset()
	for i := 0; i < len(field); i++ {
		if f.ProcessChar(field[i], i) == Stop {
			break
		}
	}
	// count is the raw field length regardless of where scanning stopped:
	// an early STRING resolution still needs the true length so a caller
	// inspecting partial state sees a consistent count invariant.
	result := f.Resolve(len(field))
	f.Aggregate = Promote(f.Aggregate, result)
	return f.Aggregate
}

// ProcessLine feeds a whole sequence of fields (e.g. one column's worth
// of values, or one CSV row read column-major) and returns the resulting
// line aggregate.
func (f *FieldState) ProcessLine(fields []string) types.FieldType {
	for _, field := range fields {
		f.Process(field)
	}
	return f.Aggregate
}
