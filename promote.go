package typediscover

import "github.com/gnolang/typediscover/internal/types"

// Promote folds a field-level verdict into a running aggregate. The
// verdicts form a monotone lattice:
//
//	UNKNOWN < EMPTY < INT < FLOAT < COMPLEX
//
// with BOOL and STRING as disjoint peers. Mixing STRING with anything, or
// BOOL with anything but BOOL, collapses the aggregate to STRING.
func Promote(prev, next types.FieldType) types.FieldType {
	switch prev {
	case types.Unknown:
		return next
	case types.Empty:
		// An aggregate that has only ever seen EMPTY fields carries no
		// numeric constraint yet. BOOL does not absorb EMPTY, so EMPTY then
		// BOOL collapses to STRING, the same as BOOL then EMPTY.
		if next == types.Bool {
			return types.String
		}
		return next
	}

	if prev == types.String || next == types.String {
		return types.String
	}

	switch prev {
	case types.Bool:
		if next == types.Bool {
			return types.Bool
		}
		return types.String
	case types.Int:
		switch next {
		case types.Empty, types.Int:
			return types.Int
		case types.Float:
			return types.Float
		case types.Complex:
			return types.Complex
		default:
			return types.String
		}
	case types.Float:
		switch next {
		case types.Empty, types.Int, types.Float:
			return types.Float
		case types.Complex:
			return types.Complex
		default:
			return types.String
		}
	case types.Complex:
		switch next {
		case types.Empty, types.Int, types.Float, types.Complex:
			return types.Complex
		default:
			return types.String
		}
	default:
		return types.String
	}
}

// PromoteAll folds Promote left-to-right over a sequence of field-level
// tags, starting from UNKNOWN. Promote is associative, so callers that
// fold a sequence in chunks (e.g. one goroutine per batch, then a final
// merge) get the same aggregate as a single left fold.
func PromoteAll(tags []types.FieldType) types.FieldType {
	aggregate := types.Unknown
	for _, tag := range tags {
		aggregate = Promote(aggregate, tag)
	}
	return aggregate
}
