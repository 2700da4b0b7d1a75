// Package report renders column type-discovery results as a colorized
// table or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/typediscover/internal/types"
)

var (
	colorBool    = color.New(color.FgGreen)
	colorNumeric = color.New(color.FgCyan)
	colorString  = color.New(color.FgYellow)
	colorEmpty   = color.New(color.FgHiBlack)
)

func colorFor(t types.FieldType) *color.Color {
	switch t {
	case types.Bool:
		return colorBool
	case types.Int, types.Float, types.Complex:
		return colorNumeric
	case types.Empty:
		return colorEmpty
	default:
		return colorString
	}
}

// Render formats reports as an aligned, colorized table: one row per
// column, header name, field count, and inferred type.
func Render(reports []types.ColumnReport) string {
	if len(reports) == 0 {
		return "no columns discovered\n"
	}

	headerWidth := len("COLUMN")
	for _, r := range reports {
		if len(r.Header) > headerWidth {
			headerWidth = len(r.Header)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-8s  %s\n", headerWidth, "COLUMN", "TYPE", "FIELDS")
	for _, r := range reports {
		c := colorFor(r.Type)
		fmt.Fprintf(&b, "%-*s  %s  %d\n", headerWidth, r.Header, c.Sprintf("%-8s", r.Type.String()), r.Fields)
	}
	return b.String()
}

// RenderJSON marshals reports as indented JSON for scripting consumers.
func RenderJSON(reports []types.ColumnReport) ([]byte, error) {
	return json.MarshalIndent(reports, "", "  ")
}
