package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/typediscover/internal/types"
)

func TestRenderIncludesEveryColumn(t *testing.T) {
	reports := []types.ColumnReport{
		{Header: "id", Type: types.Int, Fields: 10},
		{Header: "score", Type: types.Float, Fields: 10},
		{Header: "label", Type: types.String, Fields: 10},
	}

	out := Render(reports)
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "score")
	assert.Contains(t, out, "label")
	assert.Contains(t, out, "INT")
	assert.Contains(t, out, "FLOAT")
	assert.Contains(t, out, "STRING")
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "no columns discovered\n", Render(nil))
}

func TestRenderJSON(t *testing.T) {
	reports := []types.ColumnReport{{Header: "id", Type: types.Int, Fields: 3}}
	out, err := RenderJSON(reports)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "id", decoded[0]["header"])
	assert.Equal(t, "INT", decoded[0]["type"])
	assert.Equal(t, float64(3), decoded[0]["fields"])
}
