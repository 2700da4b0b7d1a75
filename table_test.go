package typediscover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/typediscover/internal/types"
)

func TestDiscoverColumns(t *testing.T) {
	rows := [][]string{
		{"id", "score", "label"},
		{"1", "2.5", "true"},
		{"2", "3", "false"},
		{"3", "", "true"},
	}

	got, err := DiscoverColumns(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// header rows are plain text, so every column starts STRING and stays
	// STRING once promoted against it.
	assert.Equal(t, types.String, got[0])
	assert.Equal(t, types.String, got[1])
	assert.Equal(t, types.String, got[2])
}

func TestDiscoverColumnsWithoutHeader(t *testing.T) {
	rows := [][]string{
		{"1", "2.5", "true"},
		{"2", "3", "false"},
		{"3", "", "true"},
	}

	got, err := DiscoverColumns(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, []types.FieldType{types.Int, types.Float, types.Bool}, got)
}

func TestDiscoverColumnsEmpty(t *testing.T) {
	got, err := DiscoverColumns(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDiscoverColumnsRaggedRowError(t *testing.T) {
	rows := [][]string{
		{"1", "2"},
		{"3"},
	}
	_, err := DiscoverColumns(context.Background(), rows)
	assert.Error(t, err)
}

func TestDiscoverColumnsRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := [][]string{{"1", "2"}, {"3", "4"}}
	_, err := DiscoverColumns(ctx, rows)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverColumnsDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)

	rows := [][]string{{"1"}, {"2"}}
	_, err := DiscoverColumns(ctx, rows)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
