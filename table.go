package typediscover

import (
	"context"
	"fmt"
	"sync"

	"github.com/gnolang/typediscover/internal/types"
)

// DiscoverColumns infers one FieldType per column of a rectangular table
// of already-split fields (rows[r][c] is row r, column c). Each column is
// driven by its own FieldState in its own goroutine — distinct FieldState
// instances need no coordination, and each goroutine owns a disjoint
// index into results, so no mutex is needed around it.
func DiscoverColumns(ctx context.Context, rows [][]string) ([]types.FieldType, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := len(rows[0])
	results := make([]types.FieldType, cols)

	var wg sync.WaitGroup
	errs := make([]error, cols)

	for col := 0; col < cols; col++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			state := New()
			for r, row := range rows {
				select {
				case <-ctx.Done():
					errs[col] = ctx.Err()
					return
				default:
				}
				if col >= len(row) {
					errs[col] = fmt.Errorf("row %d: expected %d columns, got %d", r, cols, len(row))
					return
				}
				state.Process(row[col])
			}
			results[col] = state.Aggregate
		}(col)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
