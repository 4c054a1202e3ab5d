// Package dedup removes repeated rows from the aggregated buckets.
//
// Two rows are duplicates when they agree on the statistics year-month,
// province and district columns and their full JSON serialization is
// identical. Rows that share the three key columns but differ anywhere else
// are both kept.
package dedup

import (
	"fmt"

	"github.com/greendata20/disablility-monitoring/csvparser/entities"
)

type rowKey struct {
	yearMonth string
	province  string
	district  string
	signature string
}

// Rows returns rows without duplicates, keeping the first occurrence of each
// row in its original position.
func Rows(rows []entities.Row) ([]entities.Row, error) {
	seen := make(map[rowKey]struct{}, len(rows))
	kept := make([]entities.Row, 0, len(rows))

	for i, row := range rows {
		key, err := keyOf(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build key for row %d: %w", i, err)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	return kept, nil
}

// Dataset deduplicates every bucket in place and returns how many rows were
// removed from each bucket.
func Dataset(dataset *entities.Dataset) (map[string]int, error) {
	removed := make(map[string]int, len(dataset.Buckets()))
	for _, bucket := range dataset.Buckets() {
		rows, err := Rows(bucket.Rows)
		if err != nil {
			return nil, fmt.Errorf("failed to deduplicate %s: %w", bucket.Name, err)
		}
		removed[bucket.Name] = len(bucket.Rows) - len(rows)
		bucket.Rows = rows
	}
	return removed, nil
}

func keyOf(row entities.Row) (rowKey, error) {
	signature, err := row.MarshalJSON()
	if err != nil {
		return rowKey{}, err
	}
	return rowKey{
		yearMonth: keyField(row, entities.ColumnYearMonth),
		province:  keyField(row, entities.ColumnProvince),
		district:  keyField(row, entities.ColumnDistrict),
		signature: string(signature),
	}, nil
}

// keyField returns the text of a key column, or "" when it is absent.
func keyField(row entities.Row, name string) string {
	v, ok := row.Get(name)
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
