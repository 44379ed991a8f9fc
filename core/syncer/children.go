package syncer

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// replaceChildren converges one child table to the current upstream snapshot:
// all rows for the parent key are deleted, then the extracted set is
// reinserted. The upstream API has no change feed, so replace-by-snapshot is
// the only strategy that also propagates removals.
//
// Records whose composite key repeats within this call are skipped (first
// seen wins); the upstream payload can list the same entry twice and the
// composite unique constraint would reject the duplicate insert.
//
// Must run inside the same transaction as the parent upsert.
func replaceChildren(tx *gorm.DB, ct ChildTable, parentKey any, records []Record) error {
	if err := tx.Table(ct.Table).Where(ct.ParentColumn+" = ?", parentKey).Delete(nil).Error; err != nil {
		return fmt.Errorf("clearing %s: %w", ct.Table, err)
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		rec[ct.ParentColumn] = parentKey
		key := compositeKey(rec, ct.KeyColumns)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if err := tx.Table(ct.Table).Create(map[string]any(rec)).Error; err != nil {
			return fmt.Errorf("inserting into %s: %w", ct.Table, err)
		}
	}
	return nil
}

func compositeKey(rec Record, cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = toString(rec[col])
	}
	return strings.Join(parts, "\x1f")
}
