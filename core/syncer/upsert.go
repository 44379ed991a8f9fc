package syncer

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsert inserts the record, updating every non-key column in place when the
// natural key already exists. All values are bound parameters; calling twice
// with identical input is a no-op update.
func upsert(tx *gorm.DB, table, keyColumn string, rec Record) error {
	updates := make([]string, 0, len(rec))
	for col := range rec {
		if col != keyColumn {
			updates = append(updates, col)
		}
	}
	sort.Strings(updates)

	err := tx.Table(table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: keyColumn}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(map[string]any(rec)).Error
	if err != nil {
		return fmt.Errorf("upsert into %s: %w", table, err)
	}
	return nil
}
