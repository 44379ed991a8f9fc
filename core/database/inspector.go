package database

import "gorm.io/gorm"

// MissingTables returns the subset of tables not present in the connected
// schema. The DDL is applied out of band, so syncs check for their target
// tables up front instead of failing mid-write.
func MissingTables(db *gorm.DB, tables []string) []string {
	var missing []string
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}
