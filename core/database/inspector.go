package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one column of a table definition, normalized to lowercase.
// Only the pieces schema verification needs are kept.
type ColumnInfo struct {
	Field string
	Type  string
}

// GetTableColumns lists the columns of a table straight from the database,
// bypassing GORM's migrator so the check sees what is actually on disk. The
// history store uses it to detect tables written by older versions of the
// tool. A missing table yields an empty list, not an error.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == DriverSQLite {
		return sqliteColumns(db, tableName)
	}
	return mysqlColumns(db, tableName)
}

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	// PRAGMA table_info reports cid, name, type, notnull, dflt_value, pk;
	// Scan ignores the result columns the struct does not carry.
	var rows []struct {
		Name string
		Type string
	}
	query := fmt.Sprintf("PRAGMA table_info('%s')", tableName)
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, ColumnInfo{
			Field: strings.ToLower(row.Name),
			Type:  strings.ToLower(row.Type),
		})
	}
	return columns, nil
}

func mysqlColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	query := fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)
	if err := db.Raw(query).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}
