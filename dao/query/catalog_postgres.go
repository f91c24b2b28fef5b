package query

import (
	"context"

	"gorm.io/gorm"
)

type postgresDialect struct{}

func (postgresDialect) tables(ctx context.Context, db *gorm.DB) ([]TableSummary, error) {
	tables := []TableSummary{}
	err := db.WithContext(ctx).Raw(`
		SELECT table_name AS name, table_type AS type
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`).Scan(&tables).Error
	return tables, err
}

func (postgresDialect) columns(ctx context.Context, db *gorm.DB, table string) ([]ColumnInfo, error) {
	columns := []ColumnInfo{}
	err := db.WithContext(ctx).Raw(`
		SELECT column_name, data_type, is_nullable, column_default, character_maximum_length
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ?
		ORDER BY ordinal_position`, table).Scan(&columns).Error
	return columns, err
}

func (postgresDialect) isText(column ColumnInfo) bool {
	switch column.DataType {
	case "text", "character varying", "character", "citext":
		return true
	}
	return false
}
