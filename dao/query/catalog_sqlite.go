package query

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var sqliteLengthPattern = regexp.MustCompile(`\((\d+)\)`)

type sqliteDialect struct{}

type sqliteColumn struct {
	Cid       int     `gorm:"column:cid"`
	Name      string  `gorm:"column:name"`
	Type      string  `gorm:"column:type"`
	NotNull   int     `gorm:"column:notnull"`
	DfltValue *string `gorm:"column:dflt_value"`
	Pk        int     `gorm:"column:pk"`
}

func (sqliteDialect) tables(ctx context.Context, db *gorm.DB) ([]TableSummary, error) {
	tables := []TableSummary{}
	err := db.WithContext(ctx).Raw(`
		SELECT name, type
		FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name`).Scan(&tables).Error
	return tables, err
}

// columns reads PRAGMA table_info; table has already passed ValidTableName.
func (sqliteDialect) columns(ctx context.Context, db *gorm.DB, table string) ([]ColumnInfo, error) {
	var raw []sqliteColumn
	if err := db.WithContext(ctx).Raw(`PRAGMA table_info("` + table + `")`).Scan(&raw).Error; err != nil {
		return nil, err
	}
	columns := make([]ColumnInfo, 0, len(raw))
	for _, c := range raw {
		nullable := "YES"
		if c.NotNull == 1 {
			nullable = "NO"
		}
		column := ColumnInfo{
			Name:       c.Name,
			DataType:   strings.ToLower(c.Type),
			IsNullable: nullable,
			Default:    c.DfltValue,
		}
		if m := sqliteLengthPattern.FindStringSubmatch(c.Type); m != nil {
			if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				column.MaxLength = &n
			}
		}
		columns = append(columns, column)
	}
	return columns, nil
}

func (sqliteDialect) isText(column ColumnInfo) bool {
	t := strings.ToUpper(column.DataType)
	return strings.Contains(t, "CHAR") || strings.Contains(t, "TEXT") || strings.Contains(t, "CLOB")
}
