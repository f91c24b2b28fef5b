package query

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// Table names come from the URL and end up inside SQL text, where they cannot
// be bound. Nothing reaches the database unless it matches this pattern.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var (
	ErrInvalidTableName = errors.New("invalid table name")
	ErrTableNotFound    = errors.New("table not found")
)

// ValidTableName reports whether name may be interpolated as an identifier.
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// HasMore reports whether rows remain after the page [offset, offset+limit).
func HasMore(offset, limit int, total int64) bool {
	return int64(offset)+int64(limit) < total
}

type TableSummary struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ColumnInfo struct {
	Name       string  `json:"column_name" gorm:"column:column_name"`
	DataType   string  `json:"data_type" gorm:"column:data_type"`
	IsNullable string  `json:"is_nullable" gorm:"column:is_nullable"`
	Default    *string `json:"column_default" gorm:"column:column_default"`
	MaxLength  *int64  `json:"character_maximum_length" gorm:"column:character_maximum_length"`
}

// dialect hides the catalog differences between postgres and sqlite.
type dialect interface {
	tables(ctx context.Context, db *gorm.DB) ([]TableSummary, error)
	columns(ctx context.Context, db *gorm.DB, table string) ([]ColumnInfo, error)
	isText(column ColumnInfo) bool
}

type catalogQuery struct {
	db      *gorm.DB
	dialect dialect
}

func newCatalogQuery(db *gorm.DB) *catalogQuery {
	var d dialect = postgresDialect{}
	if db != nil && db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		d = sqliteDialect{}
	}
	return &catalogQuery{db: db, dialect: d}
}

// ListTables returns the user tables of the database.
func (q *catalogQuery) ListTables(ctx context.Context) ([]TableSummary, error) {
	tables, err := q.dialect.tables(ctx, q.db)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// GetTableInfo returns column metadata; an unknown table yields no columns.
func (q *catalogQuery) GetTableInfo(ctx context.Context, table string) ([]ColumnInfo, error) {
	if !ValidTableName(table) {
		return nil, ErrInvalidTableName
	}
	columns, err := q.dialect.columns(ctx, q.db, table)
	if err != nil {
		return nil, fmt.Errorf("describe table %s: %w", table, err)
	}
	return columns, nil
}

// GetTableRowCount counts every row of the table.
func (q *catalogQuery) GetTableRowCount(ctx context.Context, table string) (int64, error) {
	return q.CountTableRows(ctx, table, "")
}

// CountTableRows counts the rows matching search, with the same predicate
// GetTableData applies. With a search term this is the filtered total, not
// the size of the table; use GetTableRowCount for that.
func (q *catalogQuery) CountTableRows(ctx context.Context, table, search string) (int64, error) {
	if !ValidTableName(table) {
		return 0, ErrInvalidTableName
	}
	var where string
	var args []any
	if strings.TrimSpace(search) != "" {
		columns, err := q.GetTableInfo(ctx, table)
		if err != nil {
			return 0, err
		}
		if len(columns) == 0 {
			return 0, ErrTableNotFound
		}
		where, args = q.searchPredicate(columns, search)
	}
	var total int64
	sql := "SELECT COUNT(*) FROM " + q.quote(table) + where
	if err := q.db.WithContext(ctx).Raw(sql, args...).Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", table, err)
	}
	return total, nil
}

// GetTableData returns one page of rows ordered by the first column. A
// non-empty search is matched case-insensitively against every text column;
// tables without text columns ignore it.
func (q *catalogQuery) GetTableData(ctx context.Context, table string, limit, offset int, search string) ([]map[string]any, error) {
	columns, err := q.GetTableInfo(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, ErrTableNotFound
	}
	where, args := q.searchPredicate(columns, search)
	sql := "SELECT * FROM " + q.quote(table) + where +
		" ORDER BY " + q.quote(columns[0].Name) + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows := []map[string]any{}
	if err := q.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", table, err)
	}
	for _, row := range rows {
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
	}
	return rows, nil
}

// searchPredicate ORs a LIKE over the text columns. It is empty when search
// is blank or no column is text.
func (q *catalogQuery) searchPredicate(columns []ColumnInfo, search string) (string, []any) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	pattern := likePattern(search)
	var (
		conditions []string
		args       []any
	)
	for _, column := range columns {
		if !q.dialect.isText(column) {
			continue
		}
		conditions = append(conditions, "LOWER(CAST("+q.quote(column.Name)+" AS TEXT)) LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " OR "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lowercases search, escapes LIKE wildcards and wraps it for a
// substring match with ESCAPE '\'. sqlite's LOWER only folds ASCII, so
// non-ASCII letters match case-insensitively on postgres only.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}

func (q *catalogQuery) quote(identifier string) string {
	var b strings.Builder
	q.db.Dialector.QuoteTo(&b, identifier)
	return b.String()
}
