package service

import (
	"errors"

	"devplatform/dao/query"
	"devplatform/logutils"
	"devplatform/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultTableLimit = 100
	maxTableLimit     = 1000
)

type TableResp struct {
	query.TableSummary
	RowCount    int64              `json:"row_count"`
	ColumnCount int                `json:"column_count"`
	Columns     []query.ColumnInfo `json:"columns"`
}

type Pagination struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

type TableDataResp struct {
	TableName  string             `json:"table_name"`
	Columns    []query.ColumnInfo `json:"columns"`
	Data       []map[string]any   `json:"data"`
	Pagination Pagination         `json:"pagination"`
	SearchTerm *string            `json:"search_term,omitempty"`
}

func (h *Handler) RegisterDatabase(api *gin.RouterGroup) {
	api.GET("/database/tables", h.ListTables)
	api.GET("/database/tables/:tableName", h.GetTableData)
}

// ListTables returns every table with its columns and row count. A table
// that cannot be described is reported with zero counts.
func (h *Handler) ListTables(c *gin.Context) {
	ctx := c.Request.Context()
	tables, err := h.q.Catalog.ListTables(ctx)
	if err != nil {
		response.InternalError(c, err, response.TablesLoadFailed)
		return
	}
	resp := make([]TableResp, 0, len(tables))
	for _, table := range tables {
		item := TableResp{TableSummary: table, Columns: []query.ColumnInfo{}}
		columns, err := h.q.Catalog.GetTableInfo(ctx, table.Name)
		if err == nil {
			item.RowCount, err = h.q.Catalog.GetTableRowCount(ctx, table.Name)
		}
		if err != nil {
			logutils.Log.WithError(err).WithField("table", table.Name).Warn("describe table")
			item.RowCount = 0
		} else {
			item.Columns = columns
			item.ColumnCount = len(columns)
		}
		resp = append(resp, item)
	}
	response.Success(c, resp)
}

// GetTableData returns one page of a table, optionally filtered by search.
// The table name is checked before any SQL is issued.
func (h *Handler) GetTableData(c *gin.Context) {
	tableName := c.Param("tableName")
	if !query.ValidTableName(tableName) {
		response.BadRequestError(c, response.InvalidTableName)
		return
	}
	limit, err := queryInt(c, "limit", defaultTableLimit)
	if err != nil || limit < 1 {
		response.BadRequestError(c, response.InvalidPagination)
		return
	}
	if limit > maxTableLimit {
		limit = maxTableLimit
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		response.BadRequestError(c, response.InvalidPagination)
		return
	}
	var searchTerm *string
	search := c.Query("search")
	if search != "" {
		searchTerm = &search
	}

	ctx := c.Request.Context()
	columns, err := h.q.Catalog.GetTableInfo(ctx, tableName)
	if err != nil {
		h.tableError(c, err)
		return
	}
	if len(columns) == 0 {
		response.NotFoundError(c, response.TableNotFound)
		return
	}
	rows, err := h.q.Catalog.GetTableData(ctx, tableName, limit, offset, search)
	if err != nil {
		h.tableError(c, err)
		return
	}
	total, err := h.q.Catalog.CountTableRows(ctx, tableName, search)
	if err != nil {
		h.tableError(c, err)
		return
	}

	response.Success(c, TableDataResp{
		TableName: tableName,
		Columns:   columns,
		Data:      rows,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			Total:   total,
			HasMore: query.HasMore(offset, limit, total),
		},
		SearchTerm: searchTerm,
	})
}

func (h *Handler) tableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidTableName):
		response.BadRequestError(c, response.InvalidTableName)
	case errors.Is(err, query.ErrTableNotFound):
		response.NotFoundError(c, response.TableNotFound)
	default:
		response.InternalError(c, err, response.TableDataLoadFailed)
	}
}
