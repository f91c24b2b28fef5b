package service_test

import (
	"fmt"
	"net/http"
	"testing"

	"devplatform/dao/query"
	"devplatform/response"
	"devplatform/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T, s *testServer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": fmt.Sprintf("project-%03d", i)}, http.StatusCreated, nil)
	}
}

func TestListTables(t *testing.T) {
	s := newTestServer(t)
	seedProjects(t, s, 3)

	var tables []service.TableResp
	s.doJSON(t, http.MethodGet, "/api/database/tables", nil, http.StatusOK, &tables)

	byName := map[string]service.TableResp{}
	for _, table := range tables {
		byName[table.Name] = table
	}
	require.Contains(t, byName, "projects")
	projects := byName["projects"]
	assert.EqualValues(t, 3, projects.RowCount)
	assert.Equal(t, len(projects.Columns), projects.ColumnCount)
	assert.NotZero(t, projects.ColumnCount)
	assert.EqualValues(t, 3, byName["activities"].RowCount)
}

func TestTableDataPagination(t *testing.T) {
	s := newTestServer(t)
	seedProjects(t, s, 5)

	var page service.TableDataResp
	s.doJSON(t, http.MethodGet, "/api/database/tables/projects?limit=2&offset=2", nil, http.StatusOK, &page)
	assert.Equal(t, "projects", page.TableName)
	assert.Len(t, page.Data, 2)
	assert.NotEmpty(t, page.Columns)
	assert.Equal(t, service.Pagination{Limit: 2, Offset: 2, Total: 5, HasMore: true}, page.Pagination)
	assert.Nil(t, page.SearchTerm)

	s.doJSON(t, http.MethodGet, "/api/database/tables/projects?limit=2&offset=4", nil, http.StatusOK, &page)
	assert.Len(t, page.Data, 1)
	assert.False(t, page.Pagination.HasMore)

	s.doJSON(t, http.MethodGet, "/api/database/tables/projects", nil, http.StatusOK, &page)
	assert.Equal(t, 100, page.Pagination.Limit)
	assert.Equal(t, 0, page.Pagination.Offset)

	s.doJSON(t, http.MethodGet, "/api/database/tables/projects?limit=5000", nil, http.StatusOK, &page)
	assert.Equal(t, 1000, page.Pagination.Limit)

	for _, bad := range []string{"limit=0", "limit=abc", "offset=-1", "offset=x"} {
		msg := s.errorMessage(t, http.MethodGet, "/api/database/tables/projects?"+bad, nil, http.StatusBadRequest)
		assert.Equal(t, response.InvalidPagination, msg, bad)
	}
}

func TestTableDataSearch(t *testing.T) {
	s := newTestServer(t)
	seedProjects(t, s, 3)
	s.doJSON(t, http.MethodPost, "/api/projects", map[string]any{"name": "Needle"}, http.StatusCreated, nil)

	var page service.TableDataResp
	s.doJSON(t, http.MethodGet, "/api/database/tables/projects?search=needle", nil, http.StatusOK, &page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Needle", page.Data[0]["name"])
	assert.EqualValues(t, 1, page.Pagination.Total)
	require.NotNil(t, page.SearchTerm)
	assert.Equal(t, "needle", *page.SearchTerm)
}

func TestTableDataSearchWithoutTextColumns(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.q.DB().Exec(`CREATE TABLE counters (id INTEGER PRIMARY KEY, hits INTEGER NOT NULL)`).Error)
	require.NoError(t, s.q.DB().Exec(`INSERT INTO counters (hits) VALUES (1), (2)`).Error)

	var page service.TableDataResp
	s.doJSON(t, http.MethodGet, "/api/database/tables/counters?search=anything", nil, http.StatusOK, &page)
	assert.Len(t, page.Data, 2)
	assert.EqualValues(t, 2, page.Pagination.Total)
}

func TestTableDataInvalidName(t *testing.T) {
	s := newTestServer(t)
	// A closed pool fails any query, so a 400 here proves no SQL was issued.
	require.NoError(t, query.Close(s.q.DB()))

	for _, name := range []string{"bad-name", "1abc", "projects%3BDROP"} {
		msg := s.errorMessage(t, http.MethodGet, "/api/database/tables/"+name, nil, http.StatusBadRequest)
		assert.Equal(t, response.InvalidTableName, msg, name)
	}
	s.errorMessage(t, http.MethodGet, "/api/database/tables/projects", nil, http.StatusInternalServerError)
}

func TestTableDataUnknownTable(t *testing.T) {
	s := newTestServer(t)

	msg := s.errorMessage(t, http.MethodGet, "/api/database/tables/no_such_table", nil, http.StatusNotFound)
	assert.Equal(t, response.TableNotFound, msg)
}
