package query

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// Q is the default query object, set by SetDefault.
	Q = new(Query)

	ErrAlreadyArchived = errors.New("project is already archived")
	ErrNotArchived     = errors.New("project is not archived")
)

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Query groups the typed data-access functions over one *gorm.DB.
type Query struct {
	db *gorm.DB

	Project  *projectQuery
	Activity *activityQuery
	Process  *processQuery
	Catalog  *catalogQuery
}

func SetDefault(db *gorm.DB) {
	*Q = *Use(db)
}

func Use(db *gorm.DB) *Query {
	q := &Query{db: db}
	q.Activity = &activityQuery{db: db}
	q.Project = &projectQuery{db: db}
	q.Process = &processQuery{db: db}
	q.Catalog = newCatalogQuery(db)
	return q
}

// DB returns the underlying connection.
func (q *Query) DB() *gorm.DB {
	return q.db
}

// Ping checks that the database answers.
func (q *Query) Ping(ctx context.Context) error {
	sqlDB, err := q.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
