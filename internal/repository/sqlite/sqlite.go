package sqlite

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"go-vehicle-api/internal/model"
)

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func pageClause(page model.Page) (string, []any) {
	if !page.Enabled() {
		return "", nil
	}

	return " LIMIT ? OFFSET ?", []any{page.Size, page.Offset()}
}
