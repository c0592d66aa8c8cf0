package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"go-vehicle-api/internal/model"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// pageClause returns the LIMIT/OFFSET suffix for page, numbering its
// placeholders after the argc already in use.
func pageClause(page model.Page, argc int) (string, []any) {
	if !page.Enabled() {
		return "", nil
	}

	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argc+1, argc+2), []any{page.Size, page.Offset()}
}
