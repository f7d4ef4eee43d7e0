package sqlite

import (
	"fmt"
	"time"

	"github.com/fwojciec/popscrape"
)

// parseTimestamp reads an RFC3339 column value. Timestamps are only ever
// written by this package, so a parse failure means the archive row is
// corrupt rather than bad user input.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, popscrape.Errorf(popscrape.EINTERNAL, "corrupt %s value %q: %v", column, value, err)
	}
	return t, nil
}

// paginationClause renders LIMIT/OFFSET for positive values. SQLite
// rejects OFFSET without LIMIT, so a bare offset gets LIMIT -1.
func paginationClause(limit, offset int) string {
	switch {
	case limit > 0 && offset > 0:
		return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	case limit > 0:
		return fmt.Sprintf(" LIMIT %d", limit)
	case offset > 0:
		return fmt.Sprintf(" LIMIT -1 OFFSET %d", offset)
	}
	return ""
}
