package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateSnapshot surfaces the (granary_id, date) unique constraint as a
// domain conflict instead of a generic db failure.
var ErrDuplicateSnapshot = errors.New("snapshot already exists for this granary and date")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
