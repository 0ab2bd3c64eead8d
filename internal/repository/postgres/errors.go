package postgres

import (
	"errors"
	"fmt"

	"oxvocab/internal/domain"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError translates constraint violations into domain errors
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pqErr.Constraint)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pqErr.Constraint)
		}
	}
	return err
}

// levelArray turns a level filter into a text[] argument; nil means no filter
func levelArray(levels []domain.Level) interface{} {
	if len(levels) == 0 {
		return pq.Array([]string(nil))
	}
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return pq.Array(out)
}
