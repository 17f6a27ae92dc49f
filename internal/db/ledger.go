package db

import (
	"context"

	"github.com/purduehcr/points-api/internal/models"
)

// AddPoints applies a point type's value to the house total and the
// resident's running totals; shouldAdd=false reverses it. Two calls with
// opposite directions net to zero, which is how a log flipping outcome
// keeps the ledger consistent.
//
// Increments are relative SQL updates, never read-modify-write, so
// concurrent handlers cannot clobber each other's totals. A missing house
// or resident row is a surfaced ServerError, not a silent skip.
func AddPoints(ctx context.Context, q Queryer, pointType *models.PointType, house, residentID string, shouldAdd bool) error {
	delta := pointType.Value
	if !shouldAdd {
		delta = -delta
	}

	res, err := q.ExecContext(ctx, `UPDATE houses SET total_points = total_points + $1 WHERE name = $2`, delta, house)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ServerError()
	}

	res, err = q.ExecContext(ctx, `
UPDATE users SET total_points = total_points + $1, semester_points = semester_points + $1
WHERE id = $2`, delta, residentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ServerError()
	}
	return nil
}
