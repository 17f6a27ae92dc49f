package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/purduehcr/points-api/internal/models"
)

// GetUser resolves a user by auth id. A missing row is the classified
// UnknownUser response, not a bare sql.ErrNoRows.
func GetUser(ctx context.Context, q Queryer, id string) (*models.User, error) {
	row := q.QueryRowContext(ctx, `
SELECT id, first_name, last_name, house, permission_level, floor_id, total_points, semester_points
FROM users WHERE id = $1`, id)

	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.House, &u.PermissionLevel, &u.FloorID, &u.TotalPoints, &u.SemesterPoints)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UnknownUser()
		}
		return nil, err
	}
	return &u, nil
}

// VerifyUserHasCorrectPermission fails with InvalidPermissionLevel unless
// the user's level is a member of the allowed set.
func VerifyUserHasCorrectPermission(u *models.User, allowed []models.PermissionLevel) error {
	if !u.PermissionLevel.In(allowed) {
		return models.InvalidPermissionLevel()
	}
	return nil
}
