package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/purduehcr/points-api/internal/models"
)

func GetPointType(ctx context.Context, q Queryer, id int) (*models.PointType, error) {
	row := q.QueryRowContext(ctx, `
SELECT id, name, description, value, enabled, permission_level, residents_can_submit
FROM point_types WHERE id = $1`, id)

	var pt models.PointType
	err := row.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.Value, &pt.Enabled, &pt.PermissionLevel, &pt.ResidentsCanSubmit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UnknownPointType()
		}
		return nil, err
	}
	return &pt, nil
}

// ListPointTypes returns the catalog; includeDisabled=false hides entries
// that are switched off.
func ListPointTypes(ctx context.Context, q Queryer, includeDisabled bool) ([]models.PointType, error) {
	query := `
SELECT id, name, description, value, enabled, permission_level, residents_can_submit
FROM point_types`
	if !includeDisabled {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.PointType
	for rows.Next() {
		var pt models.PointType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.Value, &pt.Enabled, &pt.PermissionLevel, &pt.ResidentsCanSubmit); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}
