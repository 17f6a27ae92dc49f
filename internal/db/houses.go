package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/purduehcr/points-api/internal/models"
)

func GetHouse(ctx context.Context, q Queryer, name string) (*models.House, error) {
	row := q.QueryRowContext(ctx, `
SELECT name, color, description, number_of_residents, total_points
FROM houses WHERE name = $1`, name)

	var h models.House
	err := row.Scan(&h.Name, &h.Color, &h.Description, &h.NumberOfResidents, &h.TotalPoints)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ServerError()
		}
		return nil, err
	}
	return &h, nil
}

func ListHouses(ctx context.Context, q Queryer) ([]models.House, error) {
	rows, err := q.QueryContext(ctx, `
SELECT name, color, description, number_of_residents, total_points
FROM houses ORDER BY total_points DESC, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.House
	for rows.Next() {
		var h models.House
		if err := rows.Scan(&h.Name, &h.Color, &h.Description, &h.NumberOfResidents, &h.TotalPoints); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
