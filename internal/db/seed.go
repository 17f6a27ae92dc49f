package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/purduehcr/points-api/internal/models"
)

// SeedDefaults installs the starter point-type catalog and, when the table
// is empty, one registration code per house and role. Safe to run on every
// startup.
func SeedDefaults(ctx context.Context, database *sql.DB) error {
	pointTypes := []models.PointType{
		{ID: 1, Name: "Attend a house event", Value: 5, Enabled: true, PermissionLevel: models.Resident, ResidentsCanSubmit: true},
		{ID: 2, Name: "Community service hour", Value: 10, Enabled: true, PermissionLevel: models.Resident, ResidentsCanSubmit: true},
		{ID: 3, Name: "Host a study table", Value: 15, Enabled: true, PermissionLevel: models.RHP, ResidentsCanSubmit: false},
		{ID: 4, Name: "Staff-awarded recognition", Value: 20, Enabled: true, PermissionLevel: models.ProfessionalStaff, ResidentsCanSubmit: false},
	}
	for _, pt := range pointTypes {
		_, err := database.ExecContext(ctx, `
INSERT INTO point_types (id, name, description, value, enabled, permission_level, residents_can_submit)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`,
			pt.ID, pt.Name, pt.Description, pt.Value, pt.Enabled, int(pt.PermissionLevel), pt.ResidentsCanSubmit)
		if err != nil {
			return fmt.Errorf("seed point type %d: %w", pt.ID, err)
		}
	}

	var count int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM house_codes`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	houses, err := ListHouses(ctx, database)
	if err != nil {
		return err
	}
	for _, h := range houses {
		for _, role := range []models.PermissionLevel{models.Resident, models.RHP} {
			_, err := database.ExecContext(ctx, `
INSERT INTO house_codes (id, code, code_name, house, floor_id, permission_level)
VALUES ($1, $2, $3, $4, '', $5)`,
				fmt.Sprintf("%s-%s", h.Name, role), newCodeString(),
				fmt.Sprintf("%s %s", h.Name, role), h.Name, int(role))
			if err != nil {
				return fmt.Errorf("seed house code for %s: %w", h.Name, err)
			}
		}
	}
	return nil
}
