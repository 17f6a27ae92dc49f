package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/purduehcr/points-api/internal/models"
)

const houseCodeColumns = `id, code, code_name, house, floor_id, permission_level`

func scanHouseCode(row scannable) (*models.HouseCode, error) {
	var c models.HouseCode
	err := row.Scan(&c.ID, &c.Code, &c.CodeName, &c.House, &c.FloorID, &c.PermissionLevel)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetViewableHouseCodes scopes codes to the viewer: RHPs see resident,
// faculty and privileged-resident codes of their own house, faculty see
// their house's resident codes, professional staff see everything.
func GetViewableHouseCodes(ctx context.Context, q Queryer, user *models.User) ([]models.HouseCode, error) {
	query := `SELECT ` + houseCodeColumns + ` FROM house_codes`
	var args []any
	switch user.PermissionLevel {
	case models.ProfessionalStaff:
	case models.RHP:
		query += ` WHERE house = $1 AND permission_level IN (0, 3, 4)`
		args = append(args, user.HouseName())
	case models.Faculty:
		query += ` WHERE house = $1 AND permission_level IN (0, 4)`
		args = append(args, user.HouseName())
	default:
		return nil, models.InvalidPermissionLevel()
	}
	query += ` ORDER BY permission_level, floor_id, code_name`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.HouseCode
	for rows.Next() {
		c, err := scanHouseCode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func GetHouseCodeByID(ctx context.Context, q Queryer, id string) (*models.HouseCode, error) {
	row := q.QueryRowContext(ctx, `SELECT `+houseCodeColumns+` FROM house_codes WHERE id = $1`, id)
	c, err := scanHouseCode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UnknownHouseCode()
		}
		return nil, err
	}
	return c, nil
}

func GetHouseCodeByCode(ctx context.Context, q Queryer, code string) (*models.HouseCode, error) {
	row := q.QueryRowContext(ctx, `SELECT `+houseCodeColumns+` FROM house_codes WHERE code = $1`, code)
	c, err := scanHouseCode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UnknownHouseCode()
		}
		return nil, err
	}
	return c, nil
}

// RefreshHouseCode replaces the registration string, invalidating anything
// previously shared. The updated code is written back into the struct.
func RefreshHouseCode(ctx context.Context, q Queryer, code *models.HouseCode) error {
	code.Code = newCodeString()
	res, err := q.ExecContext(ctx, `UPDATE house_codes SET code = $1 WHERE id = $2`, code.Code, code.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.UnknownHouseCode()
	}
	return nil
}

func RefreshHouseCodes(ctx context.Context, database *sql.DB, codes []models.HouseCode) error {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i := range codes {
		if err := RefreshHouseCode(ctx, tx, &codes[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func newCodeString() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
