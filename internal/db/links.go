package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/purduehcr/points-api/internal/models"
)

// CreateLink registers a shareable claim for a point type. Professional
// staff may link any point type; everyone else only point types at their
// own permission level.
func CreateLink(ctx context.Context, q Queryer, creator *models.User, pointTypeID int, singleUse, enabled bool, description string) (*models.Link, error) {
	pt, err := GetPointType(ctx, q, pointTypeID)
	if err != nil {
		return nil, err
	}
	if !pt.Enabled {
		return nil, models.PointTypeDisabled()
	}
	if creator.PermissionLevel != models.ProfessionalStaff && pt.PermissionLevel != creator.PermissionLevel {
		return nil, models.InsufficientPointTypePermission()
	}

	link := &models.Link{
		ID:          uuid.NewString(),
		CreatorID:   creator.ID,
		PointTypeID: pt.ID,
		Description: description,
		SingleUse:   singleUse,
		Enabled:     enabled,
	}
	_, err = q.ExecContext(ctx, `
INSERT INTO links (id, creator_id, point_type_id, description, single_use, enabled, archived, claimed_count)
VALUES ($1, $2, $3, $4, $5, $6, FALSE, 0)`,
		link.ID, link.CreatorID, link.PointTypeID, link.Description, link.SingleUse, link.Enabled)
	if err != nil {
		return nil, err
	}
	return link, nil
}

func GetLinkByID(ctx context.Context, q Queryer, id string) (*models.Link, error) {
	row := q.QueryRowContext(ctx, `
SELECT id, creator_id, point_type_id, description, single_use, enabled, archived, claimed_count
FROM links WHERE id = $1`, id)

	var l models.Link
	err := row.Scan(&l.ID, &l.CreatorID, &l.PointTypeID, &l.Description, &l.SingleUse, &l.Enabled, &l.Archived, &l.ClaimedCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.LinkDoesntExist()
		}
		return nil, err
	}
	return &l, nil
}

// UpdateLink applies the non-nil fields of the update. An empty update is
// the caller's 422 case and rejected here as well.
func UpdateLink(ctx context.Context, q Queryer, id string, upd models.LinkUpdate) error {
	if upd.Empty() {
		return models.MissingRequiredParameters()
	}

	set := ""
	var args []any
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		args = append(args, v)
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if upd.Archived != nil {
		add("archived", *upd.Archived)
	}
	if upd.Enabled != nil {
		add("enabled", *upd.Enabled)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.SingleUse != nil {
		add("single_use", *upd.SingleUse)
	}
	args = append(args, id)

	res, err := q.ExecContext(ctx, fmt.Sprintf(`UPDATE links SET %s WHERE id = $%d`, set, len(args)), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.LinkDoesntExist()
	}
	return nil
}
