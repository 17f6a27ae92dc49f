package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/purduehcr/points-api/internal/models"
)

const pointLogColumns = `id, house, resident_id, point_type_id, point_type_name, point_type_description,
	description, floor_id, date_occurred, date_submitted, approved_by, approved_on,
	resident_first_name, resident_last_name, resident_notifications, rhp_notifications`

type scannable interface {
	Scan(dest ...any) error
}

func scanPointLog(row scannable) (*models.PointLog, error) {
	var l models.PointLog
	var storedID int
	err := row.Scan(&l.ID, &l.House, &l.ResidentID, &storedID, &l.PointTypeName, &l.PointTypeDescription,
		&l.Description, &l.FloorID, &l.DateOccurred, &l.DateSubmitted, &l.ApprovedBy, &l.ApprovedOn,
		&l.ResidentFirstName, &l.ResidentLastName, &l.ResidentNotifications, &l.RHPNotifications)
	if err != nil {
		return nil, err
	}
	l.DecodePointTypeID(storedID)
	return &l, nil
}

func insertPointLog(ctx context.Context, q Queryer, l *models.PointLog) error {
	_, err := q.ExecContext(ctx, `
INSERT INTO point_logs (id, house, resident_id, point_type_id, point_type_name, point_type_description,
	description, floor_id, date_occurred, date_submitted, approved_by, approved_on,
	resident_first_name, resident_last_name, resident_notifications, rhp_notifications)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		l.ID, l.House, l.ResidentID, l.EncodePointTypeID(), l.PointTypeName, l.PointTypeDescription,
		l.Description, l.FloorID, l.DateOccurred, l.DateSubmitted, l.ApprovedBy, l.ApprovedOn,
		l.ResidentFirstName, l.ResidentLastName, l.ResidentNotifications, l.RHPNotifications)
	return err
}

// preapprovedBy marks logs submitted by an RHP, which skip adjudication.
const preapprovedBy = "Preapproved"

// CreatePointLog records a new point claim for the submitter's house.
// Residents produce a pending log awaiting an RHP; an RHP's own submission
// is pre-approved, with points applied immediately.
func CreatePointLog(ctx context.Context, database *sql.DB, submitter *models.User, pointTypeID int, description string, dateOccurred time.Time) (*models.PointLog, error) {
	prefs, err := GetSystemPreferences(ctx, database)
	if err != nil {
		return nil, err
	}
	if !prefs.IsCompetitionEnabled {
		return nil, models.CompetitionDisabled()
	}
	if err := VerifyUserHasCorrectPermission(submitter, []models.PermissionLevel{
		models.Resident, models.RHP, models.PrivilegedResident,
	}); err != nil {
		return nil, err
	}

	pt, err := GetPointType(ctx, database, pointTypeID)
	if err != nil {
		return nil, err
	}
	if !pt.Enabled {
		return nil, models.PointTypeDisabled()
	}
	if !pt.ResidentsCanSubmit && submitter.PermissionLevel != models.RHP {
		return nil, models.PointTypeSelfSubmissionDisabled()
	}

	floorID := ""
	if submitter.FloorID != nil {
		floorID = *submitter.FloorID
	}
	log := &models.PointLog{
		ID:                   uuid.NewString(),
		House:                submitter.HouseName(),
		ResidentID:           submitter.ID,
		PointTypeID:          pt.ID,
		PointTypeName:        pt.Name,
		PointTypeDescription: pt.Description,
		Description:          description,
		FloorID:              floorID,
		DateOccurred:         dateOccurred,
		DateSubmitted:        time.Now(),
		ResidentFirstName:    submitter.FirstName,
		ResidentLastName:     submitter.LastName,
	}

	if submitter.PermissionLevel != models.RHP {
		if err := insertPointLog(ctx, database, log); err != nil {
			return nil, err
		}
		return log, nil
	}

	// RHP self-submission: stored handled and already counted.
	approvedBy := preapprovedBy
	now := time.Now()
	log.Handled = true
	log.ApprovedBy = &approvedBy
	log.ApprovedOn = &now

	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertPointLog(ctx, tx, log); err != nil {
		return nil, err
	}
	if err := AddPoints(ctx, tx, pt, log.House, log.ResidentID, true); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return log, nil
}

// GetPointLog loads a log scoped to a house, enforcing that resident-level
// users can only reach their own logs. Anything out of reach is the same
// UnknownPointLog as a missing row.
func GetPointLog(ctx context.Context, q Queryer, user *models.User, house, logID string) (*models.PointLog, error) {
	row := q.QueryRowContext(ctx, `SELECT `+pointLogColumns+` FROM point_logs WHERE house = $1 AND id = $2`, house, logID)
	log, err := scanPointLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UnknownPointLog()
		}
		return nil, err
	}
	switch user.PermissionLevel {
	case models.Resident, models.PrivilegedResident:
		if log.ResidentID != user.ID {
			return nil, models.UnknownPointLog()
		}
	}
	return log, nil
}

// GetPointLogs lists a house's logs, newest first; pendingOnly narrows to
// logs still awaiting their first handling.
func GetPointLogs(ctx context.Context, q Queryer, house string, pendingOnly bool) ([]models.PointLog, error) {
	query := `SELECT ` + pointLogColumns + ` FROM point_logs WHERE house = $1`
	if pendingOnly {
		query += ` AND point_type_id < 0`
	}
	query += ` ORDER BY date_submitted DESC`

	rows, err := q.QueryContext(ctx, query, house)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.PointLog
	for rows.Next() {
		log, err := scanPointLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *log)
	}
	return out, rows.Err()
}

// CountPendingLogs returns per-house counts of unhandled logs.
func CountPendingLogs(ctx context.Context, q Queryer) (map[string]int, error) {
	rows, err := q.QueryContext(ctx, `
SELECT h.name, COUNT(p.id)
FROM houses h
LEFT JOIN point_logs p ON p.house = h.name AND p.point_type_id < 0
GROUP BY h.name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var house string
		var n int
		if err := rows.Scan(&house, &n); err != nil {
			return nil, err
		}
		out[house] = n
	}
	return out, rows.Err()
}

// UpdatePointLogStatus approves or rejects a point log on behalf of an RHP.
//
// Check order is fixed: competition toggle, approver resolution, approver
// is exactly RHP, log exists under the approver's house. The log row is
// then locked for the rest of the transaction, so of two concurrent
// handlers one commits and the other re-reads the committed state and
// trips the already-handled guard instead of double-applying points.
//
// Ledger rules: a first-time rejection touches no totals (points were never
// added); rejecting a previously approved log subtracts; approving a
// pending or rejected log adds. Returns true on a successful transition.
func UpdatePointLogStatus(ctx context.Context, database *sql.DB, approve bool, approverID, pointLogID, rejectionMessage string) (bool, error) {
	prefs, err := GetSystemPreferences(ctx, database)
	if err != nil {
		return false, err
	}
	if !prefs.IsCompetitionEnabled {
		return false, models.CompetitionDisabled()
	}

	approver, err := GetUser(ctx, database, approverID)
	if err != nil {
		return false, err
	}
	if approver.PermissionLevel != models.RHP {
		return false, models.InvalidPermissionLevel()
	}

	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT `+pointLogColumns+` FROM point_logs WHERE house = $1 AND id = $2 FOR UPDATE`,
		approver.HouseName(), pointLogID)
	log, err := scanPointLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, models.UnknownPointLog()
		}
		return false, err
	}

	// Decoding already normalized PointTypeID to the positive catalog id;
	// alreadyHandled remembers whether this is the first handling.
	alreadyHandled := log.Handled

	pointType, err := GetPointType(ctx, tx, log.PointTypeID)
	if err != nil {
		return false, err
	}
	resident, err := GetUser(ctx, tx, log.ResidentID)
	if err != nil {
		return false, err
	}

	now := time.Now()
	if !approve {
		if log.Rejected() {
			return false, models.PointLogAlreadyHandled()
		}
		log.MarkRejected()
		log.Stamp(approver, now)
		if err := updateHandling(ctx, tx, log); err != nil {
			return false, err
		}
		if alreadyHandled {
			// Previously approved, so it is safe to take the points back.
			if err := AddPoints(ctx, tx, pointType, log.House, resident.ID, false); err != nil {
				return false, err
			}
		}
		msg := models.NewRejectionMessage(approver, rejectionMessage, now)
		if err := SubmitPointLogMessage(ctx, tx, log.House, log.ID, msg, true); err != nil {
			return false, err
		}
	} else {
		if alreadyHandled && !log.Rejected() {
			return false, models.PointLogAlreadyHandled()
		}
		// Either previously rejected (points must come back) or never
		// handled (points have never been applied): both directions add.
		log.ClearRejected()
		log.Stamp(approver, now)
		if err := updateHandling(ctx, tx, log); err != nil {
			return false, err
		}
		if err := AddPoints(ctx, tx, pointType, log.House, resident.ID, true); err != nil {
			return false, err
		}
		msg := models.NewApprovalMessage(approver, now)
		if err := SubmitPointLogMessage(ctx, tx, log.House, log.ID, msg, true); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func updateHandling(ctx context.Context, q Queryer, log *models.PointLog) error {
	_, err := q.ExecContext(ctx, `
UPDATE point_logs
SET point_type_id = $1, description = $2, approved_by = $3, approved_on = $4
WHERE house = $5 AND id = $6`,
		log.EncodePointTypeID(), log.Description, log.ApprovedBy, log.ApprovedOn, log.House, log.ID)
	return err
}
