package db

import (
	"context"

	"github.com/purduehcr/points-api/internal/models"
)

// SubmitPointLogMessage appends a message to a log's thread and bumps the
// notification counters on the log: the RHP list always, the resident only
// when notifyAll is set (i.e. the message came from staff).
func SubmitPointLogMessage(ctx context.Context, q Queryer, house, logID string, msg models.PointLogMessage, notifyAll bool) error {
	_, err := q.ExecContext(ctx, `
INSERT INTO point_log_messages (house, log_id, creation_date, message, message_type, sender_first_name, sender_last_name, sender_permission_level)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		house, logID, msg.CreationDate, msg.Message, string(msg.MessageType),
		msg.SenderFirstName, msg.SenderLastName, int(msg.SenderPermissionLevel))
	if err != nil {
		return err
	}

	query := `UPDATE point_logs SET rhp_notifications = rhp_notifications + 1 WHERE house = $1 AND id = $2`
	if notifyAll {
		query = `
UPDATE point_logs
SET rhp_notifications = rhp_notifications + 1, resident_notifications = resident_notifications + 1
WHERE house = $1 AND id = $2`
	}
	res, err := q.ExecContext(ctx, query, house, logID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.UnknownPointLog()
	}
	return nil
}

// GetPointLogMessages returns the thread in insertion order.
func GetPointLogMessages(ctx context.Context, q Queryer, house, logID string) ([]models.PointLogMessage, error) {
	rows, err := q.QueryContext(ctx, `
SELECT creation_date, message, message_type, sender_first_name, sender_last_name, sender_permission_level
FROM point_log_messages
WHERE house = $1 AND log_id = $2
ORDER BY creation_date, id`, house, logID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.PointLogMessage
	for rows.Next() {
		var m models.PointLogMessage
		if err := rows.Scan(&m.CreationDate, &m.Message, &m.MessageType, &m.SenderFirstName, &m.SenderLastName, &m.SenderPermissionLevel); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
