package db

import (
	"context"

	"github.com/purduehcr/points-api/internal/models"
)

func GetSystemPreferences(ctx context.Context, q Queryer) (*models.SystemPreferences, error) {
	row := q.QueryRowContext(ctx, `
SELECT is_competition_enabled, is_competition_visible, competition_hidden_message
FROM system_preferences WHERE id = 1`)

	var p models.SystemPreferences
	if err := row.Scan(&p.IsCompetitionEnabled, &p.IsCompetitionVisible, &p.CompetitionHiddenMessage); err != nil {
		return nil, err
	}
	return &p, nil
}

func SetCompetitionEnabled(ctx context.Context, q Queryer, enabled bool) error {
	_, err := q.ExecContext(ctx, `UPDATE system_preferences SET is_competition_enabled = $1 WHERE id = 1`, enabled)
	return err
}
