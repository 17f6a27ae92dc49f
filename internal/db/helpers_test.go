//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/models"
	"github.com/purduehcr/points-api/internal/testutil/testdb"
)

func startDB(t *testing.T) *testdb.DBHandle {
	t.Helper()
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(h.Close)

	if err := db.SeedDefaults(context.Background(), h.DB); err != nil {
		t.Fatal(err)
	}
	return h
}

func seedUser(t *testing.T, dbx *sql.DB, id, first, last, house string, level models.PermissionLevel) *models.User {
	t.Helper()
	var housePtr *string
	if house != "" {
		housePtr = &house
	}
	_, err := dbx.Exec(`
INSERT INTO users (id, first_name, last_name, house, permission_level, floor_id)
VALUES ($1, $2, $3, $4, $5, '2N')`,
		id, first, last, housePtr, int(level))
	if err != nil {
		t.Fatal(err)
	}
	u, err := db.GetUser(context.Background(), dbx, id)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func housePoints(t *testing.T, dbx *sql.DB, name string) int {
	t.Helper()
	var n int
	if err := dbx.QueryRow(`SELECT total_points FROM houses WHERE name = $1`, name).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}

func userPoints(t *testing.T, dbx *sql.DB, id string) (total, semester int) {
	t.Helper()
	if err := dbx.QueryRow(`SELECT total_points, semester_points FROM users WHERE id = $1`, id).Scan(&total, &semester); err != nil {
		t.Fatal(err)
	}
	return total, semester
}

func storedPointTypeID(t *testing.T, dbx *sql.DB, logID string) int {
	t.Helper()
	var n int
	if err := dbx.QueryRow(`SELECT point_type_id FROM point_logs WHERE id = $1`, logID).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}

func wantAPICode(t *testing.T, err error, code int) {
	t.Helper()
	resp := models.AsAPIResponse(err)
	if resp == nil {
		t.Fatalf("expected api response with code %d, got %v", code, err)
	}
	if resp.Code != code {
		t.Fatalf("expected code %d, got %d (%s)", code, resp.Code, resp.Message)
	}
}
