//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"

	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/models"
)

func TestCreateLink(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()

	rhp := seedUser(t, h.DB, "rhp-1", "Dana", "Reed", "Copper", models.RHP)
	staff := seedUser(t, h.DB, "staff-1", "Avery", "Cole", "", models.ProfessionalStaff)

	t.Run("own_level_allowed", func(t *testing.T) {
		// point type 3 sits at the rhp level
		link, err := db.CreateLink(ctx, h.DB, rhp, 3, true, true, "Study table sign-in")
		if err != nil {
			t.Fatal(err)
		}
		stored, err := db.GetLinkByID(ctx, h.DB, link.ID)
		if err != nil {
			t.Fatal(err)
		}
		if stored.CreatorID != rhp.ID || stored.PointTypeID != 3 || !stored.SingleUse || !stored.Enabled {
			t.Fatalf("unexpected link: %+v", stored)
		}
	})

	t.Run("other_level_denied", func(t *testing.T) {
		// point type 4 is a staff point type
		_, err := db.CreateLink(ctx, h.DB, rhp, 4, false, true, "d")
		wantAPICode(t, err, 430)
	})

	t.Run("staff_may_use_any_level", func(t *testing.T) {
		if _, err := db.CreateLink(ctx, h.DB, staff, 1, false, true, "Hall event check-in"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown_point_type", func(t *testing.T) {
		_, err := db.CreateLink(ctx, h.DB, staff, 999, false, true, "d")
		wantAPICode(t, err, 417)
	})

	t.Run("disabled_point_type", func(t *testing.T) {
		if _, err := h.DB.Exec(`
INSERT INTO point_types (id, name, value, enabled, permission_level, residents_can_submit)
VALUES (91, 'Retired', 5, FALSE, 2, FALSE)`); err != nil {
			t.Fatal(err)
		}
		_, err := db.CreateLink(ctx, h.DB, staff, 91, false, true, "d")
		wantAPICode(t, err, 418)
	})
}

func TestUpdateLink(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()

	rhp := seedUser(t, h.DB, "rhp-1", "Dana", "Reed", "Copper", models.RHP)
	link, err := db.CreateLink(ctx, h.DB, rhp, 3, false, true, "Study table sign-in")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("partial_update", func(t *testing.T) {
		enabled := false
		desc := "Closed for the semester"
		err := db.UpdateLink(ctx, h.DB, link.ID, models.LinkUpdate{Enabled: &enabled, Description: &desc})
		if err != nil {
			t.Fatal(err)
		}
		stored, err := db.GetLinkByID(ctx, h.DB, link.ID)
		if err != nil {
			t.Fatal(err)
		}
		if stored.Enabled || stored.Description != desc {
			t.Fatalf("update not applied: %+v", stored)
		}
		// untouched fields survive
		if stored.SingleUse || stored.Archived || stored.CreatorID != rhp.ID {
			t.Fatalf("unrelated fields changed: %+v", stored)
		}
	})

	t.Run("empty_update", func(t *testing.T) {
		err := db.UpdateLink(ctx, h.DB, link.ID, models.LinkUpdate{})
		wantAPICode(t, err, 422)
	})

	t.Run("unknown_link", func(t *testing.T) {
		archived := true
		err := db.UpdateLink(ctx, h.DB, "missing", models.LinkUpdate{Archived: &archived})
		wantAPICode(t, err, 408)
	})
}

func TestGetLinkByIDUnknown(t *testing.T) {
	h := startDB(t)
	_, err := db.GetLinkByID(context.Background(), h.DB, "missing")
	wantAPICode(t, err, 408)
}
