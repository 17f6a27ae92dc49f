//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"

	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/models"
)

func TestGetViewableHouseCodes(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()

	resident := seedUser(t, h.DB, "res-1", "Riley", "Moss", "Copper", models.Resident)
	rhp := seedUser(t, h.DB, "rhp-1", "Dana", "Reed", "Copper", models.RHP)
	faculty := seedUser(t, h.DB, "fac-1", "Sam", "Hale", "Copper", models.Faculty)
	staff := seedUser(t, h.DB, "staff-1", "Avery", "Cole", "", models.ProfessionalStaff)

	t.Run("staff_see_everything", func(t *testing.T) {
		codes, err := db.GetViewableHouseCodes(ctx, h.DB, staff)
		if err != nil {
			t.Fatal(err)
		}
		// two seeded codes per house, five houses
		if len(codes) != 10 {
			t.Fatalf("expected 10 codes, got %d", len(codes))
		}
	})

	t.Run("rhp_sees_own_house_resident_codes", func(t *testing.T) {
		codes, err := db.GetViewableHouseCodes(ctx, h.DB, rhp)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range codes {
			if c.House != "Copper" {
				t.Fatalf("leaked code for %s", c.House)
			}
			if c.PermissionLevel == models.RHP || c.PermissionLevel == models.ProfessionalStaff {
				t.Fatalf("rhp must not see %s codes", c.PermissionLevel)
			}
		}
		if len(codes) != 1 {
			t.Fatalf("expected 1 code, got %d", len(codes))
		}
	})

	t.Run("faculty_scoped_to_own_house", func(t *testing.T) {
		codes, err := db.GetViewableHouseCodes(ctx, h.DB, faculty)
		if err != nil {
			t.Fatal(err)
		}
		if len(codes) != 1 || codes[0].House != "Copper" || codes[0].PermissionLevel != models.Resident {
			t.Fatalf("unexpected codes: %+v", codes)
		}
	})

	t.Run("resident_denied", func(t *testing.T) {
		_, err := db.GetViewableHouseCodes(ctx, h.DB, resident)
		wantAPICode(t, err, 403)
	})
}

func TestRefreshHouseCode(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()

	staff := seedUser(t, h.DB, "staff-1", "Avery", "Cole", "", models.ProfessionalStaff)

	codes, err := db.GetViewableHouseCodes(ctx, h.DB, staff)
	if err != nil {
		t.Fatal(err)
	}
	target := codes[0]
	oldCode := target.Code

	if err := db.RefreshHouseCode(ctx, h.DB, &target); err != nil {
		t.Fatal(err)
	}
	if target.Code == oldCode {
		t.Fatal("code string must change")
	}
	if len(target.Code) != 10 {
		t.Fatalf("unexpected code length %d", len(target.Code))
	}

	// the old string is dead, the new one resolves
	_, err = db.GetHouseCodeByCode(ctx, h.DB, oldCode)
	wantAPICode(t, err, 415)
	found, err := db.GetHouseCodeByCode(ctx, h.DB, target.Code)
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != target.ID {
		t.Fatalf("expected id %s, got %s", target.ID, found.ID)
	}
}

func TestRefreshHouseCodesAll(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()

	staff := seedUser(t, h.DB, "staff-1", "Avery", "Cole", "", models.ProfessionalStaff)

	before, err := db.GetViewableHouseCodes(ctx, h.DB, staff)
	if err != nil {
		t.Fatal(err)
	}
	old := make(map[string]string, len(before))
	for _, c := range before {
		old[c.ID] = c.Code
	}

	if err := db.RefreshHouseCodes(ctx, h.DB, before); err != nil {
		t.Fatal(err)
	}

	after, err := db.GetViewableHouseCodes(ctx, h.DB, staff)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before) {
		t.Fatalf("code set changed size: %d -> %d", len(before), len(after))
	}
	for _, c := range after {
		if old[c.ID] == c.Code {
			t.Fatalf("code %s not rotated", c.ID)
		}
	}
}

func TestGetHouseCodeByIDUnknown(t *testing.T) {
	h := startDB(t)
	_, err := db.GetHouseCodeByID(context.Background(), h.DB, "missing")
	wantAPICode(t, err, 415)
}
