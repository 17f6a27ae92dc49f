package api

import (
	"testing"

	"github.com/purduehcr/points-api/internal/models"
)

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	resp := models.AsAPIResponse(err)
	if resp == nil {
		t.Fatalf("expected api response, got %v", err)
	}
	if resp.Code != code {
		t.Fatalf("expected code %d, got %d", code, resp.Code)
	}
}

func TestParseString(t *testing.T) {
	if _, err := parseString(nil); err == nil {
		t.Fatal("nil must fail")
	} else {
		wantCode(t, err, 422)
	}

	if _, err := parseString(""); err == nil {
		t.Fatal("empty must fail")
	} else {
		wantCode(t, err, 426)
	}

	if _, err := parseString(float64(5)); err == nil {
		t.Fatal("number must fail")
	} else {
		wantCode(t, err, 426)
	}

	s, err := parseString("ok")
	if err != nil || s != "ok" {
		t.Fatalf("expected ok, got %q %v", s, err)
	}
}

func TestParseBool(t *testing.T) {
	if _, err := parseBool(nil); err == nil {
		t.Fatal("nil must fail")
	} else {
		wantCode(t, err, 422)
	}

	for _, bad := range []any{"yes", "1", "", float64(1)} {
		if _, err := parseBool(bad); err == nil {
			t.Fatalf("%v must fail", bad)
		} else {
			wantCode(t, err, 426)
		}
	}

	for raw, want := range map[any]bool{"true": true, "false": false, true: true, false: false} {
		got, err := parseBool(raw)
		if err != nil || got != want {
			t.Fatalf("%v: expected %v, got %v %v", raw, want, got, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if _, err := parseNumber(nil); err == nil {
		t.Fatal("nil must fail")
	} else {
		wantCode(t, err, 422)
	}

	for _, bad := range []any{"abc", "", true} {
		if _, err := parseNumber(bad); err == nil {
			t.Fatalf("%v must fail", bad)
		} else {
			wantCode(t, err, 426)
		}
	}

	for raw, want := range map[any]int{"42": 42, float64(7): 7, 3: 3, "-5": -5} {
		got, err := parseNumber(raw)
		if err != nil || got != want {
			t.Fatalf("%v: expected %d, got %d %v", raw, want, got, err)
		}
	}
}
