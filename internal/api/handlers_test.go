package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/purduehcr/points-api/internal/config"
	"github.com/purduehcr/points-api/internal/logging"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logg, err := logging.Init("error", "dev")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		JWTSecret: testSecret,
		Env:       "dev",
		Location:  time.UTC,
	}
	// nil DB: these tests only cover paths that fail before any query
	return NewRouter(cfg, nil, logg)
}

func mintToken(t *testing.T, userID, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsBadTokens(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing_header", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/points/handle", "", nil)
		if w.Code != 401 {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/points/handle", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != 401 {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong_secret", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/points/handle", mintToken(t, "u1", "other-secret"), nil)
		if w.Code != 401 {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("empty_subject", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/points/handle", mintToken(t, "", testSecret), nil)
		if w.Code != 401 {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestHandlePointLogValidation(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "rhp-1", testSecret)

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"empty_body", map[string]any{}, 422},
		{"missing_log_id", map[string]any{"approve": "true"}, 422},
		{"empty_approve", map[string]any{"approve": "", "point_log_id": "l1"}, 422},
		{"approve_not_a_string", map[string]any{"approve": true, "point_log_id": "l1"}, 426},
		{"approve_bad_value", map[string]any{"approve": "yes", "point_log_id": "l1"}, 426},
		{"reject_without_message", map[string]any{"approve": "false", "point_log_id": "l1"}, 422},
		{"reject_empty_message", map[string]any{"approve": "false", "point_log_id": "l1", "message": ""}, 422},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/points/handle", token, c.body)
			if w.Code != c.want {
				t.Fatalf("expected %d, got %d (%s)", c.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestSubmitPointValidation(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "res-1", testSecret)

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing_point_type", map[string]any{"description": "d"}, 422},
		{"point_type_not_a_number", map[string]any{"point_type_id": "abc", "description": "d"}, 426},
		{"missing_description", map[string]any{"point_type_id": 1}, 422},
		{"bad_date", map[string]any{"point_type_id": 1, "description": "d", "date_occurred": "02/03/2026"}, 426},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/points/submit", token, c.body)
			if w.Code != c.want {
				t.Fatalf("expected %d, got %d (%s)", c.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestQueryParamValidation(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "u1", testSecret)

	t.Run("messages_without_log_id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/points/messages", token, nil)
		if w.Code != 422 {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("link_without_id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/links", token, nil)
		if w.Code != 422 {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("preview_without_code", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/house-codes/preview", token, nil)
		if w.Code != 422 {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestUpdateLinkValidation(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "u1", testSecret)

	t.Run("missing_link_id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/links/update", token, map[string]any{"enabled": true})
		if w.Code != 422 {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("no_fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/links/update", token, map[string]any{"link_id": "l1"})
		if w.Code != 422 {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("bad_field_type", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/links/update", token, map[string]any{"link_id": "l1", "enabled": "maybe"})
		if w.Code != 426 {
			t.Fatalf("expected 426, got %d", w.Code)
		}
	})
}
