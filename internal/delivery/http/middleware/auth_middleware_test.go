package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-appointment-service/config"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/service"
	"hospital-appointment-service/pkg/jwt"
)

func newAuth(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *service.MemoryTokenStore) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "middleware-test",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokens := service.NewMemoryTokenStore()
	return NewAuthMiddleware(jwtService, tokens), jwtService, tokens
}

func issue(t *testing.T, j *jwt.JWTService, store service.TokenStore, sub jwt.Subject) (string, string) {
	t.Helper()
	token, id, err := j.GenerateAccessToken(sub)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := store.Store(context.Background(), service.AccessTokenKind, sub.Username, id, time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}
	return token, id
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_InstallsSession(t *testing.T) {
	m, j, store := newAuth(t)
	token, id := issue(t, j, store, jwt.Subject{Username: "doctor1", Role: "DOCTOR", EntityID: "DOC-1"})

	var got entity.User
	var gotTokenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSessionFromContext(r.Context())
		if !ok {
			t.Fatal("no session in context")
		}
		got, _ = sess.User()
		gotTokenID, _ = GetTokenIDFromContext(r.Context())
	})

	rec := serve(m.Authenticate(next), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got.Username != "doctor1" || got.Role != entity.RoleDoctor || got.EntityID != "DOC-1" {
		t.Fatalf("session user = %+v", got)
	}
	if gotTokenID != id {
		t.Fatalf("token id = %q, want %q", gotTokenID, id)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	m, j, store := newAuth(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})
	h := m.Authenticate(next)

	refresh, _, _ := j.GenerateRefreshToken(jwt.Subject{Username: "staff", Role: "STAFF"})
	unstored, _, _ := j.GenerateAccessToken(jwt.Subject{Username: "staff", Role: "STAFF"})
	badRole, _ := issue(t, j, store, jwt.Subject{Username: "nurse", Role: "NURSE"})
	revoked, revokedID := issue(t, j, store, jwt.Subject{Username: "staff", Role: "STAFF"})
	store.Revoke(context.Background(), service.AccessTokenKind, revokedID)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"garbage":        "Bearer not-a-token",
		"refresh token":  "Bearer " + refresh,
		"not stored":     "Bearer " + unstored,
		"unknown role":   "Bearer " + badRole,
		"revoked":        "Bearer " + revoked,
	}
	for name, header := range cases {
		if rec := serve(h, header); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", name, rec.Code)
		}
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	if _, ok := GetSessionFromContext(context.Background()); ok {
		t.Fatal("empty context has no session")
	}
	if _, ok := GetSessionFromContext(WithSession(context.Background(), nil)); ok {
		t.Fatal("nil session should not count")
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	withUser := func(user *entity.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if user != nil {
			req = req.WithContext(WithSession(req.Context(), entity.NewSessionFor(*user)))
		}
		rec := httptest.NewRecorder()
		RequireStaff(ok).ServeHTTP(rec, req)
		return rec
	}

	if rec := withUser(&entity.User{Username: "staff", Role: entity.RoleStaff}); rec.Code != http.StatusOK {
		t.Fatalf("staff = %d", rec.Code)
	}
	if rec := withUser(&entity.User{Username: "doctor1", Role: entity.RoleDoctor}); rec.Code != http.StatusForbidden {
		t.Fatalf("doctor = %d", rec.Code)
	}
	if rec := withUser(nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous = %d", rec.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	h := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight = %d %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("passthrough = %d", rec.Code)
	}
}
