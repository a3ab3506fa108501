package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

type stubBlacklistService struct {
	byFieldsFn func(ctx context.Context, input ports.TrainerInput) (*domain.BlacklistEntry, error)
	byIDFn     func(ctx context.Context, id string) (*domain.BlacklistEntry, error)
	listFn     func(ctx context.Context) ([]*domain.BlacklistEntry, error)
}

func (s *stubBlacklistService) BlacklistByFields(ctx context.Context, input ports.TrainerInput) (*domain.BlacklistEntry, error) {
	return s.byFieldsFn(ctx, input)
}

func (s *stubBlacklistService) BlacklistByID(ctx context.Context, id string) (*domain.BlacklistEntry, error) {
	return s.byIDFn(ctx, id)
}

func (s *stubBlacklistService) ListBlacklisted(ctx context.Context) ([]*domain.BlacklistEntry, error) {
	return s.listFn(ctx)
}

func TestBlacklistHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byFieldsFn: func(_ context.Context, input ports.TrainerInput) (*domain.BlacklistEntry, error) {
			return &domain.BlacklistEntry{
				ID:       "b1",
				FullName: input.FullName,
				Email:    input.Email,
				Category: input.Category,
				Status:   domain.StatusBlacklisted,
			}, nil
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	body, contentType := multipartBody(t, trainerFields(), "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/blacklist", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Trainer blacklisted" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	entry, ok := resp["data"].(map[string]any)
	if !ok || entry["status"] != "blacklisted" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
}

func TestBlacklistHandler_Create_Duplicate(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byFieldsFn: func(context.Context, ports.TrainerInput) (*domain.BlacklistEntry, error) {
			return nil, domain.ErrDuplicateBlacklist
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	body, contentType := multipartBody(t, trainerFields(), "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/blacklist", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); !errors.Is(err, domain.ErrDuplicateBlacklist) {
		t.Fatalf("expected duplicate error to propagate, got %v", err)
	}
}

func TestBlacklistHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byFieldsFn: func(context.Context, ports.TrainerInput) (*domain.BlacklistEntry, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	fields := trainerFields()
	delete(fields, "category")
	body, contentType := multipartBody(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/blacklist", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestBlacklistHandler_List_EmptyIsNotNull(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		listFn: func(context.Context) ([]*domain.BlacklistEntry, error) { return nil, nil },
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/blacklist", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"trainers":[]`) {
		t.Fatalf("expected empty array, got %s", body)
	}
	if !strings.Contains(body, `"success":true`) {
		t.Fatalf("expected success flag, got %s", body)
	}
}

func TestBlacklistHandler_MigrateByID(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byIDFn: func(_ context.Context, id string) (*domain.BlacklistEntry, error) {
			if id != "t1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.BlacklistEntry{ID: "b1", Status: domain.StatusBlacklisted}, nil
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	req := httptest.NewRequest(http.MethodPatch, "/api/blacklist/t1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.MigrateByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["data"].(map[string]any); !ok {
		t.Fatalf("expected entry under data, got %+v", resp)
	}
}

func TestBlacklistHandler_MigrateByID_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byIDFn: func(context.Context, string) (*domain.BlacklistEntry, error) {
			return nil, domain.ErrTrainerNotFound
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	req := httptest.NewRequest(http.MethodPatch, "/api/blacklist/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.MigrateByID(c); !errors.Is(err, domain.ErrTrainerNotFound) {
		t.Fatalf("expected not-found to propagate, got %v", err)
	}
}

func TestBlacklistHandler_MigrateLegacy_Envelope(t *testing.T) {
	e := newTestEcho()
	svc := &stubBlacklistService{
		byIDFn: func(_ context.Context, id string) (*domain.BlacklistEntry, error) {
			return &domain.BlacklistEntry{ID: "b1", FullName: "Ann Lee", Status: domain.StatusBlacklisted}, nil
		},
	}
	h := NewBlacklistHandler(svc, &stubImageStore{}, testLogger)

	req := httptest.NewRequest(http.MethodPatch, "/api/t1/blacklist", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.MigrateLegacy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Trainer blacklisted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	// The legacy console reads the entry from the trainer key.
	entry, ok := resp["trainer"].(map[string]any)
	if !ok || entry["fullName"] != "Ann Lee" {
		t.Fatalf("unexpected trainer payload: %+v", resp["trainer"])
	}
}
