package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

func TestGetIdempotency_EmptyKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t)

	rec, err := GetIdempotency(context.Background(), db, "   ", "POST", "/companies", time.Now().UTC())
	if rec != nil || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected (nil, ErrNotFound) for empty key, got (%v, %v)", rec, err)
	}
}

func TestIdempotency_CreateGetDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	body := []byte(`{"company":{"code":"acme"}}`)
	rec, err := CreateIdempotency(ctx, db, "k1", "POST", "/companies", "h1", 201, body, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || !rec.ExpiresAt.After(rec.CreatedAt) {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, "k1", "POST", "/companies", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.Status != 201 || string(got.Body) != string(body) || got.RequestHash != "h1" {
		t.Fatalf("unexpected replay data: %+v", got)
	}

	// same key on another path is independent
	if _, err := GetIdempotency(ctx, db, "k1", "POST", "/invoices", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other path: want ErrNotFound, got %v", err)
	}

	if _, err := CreateIdempotency(ctx, db, "k1", "POST", "/companies", "h1", 201, body, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate: want ErrDuplicate, got %v", err)
	}
}

func TestIdempotency_ExpiredIsIgnoredAndReplaced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := &domain.Idempotency{
		ID:        "expired",
		Key:       "k1",
		Method:    "POST",
		Path:      "/invoices",
		Status:    201,
		Body:      []byte(`{}`),
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	if err := db.Create(expired).Error; err != nil {
		t.Fatalf("seed expired: %v", err)
	}

	if _, err := GetIdempotency(ctx, db, "k1", "POST", "/invoices", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired: want ErrNotFound, got %v", err)
	}

	if _, err := CreateIdempotency(ctx, db, "k1", "POST", "/invoices", "h2", 201, []byte(`{"n":2}`), time.Hour); err != nil {
		t.Fatalf("replace expired: %v", err)
	}
	got, err := GetIdempotency(ctx, db, "k1", "POST", "/invoices", time.Now().UTC())
	if err != nil || string(got.Body) != `{"n":2}` || got.RequestHash != "h2" {
		t.Fatalf("after replace: %+v err=%v", got, err)
	}
}
