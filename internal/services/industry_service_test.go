package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/repo"
)

func TestIndustryService_CreateAssociateList(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	if _, err := repo.CreateCompany(ctx, db, "acme", "Acme", ""); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	svc := &IndustryService{DB: db}

	ind, err := svc.Create(ctx, "tech", "Technology")
	if err != nil || ind.CompCode != nil {
		t.Fatalf("Create: %+v err=%v", ind, err)
	}

	ind, err = svc.Associate(ctx, "tech", "acme")
	if err != nil || ind.CompCode == nil || *ind.CompCode != "acme" {
		t.Fatalf("Associate: %+v err=%v", ind, err)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: %+v err=%v", list, err)
	}
}

func TestIndustryService_Associate_Unknown_404(t *testing.T) {
	svc := &IndustryService{DB: newServiceDB(t)}

	_, err := svc.Associate(context.Background(), "nope", "acme")
	if err == nil || err.Error() != "nope not found" || domain.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("unexpected: %v", err)
	}
}
