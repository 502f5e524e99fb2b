package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	testhelpers "github.com/orderdesk/backoffice/internal/test"
	"github.com/orderdesk/backoffice/internal/usecase"
)

func TestClientCreateMintsFlashcode(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := usecase.NewClientUseCase(repo, "https://shop.example.com")

	client, err := uc.Create(context.Background(), usecase.ClientInput{Name: "Martin", Email: "martin@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.FlashcodeID == "" {
		t.Fatal("flashcode must be minted at creation")
	}

	other, err := uc.Create(context.Background(), usecase.ClientInput{Name: "Durand", Email: "durand@example.com"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if other.FlashcodeID == client.FlashcodeID {
		t.Fatal("flashcodes must be unique")
	}
}

func TestClientCreateValidation(t *testing.T) {
	uc := usecase.NewClientUseCase(testhelpers.NewClientRepositoryStub(), "https://shop.example.com")

	if _, err := uc.Create(context.Background(), usecase.ClientInput{Name: "", Email: "a@b.com"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("blank name: expected validation error, got %v", err)
	}
	if _, err := uc.Create(context.Background(), usecase.ClientInput{Name: "X", Email: "nonsense"}); !errors.Is(err, domainErrors.ErrInvalidEmail) {
		t.Fatalf("bad email: expected invalid email, got %v", err)
	}
}

func TestClientCreateDuplicateEmail(t *testing.T) {
	uc := usecase.NewClientUseCase(testhelpers.NewClientRepositoryStub(), "https://shop.example.com")

	if _, err := uc.Create(context.Background(), usecase.ClientInput{Name: "A", Email: "dup@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := uc.Create(context.Background(), usecase.ClientInput{Name: "B", Email: "dup@example.com"}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestClientUpdateKeepsFlashcode(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := usecase.NewClientUseCase(repo, "https://shop.example.com")

	client, _ := uc.Create(context.Background(), usecase.ClientInput{Name: "Martin", Email: "martin@example.com"})
	code := client.FlashcodeID

	updated, err := uc.Update(context.Background(), client.ID, usecase.ClientInput{Name: "Martin-Roche", Email: "roche@example.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Martin-Roche" {
		t.Fatalf("name not applied: %q", updated.Name)
	}

	reloaded, _ := uc.Get(context.Background(), client.ID)
	if reloaded.FlashcodeID != code {
		t.Fatalf("flashcode changed on update: %q -> %q", code, reloaded.FlashcodeID)
	}
}

func TestClientDeleteWithOrders(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := usecase.NewClientUseCase(repo, "https://shop.example.com")

	client, _ := uc.Create(context.Background(), usecase.ClientInput{Name: "Martin", Email: "martin@example.com"})
	repo.OwnedOrders[client.ID] = 1

	if err := uc.Delete(context.Background(), client.ID); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict while orders exist, got %v", err)
	}

	repo.OwnedOrders[client.ID] = 0
	if err := uc.Delete(context.Background(), client.ID); err != nil {
		t.Fatalf("delete after orders gone: %v", err)
	}
}

func TestClientFlashcodeArtifacts(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := usecase.NewClientUseCase(repo, "https://shop.example.com/")

	client, _ := uc.Create(context.Background(), usecase.ClientInput{Name: "Martin", Email: "martin@example.com"})

	_, code, err := uc.Flashcode(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("flashcode: %v", err)
	}
	want := "https://shop.example.com/api/scan/" + client.FlashcodeID
	if code.ScanURL != want {
		t.Fatalf("scan URL %q, want %q", code.ScanURL, want)
	}
	if !strings.HasPrefix(code.QRImageURL, "https://api.qrserver.com/") {
		t.Fatalf("unexpected QR image URL %q", code.QRImageURL)
	}
	if !strings.Contains(code.QRImageURL, "shop.example.com%2Fapi%2Fscan%2F") {
		t.Fatalf("QR image URL must embed the escaped scan URL: %q", code.QRImageURL)
	}
}

func TestFindByFlashcode(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := usecase.NewClientUseCase(repo, "https://shop.example.com")

	client, _ := uc.Create(context.Background(), usecase.ClientInput{Name: "Martin", Email: "martin@example.com"})

	found, err := uc.FindByFlashcode(context.Background(), client.FlashcodeID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != client.ID {
		t.Fatalf("wrong client resolved: %d", found.ID)
	}

	if _, err := uc.FindByFlashcode(context.Background(), ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("empty token must be not found, got %v", err)
	}
	if _, err := uc.FindByFlashcode(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("unknown token must be not found, got %v", err)
	}
}
