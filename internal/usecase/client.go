package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

const qrAPIBase = "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="

// ClientInput carries the staff-editable client fields.
type ClientInput struct {
	Name       string
	FirstName  string
	Email      string
	Phone      string
	Address    string
	PostalCode string
	City       string
	Country    string
}

// Flashcode bundles the public artifacts derived from a client's token.
type Flashcode struct {
	Token      string
	ScanURL    string
	QRImageURL string
}

// ClientUseCase encapsulates the client registry.
type ClientUseCase struct {
	clients    repository.ClientRepository
	appBaseURL string
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository, appBaseURL string) *ClientUseCase {
	return &ClientUseCase{clients: clients, appBaseURL: strings.TrimRight(appBaseURL, "/")}
}

func validateClientInput(in ClientInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return domainErrors.ErrValidation
	}
	if !ValidEmail(strings.TrimSpace(in.Email)) {
		return domainErrors.ErrInvalidEmail
	}
	return nil
}

// Create registers a client and mints its flashcode token. The token
// is stable for the client's lifetime.
func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (*model.Client, error) {
	if err := validateClientInput(in); err != nil {
		return nil, err
	}

	client := &model.Client{
		Name:        strings.TrimSpace(in.Name),
		FirstName:   strings.TrimSpace(in.FirstName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     in.Address,
		PostalCode:  in.PostalCode,
		City:        in.City,
		Country:     in.Country,
		FlashcodeID: uuid.NewString(),
	}
	return u.clients.Create(ctx, client)
}

// Get fetches a client by identifier.
func (u *ClientUseCase) Get(ctx context.Context, id int64) (*model.Client, error) {
	return u.clients.GetByID(ctx, id)
}

// List returns all clients ordered by name.
func (u *ClientUseCase) List(ctx context.Context) ([]model.Client, error) {
	return u.clients.List(ctx)
}

// Update applies staff edits. The flashcode is immutable and not part
// of the input.
func (u *ClientUseCase) Update(ctx context.Context, id int64, in ClientInput) (*model.Client, error) {
	if err := validateClientInput(in); err != nil {
		return nil, err
	}

	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(in.Name)
	client.FirstName = strings.TrimSpace(in.FirstName)
	client.Email = strings.TrimSpace(in.Email)
	client.Phone = strings.TrimSpace(in.Phone)
	client.Address = in.Address
	client.PostalCode = in.PostalCode
	client.City = in.City
	client.Country = in.Country

	if err := u.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client. Clients that still own orders cannot be
// deleted; the repository surfaces ErrConflict.
func (u *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return u.clients.Delete(ctx, id)
}

// FindByFlashcode resolves the public token to its client. Misses map
// to ErrNotFound with no further detail.
func (u *ClientUseCase) FindByFlashcode(ctx context.Context, token string) (*model.Client, error) {
	if token == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.clients.GetByFlashcode(ctx, token)
}

// Flashcode returns the scan URL and QR image URL for a client.
func (u *ClientUseCase) Flashcode(ctx context.Context, id int64) (*model.Client, *Flashcode, error) {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	scanURL := u.appBaseURL + "/api/scan/" + url.PathEscape(client.FlashcodeID)
	return client, &Flashcode{
		Token:      client.FlashcodeID,
		ScanURL:    scanURL,
		QRImageURL: qrAPIBase + url.QueryEscape(scanURL),
	}, nil
}
