package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	pkgAuth "github.com/orderdesk/backoffice/internal/pkg/auth"
)

// AuthUseCase handles staff accounts, sessions, and CSRF tokens.
type AuthUseCase struct {
	staff  repository.StaffRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	csrf   *pkgAuth.CSRF
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(staff repository.StaffRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, csrf *pkgAuth.CSRF) *AuthUseCase {
	return &AuthUseCase{staff: staff, hasher: hasher, tokens: strategy, csrf: csrf}
}

// Register creates a staff account subject to the password policy.
func (u *AuthUseCase) Register(ctx context.Context, name, firstName, email, password string) (*model.Staff, error) {
	email = strings.TrimSpace(email)
	if strings.TrimSpace(name) == "" || email == "" {
		return nil, domainErrors.ErrValidation
	}
	if !ValidEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}
	if len(password) < pkgAuth.MinPasswordLength {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.staff.Create(ctx, strings.TrimSpace(name), strings.TrimSpace(firstName), email, hash)
}

// Authenticate validates credentials and returns the session and CSRF
// tokens for the staff member.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Staff, string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", "", domainErrors.ErrInvalidCredentials
	}

	staff, err := u.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := u.hasher.Compare(staff.PasswordHash, password); err != nil {
		return nil, "", "", domainErrors.ErrInvalidCredentials
	}

	session, err := u.tokens.IssueToken(staff.ID)
	if err != nil {
		return nil, "", "", err
	}

	return staff, session, u.csrf.Issue(session), nil
}

// ParseToken extracts the staff ID from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// VerifyCSRF checks a CSRF token against its session token.
func (u *AuthUseCase) VerifyCSRF(sessionToken, csrfToken string) bool {
	return u.csrf.Verify(sessionToken, csrfToken)
}

// GetByID fetches a staff member by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	return u.staff.GetByID(ctx, id)
}
