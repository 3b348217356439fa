package auth

import (
	"context"
	"errors"
	"strings"

	"bookingdesk/internal/logger"
)

type Service struct {
	users      UserRepositoryInterface
	tokens     TokenIssuer
	bcryptCost int
}

func NewService(users UserRepositoryInterface, tokens TokenIssuer, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account with the "user" role.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Infof("user registered id=%s", u.ID)
	return u, nil
}

// Login checks the credentials and issues a signed token for the user.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := CheckPassword(req.Password, u.PasswordHash); err != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Token: token}, nil
}

// Authorize is the admin gate: the id must resolve to an account with the
// admin role.
func (s *Service) Authorize(ctx context.Context, adminID string) (*User, error) {
	if strings.TrimSpace(adminID) == "" {
		return nil, ErrUnauthenticated
	}

	u, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if !u.IsAdmin() {
		return nil, ErrForbidden
	}
	return u, nil
}
