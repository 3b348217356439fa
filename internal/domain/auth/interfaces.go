package auth

import "context"

// UserRepositoryInterface is the identity store as seen by the auth service.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs principal tokens handed out at login.
type TokenIssuer interface {
	GenerateToken(userID string, role string) (string, error)
}
