package domain

import (
	"context"

	"cadastromunicipal.com/internal/model"
)

// CadastroService holds the registration-record operations: validate and
// normalize a public submission, list everything, fetch one by id.
type CadastroService interface {
	// Create validates the intake form, uppercases every textual field and
	// persists a new record. Duplicate CNPJs are accepted.
	Create(ctx context.Context, input *model.CadastroInput) (*model.Cadastro, error)
	// List returns every registration record in store order.
	List(ctx context.Context) ([]model.Cadastro, error)
	// GetByID looks a record up by its primary key, given as the raw string
	// from the request.
	GetByID(ctx context.Context, id string) (*model.Cadastro, error)
}

// UserService holds account and credential operations.
type UserService interface {
	// Authenticate checks email/password for login.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	// GetByID fetches one account; the password hash never leaves the model's
	// JSON surface.
	GetByID(ctx context.Context, id uint) (*model.User, error)
	// ChangePassword rotates the caller's credential. Its failure modes are
	// plain Portuguese messages, checked in a fixed order.
	ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error
	// ListUsers returns every account (admin surface).
	ListUsers(ctx context.Context) ([]model.User, error)
	// CreateUser registers a staff account (admin surface).
	CreateUser(ctx context.Context, name, email, password, role string) (*model.User, error)
	// UpdateRole reassigns an account's role (super-admin surface).
	UpdateRole(ctx context.Context, id uint, role string) (*model.User, error)
	// EnsureSuperAdmin seeds the bootstrap account when the table is empty.
	EnsureSuperAdmin(ctx context.Context, name, email, password string) error
}

// SessionStore maps opaque cookie tokens to user ids.
type SessionStore interface {
	Create(ctx context.Context, userID uint) (string, error)
	// Resolve returns the user id for a token, or ErrSessionMiss when the
	// token is unknown or expired.
	Resolve(ctx context.Context, token string) (uint, error)
	Destroy(ctx context.Context, token string) error
}
