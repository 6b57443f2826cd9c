package auth

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// PasswordHasher turns a plain password into a stored hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     model.Role
}

type RegisterOutput struct {
	User model.User
}

type RegisterUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	clock    Clock
}

func NewRegisterUsecase(userRepo repository.UserRepository, hasher PasswordHasher, clock Clock) *RegisterUsecase {
	return &RegisterUsecase{userRepo: userRepo, hasher: hasher, clock: clock}
}

func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	var out RegisterOutput

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return out, ErrInvalidEmailFormat
	}
	if len(in.Password) < 12 {
		return out, ErrPasswordTooShort
	}
	if in.Role != model.RoleBuyer && in.Role != model.RoleCreator {
		return out, ErrInvalidRole
	}

	_, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return out, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	user, err := u.userRepo.Create(ctx, model.User{
		Email:        in.Email,
		PasswordHash: hashed,
		Name:         in.Name,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return out, err
	}

	out.User = user
	return out, nil
}

// BcryptPasswordHasher hashes with a configurable cost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
