package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
)

// AccessTokenIssuer signs a JWT for the user.
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// PasswordVerifier compares a plain password to a stored hash.
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{userRepo: userRepo, verifier: verifier, issuer: issuer, clock: clock}
}

func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	if !user.IsActive {
		return out, ErrUserInactive
	}
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return out, err
	}

	// best-effort; login still succeeds if this write fails
	_ = u.userRepo.UpdateLastLogin(ctx, user.ID)

	user.PasswordHash = ""
	out.User = user
	out.AccessToken = token
	out.ExpiresIn = int(expiresAt.Sub(now).Seconds())
	return out, nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
