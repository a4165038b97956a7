package commands

import (
	"context"

	"institut-booking/internal/domain/user"
	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/pkg/jwt"
	"institut-booking/internal/pkg/password"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	Register(ctx context.Context, input RegisterInput) (string, *queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	userStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, userStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		userStore:  userStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, hash, err := a.userStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, errs.Wrap(err, "failed to find user by email")
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.IsAdmin)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		return "", nil, errs.Wrap(err, "failed to update last login")
	}

	return token, view, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (string, *queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return "", nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	pass, err := user.NewPassword(input.Password)
	if err != nil {
		return "", nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	phone, err := user.NewPhone(input.Phone)
	if err != nil {
		return "", nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if input.FirstName == "" || input.LastName == "" {
		return "", nil, errs.Mark(user.ErrEmptyName, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(email, hash, input.FirstName, input.LastName, phone, a.clock.Now())

	userID, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := a.userStore.FindByID(ctx, userID)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to read back created user")
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.IsAdmin)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}
