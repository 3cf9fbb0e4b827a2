package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"huellitas/internal/domain/user"
	reqdto "huellitas/internal/handler/dto/request"
	"huellitas/internal/infra"
	"huellitas/internal/pkg/errs"
	"huellitas/internal/pkg/jwt"
	"huellitas/internal/pkg/password"
	"huellitas/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type AuthResult struct {
	UserID uuid.UUID
	Token  string
	User   *queries.AuthorizedUserView
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	name, email, pass, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.Hash(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(name, email, hash, req.Telefono)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.issueToken(ctx, newUser.ID(), newUser.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return a.issueToken(ctx, view.ID, role)
}

func (a *authCommandsImpl) issueToken(ctx context.Context, userID uuid.UUID, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	view, err := a.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		UserID: userID,
		Token:  token,
		User:   view,
	}, nil
}
