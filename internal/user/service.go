package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"floreria-be/internal/logger"
	"floreria-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password, name string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	LoginWithGoogle(ctx context.Context, idToken string) (string, User, error)
	// CurrentUser resolves the calling user from the request context. It has
	// no side effects; a failure here is terminal for the caller.
	CurrentUser(ctx context.Context) (User, error)
}

type service struct {
	repo     Repository
	verifier *GoogleVerifier
}

func NewService(repo Repository, verifier *GoogleVerifier) Service {
	return &service{repo: repo, verifier: verifier}
}

func (s *service) Register(ctx context.Context, email, password, name string) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, email, hashed, name, string(RoleCustomer))
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug("login: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("login: password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	return token, u, err
}

func (s *service) LoginWithGoogle(ctx context.Context, idToken string) (string, User, error) {
	log := logger.FromCtx(ctx)

	claims, err := s.verifier.Verify(idToken)
	if err != nil {
		log.Warn("google id token rejected", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.FindOrCreateGoogle(ctx, claims.Sub, claims.Email, claims.Name)
	if err != nil {
		log.Error("failed to resolve google user", zap.Error(err))
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) CurrentUser(ctx context.Context) (User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID == 0 {
		return User{}, ErrNotAuthenticated
	}

	u, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return u, nil
}
