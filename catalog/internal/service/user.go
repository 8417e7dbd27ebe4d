package service

import (
	"context"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the password and issues an access token for the user.
func (s *Service) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	perms := user.Permissions
	if user.IsSuperuser {
		perms = auth.AllPermissions
	}
	token, expiresAt, err := s.issuer.Issue(auth.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		Permissions: perms,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}
	s.log.Info("login", zap.String("username", user.Username))
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(time.Until(expiresAt) / time.Second),
	}, nil
}

// CreateUser stores a user with a bcrypt hash of password.
func (s *Service) CreateUser(ctx context.Context, username, password string, superuser bool, perms ...string) (int64, error) {
	if username == "" {
		return 0, errs.NewValidationError("username", msgRequired)
	}
	if password == "" {
		return 0, errs.NewValidationError("password", msgRequired)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.Wrap(err, "bcrypt")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     username,
		PasswordHash: string(hash),
		IsSuperuser:  superuser,
		Permissions:  perms,
	})
}
