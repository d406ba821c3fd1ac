package service

import (
	"context"
	"errors"
	"fmt"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/config"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/model"
	"sharpgaze-api/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	cfg      *config.Auth
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Auth) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Mobile == "" {
		return apperr.Validation("All fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.userRepo.Create(ctx, &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Mobile:       req.Mobile,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperr.Conflict("User already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies the credential and issues a signed session token. Nothing
// downstream checks the token yet; it scopes carts and login events only.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthorized("Invalid credentials")
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Email,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}
