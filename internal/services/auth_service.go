package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"skilllink_backend/internal/auth"
	"skilllink_backend/internal/email"
	"skilllink_backend/internal/logger"
	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, req *dto.LogoutRequest) error
}

type AuthConfig struct {
	JWTSecret  string
	TTL        int // minutes
	RefreshTTL int // hours
}

type authService struct {
	cfg            AuthConfig
	userRepo       repositories.UserRepository
	tokenRepo      repositories.RefreshTokenRepository
	googleVerifier auth.GoogleVerifier
	mailer         email.Provider
}

func NewAuthService(
	cfg AuthConfig,
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	googleVerifier auth.GoogleVerifier,
	mailer email.Provider,
) AuthService {
	return &authService{
		cfg:            cfg,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		googleVerifier: googleVerifier,
		mailer:         mailer,
	}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       hash,
		Name:               req.Name,
		City:               req.City,
		Phone:              req.Phone,
		Role:               models.RoleUser,
		State:              models.UserStateActive,
		RegistrationMethod: models.RegistrationMethodLocal,
	}

	if err := s.userRepo.CreateUser(db, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
		logger.Warn("failed to send welcome mail", "error", err, "email", user.Email)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.RegistrationMethod != models.RegistrationMethodLocal {
		return nil, apperrors.ErrRegistrationMethodMismatch
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := checkUserUsable(user); err != nil {
		return nil, err
	}

	return s.issueTokens(db, user)
}

func (s *authService) GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	info, err := s.googleVerifier.Verify(ctx, req.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByEmail(db, info.Email)
	switch {
	case err == nil:
		if user.RegistrationMethod != models.RegistrationMethodGoogle {
			return nil, apperrors.ErrRegistrationMethodMismatch
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		// A random throwaway password; Google accounts never log in locally.
		rawPass := randomToken(24)
		hash, hashErr := auth.HashPassword(rawPass)
		if hashErr != nil {
			return nil, apperrors.InternalError(hashErr)
		}

		user = &models.User{
			Email:              info.Email,
			PasswordHash:       hash,
			Name:               info.Name,
			PhotoURL:           info.Picture,
			Role:               models.RoleUser,
			State:              models.UserStateActive,
			RegistrationMethod: models.RegistrationMethodGoogle,
		}
		if createErr := s.userRepo.CreateUser(db, user); createErr != nil {
			return nil, apperrors.InternalError(createErr)
		}

		if mailErr := s.mailer.SendWelcome(user.Email, user.Name); mailErr != nil {
			logger.Warn("failed to send welcome mail", "error", mailErr, "email", user.Email)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	if err := checkUserUsable(user); err != nil {
		return nil, err
	}

	return s.issueTokens(db, user)
}

func (s *authService) Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.FindRefreshTokenByHash(db, hashToken(req.RefreshToken))
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUserByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := checkUserUsable(user); err != nil {
		return nil, err
	}

	// Rotation: the presented token dies, a fresh one is minted.
	if err := s.tokenRepo.RevokeRefreshToken(db, stored.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, req *dto.LogoutRequest) error {
	stored, err := s.tokenRepo.FindRefreshTokenByHash(db, hashToken(req.RefreshToken))
	if err != nil {
		// Already invalid; logout is idempotent.
		return nil
	}
	if err := s.tokenRepo.RevokeRefreshToken(db, stored.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.SignJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.TTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := randomToken(32)
	stored := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.RefreshTTL) * time.Hour),
	}
	if err := s.tokenRepo.CreateRefreshToken(db, stored); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         BuildUserDTO(user),
	}, nil
}

func checkUserUsable(user *models.User) error {
	if user.IsBlocked() {
		return apperrors.ErrUserBlocked
	}
	if user.IsDeleted() {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func randomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Only the hash touches the database; a leaked table cannot replay sessions.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func BuildUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		City:               user.City,
		Phone:              user.Phone,
		BirthDate:          user.BirthDate,
		PhotoURL:           user.PhotoURL,
		Role:               user.Role,
		State:              user.State,
		RegistrationMethod: user.RegistrationMethod,
		CreatedAt:          user.CreatedAt,
	}
}
