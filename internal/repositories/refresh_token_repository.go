package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error
	FindRefreshTokenByHash(db *gorm.DB, hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(db *gorm.DB, id string) error
	RevokeAllForUser(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB) error
}

type RefreshTokenRepositoryImpl struct{}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{}
}

func (r *RefreshTokenRepositoryImpl) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *RefreshTokenRepositoryImpl) FindRefreshTokenByHash(db *gorm.DB, hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := db.Where("token_hash = ? AND revoked = false AND expires_at > ?", hash, time.Now()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *RefreshTokenRepositoryImpl) RevokeRefreshToken(db *gorm.DB, id string) error {
	result := db.Model(&models.RefreshToken{}).Where("id = ?", id).Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *RefreshTokenRepositoryImpl) RevokeAllForUser(db *gorm.DB, userID string) error {
	return db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepositoryImpl) DeleteExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}
