package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("worker profile not found")
	ErrProfileAlreadyExists = errors.New("worker profile already exists")
)

type ProfileRepository interface {
	CreateProfile(db *gorm.DB, profile *models.WorkerProfile) error
	FindProfileByID(db *gorm.DB, id string) (*models.WorkerProfile, error)
	FindProfileByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error)
	UpdateProfile(db *gorm.DB, profile *models.WorkerProfile) error
	UpdateProfileRating(db *gorm.DB, profileID string, rating float64) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateProfile(db *gorm.DB, profile *models.WorkerProfile) error {
	var existing models.WorkerProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindProfileByID(db *gorm.DB, id string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindProfileByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateProfile(db *gorm.DB, profile *models.WorkerProfile) error {
	result := db.Model(&models.WorkerProfile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"categoria_principal": profile.MainCategory,
		"descripcion":         profile.Description,
		"experiencia":         profile.Experience,
		"habilidades":         profile.Skills,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateProfileRating(db *gorm.DB, profileID string, rating float64) error {
	return db.Model(&models.WorkerProfile{}).Where("id = ?", profileID).
		Update("rating", rating).Error
}
