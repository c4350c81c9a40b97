package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrModerationNotFound = errors.New("moderation record not found")

type ModerationRepository interface {
	CreateModerationRecord(db *gorm.DB, record *models.ModerationRecord) error
	FindModerationByID(db *gorm.DB, id string) (*models.ModerationRecord, error)
	FindPendingModeration(db *gorm.DB) ([]models.ModerationRecord, error)
	FindAllModeration(db *gorm.DB, limit, offset int) ([]models.ModerationRecord, int64, error)
	UpdateModerationRecord(db *gorm.DB, record *models.ModerationRecord) error
}

type ModerationRepositoryImpl struct{}

func NewModerationRepository() ModerationRepository {
	return &ModerationRepositoryImpl{}
}

func (r *ModerationRepositoryImpl) CreateModerationRecord(db *gorm.DB, record *models.ModerationRecord) error {
	return db.Create(record).Error
}

func (r *ModerationRepositoryImpl) FindModerationByID(db *gorm.DB, id string) (*models.ModerationRecord, error) {
	var record models.ModerationRecord
	err := db.Preload("Service").Preload("Service.Worker").Preload("Service.Worker.User").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModerationNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ModerationRepositoryImpl) FindPendingModeration(db *gorm.DB) ([]models.ModerationRecord, error) {
	var records []models.ModerationRecord
	err := db.Preload("Service").Preload("Service.Worker").Preload("Service.Worker.User").
		Where("estado = ?", models.PublicationStatusPending).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ModerationRepositoryImpl) FindAllModeration(db *gorm.DB, limit, offset int) ([]models.ModerationRecord, int64, error) {
	var total int64
	if err := db.Model(&models.ModerationRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.ModerationRecord
	err := db.Preload("Service").Preload("ReviewedBy").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	return records, total, err
}

func (r *ModerationRepositoryImpl) UpdateModerationRecord(db *gorm.DB, record *models.ModerationRecord) error {
	result := db.Model(&models.ModerationRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"estado":          record.Status,
		"revisado_por_id": record.ReviewedByID,
		"revisado_en":     record.ReviewedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrModerationNotFound
	}
	return nil
}
