package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrAvailabilityNotFound = errors.New("availability not found")

type AvailabilityRepository interface {
	CreateAvailability(db *gorm.DB, availability *models.Availability) error
	FindAvailabilityByID(db *gorm.DB, id string) (*models.Availability, error)
	FindAvailabilitiesByWorker(db *gorm.DB, workerID string) ([]models.Availability, error)
	FindAvailabilitiesByWorkerAndDay(db *gorm.DB, workerID, day string) ([]models.Availability, error)
	UpdateAvailability(db *gorm.DB, availability *models.Availability) error
	DeleteAvailability(db *gorm.DB, id string) error
}

type AvailabilityRepositoryImpl struct{}

func NewAvailabilityRepository() AvailabilityRepository {
	return &AvailabilityRepositoryImpl{}
}

func (r *AvailabilityRepositoryImpl) CreateAvailability(db *gorm.DB, availability *models.Availability) error {
	return db.Create(availability).Error
}

func (r *AvailabilityRepositoryImpl) FindAvailabilityByID(db *gorm.DB, id string) (*models.Availability, error) {
	var availability models.Availability
	err := db.First(&availability, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *AvailabilityRepositoryImpl) FindAvailabilitiesByWorker(db *gorm.DB, workerID string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := db.Where("trabajador_id = ?", workerID).
		Order("dia, hora_inicio").
		Find(&availabilities).Error
	return availabilities, err
}

func (r *AvailabilityRepositoryImpl) FindAvailabilitiesByWorkerAndDay(db *gorm.DB, workerID, day string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := db.Where("trabajador_id = ? AND dia = ?", workerID, day).
		Order("hora_inicio").
		Find(&availabilities).Error
	return availabilities, err
}

func (r *AvailabilityRepositoryImpl) UpdateAvailability(db *gorm.DB, availability *models.Availability) error {
	result := db.Model(&models.Availability{}).Where("id = ?", availability.ID).Updates(map[string]interface{}{
		"dia":         availability.Day,
		"hora_inicio": availability.StartTime,
		"hora_fin":    availability.EndTime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

func (r *AvailabilityRepositoryImpl) DeleteAvailability(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Availability{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}
