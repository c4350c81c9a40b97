package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrRequestNotFound = errors.New("service request not found")

type RequestRepository interface {
	CreateRequest(db *gorm.DB, request *models.ServiceRequest) error
	FindRequestByID(db *gorm.DB, id string) (*models.ServiceRequest, error)
	FindRequestsByClient(db *gorm.DB, clientID string) ([]models.ServiceRequest, error)
	FindRequestsByWorker(db *gorm.DB, workerID string) ([]models.ServiceRequest, error)
	UpdateRequestStatus(db *gorm.DB, id, status string) error
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) CreateRequest(db *gorm.DB, request *models.ServiceRequest) error {
	return db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindRequestByID(db *gorm.DB, id string) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := db.Preload("Service").Preload("Client").
		Preload("Worker").Preload("Worker.User").Preload("Rating").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindRequestsByClient(db *gorm.DB, clientID string) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	err := db.Preload("Service").Preload("Worker").Preload("Worker.User").
		Where("cliente_id = ?", clientID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindRequestsByWorker(db *gorm.DB, workerID string) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	err := db.Preload("Service").Preload("Client").
		Where("trabajador_id = ?", workerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) UpdateRequestStatus(db *gorm.DB, id, status string) error {
	result := db.Model(&models.ServiceRequest{}).Where("id = ?", id).Update("estado", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
