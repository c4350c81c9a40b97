package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	CreateService(db *gorm.DB, service *models.Service) error
	FindServiceByID(db *gorm.DB, id string) (*models.Service, error)
	FindServicesByWorker(db *gorm.DB, workerID string) ([]models.Service, error)
	FindPublicServices(db *gorm.DB, filter ServiceFilter) ([]models.Service, int64, error)
	UpdateService(db *gorm.DB, service *models.Service) error
	UpdateServicePublication(db *gorm.DB, id, status string, wordsDetected bool) error
	DeleteService(db *gorm.DB, id string) error

	// CountLiveByWorker backs the free-plan limit. Live means pendiente or
	// aprobado; the count is point-in-time, concurrent creates may race.
	CountLiveByWorker(db *gorm.DB, workerID string) (int64, error)
}

type ServiceFilter struct {
	Category string
	City     string
	Search   string
	Limit    int
	Offset   int
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) CreateService(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindServiceByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.Preload("Worker").Preload("Worker.User").First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindServicesByWorker(db *gorm.DB, workerID string) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("trabajador_id = ?", workerID).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindPublicServices(db *gorm.DB, filter ServiceFilter) ([]models.Service, int64, error) {
	query := db.Model(&models.Service{}).
		Where("estado_publicacion = ?", models.PublicationStatusApproved)

	if filter.Category != "" {
		query = query.Where("categoria = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Joins("JOIN perfiles_trabajador ON perfiles_trabajador.id = servicios.trabajador_id").
			Joins("JOIN usuarios ON usuarios.id = perfiles_trabajador.user_id").
			Where("usuarios.ciudad = ?", filter.City)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("titulo ILIKE ? OR descripcion ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	err := query.Preload("Worker").Preload("Worker.User").
		Order("servicios.created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&services).Error
	return services, total, err
}

func (r *ServiceRepositoryImpl) UpdateService(db *gorm.DB, service *models.Service) error {
	result := db.Model(&models.Service{}).Where("id = ?", service.ID).Updates(map[string]interface{}{
		"titulo":              service.Title,
		"descripcion":         service.Description,
		"categoria":           service.Category,
		"precio":              service.Price,
		"foto_url":            service.PhotoURL,
		"estado_publicacion":  service.PublicationStatus,
		"palabras_detectadas": service.WordsDetected,
		"fecha_publicacion":   service.PublishedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) UpdateServicePublication(db *gorm.DB, id, status string, wordsDetected bool) error {
	result := db.Model(&models.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estado_publicacion":  status,
		"palabras_detectadas": wordsDetected,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) DeleteService(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) CountLiveByWorker(db *gorm.DB, workerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Service{}).
		Where("trabajador_id = ? AND estado_publicacion IN ?",
			workerID,
			[]string{models.PublicationStatusPending, models.PublicationStatusApproved}).
		Count(&count).Error
	return count, err
}
