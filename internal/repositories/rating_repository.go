package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrRatingAlreadyExists = errors.New("rating already exists for this request")
)

type RatingRepository interface {
	// CreateRating inserts the rating and recomputes the worker's average in
	// the same call. The unique index on solicitud_id is the last line of
	// defense against concurrent duplicates.
	CreateRating(db *gorm.DB, rating *models.Rating) error
	FindRatingByRequest(db *gorm.DB, requestID string) (*models.Rating, error)
	FindRatingsByWorker(db *gorm.DB, workerID string) ([]models.Rating, error)
	CalculateWorkerAverage(db *gorm.DB, workerID string) (float64, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) CreateRating(db *gorm.DB, rating *models.Rating) error {
	var existing models.Rating
	if err := db.Where("solicitud_id = ?", rating.RequestID).First(&existing).Error; err == nil {
		return ErrRatingAlreadyExists
	}

	if err := db.Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRatingAlreadyExists
		}
		return err
	}

	return r.updateWorkerRatingInternal(db, rating.WorkerID)
}

func (r *RatingRepositoryImpl) FindRatingByRequest(db *gorm.DB, requestID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("solicitud_id = ?", requestID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindRatingsByWorker(db *gorm.DB, workerID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Client").
		Where("trabajador_id = ?", workerID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) CalculateWorkerAverage(db *gorm.DB, workerID string) (float64, error) {
	var avg float64
	err := db.Model(&models.Rating{}).Where("trabajador_id = ?", workerID).
		Select("COALESCE(AVG(puntaje), 0)").Scan(&avg).Error
	return avg, err
}

func (r *RatingRepositoryImpl) updateWorkerRatingInternal(db *gorm.DB, workerID string) error {
	avg, err := r.CalculateWorkerAverage(db, workerID)
	if err != nil {
		return err
	}
	return db.Model(&models.WorkerProfile{}).Where("id = ?", workerID).
		Update("rating", avg).Error
}
