package services

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type RatingService interface {
	// CreateRating is the guarded create: caller must be the request's
	// client, the request must be completed and not yet rated. The worker's
	// average is recomputed on success.
	CreateRating(db *gorm.DB, userID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	GetWorkerRatings(db *gorm.DB, workerID string) (*dto.WorkerRatingsResponse, error)
}

type ratingService struct {
	ratingRepo  repositories.RatingRepository
	requestRepo repositories.RequestRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	requestRepo repositories.RequestRepository,
) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		requestRepo: requestRepo,
	}
}

func (s *ratingService) CreateRating(db *gorm.DB, userID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	request, err := s.requestRepo.FindRequestByID(db, req.RequestID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if request.ClientID != userID {
		return nil, apperrors.NewForbiddenError("Only the request's client can rate it")
	}

	if request.Status != models.RequestStatusCompleted {
		return nil, apperrors.ErrRequestNotCompleted
	}

	rating := &models.Rating{
		RequestID: request.ID,
		ClientID:  userID,
		WorkerID:  request.WorkerID,
		Score:     req.Score,
		Comment:   req.Comment,
	}

	if err := s.ratingRepo.CreateRating(db, rating); err != nil {
		if errors.Is(err, repositories.ErrRatingAlreadyExists) {
			return nil, apperrors.ErrRatingExists
		}
		return nil, apperrors.InternalError(err)
	}

	return buildRatingResponse(rating), nil
}

func (s *ratingService) GetWorkerRatings(db *gorm.DB, workerID string) (*dto.WorkerRatingsResponse, error) {
	ratings, err := s.ratingRepo.FindRatingsByWorker(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	average, err := s.ratingRepo.CalculateWorkerAverage(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *buildRatingResponse(&ratings[i]))
	}

	return &dto.WorkerRatingsResponse{
		Ratings: out,
		Average: average,
	}, nil
}

func buildRatingResponse(r *models.Rating) *dto.RatingResponse {
	resp := &dto.RatingResponse{
		ID:        r.ID,
		RequestID: r.RequestID,
		ClientID:  r.ClientID,
		WorkerID:  r.WorkerID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.Client.ID != "" {
		resp.ClientName = r.Client.Name
	}
	return resp
}
