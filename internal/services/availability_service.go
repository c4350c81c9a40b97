package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type AvailabilityService interface {
	CreateAvailability(db *gorm.DB, userID string, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetMyAvailabilities(db *gorm.DB, userID string) ([]dto.AvailabilityResponse, error)
	UpdateAvailability(db *gorm.DB, userID, id string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteAvailability(db *gorm.DB, userID, id string) error
	GetWorkerAvailabilities(db *gorm.DB, workerID string) ([]dto.AvailabilityResponse, error)
}

type availabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
	profileRepo      repositories.ProfileRepository
}

func NewAvailabilityService(
	availabilityRepo repositories.AvailabilityRepository,
	profileRepo repositories.ProfileRepository,
) AvailabilityService {
	return &availabilityService{
		availabilityRepo: availabilityRepo,
		profileRepo:      profileRepo,
	}
}

// WindowCovered reports whether any entry for the given day fully contains
// the requested window. Containment is closed on both ends: an entry
// 09:00-12:00 accepts exactly 09:00-12:00.
func WindowCovered(entries []models.Availability, day string, start, end datatypes.Time) bool {
	for i := range entries {
		e := &entries[i]
		if e.Day == day && e.StartTime <= start && e.EndTime >= end {
			return true
		}
	}
	return false
}

func (s *availabilityService) CreateAvailability(db *gorm.DB, userID string, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	availability := &models.Availability{
		WorkerID:  profile.ID,
		Day:       req.Day,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.availabilityRepo.CreateAvailability(db, availability); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAvailabilityResponse(availability), nil
}

func (s *availabilityService) GetMyAvailabilities(db *gorm.DB, userID string) ([]dto.AvailabilityResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}
	return s.GetWorkerAvailabilities(db, profile.ID)
}

func (s *availabilityService) UpdateAvailability(db *gorm.DB, userID, id string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	availability, err := s.authorize(db, userID, id)
	if err != nil {
		return nil, err
	}

	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	availability.Day = req.Day
	availability.StartTime = start
	availability.EndTime = end

	if err := s.availabilityRepo.UpdateAvailability(db, availability); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAvailabilityResponse(availability), nil
}

func (s *availabilityService) DeleteAvailability(db *gorm.DB, userID, id string) error {
	if _, err := s.authorize(db, userID, id); err != nil {
		return err
	}
	if err := s.availabilityRepo.DeleteAvailability(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *availabilityService) GetWorkerAvailabilities(db *gorm.DB, workerID string) ([]dto.AvailabilityResponse, error) {
	availabilities, err := s.availabilityRepo.FindAvailabilitiesByWorker(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.AvailabilityResponse, 0, len(availabilities))
	for i := range availabilities {
		out = append(out, *buildAvailabilityResponse(&availabilities[i]))
	}
	return out, nil
}

func (s *availabilityService) authorize(db *gorm.DB, userID, id string) (*models.Availability, error) {
	availability, err := s.availabilityRepo.FindAvailabilityByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil || profile.ID != availability.WorkerID {
		return nil, apperrors.NewForbiddenError("You do not own this availability")
	}
	return availability, nil
}

func parseWindow(startStr, endStr string) (datatypes.Time, datatypes.Time, error) {
	start, err := dto.ParseTimeOfDay(startStr)
	if err != nil {
		return 0, 0, apperrors.NewBadRequestError("hora_inicio must be HH:MM")
	}
	end, err := dto.ParseTimeOfDay(endStr)
	if err != nil {
		return 0, 0, apperrors.NewBadRequestError("hora_fin must be HH:MM")
	}
	if end <= start {
		return 0, 0, apperrors.NewBadRequestError("hora_fin must be after hora_inicio")
	}
	return start, end, nil
}

func buildAvailabilityResponse(a *models.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:        a.ID,
		WorkerID:  a.WorkerID,
		Day:       a.Day,
		StartTime: dto.FormatTimeOfDay(a.StartTime),
		EndTime:   dto.FormatTimeOfDay(a.EndTime),
	}
}
