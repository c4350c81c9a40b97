package services

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type ProfileService interface {
	CreateProfile(db *gorm.DB, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetPublicProfile(db *gorm.DB, profileID string) (*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) CreateProfile(db *gorm.DB, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.WorkerProfile{
		UserID:       userID,
		MainCategory: req.MainCategory,
		Description:  req.Description,
		Experience:   req.Experience,
		Skills:       req.Skills,
		State:        models.UserStateActive,
	}

	if err := s.profileRepo.CreateProfile(db, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrWorkerProfileExists
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildProfileResponse(created), nil
}

func (s *profileService) GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return buildProfileResponse(profile), nil
}

func (s *profileService) UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.MainCategory != "" {
		profile.MainCategory = req.MainCategory
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.Experience != 0 {
		profile.Experience = req.Experience
	}
	if req.Skills != "" {
		profile.Skills = req.Skills
	}

	if err := s.profileRepo.UpdateProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildProfileResponse(profile), nil
}

func (s *profileService) GetPublicProfile(db *gorm.DB, profileID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return buildProfileResponse(profile), nil
}

func buildProfileResponse(p *models.WorkerProfile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		MainCategory: p.MainCategory,
		Description:  p.Description,
		Experience:   p.Experience,
		Skills:       p.Skills,
		Rating:       p.Rating,
	}
	if p.User.ID != "" {
		resp.Name = p.User.Name
		resp.City = p.User.City
		resp.PhotoURL = p.User.PhotoURL
	}
	return resp
}
