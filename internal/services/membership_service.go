package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type MembershipService interface {
	// EnsureMembership creates the free/activo row when missing. Calling it
	// twice is a no-op; reads never create.
	EnsureMembership(db *gorm.DB, userID string) (*dto.MembershipResponse, error)
	GetMyMembership(db *gorm.DB, userID string) (*dto.MembershipResponse, error)

	// Admin operations
	ChangePlan(db *gorm.DB, req *dto.ChangePlanRequest) (*dto.MembershipResponse, error)
	ListMemberships(db *gorm.DB, limit, offset int) (*dto.MembershipListResponse, error)
}

type membershipService struct {
	membershipRepo repositories.MembershipRepository
	profileRepo    repositories.ProfileRepository
}

func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	profileRepo repositories.ProfileRepository,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
	}
}

func (s *membershipService) EnsureMembership(db *gorm.DB, userID string) (*dto.MembershipResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	membership, err := s.membershipRepo.FindMembershipByWorker(db, profile.ID)
	if err == nil {
		return buildMembershipResponse(membership), nil
	}
	if !errors.Is(err, repositories.ErrMembershipNotFound) {
		return nil, apperrors.InternalError(err)
	}

	membership = &models.Membership{
		WorkerID:  profile.ID,
		Plan:      models.PlanFree,
		State:     models.MembershipStateActive,
		StartDate: time.Now(),
	}
	if err := s.membershipRepo.CreateMembership(db, membership); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildMembershipResponse(membership), nil
}

func (s *membershipService) GetMyMembership(db *gorm.DB, userID string) (*dto.MembershipResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	membership, err := s.membershipRepo.FindMembershipByWorker(db, profile.ID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return buildMembershipResponse(membership), nil
}

func (s *membershipService) ChangePlan(db *gorm.DB, req *dto.ChangePlanRequest) (*dto.MembershipResponse, error) {
	if err := s.membershipRepo.UpdateMembershipPlan(db, req.WorkerID, req.NewPlan); err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	membership, err := s.membershipRepo.FindMembershipByWorker(db, req.WorkerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildMembershipResponse(membership), nil
}

func (s *membershipService) ListMemberships(db *gorm.DB, limit, offset int) (*dto.MembershipListResponse, error) {
	memberships, total, err := s.membershipRepo.FindMemberships(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MembershipResponse, 0, len(memberships))
	for i := range memberships {
		out = append(out, *buildMembershipResponse(&memberships[i]))
	}
	return &dto.MembershipListResponse{
		Memberships: out,
		Meta:        dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}, nil
}

func buildMembershipResponse(m *models.Membership) *dto.MembershipResponse {
	resp := &dto.MembershipResponse{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		Plan:      m.Plan,
		State:     m.State,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
	if m.Worker.ID != "" && m.Worker.User.ID != "" {
		resp.WorkerName = m.Worker.User.Name
	}
	return resp
}
