package services

import (
	"time"

	"gorm.io/gorm"

	"skilllink_backend/internal/email"
	"skilllink_backend/internal/logger"
	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type ModerationService interface {
	ListPending(db *gorm.DB) ([]dto.ModerationResponse, error)
	ListAll(db *gorm.DB, limit, offset int) (*dto.ModerationListResponse, error)

	// Resolve closes a pending record with aprobado or rechazado, stamps the
	// admin and mirrors the outcome onto the service.
	Resolve(db *gorm.DB, adminID, recordID, outcome string) (*dto.ModerationResponse, error)
}

type moderationService struct {
	moderationRepo repositories.ModerationRepository
	serviceRepo    repositories.ServiceRepository
	mailer         email.Provider
}

func NewModerationService(
	moderationRepo repositories.ModerationRepository,
	serviceRepo repositories.ServiceRepository,
	mailer email.Provider,
) ModerationService {
	return &moderationService{
		moderationRepo: moderationRepo,
		serviceRepo:    serviceRepo,
		mailer:         mailer,
	}
}

func (s *moderationService) ListPending(db *gorm.DB) ([]dto.ModerationResponse, error) {
	records, err := s.moderationRepo.FindPendingModeration(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ModerationResponse, 0, len(records))
	for i := range records {
		out = append(out, *buildModerationResponse(&records[i]))
	}
	return out, nil
}

func (s *moderationService) ListAll(db *gorm.DB, limit, offset int) (*dto.ModerationListResponse, error) {
	records, total, err := s.moderationRepo.FindAllModeration(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ModerationResponse, 0, len(records))
	for i := range records {
		out = append(out, *buildModerationResponse(&records[i]))
	}
	return &dto.ModerationListResponse{
		Records: out,
		Meta:    dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}, nil
}

func (s *moderationService) Resolve(db *gorm.DB, adminID, recordID, outcome string) (*dto.ModerationResponse, error) {
	record, err := s.moderationRepo.FindModerationByID(db, recordID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if record.IsResolved() {
		return nil, apperrors.ErrModerationClosed
	}

	now := time.Now()
	record.Status = outcome
	record.ReviewedByID = &adminID
	record.ReviewedAt = &now

	if err := s.moderationRepo.UpdateModerationRecord(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	service := &record.Service
	service.PublicationStatus = outcome
	if outcome == models.PublicationStatusApproved {
		service.PublishedAt = &now
	}
	if err := s.serviceRepo.UpdateService(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if service.Worker.User.ID != "" {
		worker := service.Worker.User
		if err := s.mailer.SendModerationOutcome(worker.Email, worker.Name, service.Title, outcome); err != nil {
			logger.Warn("failed to send moderation outcome mail", "error", err, "email", worker.Email)
		}
	}

	return buildModerationResponse(record), nil
}

func buildModerationResponse(r *models.ModerationRecord) *dto.ModerationResponse {
	resp := &dto.ModerationResponse{
		ID:            r.ID,
		ServiceID:     r.ServiceID,
		DetectedWords: r.DetectedWords,
		Status:        r.Status,
		ReviewedByID:  r.ReviewedByID,
		ReviewedAt:    r.ReviewedAt,
		CreatedAt:     r.CreatedAt,
	}
	if r.Service.ID != "" {
		resp.ServiceTitle = r.Service.Title
		if r.Service.Worker.User.ID != "" {
			resp.WorkerName = r.Service.Worker.User.Name
		}
	}
	return resp
}
