package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/moderation"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/internal/storage"
	"skilllink_backend/pkg/apperrors"
)

type ServiceService interface {
	CreateService(db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetMyServices(db *gorm.DB, userID string) ([]dto.ServiceResponse, error)
	GetService(db *gorm.DB, userID, role, id string) (*dto.ServiceResponse, error)
	UpdateService(db *gorm.DB, userID, role, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(db *gorm.DB, userID, role, id string) error
	UploadServicePhoto(ctx context.Context, db *gorm.DB, userID, id, filename string, reader io.Reader, contentType string) (*dto.ServiceResponse, error)

	ListPublicServices(db *gorm.DB, query *dto.ServiceListQuery, limit, offset int) (*dto.ServiceListResponse, error)
	GetPublicService(db *gorm.DB, id string) (*dto.ServiceResponse, error)
}

type serviceService struct {
	serviceRepo    repositories.ServiceRepository
	profileRepo    repositories.ProfileRepository
	membershipRepo repositories.MembershipRepository
	moderationRepo repositories.ModerationRepository
	scanner        *moderation.Scanner
	store          storage.Storage
}

func NewServiceService(
	serviceRepo repositories.ServiceRepository,
	profileRepo repositories.ProfileRepository,
	membershipRepo repositories.MembershipRepository,
	moderationRepo repositories.ModerationRepository,
	scanner *moderation.Scanner,
	store storage.Storage,
) ServiceService {
	return &serviceService{
		serviceRepo:    serviceRepo,
		profileRepo:    profileRepo,
		membershipRepo: membershipRepo,
		moderationRepo: moderationRepo,
		scanner:        scanner,
		store:          store,
	}
}

// CreateService runs the two publication gates in order: the membership gate
// first, then the forbidden-word scan. A clean scan publishes immediately; a
// match leaves the service pending and opens a moderation record. The two
// writes are separate statements; a crash in between leaves a flagged
// service without a record, surfaced to the caller as a 500.
func (s *serviceService) CreateService(db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	if err := s.checkMembershipLimit(db, profile.ID); err != nil {
		return nil, err
	}

	service := &models.Service{
		WorkerID:          profile.ID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Price:             req.Price,
		PublicationStatus: models.PublicationStatusPending,
	}
	if err := s.serviceRepo.CreateService(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	found := s.scanner.Scan(service.Title, service.Description)
	if len(found) > 0 {
		service.PublicationStatus = models.PublicationStatusPending
		service.WordsDetected = true
		if err := s.serviceRepo.UpdateServicePublication(db, service.ID, service.PublicationStatus, true); err != nil {
			return nil, apperrors.InternalError(err)
		}

		record := &models.ModerationRecord{
			ServiceID:     service.ID,
			DetectedWords: strings.Join(found, ","),
			Status:        models.PublicationStatusPending,
		}
		if err := s.moderationRepo.CreateModerationRecord(db, record); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else {
		now := time.Now()
		service.PublicationStatus = models.PublicationStatusApproved
		service.PublishedAt = &now
		if err := s.serviceRepo.UpdateService(db, service); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return buildServiceResponse(service), nil
}

// checkMembershipLimit enforces the free-plan cap. A worker without a
// membership row counts as free. The count is read without locking; two
// concurrent creates can both pass at the boundary.
func (s *serviceService) checkMembershipLimit(db *gorm.DB, workerID string) error {
	membership, err := s.membershipRepo.FindMembershipByWorker(db, workerID)
	if err == nil && membership.IsPremium() {
		return nil
	}
	if err != nil && !errors.Is(err, repositories.ErrMembershipNotFound) {
		return apperrors.InternalError(err)
	}

	count, err := s.serviceRepo.CountLiveByWorker(db, workerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count >= models.FreePlanServiceLimit {
		return apperrors.ErrMembershipLimit
	}
	return nil
}

func (s *serviceService) GetMyServices(db *gorm.DB, userID string) ([]dto.ServiceResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	services, err := s.serviceRepo.FindServicesByWorker(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *buildServiceResponse(&services[i]))
	}
	return out, nil
}

func (s *serviceService) GetService(db *gorm.DB, userID, role, id string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if err := s.authorizeOwner(db, userID, role, service); err != nil {
		return nil, err
	}
	return buildServiceResponse(service), nil
}

func (s *serviceService) UpdateService(db *gorm.DB, userID, role, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if err := s.authorizeOwner(db, userID, role, service); err != nil {
		return nil, err
	}

	if req.Title != "" {
		service.Title = req.Title
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Category != "" {
		service.Category = req.Category
	}
	if req.Price > 0 {
		service.Price = req.Price
	}

	if err := s.serviceRepo.UpdateService(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildServiceResponse(service), nil
}

func (s *serviceService) DeleteService(db *gorm.DB, userID, role, id string) error {
	service, err := s.serviceRepo.FindServiceByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if err := s.authorizeOwner(db, userID, role, service); err != nil {
		return err
	}
	if err := s.serviceRepo.DeleteService(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *serviceService) UploadServicePhoto(ctx context.Context, db *gorm.DB, userID, id, filename string, reader io.Reader, contentType string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if err := s.authorizeOwner(db, userID, "", service); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("servicios/%s/%s%s", id, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	service.PhotoURL = url
	if err := s.serviceRepo.UpdateService(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildServiceResponse(service), nil
}

func (s *serviceService) ListPublicServices(db *gorm.DB, query *dto.ServiceListQuery, limit, offset int) (*dto.ServiceListResponse, error) {
	services, total, err := s.serviceRepo.FindPublicServices(db, repositories.ServiceFilter{
		Category: query.Category,
		City:     query.City,
		Search:   query.Search,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *buildServiceResponse(&services[i]))
	}
	return &dto.ServiceListResponse{
		Services: out,
		Meta:     dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}, nil
}

func (s *serviceService) GetPublicService(db *gorm.DB, id string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if service.PublicationStatus != models.PublicationStatusApproved {
		return nil, apperrors.ErrNotFound(repositories.ErrServiceNotFound)
	}
	return buildServiceResponse(service), nil
}

func (s *serviceService) authorizeOwner(db *gorm.DB, userID, role string, service *models.Service) error {
	if role == models.RoleAdmin {
		return nil
	}
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil || profile.ID != service.WorkerID {
		return apperrors.NewForbiddenError("You do not own this service")
	}
	return nil
}

func buildServiceResponse(service *models.Service) *dto.ServiceResponse {
	resp := &dto.ServiceResponse{
		ID:                service.ID,
		WorkerID:          service.WorkerID,
		Title:             service.Title,
		Description:       service.Description,
		Category:          service.Category,
		Price:             service.Price,
		PhotoURL:          service.PhotoURL,
		PublicationStatus: service.PublicationStatus,
		WordsDetected:     service.WordsDetected,
		PublishedAt:       service.PublishedAt,
		CreatedAt:         service.CreatedAt,
	}
	if service.Worker.ID != "" {
		resp.WorkerRating = service.Worker.Rating
		if service.Worker.User.ID != "" {
			resp.WorkerName = service.Worker.User.Name
		}
	}
	return resp
}
