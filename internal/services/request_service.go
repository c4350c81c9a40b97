package services

import (
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/pkg/apperrors"
)

type RequestService interface {
	CreateRequest(db *gorm.DB, clientID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
	GetClientRequests(db *gorm.DB, clientID string) ([]dto.RequestResponse, error)
	GetWorkerRequests(db *gorm.DB, userID string) ([]dto.RequestResponse, error)
	GetRequest(db *gorm.DB, userID, id string) (*dto.RequestResponse, error)

	// Transition moves a request along the state machine. Only the owning
	// worker may call it; every edge outside the machine is a conflict.
	Transition(db *gorm.DB, userID, id, target string) (*dto.RequestResponse, error)
}

type requestService struct {
	requestRepo      repositories.RequestRepository
	serviceRepo      repositories.ServiceRepository
	profileRepo      repositories.ProfileRepository
	availabilityRepo repositories.AvailabilityRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	serviceRepo repositories.ServiceRepository,
	profileRepo repositories.ProfileRepository,
	availabilityRepo repositories.AvailabilityRepository,
) RequestService {
	return &requestService{
		requestRepo:      requestRepo,
		serviceRepo:      serviceRepo,
		profileRepo:      profileRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *requestService) CreateRequest(db *gorm.DB, clientID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	service, err := s.serviceRepo.FindServiceByID(db, req.ServiceID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if service.PublicationStatus != models.PublicationStatusApproved {
		return nil, apperrors.ErrServiceNotApproved
	}

	if service.Worker.UserID == clientID {
		return nil, apperrors.ErrOwnServiceRequest
	}

	request := &models.ServiceRequest{
		ServiceID: service.ID,
		ClientID:  clientID,
		WorkerID:  service.WorkerID,
		Status:    models.RequestStatusPending,
		Message:   req.Message,
	}

	if req.Day != "" || req.StartTime != "" || req.EndTime != "" {
		if req.Day == "" || req.StartTime == "" || req.EndTime == "" {
			return nil, apperrors.NewBadRequestError("dia, hora_inicio and hora_fin must be provided together")
		}

		start, end, err := parseWindow(req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}

		entries, err := s.availabilityRepo.FindAvailabilitiesByWorkerAndDay(db, service.WorkerID, req.Day)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !WindowCovered(entries, req.Day, start, end) {
			return nil, apperrors.ErrWorkerUnavailable
		}

		request.Day = req.Day
		request.StartTime = &start
		request.EndTime = &end
	}

	if err := s.requestRepo.CreateRequest(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.requestRepo.FindRequestByID(db, request.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildRequestResponse(created), nil
}

func (s *requestService) GetClientRequests(db *gorm.DB, clientID string) ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindRequestsByClient(db, clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildRequestResponses(requests), nil
}

func (s *requestService) GetWorkerRequests(db *gorm.DB, userID string) ([]dto.RequestResponse, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrWorkerProfileRequired
	}

	requests, err := s.requestRepo.FindRequestsByWorker(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildRequestResponses(requests), nil
}

func (s *requestService) GetRequest(db *gorm.DB, userID, id string) (*dto.RequestResponse, error) {
	request, err := s.requestRepo.FindRequestByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if !s.isParticipant(request, userID) {
		return nil, apperrors.ErrNotRequestParticipant
	}
	return buildRequestResponse(request), nil
}

func (s *requestService) Transition(db *gorm.DB, userID, id, target string) (*dto.RequestResponse, error) {
	request, err := s.requestRepo.FindRequestByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if request.Worker.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the service's worker can change the request status")
	}

	if !models.CanTransition(request.Status, target) {
		return nil, apperrors.ErrInvalidTransition(
			"cannot move request from " + request.Status + " to " + target)
	}

	if err := s.requestRepo.UpdateRequestStatus(db, id, target); err != nil {
		return nil, apperrors.InternalError(err)
	}

	request.Status = target
	return buildRequestResponse(request), nil
}

func (s *requestService) isParticipant(request *models.ServiceRequest, userID string) bool {
	return request.ClientID == userID || request.Worker.UserID == userID
}

func buildRequestResponses(requests []models.ServiceRequest) []dto.RequestResponse {
	out := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *buildRequestResponse(&requests[i]))
	}
	return out
}

func buildRequestResponse(r *models.ServiceRequest) *dto.RequestResponse {
	resp := &dto.RequestResponse{
		ID:        r.ID,
		ServiceID: r.ServiceID,
		ClientID:  r.ClientID,
		WorkerID:  r.WorkerID,
		Day:       r.Day,
		Status:    r.Status,
		Message:   r.Message,
		Rated:     r.Rating != nil,
		CreatedAt: r.CreatedAt,
	}
	if r.StartTime != nil {
		resp.StartTime = dto.FormatTimeOfDay(*r.StartTime)
	}
	if r.EndTime != nil {
		resp.EndTime = dto.FormatTimeOfDay(*r.EndTime)
	}
	if r.Service.ID != "" {
		resp.ServiceTitle = r.Service.Title
	}
	if r.Client.ID != "" {
		resp.ClientName = r.Client.Name
	}
	if r.Worker.ID != "" && r.Worker.User.ID != "" {
		resp.WorkerName = r.Worker.User.Name
	}
	return resp
}
