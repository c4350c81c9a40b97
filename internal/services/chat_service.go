package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/internal/storage"
	"skilllink_backend/pkg/apperrors"
)

type ChatService interface {
	SendMessage(db *gorm.DB, userID, requestID string, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	GetMessages(db *gorm.DB, userID, requestID string) ([]dto.MessageResponse, error)
	MarkRead(db *gorm.DB, userID, requestID string) (*dto.MarkReadResponse, error)
	UploadAttachment(ctx context.Context, db *gorm.DB, userID, requestID, filename string, reader io.Reader, contentType string) (string, error)
}

type chatService struct {
	messageRepo repositories.MessageRepository
	requestRepo repositories.RequestRepository
	store       storage.Storage
}

func NewChatService(
	messageRepo repositories.MessageRepository,
	requestRepo repositories.RequestRepository,
	store storage.Storage,
) ChatService {
	return &chatService{
		messageRepo: messageRepo,
		requestRepo: requestRepo,
		store:       store,
	}
}

func (s *chatService) SendMessage(db *gorm.DB, userID, requestID string, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if req.Text == "" && req.AttachmentURL == "" {
		return nil, apperrors.NewBadRequestError("texto or archivo is required")
	}

	request, err := s.authorizeParticipant(db, userID, requestID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		RequestID:     request.ID,
		SenderID:      userID,
		Text:          req.Text,
		AttachmentURL: req.AttachmentURL,
		Read:          false,
	}
	if err := s.messageRepo.CreateMessage(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildMessageResponse(message), nil
}

func (s *chatService) GetMessages(db *gorm.DB, userID, requestID string) ([]dto.MessageResponse, error) {
	if _, err := s.authorizeParticipant(db, userID, requestID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindMessagesByRequest(db, requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, *buildMessageResponse(&messages[i]))
	}
	return out, nil
}

// MarkRead flips every message of the conversation not authored by the
// caller and reports how many rows changed.
func (s *chatService) MarkRead(db *gorm.DB, userID, requestID string) (*dto.MarkReadResponse, error) {
	if _, err := s.authorizeParticipant(db, userID, requestID); err != nil {
		return nil, err
	}

	marked, err := s.messageRepo.MarkMessagesRead(db, requestID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkReadResponse{Marked: marked}, nil
}

func (s *chatService) UploadAttachment(ctx context.Context, db *gorm.DB, userID, requestID, filename string, reader io.Reader, contentType string) (string, error) {
	if _, err := s.authorizeParticipant(db, userID, requestID); err != nil {
		return "", err
	}

	path := fmt.Sprintf("chat/%s/%s%s", requestID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *chatService) authorizeParticipant(db *gorm.DB, userID, requestID string) (*models.ServiceRequest, error) {
	request, err := s.requestRepo.FindRequestByID(db, requestID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if request.ClientID != userID && request.Worker.UserID != userID {
		return nil, apperrors.ErrNotRequestParticipant
	}
	return request, nil
}

func buildMessageResponse(m *models.Message) *dto.MessageResponse {
	resp := &dto.MessageResponse{
		ID:            m.ID,
		RequestID:     m.RequestID,
		SenderID:      m.SenderID,
		Text:          m.Text,
		AttachmentURL: m.AttachmentURL,
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
	if m.Sender.ID != "" {
		resp.SenderName = m.Sender.Name
	}
	return resp
}
