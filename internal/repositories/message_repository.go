package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	CreateMessage(db *gorm.DB, message *models.Message) error
	FindMessagesByRequest(db *gorm.DB, requestID string) ([]models.Message, error)

	// MarkMessagesRead flags every unread message of the conversation that
	// was NOT sent by readerID and returns how many rows changed.
	MarkMessagesRead(db *gorm.DB, requestID, readerID string) (int64, error)
	CountUnread(db *gorm.DB, requestID, readerID string) (int64, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) CreateMessage(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindMessagesByRequest(db *gorm.DB, requestID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Sender").
		Where("solicitud_id = ?", requestID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkMessagesRead(db *gorm.DB, requestID, readerID string) (int64, error) {
	result := db.Model(&models.Message{}).
		Where("solicitud_id = ? AND remitente_id <> ? AND leido = false", requestID, readerID).
		Update("leido", true)
	return result.RowsAffected, result.Error
}

func (r *MessageRepositoryImpl) CountUnread(db *gorm.DB, requestID, readerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("solicitud_id = ? AND remitente_id <> ? AND leido = false", requestID, readerID).
		Count(&count).Error
	return count, err
}
