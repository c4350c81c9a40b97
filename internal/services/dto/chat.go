package dto

import "time"

type CreateMessageRequest struct {
	Text          string `json:"texto" validate:"omitempty,max=4000"`
	AttachmentURL string `json:"archivo" validate:"omitempty,max=500"`
}

type MessageResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"solicitud_id"`
	SenderID      string    `json:"remitente_id"`
	SenderName    string    `json:"remitente_nombre,omitempty"`
	Text          string    `json:"texto,omitempty"`
	AttachmentURL string    `json:"archivo,omitempty"`
	Read          bool      `json:"leido"`
	CreatedAt     time.Time `json:"created_at"`
}

type MarkReadResponse struct {
	Marked int64 `json:"mensajes_marcados"`
}
