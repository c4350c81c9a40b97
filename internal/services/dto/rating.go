package dto

import "time"

type CreateRatingRequest struct {
	RequestID string `json:"solicitud_id" validate:"required,uuid4"`
	Score     int    `json:"puntaje" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comentario" validate:"omitempty,max=2000"`
}

type RatingResponse struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"solicitud_id"`
	ClientID   string    `json:"cliente_id"`
	ClientName string    `json:"cliente_nombre,omitempty"`
	WorkerID   string    `json:"trabajador_id"`
	Score      int       `json:"puntaje"`
	Comment    string    `json:"comentario,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorkerRatingsResponse struct {
	Ratings []RatingResponse `json:"calificaciones"`
	Average float64          `json:"promedio"`
}
