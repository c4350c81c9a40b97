package dto

import "time"

type CreateRequestRequest struct {
	ServiceID string `json:"servicio_id" validate:"required,uuid4"`
	Day       string `json:"dia" validate:"omitempty,is-week-day"`
	StartTime string `json:"hora_inicio" validate:"omitempty,is-time-of-day"`
	EndTime   string `json:"hora_fin" validate:"omitempty,is-time-of-day"`
	Message   string `json:"mensaje" validate:"omitempty,max=2000"`
}

type RequestResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"servicio_id"`
	ServiceTitle string    `json:"servicio_titulo,omitempty"`
	ClientID     string    `json:"cliente_id"`
	ClientName   string    `json:"cliente_nombre,omitempty"`
	WorkerID     string    `json:"trabajador_id"`
	WorkerName   string    `json:"trabajador_nombre,omitempty"`
	Day          string    `json:"dia,omitempty"`
	StartTime    string    `json:"hora_inicio,omitempty"`
	EndTime      string    `json:"hora_fin,omitempty"`
	Status       string    `json:"estado"`
	Message      string    `json:"mensaje,omitempty"`
	Rated        bool      `json:"calificada"`
	CreatedAt    time.Time `json:"created_at"`
}
